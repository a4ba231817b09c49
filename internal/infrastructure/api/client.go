// Package api implementa los puertos del dominio sobre la API REST de inventario.
//
// Cada llamada recibe la credencial del usuario de forma explícita
// (repository.Credentials) y la envía como Bearer token; el cliente no guarda tokens.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jhoicas/inventory-console/internal/domain"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
	"github.com/jhoicas/inventory-console/pkg/logger"
	"github.com/jhoicas/inventory-console/pkg/requestid"
)

// maxResponseBytes límite de lectura de cuerpos de respuesta (listados grandes incluidos).
const maxResponseBytes = 16 << 20

// Observer recibe una observación por cada llamada a la API (métricas).
type Observer interface {
	ObserveUpstream(method, route string, status int, elapsed time.Duration)
}

// Config configuración del cliente.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // peticiones por segundo; <= 0 sin límite
	Burst     int
}

// Client cliente HTTP compartido por todos los adaptadores del paquete.
// Usa net/http de la librería estándar, igual que los demás adaptadores REST del repo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   Observer
	log        *logger.Logger
}

// Option ajusta el cliente al construirlo.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithObserver registra un observador de métricas.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithLogger asigna el logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient construye el cliente.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Nop(),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError error devuelto cuando la API responde con un status distinto de 2xx.
// Unwrap devuelve el error de dominio equivalente.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string // campo message/error del cuerpo, si vino
	kind    error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s %s: HTTP %d", e.Method, e.Path, e.Status)
}

func (e *StatusError) Unwrap() error { return e.kind }

// statusKind traduce un status HTTP al error de dominio.
func statusKind(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrUpstreamUnavailable
	}
}

// errorBody formas habituales del cuerpo de error de la API.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do ejecuta la llamada. in se serializa como JSON si no es nil; out se rellena con el
// cuerpo de respuesta si no es nil. route es la plantilla usada en métricas (sin IDs).
func (c *Client) do(ctx context.Context, cred repository.Credentials, method, route, path string, in, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("api: esperando cupo de peticiones: %w", err)
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !cred.Anonymous() {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, route, 0, start)
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s: timeout o cancelación: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w: %v", method, path, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	c.observe(method, route, resp.StatusCode, start)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("llamada a API de inventario")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Method: method, Path: path, Status: resp.StatusCode, kind: statusKind(resp.StatusCode)}
		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil {
			se.Message = firstNonEmpty(eb.Message, eb.Error)
		}
		return se
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: %s %s: deserializar respuesta: %w", method, path, err)
	}
	return nil
}

func (c *Client) observe(method, route string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(method, route, status, time.Since(start))
	}
}

// IsStatus indica si err es un *StatusError con el status dado.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// Message devuelve el mensaje de la API contenido en err, o "".
func Message(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// UpstreamMessage mensaje de la API para mostrar al usuario.
func (e *StatusError) UpstreamMessage() string { return e.Message }
