package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
)

type userWire struct {
	ID    flexString `json:"id"`
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  string     `json:"role"`
}

// authWire respuesta de login/registro/callback; el token puede llegar como token o access_token.
type authWire struct {
	Token       string    `json:"token"`
	AccessToken string    `json:"access_token"`
	User        *userWire `json:"user"`
}

func (w authWire) toResult() *repository.AuthResult {
	res := &repository.AuthResult{Token: firstNonEmpty(w.Token, w.AccessToken)}
	if w.User != nil {
		res.User = &entity.User{
			ID:    string(w.User.ID),
			Email: w.User.Email,
			Name:  w.User.Name,
			Role:  w.User.Role,
		}
	}
	return res
}

// AuthGateway implementa repository.AuthGateway sobre /api/auth. Todas las llamadas son anónimas.
type AuthGateway struct {
	c *Client
}

// NewAuthGateway crea el adaptador.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (*repository.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	return g.authCall(ctx, http.MethodPost, "/api/auth/login", "/api/auth/login", body)
}

func (g *AuthGateway) Register(ctx context.Context, in repository.RegisterInput) (*repository.AuthResult, error) {
	body := map[string]string{
		"email":       in.Email,
		"password":    in.Password,
		"invite_code": in.InviteCode,
	}
	return g.authCall(ctx, http.MethodPost, "/api/auth/register", "/api/auth/register", body)
}

func (g *AuthGateway) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := g.c.do(ctx, repository.Credentials{}, http.MethodPost, "/api/auth/forgot-password", "/api/auth/forgot-password", body, nil); err != nil {
		return fmt.Errorf("recuperar contraseña: %w", err)
	}
	return nil
}

func (g *AuthGateway) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	if err := g.c.do(ctx, repository.Credentials{}, http.MethodPost, "/api/auth/reset-password", "/api/auth/reset-password", body, nil); err != nil {
		return fmt.Errorf("restablecer contraseña: %w", err)
	}
	return nil
}

func (g *AuthGateway) GoogleCallback(ctx context.Context, code string) (*repository.AuthResult, error) {
	path := "/api/auth/google/callback?code=" + url.QueryEscape(code)
	return g.authCall(ctx, http.MethodGet, "/api/auth/google/callback", path, nil)
}

func (g *AuthGateway) authCall(ctx context.Context, method, route, path string, body interface{}) (*repository.AuthResult, error) {
	var raw json.RawMessage
	if err := g.c.do(ctx, repository.Credentials{}, method, route, path, body, &raw); err != nil {
		return nil, fmt.Errorf("autenticación: %w", err)
	}
	w, err := decodeOne[authWire](raw)
	if err != nil {
		return nil, fmt.Errorf("autenticación: %w", err)
	}
	if w == nil {
		return &repository.AuthResult{}, nil
	}
	return w.toResult(), nil
}
