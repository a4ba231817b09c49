package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
	"github.com/jhoicas/inventory-console/pkg/timeutil"
)

type movementProductWire struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

// movementWire acepta las variantes de la API: product_id/productId o product{id,name},
// created_at/createdAt/date y notes/observation.
type movementWire struct {
	ID             flexString           `json:"id"`
	ProductSnake   flexString           `json:"product_id"`
	ProductCamel   flexString           `json:"productId"`
	Product        *movementProductWire `json:"product"`
	Type           string               `json:"type"`
	Quantity       flexInt              `json:"quantity"`
	Notes          string               `json:"notes"`
	Observation    string               `json:"observation"`
	IsInitialStock *bool                `json:"is_initial_stock"`
	CreatedSnake   flexTime             `json:"created_at"`
	CreatedCamel   flexTime             `json:"createdAt"`
	Date           flexTime             `json:"date"`
}

// toEntity resuelve el flag de stock inicial: el booleano de la API si vino, si no la
// comparación exacta de la nota con initialNote. Las fechas sin zona se leen en loc.
// El tipo se conserva tal cual: solo "IN" y "OUT" exactos mueven stock.
func (w movementWire) toEntity(initialNote string, loc *time.Location) entity.StockMovement {
	m := entity.StockMovement{
		ID:       string(w.ID),
		Type:     w.Type,
		Quantity: int64(w.Quantity),
		Notes:    firstNonEmpty(w.Notes, w.Observation),
	}
	m.ProductID = firstNonEmpty(string(w.ProductSnake), string(w.ProductCamel))
	if w.Product != nil {
		if m.ProductID == "" {
			m.ProductID = string(w.Product.ID)
		}
		m.ProductName = w.Product.Name
	}
	for _, raw := range []flexTime{w.CreatedSnake, w.CreatedCamel, w.Date} {
		if t := timeutil.Parse(string(raw), loc); !t.IsZero() {
			m.CreatedAt = t
			break
		}
	}
	if w.IsInitialStock != nil {
		m.IsInitialStock = *w.IsInitialStock
	} else {
		m.IsInitialStock = initialNote != "" && m.Notes == initialNote
	}
	return m
}

type movementPayload struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// MovementRepo implementa repository.StockMovementRepository sobre /api/stock/movements.
type MovementRepo struct {
	c           *Client
	initialNote string
	loc         *time.Location
}

// NewMovementRepo crea el adaptador. initialNote es la nota que marca el stock inicial
// cuando la API no envía is_initial_stock; vacío usa entity.InitialStockNote.
// loc es la zona del dashboard para fechas sin zona; nil usa time.Local.
func NewMovementRepo(c *Client, initialNote string, loc *time.Location) *MovementRepo {
	if initialNote == "" {
		initialNote = entity.InitialStockNote
	}
	if loc == nil {
		loc = time.Local
	}
	return &MovementRepo{c: c, initialNote: initialNote, loc: loc}
}

// List conserva el orden de la API.
func (r *MovementRepo) List(ctx context.Context, cred repository.Credentials) ([]entity.StockMovement, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, cred, http.MethodGet, "/api/stock/movements", "/api/stock/movements", nil, &raw); err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	wires, err := decodeList[movementWire](raw)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	out := make([]entity.StockMovement, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity(r.initialNote, r.loc))
	}
	return out, nil
}

func (r *MovementRepo) Create(ctx context.Context, cred repository.Credentials, movement *entity.StockMovement) (*entity.StockMovement, error) {
	body := movementPayload{
		ProductID: movement.ProductID,
		Type:      movement.Type,
		Quantity:  movement.Quantity,
		Notes:     movement.Notes,
	}
	var raw json.RawMessage
	if err := r.c.do(ctx, cred, http.MethodPost, "/api/stock/movements", "/api/stock/movements", body, &raw); err != nil {
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}
	w, err := decodeOne[movementWire](raw)
	if err != nil {
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}
	if w == nil {
		saved := *movement
		return &saved, nil
	}
	saved := w.toEntity(r.initialNote, r.loc)
	return &saved, nil
}
