package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/inventory-console/internal/domain"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
)

type categoryWire struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

func (w categoryWire) toEntity() entity.Category {
	return entity.Category{ID: string(w.ID), Name: w.Name, Description: w.Description}
}

type categoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryRepo implementa repository.CategoryRepository sobre /api/categories.
type CategoryRepo struct {
	c *Client
}

// NewCategoryRepo crea el adaptador.
func NewCategoryRepo(c *Client) *CategoryRepo {
	return &CategoryRepo{c: c}
}

func (r *CategoryRepo) List(ctx context.Context, cred repository.Credentials) ([]entity.Category, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, cred, http.MethodGet, "/api/categories", "/api/categories", nil, &raw); err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	wires, err := decodeList[categoryWire](raw)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := make([]entity.Category, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, cred repository.Credentials, id string) (*entity.Category, error) {
	var raw json.RawMessage
	err := r.c.do(ctx, cred, http.MethodGet, "/api/categories/:id", "/api/categories/"+url.PathEscape(id), nil, &raw)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener categoría %s: %w", id, err)
	}
	w, err := decodeOne[categoryWire](raw)
	if err != nil {
		return nil, fmt.Errorf("obtener categoría %s: %w", id, err)
	}
	if w == nil {
		return nil, nil
	}
	cat := w.toEntity()
	return &cat, nil
}

func (r *CategoryRepo) Create(ctx context.Context, cred repository.Credentials, category *entity.Category) (*entity.Category, error) {
	return r.write(ctx, cred, http.MethodPost, "/api/categories", "/api/categories", category)
}

func (r *CategoryRepo) Update(ctx context.Context, cred repository.Credentials, category *entity.Category) (*entity.Category, error) {
	return r.write(ctx, cred, http.MethodPut, "/api/categories/:id", "/api/categories/"+url.PathEscape(category.ID), category)
}

func (r *CategoryRepo) Delete(ctx context.Context, cred repository.Credentials, id string) error {
	if err := r.c.do(ctx, cred, http.MethodDelete, "/api/categories/:id", "/api/categories/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("eliminar categoría %s: %w", id, err)
	}
	return nil
}

func (r *CategoryRepo) write(ctx context.Context, cred repository.Credentials, method, route, path string, category *entity.Category) (*entity.Category, error) {
	var raw json.RawMessage
	body := categoryPayload{Name: category.Name, Description: category.Description}
	if err := r.c.do(ctx, cred, method, route, path, body, &raw); err != nil {
		return nil, fmt.Errorf("guardar categoría: %w", err)
	}
	w, err := decodeOne[categoryWire](raw)
	if err != nil {
		return nil, fmt.Errorf("guardar categoría: %w", err)
	}
	if w == nil {
		// La API respondió sin cuerpo: devolvemos lo enviado.
		saved := *category
		return &saved, nil
	}
	saved := w.toEntity()
	return &saved, nil
}
