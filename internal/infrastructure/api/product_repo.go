package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-console/internal/domain"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
)

// productWire acepta camelCase y snake_case para los campos que la API envía de ambas formas.
type productWire struct {
	ID            flexString    `json:"id"`
	SKU           string        `json:"sku"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         flexDecimal   `json:"price"`
	MinStockCamel *flexInt      `json:"minStock"`
	MinStockSnake *flexInt      `json:"min_stock"`
	CategoryCamel flexString    `json:"categoryId"`
	CategorySnake flexString    `json:"category_id"`
	Category      *categoryWire `json:"category"`
}

func (w productWire) toEntity() entity.Product {
	p := entity.Product{
		ID:          string(w.ID),
		SKU:         w.SKU,
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price.Decimal,
		CategoryID:  firstNonEmpty(string(w.CategorySnake), string(w.CategoryCamel)),
	}
	switch {
	case w.MinStockSnake != nil:
		p.MinStock = int64(*w.MinStockSnake)
	case w.MinStockCamel != nil:
		p.MinStock = int64(*w.MinStockCamel)
	}
	if w.Category != nil {
		cat := w.Category.toEntity()
		p.Category = &cat
		if p.CategoryID == "" {
			p.CategoryID = cat.ID
		}
	}
	return p
}

type productPayload struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int64           `json:"min_stock"`
	CategoryID  string          `json:"category_id,omitempty"`
}

// ProductRepo implementa repository.ProductRepository sobre /api/products.
type ProductRepo struct {
	c *Client
}

// NewProductRepo crea el adaptador.
func NewProductRepo(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

func (r *ProductRepo) List(ctx context.Context, cred repository.Credentials) ([]entity.Product, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, cred, http.MethodGet, "/api/products", "/api/products", nil, &raw); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	wires, err := decodeList[productWire](raw)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]entity.Product, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, cred repository.Credentials, id string) (*entity.Product, error) {
	var raw json.RawMessage
	err := r.c.do(ctx, cred, http.MethodGet, "/api/products/:id", "/api/products/"+url.PathEscape(id), nil, &raw)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener producto %s: %w", id, err)
	}
	w, err := decodeOne[productWire](raw)
	if err != nil {
		return nil, fmt.Errorf("obtener producto %s: %w", id, err)
	}
	if w == nil {
		return nil, nil
	}
	p := w.toEntity()
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, cred repository.Credentials, product *entity.Product) (*entity.Product, error) {
	return r.write(ctx, cred, http.MethodPost, "/api/products", "/api/products", product)
}

func (r *ProductRepo) Update(ctx context.Context, cred repository.Credentials, product *entity.Product) (*entity.Product, error) {
	return r.write(ctx, cred, http.MethodPut, "/api/products/:id", "/api/products/"+url.PathEscape(product.ID), product)
}

func (r *ProductRepo) Delete(ctx context.Context, cred repository.Credentials, id string) error {
	if err := r.c.do(ctx, cred, http.MethodDelete, "/api/products/:id", "/api/products/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("eliminar producto %s: %w", id, err)
	}
	return nil
}

func (r *ProductRepo) write(ctx context.Context, cred repository.Credentials, method, route, path string, product *entity.Product) (*entity.Product, error) {
	body := productPayload{
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		MinStock:    product.MinStock,
		CategoryID:  product.CategoryID,
	}
	var raw json.RawMessage
	if err := r.c.do(ctx, cred, method, route, path, body, &raw); err != nil {
		return nil, fmt.Errorf("guardar producto: %w", err)
	}
	w, err := decodeOne[productWire](raw)
	if err != nil {
		return nil, fmt.Errorf("guardar producto: %w", err)
	}
	if w == nil {
		saved := *product
		return &saved, nil
	}
	saved := w.toEntity()
	return &saved, nil
}
