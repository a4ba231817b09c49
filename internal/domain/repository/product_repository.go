package repository

import (
	"context"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

// ProductRepository define el puerto hacia el catálogo de productos (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	List(ctx context.Context, cred Credentials) ([]entity.Product, error)
	GetByID(ctx context.Context, cred Credentials, id string) (*entity.Product, error)
	Create(ctx context.Context, cred Credentials, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, cred Credentials, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, cred Credentials, id string) error
}
