package repository

import (
	"context"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

// CategoryRepository define el puerto hacia las categorías (DIP).
type CategoryRepository interface {
	List(ctx context.Context, cred Credentials) ([]entity.Category, error)
	GetByID(ctx context.Context, cred Credentials, id string) (*entity.Category, error)
	Create(ctx context.Context, cred Credentials, category *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, cred Credentials, category *entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, cred Credentials, id string) error
}
