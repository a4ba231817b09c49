package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventory-console/internal/application/dto"
	"github.com/jhoicas/inventory-console/internal/domain"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se edita aquí: se deriva de los movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista los productos filtrados por nombre, SKU o nombre de categoría.
func (uc *ProductUseCase) List(ctx context.Context, cred repository.Credentials, q dto.ListQuery) (dto.ListResponse[dto.ProductResponse], error) {
	products, err := uc.repo.List(ctx, cred)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	m := newMatcher(q.Search)
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if m.match(p.Name, p.SKU, p.CategoryName()) {
			items = append(items, dto.FromProduct(p))
		}
	}
	return dto.NewListResponse(items), nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, cred repository.Credentials, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, cred, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromProduct(*p)
	return &out, nil
}

// Create crea un producto.
func (uc *ProductUseCase) Create(ctx context.Context, cred repository.Credentials, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, cred, product)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*saved)
	return &out, nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(ctx context.Context, cred repository.Credentials, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	saved, err := uc.repo.Update(ctx, cred, product)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*saved)
	return &out, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, cred repository.Credentials, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, cred, id)
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	case in.MinStock < 0:
		return nil, fmt.Errorf("%w: el stock mínimo no puede ser negativo", domain.ErrInvalidInput)
	case in.Price.IsNegative():
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	return &entity.Product{
		SKU:         strings.TrimSpace(in.SKU),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		MinStock:    in.MinStock,
		CategoryID:  strings.TrimSpace(in.CategoryID),
	}, nil
}
