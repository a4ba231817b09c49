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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List lista las categorías filtradas por nombre o descripción.
func (uc *CategoryUseCase) List(ctx context.Context, cred repository.Credentials, q dto.ListQuery) (dto.ListResponse[dto.CategoryResponse], error) {
	cats, err := uc.repo.List(ctx, cred)
	if err != nil {
		return dto.ListResponse[dto.CategoryResponse]{}, err
	}
	m := newMatcher(q.Search)
	items := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		if m.match(c.Name, c.Description) {
			items = append(items, dto.FromCategory(c))
		}
	}
	return dto.NewListResponse(items), nil
}

// GetByID obtiene una categoría; ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, cred repository.Credentials, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, cred, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromCategory(*c)
	return &out, nil
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, cred repository.Credentials, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := categoryFromRequest(in)
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, cred, cat)
	if err != nil {
		return nil, err
	}
	out := dto.FromCategory(*saved)
	return &out, nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, cred repository.Credentials, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	cat, err := categoryFromRequest(in)
	if err != nil {
		return nil, err
	}
	cat.ID = id
	saved, err := uc.repo.Update(ctx, cred, cat)
	if err != nil {
		return nil, err
	}
	out := dto.FromCategory(*saved)
	return &out, nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, cred repository.Credentials, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, cred, id)
}

func categoryFromRequest(in dto.CategoryRequest) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	return &entity.Category{Name: name, Description: strings.TrimSpace(in.Description)}, nil
}
