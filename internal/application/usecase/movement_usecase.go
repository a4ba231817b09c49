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

// MovementUseCase listado y registro de movimientos de stock.
// La validación de tipo y cantidad vive aquí; el cálculo de stock acepta cualquier dato.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List lista los movimientos en el orden de la API, filtrados por producto, notas o tipo.
func (uc *MovementUseCase) List(ctx context.Context, cred repository.Credentials, q dto.ListQuery) (dto.ListResponse[dto.MovementResponse], error) {
	movements, err := uc.repo.List(ctx, cred)
	if err != nil {
		return dto.ListResponse[dto.MovementResponse]{}, err
	}
	m := newMatcher(q.Search)
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, mv := range movements {
		if m.match(mv.ProductName, mv.Notes, mv.Type, dto.MovementTypeLabel(mv.Type)) {
			items = append(items, dto.FromMovement(mv))
		}
	}
	return dto.NewListResponse(items), nil
}

// Create registra un movimiento IN/OUT con cantidad positiva.
func (uc *MovementUseCase) Create(ctx context.Context, cred repository.Credentials, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	kind := strings.ToUpper(strings.TrimSpace(in.Type))
	switch {
	case strings.TrimSpace(in.ProductID) == "":
		return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	case kind != entity.MovementTypeIN && kind != entity.MovementTypeOUT:
		return nil, fmt.Errorf("%w: tipo debe ser IN u OUT", domain.ErrInvalidInput)
	case in.Quantity <= 0:
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	saved, err := uc.repo.Create(ctx, cred, &entity.StockMovement{
		ProductID: strings.TrimSpace(in.ProductID),
		Type:      kind,
		Quantity:  in.Quantity,
		Notes:     strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromMovement(*saved)
	return &out, nil
}
