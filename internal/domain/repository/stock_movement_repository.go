package repository

import (
	"context"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

// StockMovementRepository define el puerto hacia los movimientos de stock (DIP).
// List devuelve los movimientos en el orden en que los entrega la fuente; ese orden
// decide cuál es el primer movimiento de stock inicial de cada producto.
type StockMovementRepository interface {
	List(ctx context.Context, cred Credentials) ([]entity.StockMovement, error)
	Create(ctx context.Context, cred Credentials, movement *entity.StockMovement) (*entity.StockMovement, error)
}
