// Package inventory contiene los servicios de dominio puros del inventario:
// la derivación del stock actual por producto y los agregados del dashboard.
//
// Ninguna función de este paquete hace I/O ni muta sus entradas; pueden
// invocarse en cada refresco con el mismo resultado para las mismas entradas.
package inventory

import "github.com/jhoicas/inventory-console/internal/domain/entity"

// ComputeCurrentStock deriva el stock actual de cada producto a partir de sus movimientos.
//
//	stock = base + Σ(+qty IN, -qty OUT) sobre el resto de movimientos del producto
//
// base es la cantidad del primer movimiento (en orden de entrada) marcado como stock
// inicial; ese movimiento no se suma de nuevo. Los demás movimientos marcados se
// pliegan como IN/OUT normales. Movimientos de productos inexistentes se ignoran.
// La salida conserva el orden de products.
func ComputeCurrentStock(products []entity.Product, movements []entity.StockMovement) []entity.StockPosition {
	positions := make([]entity.StockPosition, 0, len(products))
	if len(products) == 0 {
		return positions
	}

	byProduct := groupByProduct(movements)
	for _, p := range products {
		positions = append(positions, entity.StockPosition{
			ProductID:    p.ID,
			ProductName:  p.Name,
			SKU:          p.SKU,
			CurrentStock: foldMovements(byProduct[p.ID]),
			MinStock:     p.MinStock,
		})
	}
	return positions
}

// groupByProduct agrupa los movimientos por ProductID conservando el orden de entrada.
func groupByProduct(movements []entity.StockMovement) map[string][]entity.StockMovement {
	groups := make(map[string][]entity.StockMovement)
	for _, m := range movements {
		groups[m.ProductID] = append(groups[m.ProductID], m)
	}
	return groups
}

func foldMovements(group []entity.StockMovement) int64 {
	initial := -1
	for i, m := range group {
		if m.IsInitialStock {
			initial = i
			break
		}
	}

	var total int64
	if initial >= 0 {
		total = group[initial].Quantity
	}
	for i, m := range group {
		if i == initial {
			continue
		}
		total += m.Signed()
	}
	return total
}

// DuplicateInitialStock devuelve los IDs de producto que tienen más de un movimiento
// marcado como stock inicial, en orden de primera aparición. Solo el primero cuenta como
// base en ComputeCurrentStock; el resto suma como un movimiento normal.
func DuplicateInitialStock(movements []entity.StockMovement) []string {
	seen := make(map[string]int)
	var dups []string
	for _, m := range movements {
		if !m.IsInitialStock {
			continue
		}
		seen[m.ProductID]++
		if seen[m.ProductID] == 2 {
			dups = append(dups, m.ProductID)
		}
	}
	return dups
}
