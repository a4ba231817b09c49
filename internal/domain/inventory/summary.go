package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

// Summary agrupa las posiciones de stock y los agregados que consume el dashboard.
type Summary struct {
	Positions []entity.StockPosition

	TotalProducts   int
	TotalCategories int

	LowStock      []entity.StockPosition // CurrentStock <= MinStock, en orden de catálogo
	LowStockCount int

	TodayMovements     []entity.StockMovement
	TodayIncoming      int64
	TodayOutgoing      int64
	TodayIncomingValue decimal.Decimal // Σ qty × precio de las entradas de hoy
	TodayOutgoingValue decimal.Decimal
}

// Summarize calcula las posiciones y todos los agregados del dashboard.
// "Hoy" es el día calendario de now en su propia zona horaria.
// TotalCategories cuenta las categorías distintas referenciadas por los productos.
func Summarize(products []entity.Product, movements []entity.StockMovement, now time.Time) Summary {
	positions := ComputeCurrentStock(products, movements)
	low := LowStockPositions(positions)
	today := MovementsOn(movements, now)

	prices := make(map[string]decimal.Decimal, len(products))
	categories := make(map[string]struct{})
	for _, p := range products {
		prices[p.ID] = p.Price
		if p.CategoryID != "" {
			categories[p.CategoryID] = struct{}{}
		}
	}

	s := Summary{
		Positions:          positions,
		TotalProducts:      len(products),
		TotalCategories:    len(categories),
		LowStock:           low,
		LowStockCount:      len(low),
		TodayMovements:     today,
		TodayIncomingValue: decimal.Zero,
		TodayOutgoingValue: decimal.Zero,
	}
	for _, m := range today {
		value := prices[m.ProductID].Mul(decimal.NewFromInt(m.Quantity))
		switch m.Type {
		case entity.MovementTypeIN:
			s.TodayIncoming += m.Quantity
			s.TodayIncomingValue = s.TodayIncomingValue.Add(value)
		case entity.MovementTypeOUT:
			s.TodayOutgoing += m.Quantity
			s.TodayOutgoingValue = s.TodayOutgoingValue.Add(value)
		}
	}
	return s
}

// LowStockPositions filtra las posiciones con CurrentStock <= MinStock (el límite cuenta).
func LowStockPositions(positions []entity.StockPosition) []entity.StockPosition {
	low := make([]entity.StockPosition, 0)
	for _, p := range positions {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low
}

// MovementsOn devuelve los movimientos cuya fecha de creación, llevada a la zona de day,
// cae en el mismo día calendario que day. Un CreatedAt vacío nunca coincide.
func MovementsOn(movements []entity.StockMovement, day time.Time) []entity.StockMovement {
	out := make([]entity.StockMovement, 0)
	for _, m := range movements {
		if SameDay(m.CreatedAt, day) {
			out = append(out, m)
		}
	}
	return out
}

// SameDay compara el día calendario de t y day en la zona horaria de day.
func SameDay(t, day time.Time) bool {
	if t.IsZero() {
		return false
	}
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
