package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// InitialStockNote es la nota con la que la API marca el movimiento de stock inicial
// cuando no envía el flag explícito.
const InitialStockNote = "Initial stock"

// StockMovement representa un movimiento de stock (entrada o salida) de un producto.
// ProductID puede apuntar a un producto que ya no existe.
type StockMovement struct {
	ID             string
	ProductID      string
	ProductName    string // embebido cuando la API envía product{id,name}
	Type           string // IN, OUT
	Quantity       int64  // sin validar: datos malformados se propagan tal cual
	Notes          string
	IsInitialStock bool // resuelto en el borde (API o Postgres), nunca por el calculador
	CreatedAt      time.Time
}

// Signed devuelve +Quantity para IN, -Quantity para OUT y 0 para cualquier otro tipo.
func (m StockMovement) Signed() int64 {
	switch m.Type {
	case MovementTypeIN:
		return m.Quantity
	case MovementTypeOUT:
		return -m.Quantity
	default:
		return 0
	}
}
