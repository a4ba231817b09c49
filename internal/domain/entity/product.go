package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo remoto.
// Es de solo lectura para el cálculo de stock; el stock actual se deriva de los movimientos.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta (moneda del reporte)
	MinStock    int64           // umbral de stock mínimo (>= 0 por convención)
	CategoryID  string
	Category    *Category // embebida cuando la API la envía
}

// CategoryName devuelve el nombre de la categoría embebida o "" si no vino.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
