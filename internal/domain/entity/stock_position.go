package entity

// StockPosition es el stock actual derivado de un producto. No se persiste.
type StockPosition struct {
	ProductID    string
	ProductName  string
	SKU          string
	CurrentStock int64
	MinStock     int64
}

// LowStock indica si el producto está en o por debajo de su stock mínimo.
func (p StockPosition) LowStock() bool {
	return p.CurrentStock <= p.MinStock
}
