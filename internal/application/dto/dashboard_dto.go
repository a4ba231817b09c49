package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: tarjetas, tabla de stock bajo
// y últimos movimientos.
type DashboardSummaryDTO struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	LowStockCount   int `json:"low_stock_count"`

	// Movimientos del día calendario actual (zona del dashboard)
	TodayMovementsCount int             `json:"today_movements_count"`
	TodayIncoming       int64           `json:"today_incoming"`
	TodayOutgoing       int64           `json:"today_outgoing"`
	TodayIncomingValue  decimal.Decimal `json:"today_incoming_value"`
	TodayOutgoingValue  decimal.Decimal `json:"today_outgoing_value"`

	LowStock        []StockPositionDTO `json:"low_stock"`
	RecentMovements []MovementResponse `json:"recent_movements"` // más recientes primero

	GeneratedAt time.Time `json:"generated_at"`
	Timezone    string    `json:"timezone"`
	Cached      bool      `json:"cached"`
}

// StockPositionDTO stock actual de un producto.
type StockPositionDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku,omitempty"`
	CurrentStock int64  `json:"current_stock"`
	MinStock     int64  `json:"min_stock"`
	LowStock     bool   `json:"low_stock"`
}
