package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento de stock.
type CreateMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // IN | OUT
	Quantity  int64  `json:"quantity"`
	Notes     string `json:"notes"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Type           string    `json:"type"`
	TypeLabel      string    `json:"type_label"` // Entrada | Saída
	Quantity       int64     `json:"quantity"`
	Notes          string    `json:"notes"`
	IsInitialStock bool      `json:"is_initial_stock"`
	CreatedAt      time.Time `json:"created_at"`
}
