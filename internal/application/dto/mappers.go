package dto

import "github.com/jhoicas/inventory-console/internal/domain/entity"

// MovementTypeLabel etiqueta visible del tipo de movimiento; cualquier tipo distinto de IN es salida.
func MovementTypeLabel(t string) string {
	if t == entity.MovementTypeIN {
		return "Entrada"
	}
	return "Saída"
}

// FromCategory convierte la entidad a su respuesta.
func FromCategory(c entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

// FromProduct convierte la entidad a su respuesta.
func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		MinStock:     p.MinStock,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName(),
	}
}

// FromMovement convierte la entidad a su respuesta.
func FromMovement(m entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Type:           m.Type,
		TypeLabel:      MovementTypeLabel(m.Type),
		Quantity:       m.Quantity,
		Notes:          m.Notes,
		IsInitialStock: m.IsInitialStock,
		CreatedAt:      m.CreatedAt,
	}
}

// FromPosition convierte una posición de stock.
func FromPosition(p entity.StockPosition) StockPositionDTO {
	return StockPositionDTO{
		ProductID:    p.ProductID,
		ProductName:  p.ProductName,
		SKU:          p.SKU,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		LowStock:     p.LowStock(),
	}
}

// FromPositions convierte una lista de posiciones; nunca devuelve nil.
func FromPositions(ps []entity.StockPosition) []StockPositionDTO {
	out := make([]StockPositionDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPosition(p))
	}
	return out
}

// FromUser convierte el usuario de la API remota; nil queda nil.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
