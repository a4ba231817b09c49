package dto

// ListQuery filtro común de los listados (?search=).
type ListQuery struct {
	Search string `query:"search"`
}

// ListResponse envoltorio de listados con el total tras filtrar.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse arma el envoltorio; items nil se serializa como [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// MessageResponse respuesta con solo un mensaje para el usuario.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
