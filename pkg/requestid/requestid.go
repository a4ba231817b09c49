// Package requestid propaga el identificador de correlación de una petición
// desde el borde HTTP hasta las llamadas a la API remota.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header cabecera HTTP usada en ambos sentidos.
const Header = "X-Request-ID"

type ctxKey struct{}

// New genera un identificador nuevo.
func New() string {
	return uuid.NewString()
}

// WithID devuelve un contexto hijo que lleva id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext devuelve el id del contexto o "" si no hay.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
