package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier abstrae pgxpool.Pool y pgx.Tx para los lectores.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// initialStock resuelve el flag de stock inicial de una fila: la columna is_initial_stock
// si no es NULL, si no la comparación de la nota con el sentinela configurado.
func initialStock(flag *bool, notes, sentinel string) bool {
	if flag != nil {
		return *flag
	}
	return sentinel != "" && notes == sentinel
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
