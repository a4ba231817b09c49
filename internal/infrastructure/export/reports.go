package export

import (
	"time"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/inventory"
)

// Reports reúne los generadores que usa el dashboard.
type Reports struct {
	pdf *LowStockPDF
}

// NewReports construye los generadores con el formato dado.
func NewReports(f *Formatter) *Reports {
	return &Reports{pdf: NewLowStockPDF(f)}
}

func (r *Reports) StockXLSX(positions []entity.StockPosition) ([]byte, error) {
	return StockXLSX(positions)
}

func (r *Reports) LowStockPDF(s *inventory.Summary, generatedAt time.Time) ([]byte, error) {
	return r.pdf.Generate(s, generatedAt)
}
