package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

// StockSheet nombre de la hoja del reporte de stock.
const StockSheet = "Estoque"

var stockHeader = []interface{}{"Producto", "SKU", "Stock actual", "Stock mínimo", "Estado"}

// Etiquetas de la columna Estado.
const (
	StatusLow    = "Stock bajo"
	StatusNormal = "Normal"
)

// StockXLSX genera el libro con una fila por posición, en el orden recibido.
func StockXLSX(positions []entity.StockPosition) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), StockSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(StockSheet, "A1", &stockHeader); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(StockSheet, "A1", "E1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, p := range positions {
		status := StatusNormal
		if p.LowStock() {
			status = StatusLow
		}
		excelRow := []interface{}{p.ProductName, p.SKU, p.CurrentStock, p.MinStock, status}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(StockSheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(StockSheet, "A", "A", 36)
	_ = f.SetColWidth(StockSheet, "B", "E", 14)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
