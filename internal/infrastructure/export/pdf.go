package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventory-console/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// LowStockPDF genera el reporte A4 de productos en stock bajo:
//
//	┌──────────────────────────────────────────────┐
//	│  Título + fecha de generación                 │
//	│  Tarjetas: productos / stock bajo / hoy       │
//	│  Tabla: Producto | SKU | Actual | Mínimo      │
//	└──────────────────────────────────────────────┘
type LowStockPDF struct {
	format *Formatter
}

// NewLowStockPDF construye el generador.
func NewLowStockPDF(f *Formatter) *LowStockPDF {
	return &LowStockPDF{format: f}
}

// Generate devuelve los bytes del PDF.
func (g *LowStockPDF) Generate(s *inventory.Summary, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de estoque baixo", true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.cardsRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(s.LowStock) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New("Nenhum produto com estoque baixo.", props.Text{
			Size: 9, Top: 3, Color: colorGray, Align: align.Center,
		}))))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(g.tableRows(s)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *LowStockPDF) headerRow(at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(text.New("Estoque baixo", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New("Gerado em "+g.format.Date(at), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

func (g *LowStockPDF) cardsRow(s *inventory.Summary) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return row.New(14).Add(
		card("Produtos", g.format.Int(int64(s.TotalProducts))),
		card("Estoque baixo", g.format.Int(int64(s.LowStockCount))),
		card("Entradas hoje", g.format.Int(s.TodayIncoming)+" / "+g.format.Money(s.TodayIncomingValue)),
		card("Saídas hoje", g.format.Int(s.TodayOutgoing)+" / "+g.format.Money(s.TodayOutgoingValue)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Produto", 6, align.Left),
		h("SKU", 2, align.Left),
		h("Atual", 2, align.Right),
		h("Mínimo", 2, align.Right),
	)
}

func (g *LowStockPDF) tableRows(s *inventory.Summary) []core.Row {
	rows := make([]core.Row, 0, len(s.LowStock))
	for _, p := range s.LowStock {
		current := props.Text{Size: 8, Align: align.Right, Top: 1}
		if p.CurrentStock <= 0 {
			current.Color = colorAlert
			current.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(nonEmpty(p.ProductName, p.ProductID), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(p.SKU, "-"), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(g.format.Int(p.CurrentStock), current)),
			col.New(2).Add(text.New(g.format.Int(p.MinStock), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
