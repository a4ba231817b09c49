// Package export genera los reportes descargables del dashboard (XLSX y PDF).
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter da formato local a cantidades, dinero y fechas de los reportes.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	symbol  string
}

// NewFormatter construye el formateador para un locale BCP 47 (ej. pt-BR) y una moneda ISO 4217.
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("moneda %q: %w", currencyCode, err)
	}
	p := message.NewPrinter(tag)
	return &Formatter{
		tag:     tag,
		printer: p,
		symbol:  strings.TrimSpace(p.Sprint(currency.Symbol(unit))),
	}, nil
}

// Int formatea un entero con separador de miles del locale (pt-BR: 1.234).
func (f *Formatter) Int(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Money formatea con el símbolo de la moneda y dos decimales (pt-BR: R$ 1.234,50).
func (f *Formatter) Money(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.symbol + " " + f.printer.Sprintf("%.2f", v)
}

// Date formatea la fecha en el orden día/mes/año salvo para inglés de EE. UU.
func (f *Formatter) Date(t time.Time) string {
	base, _ := f.tag.Base()
	region, _ := f.tag.Region()
	if base.String() == "en" && region.String() == "US" {
		return t.Format("01/02/2006 15:04")
	}
	return t.Format("02/01/2006 15:04")
}
