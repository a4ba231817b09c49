package dashboard

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

// memoKey resume en un hash el contenido que determina el resumen: ambos listados, en
// orden (el orden decide el stock inicial), más el día y la zona de evaluación.
func memoKey(products []entity.Product, categories []entity.Category, movements []entity.StockMovement, now time.Time) string {
	d := xxhash.New()
	w := func(parts ...string) {
		for _, p := range parts {
			_, _ = d.WriteString(p)
			_, _ = d.Write([]byte{0})
		}
	}

	w("day", now.Format("2006-01-02"), now.Location().String())

	w("products", strconv.Itoa(len(products)))
	for _, p := range products {
		w(p.ID, p.SKU, p.Name, p.CategoryID, p.Price.String(), strconv.FormatInt(p.MinStock, 10))
	}

	// nil y vacío se distinguen: con catálogo de categorías el total sale de ahí.
	if categories == nil {
		w("categories", "nil")
	} else {
		w("categories", strconv.Itoa(len(categories)))
	}

	w("movements", strconv.Itoa(len(movements)))
	for _, m := range movements {
		w(m.ID, m.ProductID, m.ProductName, m.Type, m.Notes,
			strconv.FormatInt(m.Quantity, 10),
			strconv.FormatBool(m.IsInitialStock),
			strconv.FormatInt(m.CreatedAt.UnixNano(), 10),
		)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
