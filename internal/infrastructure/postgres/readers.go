package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
	"github.com/jhoicas/inventory-console/pkg/timeutil"
)

// Columnas esperadas (la consola no administra el esquema):
//
//	categories(id, name, description)
//	products(id, sku, name, description, price, min_stock, category_id)
//	stock_movements(id, product_id, type, quantity, notes, is_initial_stock NULL, created_at)
//
// Las credenciales se ignoran: el acceso lo controla el rol de la conexión.
// Toda columna que pueda venir NULL se lee con COALESCE o a un puntero.

// ProductReader lista productos desde PostgreSQL.
type ProductReader struct {
	q Querier
}

// NewProductReader construye el lector. Pasar pool o tx.
func NewProductReader(q Querier) *ProductReader {
	return &ProductReader{q: q}
}

// List devuelve el catálogo con su categoría embebida, en orden de nombre.
func (r *ProductReader) List(ctx context.Context, _ repository.Credentials) ([]entity.Product, error) {
	query := `
		SELECT p.id::text, COALESCE(p.sku, ''), COALESCE(p.name, ''), p.description, COALESCE(p.price, 0), COALESCE(p.min_stock, 0),
		       p.category_id::text, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.name, p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var (
			p           entity.Product
			description *string
			categoryID  *string
			catName     *string
			price       decimal.Decimal
		)
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &description, &price, &p.MinStock, &categoryID, &catName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Price = price
		p.Description = deref(description)
		p.CategoryID = deref(categoryID)
		if catName != nil {
			p.Category = &entity.Category{ID: p.CategoryID, Name: *catName}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CategoryReader lista categorías desde PostgreSQL.
type CategoryReader struct {
	q Querier
}

// NewCategoryReader construye el lector.
func NewCategoryReader(q Querier) *CategoryReader {
	return &CategoryReader{q: q}
}

func (r *CategoryReader) List(ctx context.Context, _ repository.Credentials) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, COALESCE(name, ''), description FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.Category
	for rows.Next() {
		var (
			c           entity.Category
			description *string
		)
		if err := rows.Scan(&c.ID, &c.Name, &description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Description = deref(description)
		list = append(list, c)
	}
	return list, rows.Err()
}

// MovementReader lista movimientos desde PostgreSQL.
type MovementReader struct {
	q        Querier
	sentinel string
	loc      *time.Location
}

// NewMovementReader construye el lector. sentinel es la nota de stock inicial usada
// cuando is_initial_stock es NULL; vacío usa entity.InitialStockNote.
// loc es la zona del dashboard: un created_at sin zona se lee como hora local de loc.
func NewMovementReader(q Querier, sentinel string, loc *time.Location) *MovementReader {
	if sentinel == "" {
		sentinel = entity.InitialStockNote
	}
	if loc == nil {
		loc = time.Local
	}
	return &MovementReader{q: q, sentinel: sentinel, loc: loc}
}

// List devuelve los movimientos en orden de creación; ese orden decide el primer
// movimiento de stock inicial de cada producto. El tipo se lee tal cual.
// created_at viaja como texto para que timestamp y timestamptz se interpreten igual.
func (r *MovementReader) List(ctx context.Context, _ repository.Credentials) ([]entity.StockMovement, error) {
	query := `
		SELECT m.id::text, COALESCE(m.product_id::text, ''), p.name, COALESCE(m.type, ''), COALESCE(m.quantity, 0),
		       m.notes, m.is_initial_stock, m.created_at::text
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at, m.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovement
	for rows.Next() {
		var (
			m           entity.StockMovement
			productName *string
			notes       *string
			flag        *bool
			createdAt   *string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &productName, &m.Type, &m.Quantity, &notes, &flag, &createdAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.CreatedAt = timeutil.Parse(deref(createdAt), r.loc)
		m.ProductName = deref(productName)
		m.Notes = deref(notes)
		m.IsInitialStock = initialStock(flag, m.Notes, r.sentinel)
		list = append(list, m)
	}
	return list, rows.Err()
}
