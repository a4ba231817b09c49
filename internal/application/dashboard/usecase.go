// Package dashboard arma el resumen de stock que consume la pantalla principal.
//
// Flujo de GetSummary:
//  1. productos, categorías y movimientos en paralelo (cualquier error aborta)
//  2. memo por contenido (si hay caché)
//  3. inventory.Summarize
//  4. guardar memo, publicar alerta de stock bajo, actualizar métricas
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/inventory-console/internal/application/dto"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/inventory"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
	"github.com/jhoicas/inventory-console/pkg/logger"
)

// ProductSource lista el catálogo (API remota o Postgres).
type ProductSource interface {
	List(ctx context.Context, cred repository.Credentials) ([]entity.Product, error)
}

// CategorySource lista las categorías.
type CategorySource interface {
	List(ctx context.Context, cred repository.Credentials) ([]entity.Category, error)
}

// MovementSource lista los movimientos en el orden de la fuente.
type MovementSource interface {
	List(ctx context.Context, cred repository.Credentials) ([]entity.StockMovement, error)
}

// SummaryMemo guarda resúmenes ya calculados por clave de contenido.
type SummaryMemo interface {
	Get(ctx context.Context, key string) (*inventory.Summary, bool, error)
	Set(ctx context.Context, key string, s *inventory.Summary, ttl time.Duration) error
}

// LowStockPublisher publica la alerta de stock bajo.
type LowStockPublisher interface {
	PublishLowStock(ctx context.Context, low []entity.StockPosition) error
}

// SummaryObserver recibe cada resumen servido (métricas).
type SummaryObserver interface {
	ObserveSummary(s *inventory.Summary, cached bool)
}

// Reports genera los archivos descargables.
type Reports interface {
	StockXLSX(positions []entity.StockPosition) ([]byte, error)
	LowStockPDF(s *inventory.Summary, generatedAt time.Time) ([]byte, error)
}

// Config parámetros del caso de uso.
type Config struct {
	Location        *time.Location // zona para "hoy"; nil = time.Local
	RecentMovements int            // filas de últimos movimientos
	CacheTTL        time.Duration
}

// UseCase caso de uso del dashboard. Memo, publisher, observer y reports son opcionales.
type UseCase struct {
	products   ProductSource
	categories CategorySource
	movements  MovementSource

	memo      SummaryMemo
	publisher LowStockPublisher
	observer  SummaryObserver
	reports   Reports

	cfg Config
	now func() time.Time
	log *logger.Logger
}

// Option ajusta el caso de uso.
type Option func(*UseCase)

// WithMemo activa el memo (Redis).
func WithMemo(m SummaryMemo) Option { return func(uc *UseCase) { uc.memo = m } }

// WithPublisher activa las alertas de stock bajo (NATS).
func WithPublisher(p LowStockPublisher) Option { return func(uc *UseCase) { uc.publisher = p } }

// WithObserver activa las métricas.
func WithObserver(o SummaryObserver) Option { return func(uc *UseCase) { uc.observer = o } }

// WithReports activa las exportaciones.
func WithReports(r Reports) Option { return func(uc *UseCase) { uc.reports = r } }

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option { return func(uc *UseCase) { uc.now = now } }

// WithLogger asigna el logger.
func WithLogger(l *logger.Logger) Option { return func(uc *UseCase) { uc.log = l } }

// NewUseCase construye el caso de uso.
func NewUseCase(products ProductSource, categories CategorySource, movements MovementSource, cfg Config, opts ...Option) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	uc := &UseCase{
		products:   products,
		categories: categories,
		movements:  movements,
		cfg:        cfg,
		now:        time.Now,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// snapshot datos de una evaluación: lo leído de las fuentes y el resumen calculado sobre ello.
type snapshot struct {
	movements []entity.StockMovement
	summary   *inventory.Summary
	now       time.Time
	cached    bool
}

func (uc *UseCase) load(ctx context.Context, cred repository.Credentials) (*snapshot, error) {
	type productsResult struct {
		items []entity.Product
		err   error
	}
	type categoriesResult struct {
		items []entity.Category
		err   error
	}
	type movementsResult struct {
		items []entity.StockMovement
		err   error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		items, err := uc.products.List(ctx, cred)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.categories.List(ctx, cred)
		categoriesCh <- categoriesResult{items, err}
	}()
	go func() {
		items, err := uc.movements.List(ctx, cred)
		movementsCh <- movementsResult{items, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}

	if dup := inventory.DuplicateInitialStock(movements.items); len(dup) > 0 {
		uc.log.Warn().
			Strs("product_ids", dup).
			Msg("varios movimientos de stock inicial para el mismo producto; se usa el primero")
	}

	now := uc.now().In(uc.cfg.Location)
	snap := &snapshot{movements: movements.items, now: now}

	var key string
	if uc.memo != nil {
		key = memoKey(products.items, categories.items, movements.items, now)
		cached, ok, err := uc.memo.Get(ctx, key)
		if err != nil {
			uc.log.Warn().Err(err).Msg("memo del dashboard no disponible")
		} else if ok {
			snap.summary = cached
			snap.cached = true
		}
	}

	if snap.summary == nil {
		s := inventory.Summarize(products.items, movements.items, now)
		if categories.items != nil {
			s.TotalCategories = len(categories.items)
		}
		snap.summary = &s

		if uc.memo != nil {
			if err := uc.memo.Set(ctx, key, snap.summary, uc.cfg.CacheTTL); err != nil {
				uc.log.Warn().Err(err).Msg("no se pudo guardar el memo del dashboard")
			}
		}
		if uc.publisher != nil && s.LowStockCount > 0 {
			if err := uc.publisher.PublishLowStock(ctx, s.LowStock); err != nil {
				uc.log.Warn().Err(err).Int("low_stock", s.LowStockCount).Msg("no se pudo publicar la alerta de stock bajo")
			}
		}
	}

	if uc.observer != nil {
		uc.observer.ObserveSummary(snap.summary, snap.cached)
	}
	return snap, nil
}

// GetSummary construye el DashboardSummaryDTO para el usuario de cred.
func (uc *UseCase) GetSummary(ctx context.Context, cred repository.Credentials) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.load(ctx, cred)
	if err != nil {
		return nil, err
	}
	s := snap.summary

	recent := RecentMovements(snap.movements, uc.cfg.RecentMovements)
	recentDTO := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		recentDTO = append(recentDTO, dto.FromMovement(m))
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:       s.TotalProducts,
		TotalCategories:     s.TotalCategories,
		LowStockCount:       s.LowStockCount,
		TodayMovementsCount: len(s.TodayMovements),
		TodayIncoming:       s.TodayIncoming,
		TodayOutgoing:       s.TodayOutgoing,
		TodayIncomingValue:  s.TodayIncomingValue.Round(2),
		TodayOutgoingValue:  s.TodayOutgoingValue.Round(2),
		LowStock:            dto.FromPositions(s.LowStock),
		RecentMovements:     recentDTO,
		GeneratedAt:         snap.now,
		Timezone:            uc.cfg.Location.String(),
		Cached:              snap.cached,
	}, nil
}

// StockPositions devuelve el stock actual de todos los productos, en orden de catálogo.
func (uc *UseCase) StockPositions(ctx context.Context, cred repository.Credentials) ([]dto.StockPositionDTO, error) {
	snap, err := uc.load(ctx, cred)
	if err != nil {
		return nil, err
	}
	return dto.FromPositions(snap.summary.Positions), nil
}

// ExportStockXLSX genera el libro de stock actual.
func (uc *UseCase) ExportStockXLSX(ctx context.Context, cred repository.Credentials) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("dashboard: exportaciones no configuradas")
	}
	snap, err := uc.load(ctx, cred)
	if err != nil {
		return nil, err
	}
	return uc.reports.StockXLSX(snap.summary.Positions)
}

// ExportLowStockPDF genera el reporte PDF de stock bajo.
func (uc *UseCase) ExportLowStockPDF(ctx context.Context, cred repository.Credentials) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("dashboard: exportaciones no configuradas")
	}
	snap, err := uc.load(ctx, cred)
	if err != nil {
		return nil, err
	}
	return uc.reports.LowStockPDF(snap.summary, snap.now)
}

// RecentMovements devuelve hasta n movimientos, los más recientes primero.
// A igual fecha conserva el orden de la fuente. n <= 0 devuelve vacío.
func RecentMovements(movements []entity.StockMovement, n int) []entity.StockMovement {
	if n <= 0 || len(movements) == 0 {
		return []entity.StockMovement{}
	}
	sorted := make([]entity.StockMovement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
