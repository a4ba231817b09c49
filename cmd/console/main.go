package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/inventory-console/internal/application/auth"
	"github.com/jhoicas/inventory-console/internal/application/dashboard"
	"github.com/jhoicas/inventory-console/internal/application/usecase"
	"github.com/jhoicas/inventory-console/internal/infrastructure/api"
	"github.com/jhoicas/inventory-console/internal/infrastructure/cache"
	"github.com/jhoicas/inventory-console/internal/infrastructure/events"
	"github.com/jhoicas/inventory-console/internal/infrastructure/export"
	"github.com/jhoicas/inventory-console/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-console/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-console/internal/interfaces/http"
	"github.com/jhoicas/inventory-console/pkg/config"
	"github.com/jhoicas/inventory-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("source", cfg.Dashboard.Source).
		Msg("iniciando consola")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	location, err := cfg.Dashboard.Location()
	if err != nil {
		log.Warn().Err(err).Msg("zona horaria del dashboard inválida, se usa la local")
	}

	var (
		clientOpts = []api.Option{api.WithLogger(log.Component("api"))}
		dashOpts   = []dashboard.Option{dashboard.WithLogger(log.Component("dashboard"))}
		deps       = httpRouter.RouterDeps{AppName: cfg.App.Name, Logger: log}
	)

	if cfg.Metrics.Enabled {
		m := metrics.New()
		clientOpts = append(clientOpts, api.WithObserver(m))
		dashOpts = append(dashOpts, dashboard.WithObserver(m))
		deps.HTTPObserver = m
		deps.MetricsHandler = m.Handler()
	}

	client := api.NewClient(api.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		Timeout:   cfg.Upstream.Timeout,
		RateLimit: cfg.Upstream.RateLimit,
		Burst:     cfg.Upstream.Burst,
	}, clientOpts...)

	productRepo := api.NewProductRepo(client)
	categoryRepo := api.NewCategoryRepo(client)
	movementRepo := api.NewMovementRepo(client, cfg.Dashboard.InitialStockNote, location)

	// Fuentes del dashboard: API remota o lectura directa en Postgres
	var (
		productSource  dashboard.ProductSource  = productRepo
		categorySource dashboard.CategorySource = categoryRepo
		movementSource dashboard.MovementSource = movementRepo
	)
	if cfg.Dashboard.Source == config.SourcePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productSource = postgres.NewProductReader(pool)
		categorySource = postgres.NewCategoryReader(pool)
		movementSource = postgres.NewMovementReader(pool, cfg.Dashboard.InitialStockNote, location)
	}

	if cfg.Redis.Enabled() {
		rdb, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, dashboard sin memo")
		} else {
			defer rdb.Close()
			dashOpts = append(dashOpts, dashboard.WithMemo(cache.NewSummaryCache(rdb)))
		}
	}

	if cfg.NATS.Enabled() {
		nc, err := events.Connect(cfg.NATS.URL, log.Component("nats"))
		if err != nil {
			log.Warn().Err(err).Msg("nats no disponible, sin alertas de stock bajo")
		} else {
			defer nc.Drain()
			dashOpts = append(dashOpts, dashboard.WithPublisher(events.NewPublisher(nc, cfg.NATS.Subject, log.Component("nats"))))
		}
	}

	formatter, err := export.NewFormatter(cfg.Report.Locale, cfg.Report.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de reportes")
	}
	dashOpts = append(dashOpts, dashboard.WithReports(export.NewReports(formatter)))

	deps.DashboardUC = dashboard.NewUseCase(productSource, categorySource, movementSource, dashboard.Config{
		Location:        location,
		RecentMovements: cfg.Dashboard.RecentMovements,
		CacheTTL:        cfg.Dashboard.CacheTTL,
	}, dashOpts...)
	deps.AuthUC = auth.NewAuthUseCase(api.NewAuthGateway(client), auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	deps.CategoryUC = usecase.NewCategoryUseCase(categoryRepo)
	deps.ProductUC = usecase.NewProductUseCase(productRepo)
	deps.MovementUC = usecase.NewMovementUseCase(movementRepo)

	limiter := httpRouter.NewIPRateLimiter(1, 3)
	go limiter.Run(ctx)
	deps.AuthLimiter = limiter

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Console API",
	}))

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
