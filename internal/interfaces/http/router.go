package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/inventory-console/internal/application/auth"
	"github.com/jhoicas/inventory-console/internal/application/dashboard"
	"github.com/jhoicas/inventory-console/internal/application/usecase"
	"github.com/jhoicas/inventory-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	AuthUC      *auth.AuthUseCase
	DashboardUC *dashboard.UseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *usecase.MovementUseCase

	Logger         *logger.Logger
	HTTPObserver   HTTPObserver    // nil = sin métricas HTTP
	MetricsHandler nethttp.Handler // nil = /metrics deshabilitado
	AuthLimiter    *IPRateLimiter  // nil = auth sin límite por IP
}

// Router registra middlewares y rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID())
	app.Use(AccessLog(log.Component("http"), deps.HTTPObserver))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	// Auth (público, limitado por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	public := authGroup
	if deps.AuthLimiter != nil {
		public = authGroup.Group("/", deps.AuthLimiter.Handler())
	}
	public.Post("/login", authHandler.Login)
	public.Post("/register", authHandler.Register)
	public.Post("/forgot-password", authHandler.ForgotPassword)
	public.Post("/reset-password", authHandler.ResetPassword)
	public.Get("/google/callback", authHandler.GoogleCallback)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.AuthUC)
	authGroup.Get("/session", requireAuth, authHandler.Session)

	protected := api.Group("/", requireAuth)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash := protected.Group("/dashboard")
	dash.Get("/summary", dashboardHandler.GetSummary)
	dash.Get("/stock", dashboardHandler.GetStock)
	dash.Get("/stock.xlsx", dashboardHandler.ExportStock)
	dash.Get("/low-stock.pdf", dashboardHandler.ExportLowStock)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := protected.Group("/stock/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
}
