package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-console/internal/application/auth"
	"github.com/jhoicas/inventory-console/internal/application/dashboard"
	"github.com/jhoicas/inventory-console/internal/application/dto"
	"github.com/jhoicas/inventory-console/internal/application/usecase"
	"github.com/jhoicas/inventory-console/internal/domain"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
	"github.com/jhoicas/inventory-console/internal/infrastructure/export"
	apphttp "github.com/jhoicas/inventory-console/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventory-console/pkg/jwt"
	"github.com/jhoicas/inventory-console/pkg/requestid"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

type productRepo struct {
	items  []entity.Product
	tokens []string
	err    error
}

func (r *productRepo) List(_ context.Context, cred repository.Credentials) ([]entity.Product, error) {
	r.tokens = append(r.tokens, cred.Token)
	return r.items, r.err
}

func (r *productRepo) GetByID(_ context.Context, _ repository.Credentials, id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, r.err
}

func (r *productRepo) Create(_ context.Context, _ repository.Credentials, p *entity.Product) (*entity.Product, error) {
	saved := *p
	saved.ID = "p-new"
	return &saved, r.err
}

func (r *productRepo) Update(_ context.Context, _ repository.Credentials, p *entity.Product) (*entity.Product, error) {
	return p, r.err
}

func (r *productRepo) Delete(context.Context, repository.Credentials, string) error { return r.err }

type categoryRepo struct {
	items []entity.Category
	err   error
}

func (r *categoryRepo) List(context.Context, repository.Credentials) ([]entity.Category, error) {
	return r.items, r.err
}

func (r *categoryRepo) GetByID(context.Context, repository.Credentials, string) (*entity.Category, error) {
	return nil, r.err
}

func (r *categoryRepo) Create(_ context.Context, _ repository.Credentials, c *entity.Category) (*entity.Category, error) {
	return c, r.err
}

func (r *categoryRepo) Update(_ context.Context, _ repository.Credentials, c *entity.Category) (*entity.Category, error) {
	return c, r.err
}

func (r *categoryRepo) Delete(context.Context, repository.Credentials, string) error { return r.err }

type movementRepo struct {
	items   []entity.StockMovement
	created *entity.StockMovement
	err     error
}

func (r *movementRepo) List(context.Context, repository.Credentials) ([]entity.StockMovement, error) {
	return r.items, r.err
}

func (r *movementRepo) Create(_ context.Context, _ repository.Credentials, m *entity.StockMovement) (*entity.StockMovement, error) {
	r.created = m
	saved := *m
	saved.ID = "m-new"
	return &saved, r.err
}

type gateway struct {
	result *repository.AuthResult
	err    error
	ctxIDs []string
}

func (g *gateway) Login(ctx context.Context, _, _ string) (*repository.AuthResult, error) {
	g.ctxIDs = append(g.ctxIDs, requestid.FromContext(ctx))
	return g.result, g.err
}

func (g *gateway) Register(context.Context, repository.RegisterInput) (*repository.AuthResult, error) {
	return g.result, g.err
}

func (g *gateway) ForgotPassword(context.Context, string) error { return g.err }

func (g *gateway) ResetPassword(context.Context, string, string) error { return g.err }

func (g *gateway) GoogleCallback(context.Context, string) (*repository.AuthResult, error) {
	return g.result, g.err
}

// upstreamErr imita un error de la API con mensaje propio.
type upstreamErr struct {
	kind error
	msg  string
}

func (e upstreamErr) Error() string           { return "api: " + e.msg }
func (e upstreamErr) Unwrap() error           { return e.kind }
func (e upstreamErr) UpstreamMessage() string { return e.msg }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	app        *fiber.App
	products   *productRepo
	categories *categoryRepo
	movements  *movementRepo
	gateway    *gateway
}

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newEnv(t *testing.T, limiter *apphttp.IPRateLimiter) *env {
	t.Helper()
	e := &env{
		products: &productRepo{items: []entity.Product{
			{ID: "p1", Name: "Arroz", SKU: "ARR", MinStock: 5, Price: decimal.NewFromInt(10), Category: &entity.Category{Name: "Grãos"}},
			{ID: "p2", Name: "Feijão", SKU: "FEI", MinStock: 2, Price: decimal.NewFromInt(8)},
		}},
		categories: &categoryRepo{items: []entity.Category{{ID: "c1", Name: "Grãos"}}},
		movements: &movementRepo{items: []entity.StockMovement{
			{ID: "m1", ProductID: "p1", Type: "IN", Quantity: 10, IsInitialStock: true, CreatedAt: testNow.AddDate(0, 0, -3)},
			{ID: "m2", ProductID: "p1", Type: "OUT", Quantity: 6, CreatedAt: testNow.Add(-time.Hour)},
			{ID: "m3", ProductID: "p2", Type: "IN", Quantity: 9, IsInitialStock: true, CreatedAt: testNow.AddDate(0, 0, -1)},
		}},
		gateway: &gateway{result: &repository.AuthResult{Token: "upstream-token", User: &entity.User{ID: "u1", Email: "a@b.c"}}},
	}

	f, err := export.NewFormatter("pt-BR", "BRL")
	require.NoError(t, err)

	authUC := auth.NewAuthUseCase(e.gateway, auth.JWTConfig{Secret: testSecret})
	dashUC := dashboard.NewUseCase(e.products, e.categories, e.movements,
		dashboard.Config{Location: time.UTC, RecentMovements: 2},
		dashboard.WithClock(func() time.Time { return testNow }),
		dashboard.WithReports(export.NewReports(f)),
	)

	e.app = fiber.New()
	apphttp.Router(e.app, apphttp.RouterDeps{
		AppName:     "inventory-console-test",
		AuthUC:      authUC,
		DashboardUC: dashUC,
		CategoryUC:  usecase.NewCategoryUseCase(e.categories),
		ProductUC:   usecase.NewProductUseCase(e.products),
		MovementUC:  usecase.NewMovementUseCase(e.movements),
		AuthLimiter: limiter,
	})
	return e
}

func bearer(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, "u1", "a@b.c", "admin", "", 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *env) do(t *testing.T, method, path, auth string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/dashboard/summary", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/products", "Token abc", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	e := newEnv(t, nil)
	tok, err := pkgjwt.Generate("otro-secreto", "u1", "", "", "", 60)
	require.NoError(t, err)
	resp := e.do(t, http.MethodGet, "/api/products", "Bearer "+tok, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, e.products.tokens, "no debe llegar a la API")
}

func TestAuthMiddleware_ReenviaElToken(t *testing.T) {
	e := newEnv(t, nil)
	auth := bearer(t)
	resp := e.do(t, http.MethodGet, "/api/products", auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, e.products.tokens, 1)
	assert.Equal(t, strings.TrimPrefix(auth, "Bearer "), e.products.tokens[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenDeLaAPI(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "a@b.c", Password: "x"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))
	out := decode[dto.LoginResponse](t, resp)
	assert.Equal(t, "upstream-token", out.Token)
	require.NotNil(t, out.User)
	assert.Equal(t, "u1", out.User.ID)
}

func TestLogin_PropagaRequestID(t *testing.T) {
	e := newEnv(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestid.Header, "req-123")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(requestid.Header))
	assert.Equal(t, []string{"req-123"}, e.gateway.ctxIDs)
}

func TestLogin_CredencialesInvalidasConMensajeDeLaAPI(t *testing.T) {
	e := newEnv(t, nil)
	e.gateway.err = upstreamErr{kind: domain.ErrUnauthorized, msg: "Invalid credentials"}
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
	assert.Equal(t, "Invalid credentials", body.Message)
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	e := newEnv(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRegister_ContrasenasDistintas(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "a@b.c", Password: "123456", ConfirmPassword: "000000", InviteCode: "INV",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "PASSWORD_MISMATCH", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRegister_Creado(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "a@b.c", Password: "123456", ConfirmPassword: "123456", InviteCode: "INV",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestForgotPassword_SiempreMensajeNeutro(t *testing.T) {
	e := newEnv(t, nil)
	e.gateway.err = upstreamErr{kind: domain.ErrNotFound, msg: "User not found"}
	resp := e.do(t, http.MethodPost, "/api/auth/forgot-password", "", dto.ForgotPasswordRequest{Email: "x@y.z"})
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, auth.ForgotPasswordMessage, decode[dto.MessageResponse](t, resp).Message)
}

func TestForgotPassword_APICaida(t *testing.T) {
	e := newEnv(t, nil)
	e.gateway.err = fmt.Errorf("api: %w", domain.ErrUpstreamUnavailable)
	resp := e.do(t, http.MethodPost, "/api/auth/forgot-password", "", dto.ForgotPasswordRequest{Email: "x@y.z"})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", body.Code)
	assert.Equal(t, domain.ErrUpstreamUnavailable.Error(), body.Message)
}

func TestResetPassword_MuestraMensajeDeLaAPI(t *testing.T) {
	e := newEnv(t, nil)
	e.gateway.err = upstreamErr{kind: domain.ErrInvalidInput, msg: "Token expired"}
	resp := e.do(t, http.MethodPost, "/api/auth/reset-password", "", dto.ResetPasswordRequest{
		Token: "t", Password: "123456", ConfirmPassword: "123456",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Token expired", decode[dto.ErrorResponse](t, resp).Message)
}

func TestGoogleCallback_SinCodigo(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/auth/google/callback", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/api/auth/google/callback?code=abc", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSession(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/auth/session", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "u1", out.Subject)
	assert.Equal(t, "admin", out.Role)
	assert.True(t, out.Verified)
	assert.NotNil(t, out.ExpiresAt)

	resp = e.do(t, http.MethodGet, "/api/auth/session", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRateLimit(t *testing.T) {
	e := newEnv(t, apphttp.NewIPRateLimiter(0.001, 2))
	for i := 0; i < 2; i++ {
		resp := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "a@b.c", Password: "x"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/dashboard/summary", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, 1, out.TotalCategories)
	assert.Equal(t, 1, out.LowStockCount)
	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "p1", out.LowStock[0].ProductID)
	assert.Equal(t, int64(4), out.LowStock[0].CurrentStock)
	assert.Equal(t, 1, out.TodayMovementsCount)
	assert.Equal(t, int64(6), out.TodayOutgoing)
	assert.Equal(t, "UTC", out.Timezone)
	require.Len(t, out.RecentMovements, 2)
	assert.Equal(t, "m2", out.RecentMovements[0].ID)
}

func TestDashboardSummary_ErrorDeLaAPI(t *testing.T) {
	e := newEnv(t, nil)
	e.movements.err = upstreamErr{kind: domain.ErrForbidden, msg: "Forbidden"}
	resp := e.do(t, http.MethodGet, "/api/dashboard/summary", bearer(t), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDashboardStock(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/dashboard/stock", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.ListResponse[dto.StockPositionDTO]](t, resp)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, int64(4), out.Items[0].CurrentStock)
	assert.Equal(t, int64(9), out.Items[1].CurrentStock)
	assert.False(t, out.Items[1].LowStock)
}

func TestDashboardExports(t *testing.T) {
	e := newEnv(t, nil)

	resp := e.do(t, http.MethodGet, "/api/dashboard/stock.xlsx", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "estoque.xlsx")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(raw[:2]))

	resp = e.do(t, http.MethodGet, "/api/dashboard/low-stock.pdf", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_ListBusca(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/products?search=graos", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.ListResponse[dto.ProductResponse]](t, resp)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "p1", out.Items[0].ID)
	assert.Equal(t, "Grãos", out.Items[0].CategoryName)
}

func TestProducts_GetByID(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/products/p2", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Feijão", decode[dto.ProductResponse](t, resp).Name)

	resp = e.do(t, http.MethodGet, "/api/products/nope", bearer(t), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestProducts_CreateValidaYCrea(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodPost, "/api/products", bearer(t), dto.ProductRequest{Name: ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "nombre")

	resp = e.do(t, http.MethodPost, "/api/products", bearer(t), dto.ProductRequest{Name: "Óleo", MinStock: 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "p-new", decode[dto.ProductResponse](t, resp).ID)
}

func TestProducts_UpdateConflicto(t *testing.T) {
	e := newEnv(t, nil)
	e.products.err = upstreamErr{kind: domain.ErrConflict, msg: "SKU already exists"}
	resp := e.do(t, http.MethodPut, "/api/products/p1", bearer(t), dto.ProductRequest{Name: "Arroz"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "SKU already exists", decode[dto.ErrorResponse](t, resp).Message)
}

func TestProducts_Delete(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodDelete, "/api/products/p1", bearer(t), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCategories_CRUD(t *testing.T) {
	e := newEnv(t, nil)

	resp := e.do(t, http.MethodGet, "/api/categories", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ListResponse[dto.CategoryResponse]](t, resp).Total)

	resp = e.do(t, http.MethodGet, "/api/categories/c9", bearer(t), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/categories", bearer(t), dto.CategoryRequest{Name: "Bebidas"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = e.do(t, http.MethodPut, "/api/categories/c1", bearer(t), dto.CategoryRequest{Name: "Cereais"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "c1", decode[dto.CategoryResponse](t, resp).ID)

	resp = e.do(t, http.MethodDelete, "/api/categories/c1", bearer(t), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestMovements_CreateValida(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodPost, "/api/stock/movements", bearer(t), dto.CreateMovementRequest{ProductID: "p1", Type: "IN", Quantity: 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, e.movements.created)

	resp = e.do(t, http.MethodPost, "/api/stock/movements", bearer(t), dto.CreateMovementRequest{ProductID: "p1", Type: "in", Quantity: 3})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, "IN", out.Type)
	assert.Equal(t, "Entrada", out.TypeLabel)
}

func TestMovements_ListBuscaPorEtiqueta(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/api/stock/movements?search=saida", bearer(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.ListResponse[dto.MovementResponse]](t, resp)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "m2", out.Items[0].ID)
}

func TestHealth(t *testing.T) {
	e := newEnv(t, nil)
	resp := e.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])

	resp = e.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "sin handler de métricas no se expone")
}
