package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-console/internal/application/dashboard"
	"github.com/jhoicas/inventory-console/internal/application/dto"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// DashboardHandler maneja los endpoints del dashboard de stock.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las tarjetas del dashboard, la tabla de stock bajo y los últimos movimientos.
// GET /api/dashboard/summary
//
// "Hoy" se calcula en la zona configurada en DASHBOARD_TIMEZONE.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetCredentials(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetStock devuelve el stock actual de todos los productos.
// GET /api/dashboard/stock
func (h *DashboardHandler) GetStock(c *fiber.Ctx) error {
	positions, err := h.uc.StockPositions(c.UserContext(), GetCredentials(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(positions))
}

// ExportStock GET /api/dashboard/stock.xlsx
func (h *DashboardHandler) ExportStock(c *fiber.Ctx) error {
	data, err := h.uc.ExportStockXLSX(c.UserContext(), GetCredentials(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, mimeXLSX, "estoque.xlsx", data)
}

// ExportLowStock GET /api/dashboard/low-stock.pdf
func (h *DashboardHandler) ExportLowStock(c *fiber.Ctx) error {
	data, err := h.uc.ExportLowStockPDF(c.UserContext(), GetCredentials(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, mimePDF, "estoque-baixo.pdf", data)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
