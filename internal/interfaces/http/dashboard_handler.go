package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dashboard-api/internal/application/analytics"
	"github.com/jhoicas/dashboard-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints de lectura del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Cards GET /api/dashboard/cards
// Totales de facturas y clientes más las sumas por estado, formateadas como moneda.
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	cards, err := h.uc.Cards(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudieron obtener las tarjetas."})
	}
	return c.JSON(cards)
}

// Revenue GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	list, err := h.uc.Revenue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudo obtener revenue."})
	}
	return c.JSON(list)
}

// LatestInvoices GET /api/dashboard/latest-invoices?limit=5
func (h *DashboardHandler) LatestInvoices(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))
	list, err := h.uc.LatestInvoices(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudieron obtener las últimas facturas."})
	}
	return c.JSON(list)
}
