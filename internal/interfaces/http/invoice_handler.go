package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dashboard-api/internal/application/billing"
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/application/forms"
	"github.com/jhoicas/dashboard-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List GET /api/invoices?query=&page=1
// Devuelve la página del listado filtrado (hasta 6 filas).
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	list, err := h.uc.Filtered(c.Context(), query, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudieron listar las facturas."})
	}
	return c.JSON(list)
}

// Pages GET /api/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *fiber.Ctx) error {
	total, err := h.uc.Pages(c.Context(), c.Query("query"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudo contar las facturas."})
	}
	return c.JSON(dto.PagesResponse{TotalPages: total})
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.ByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudo obtener la factura."})
	}
	return c.JSON(inv)
}

// Create POST /api/invoices
// En éxito redirige al listado: la navegación es la señal de éxito.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state := h.uc.Create(c.Context(), forms.InvoiceForm{
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Status:     in.Status,
	})
	if state != nil {
		return respondMutationState(c, state)
	}
	return c.Redirect(billing.InvoicesPath, fiber.StatusSeeOther)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state := h.uc.Update(c.Context(), c.Params("id"), forms.InvoiceForm{
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Status:     in.Status,
	})
	if state != nil {
		return respondMutationState(c, state)
	}
	return c.Redirect(billing.InvoicesPath, fiber.StatusSeeOther)
}

// Delete DELETE /api/invoices/:id
// Sin redirección: responde la confirmación corta o el error genérico.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if state := h.uc.Delete(c.Context(), c.Params("id")); state != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(state)
	}
	return c.JSON(dto.DeleteResponse{Message: "Factura eliminada."})
}

// respondMutationState mapea el resultado de una mutación fallida:
// errores por campo -> 422, fallo de persistencia -> 500.
func respondMutationState(c *fiber.Ctx, state *dto.MutationState) error {
	if len(state.Errors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(state)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(state)
}
