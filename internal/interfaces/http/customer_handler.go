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

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers?query=&page=1
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	list, err := h.uc.Filtered(c.Context(), query, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudieron listar los clientes."})
	}
	return c.JSON(list)
}

// ListAll GET /api/customers/all
// Todos los clientes sin paginar (selector del formulario de facturas).
func (h *CustomerHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudieron listar los clientes."})
	}
	return c.JSON(list)
}

// Pages GET /api/customers/pages?query=
func (h *CustomerHandler) Pages(c *fiber.Ctx) error {
	total, err := h.uc.Pages(c.Context(), c.Query("query"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudo contar los clientes."})
	}
	return c.JSON(dto.PagesResponse{TotalPages: total})
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.ByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE", Message: "Error de base de datos: no se pudo obtener el cliente."})
	}
	return c.JSON(customer)
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state := h.uc.Create(c.Context(), forms.CustomerForm{
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: in.ImageURL,
	})
	if state != nil {
		return respondMutationState(c, state)
	}
	return c.Redirect(billing.CustomersPath, fiber.StatusSeeOther)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state := h.uc.Update(c.Context(), c.Params("id"), forms.CustomerForm{
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: in.ImageURL,
	})
	if state != nil {
		return respondMutationState(c, state)
	}
	return c.Redirect(billing.CustomersPath, fiber.StatusSeeOther)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if state := h.uc.Delete(c.Context(), c.Params("id")); state != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(state)
	}
	return c.JSON(dto.DeleteResponse{Message: "Cliente eliminado."})
}
