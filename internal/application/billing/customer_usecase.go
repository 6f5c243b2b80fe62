package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/application/forms"
	"github.com/jhoicas/dashboard-api/internal/application/ports"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// CustomersPath es la ruta de listado que las mutaciones de clientes invalidan.
const CustomersPath = "/dashboard/customers"

// CustomerUseCase lecturas y CRUD de clientes.
type CustomerUseCase struct {
	repo  repository.CustomerRepository
	pages ports.PageCache
	log   *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, pages ports.PageCache, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, pages: pages, log: log}
}

// List devuelve todos los clientes sin paginar (selector del formulario de facturas).
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar clientes")
		return nil, domain.ErrDatabase
	}
	return toCustomerResponses(list), nil
}

// Filtered devuelve una página (hasta 6 filas) de clientes cuyo name, email o
// image_url contiene `query` (case-insensitive).
func (uc *CustomerUseCase) Filtered(ctx context.Context, query string, page int) ([]dto.CustomerResponse, error) {
	key := fmt.Sprintf("%s?query=%s&page=%d", CustomersPath, query, page)
	var cached []dto.CustomerResponse
	if hit, err := uc.pages.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	list, err := uc.repo.ListFiltered(ctx, query, ItemsPerPage, PageOffset(page))
	if err != nil {
		uc.log.Error().Err(err).Str("query", query).Int("page", page).Msg("listar clientes filtrados")
		return nil, domain.ErrDatabase
	}
	out := toCustomerResponses(list)
	if err := uc.pages.Set(ctx, key, out); err != nil {
		uc.log.Warn().Err(err).Msg("cachear página de clientes")
	}
	return out, nil
}

// Pages devuelve el total de páginas del filtro (mismo predicado que Filtered).
func (uc *CustomerUseCase) Pages(ctx context.Context, query string) (int, error) {
	key := fmt.Sprintf("%s/pages?query=%s", CustomersPath, query)
	var cached int
	if hit, err := uc.pages.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	n, err := uc.repo.CountFiltered(ctx, query)
	if err != nil {
		uc.log.Error().Err(err).Str("query", query).Msg("contar clientes filtrados")
		return 0, domain.ErrDatabase
	}
	total := TotalPages(n)
	if err := uc.pages.Set(ctx, key, total); err != nil {
		uc.log.Warn().Err(err).Msg("cachear total de páginas de clientes")
	}
	return total, nil
}

// ByID devuelve la proyección {id, name, email, image_url} de un cliente.
func (uc *CustomerUseCase) ByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		uc.log.Error().Err(err).Str("id", id).Msg("obtener cliente")
		return nil, domain.ErrDatabase
	}
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, ImageURL: c.ImageURL}, nil
}

// Create valida el formulario y persiste el cliente. nil = éxito.
func (uc *CustomerUseCase) Create(ctx context.Context, form forms.CustomerForm) *dto.MutationState {
	in, ferrs := form.Validate()
	if ferrs != nil {
		return &dto.MutationState{Errors: ferrs.Errors, Message: "Campos faltantes: no se pudo crear el cliente."}
	}
	customer := &entity.Customer{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: in.ImageURL,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		uc.log.Error().Err(err).Msg("crear cliente")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo crear el cliente."}
	}
	uc.invalidate(ctx)
	return nil
}

// Update valida el formulario y actualiza el cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, form forms.CustomerForm) *dto.MutationState {
	in, ferrs := form.Validate()
	if ferrs != nil {
		return &dto.MutationState{Errors: ferrs.Errors, Message: "Campos faltantes: no se pudo actualizar el cliente."}
	}
	customer := &entity.Customer{ID: id, Name: in.Name, Email: in.Email, ImageURL: in.ImageURL}
	if err := uc.repo.Update(ctx, customer); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("actualizar cliente")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo actualizar el cliente."}
	}
	uc.invalidate(ctx)
	return nil
}

// Delete elimina el cliente. Las facturas que lo referencien quedan colgantes
// a propósito: las lecturas con join las descartan.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) *dto.MutationState {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("eliminar cliente")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo eliminar el cliente."}
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *CustomerUseCase) invalidate(ctx context.Context) {
	if err := uc.pages.Invalidate(ctx, CustomersPath); err != nil {
		uc.log.Warn().Err(err).Str("path", CustomersPath).Msg("invalidar caché de clientes")
	}
}

func toCustomerResponses(list []*entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, ImageURL: c.ImageURL})
	}
	return out
}
