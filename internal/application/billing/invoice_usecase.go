package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/application/forms"
	"github.com/jhoicas/dashboard-api/internal/application/ports"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/pkg/logger"
	"github.com/jhoicas/dashboard-api/pkg/money"
)

// InvoicesPath es la ruta de listado que las mutaciones de facturas invalidan.
const InvoicesPath = "/dashboard/invoices"

// InvoiceUseCase lecturas filtradas y CRUD de facturas.
type InvoiceUseCase struct {
	repo  repository.InvoiceRepository
	pages ports.PageCache
	log   *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, pages ports.PageCache, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, pages: pages, log: log}
}

// Filtered devuelve una página (hasta 6 filas) de facturas unidas a su cliente
// cuyo texto matchea `query`. El resultado se cachea por ruta+parámetros.
func (uc *InvoiceUseCase) Filtered(ctx context.Context, query string, page int) ([]dto.FilteredInvoiceResponse, error) {
	key := fmt.Sprintf("%s?query=%s&page=%d", InvoicesPath, query, page)
	var cached []dto.FilteredInvoiceResponse
	if hit, err := uc.pages.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := uc.repo.ListFiltered(ctx, query, ItemsPerPage, PageOffset(page))
	if err != nil {
		uc.log.Error().Err(err).Str("query", query).Int("page", page).Msg("listar facturas filtradas")
		return nil, domain.ErrDatabase
	}
	out := make([]dto.FilteredInvoiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FilteredInvoiceResponse{
			ID:       r.ID,
			Amount:   r.Amount,
			Date:     r.Date.Format("2006-01-02"),
			Status:   r.Status,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
		})
	}
	if err := uc.pages.Set(ctx, key, out); err != nil {
		uc.log.Warn().Err(err).Msg("cachear página de facturas")
	}
	return out, nil
}

// Pages devuelve el total de páginas del filtro, contando con el mismo
// predicado que Filtered. El conteo corre como consulta aparte: si los datos
// mutan entre ambas llamadas el total puede quedar desfasado una página.
func (uc *InvoiceUseCase) Pages(ctx context.Context, query string) (int, error) {
	key := fmt.Sprintf("%s/pages?query=%s", InvoicesPath, query)
	var cached int
	if hit, err := uc.pages.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	n, err := uc.repo.CountFiltered(ctx, query)
	if err != nil {
		uc.log.Error().Err(err).Str("query", query).Msg("contar facturas filtradas")
		return 0, domain.ErrDatabase
	}
	total := TotalPages(n)
	if err := uc.pages.Set(ctx, key, total); err != nil {
		uc.log.Warn().Err(err).Msg("cachear total de páginas")
	}
	return total, nil
}

// ByID devuelve una factura con el monto convertido a dólares (único punto de
// conversión para el formulario de edición). ErrNotFound si el id no resuelve.
func (uc *InvoiceUseCase) ByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		uc.log.Error().Err(err).Str("id", id).Msg("obtener factura")
		return nil, domain.ErrDatabase
	}
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.ToDollars(inv.Amount),
		Status:     inv.Status,
		Date:       inv.Date.Format("2006-01-02"),
	}, nil
}

// Create valida el formulario y persiste la factura. Devuelve nil en éxito;
// un MutationState con errores por campo si la validación falló, o con solo
// el mensaje genérico si falló la persistencia (la causa queda en el log).
func (uc *InvoiceUseCase) Create(ctx context.Context, form forms.InvoiceForm) *dto.MutationState {
	in, ferrs := form.Validate()
	if ferrs != nil {
		return &dto.MutationState{Errors: ferrs.Errors, Message: "Campos faltantes: no se pudo crear la factura."}
	}
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Amount:     in.AmountCents,
		Status:     in.Status,
		Date:       time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		uc.log.Error().Err(err).Msg("crear factura")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo crear la factura."}
	}
	uc.invalidate(ctx)
	return nil
}

// Update valida el formulario y actualiza la factura. Un id inexistente se
// reporta con el mismo mensaje genérico de base de datos.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, form forms.InvoiceForm) *dto.MutationState {
	in, ferrs := form.Validate()
	if ferrs != nil {
		return &dto.MutationState{Errors: ferrs.Errors, Message: "Campos faltantes: no se pudo actualizar la factura."}
	}
	invoice := &entity.Invoice{
		ID:         id,
		CustomerID: in.CustomerID,
		Amount:     in.AmountCents,
		Status:     in.Status,
	}
	if err := uc.repo.Update(ctx, invoice); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("actualizar factura")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo actualizar la factura."}
	}
	uc.invalidate(ctx)
	return nil
}

// Delete elimina la factura. Devuelve nil en éxito; borrar un id inexistente
// se reporta como error de base de datos, igual que un fallo del backend.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) *dto.MutationState {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("eliminar factura")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo eliminar la factura."}
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *InvoiceUseCase) invalidate(ctx context.Context) {
	if err := uc.pages.Invalidate(ctx, InvoicesPath); err != nil {
		uc.log.Warn().Err(err).Str("path", InvoicesPath).Msg("invalidar caché de facturas")
	}
}
