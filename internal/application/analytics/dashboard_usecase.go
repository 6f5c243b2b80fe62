// Package analytics contiene los casos de uso de lectura del dashboard:
// tarjetas de totales, ingresos mensuales y últimas facturas.
package analytics

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/pkg/logger"
	"github.com/jhoicas/dashboard-api/pkg/money"
)

const defaultLatestInvoices = 5 // filas del widget de últimas facturas

// DashboardUseCase lecturas agregadas del dashboard.
//
// Fuente de datos: DashboardRepository (agregados), InvoiceRepository (join de
// últimas facturas) y RevenueRepository. No arma SQL propio; delega todo en los
// repositorios.
type DashboardUseCase struct {
	dashRepo    repository.DashboardRepository
	invoiceRepo repository.InvoiceRepository
	revenueRepo repository.RevenueRepository
	log         *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashRepo repository.DashboardRepository,
	invoiceRepo repository.InvoiceRepository,
	revenueRepo repository.RevenueRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		dashRepo:    dashRepo,
		invoiceRepo: invoiceRepo,
		revenueRepo: revenueRepo,
		log:         log,
	}
}

// Cards arma las cuatro tarjetas del dashboard.
//
// Cuatro consultas en paralelo:
//  1. COUNT facturas
//  2. COUNT clientes
//  3. SUM amount WHERE status=paid
//  4. SUM amount WHERE status=pending
//
// Las sumas vuelven en cero (no error) cuando no hay facturas del estado, y se
// formatean como moneda al armar el DTO.
func (uc *DashboardUseCase) Cards(ctx context.Context) (*dto.CardDataResponse, error) {
	type countResult struct {
		n   int64
		err error
	}

	invoicesCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	paidCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashRepo.CountInvoices(ctx)
		invoicesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.SumInvoiceAmountByStatus(ctx, entity.StatusPaid)
		paidCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.SumInvoiceAmountByStatus(ctx, entity.StatusPending)
		pendingCh <- countResult{n, err}
	}()

	invoices := <-invoicesCh
	customers := <-customersCh
	paid := <-paidCh
	pending := <-pendingCh

	for _, r := range []countResult{invoices, customers, paid, pending} {
		if r.err != nil {
			uc.log.Error().Err(r.err).Msg("tarjetas del dashboard")
			return nil, domain.ErrDatabase
		}
	}

	return &dto.CardDataResponse{
		NumberOfInvoices:     invoices.n,
		NumberOfCustomers:    customers.n,
		TotalPaidInvoices:    money.FormatCents(paid.n),
		TotalPendingInvoices: money.FormatCents(pending.n),
	}, nil
}

// Revenue devuelve todas las filas de ingresos mensuales tal cual.
func (uc *DashboardUseCase) Revenue(ctx context.Context) ([]dto.RevenueResponse, error) {
	list, err := uc.revenueRepo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar revenue")
		return nil, domain.ErrDatabase
	}
	out := make([]dto.RevenueResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RevenueResponse{Month: r.Month, Revenue: r.Revenue})
	}
	return out, nil
}

// LatestInvoices devuelve las últimas facturas con su cliente y el monto
// formateado como moneda. Las facturas con customer_id colgante no aparecen.
func (uc *DashboardUseCase) LatestInvoices(ctx context.Context, limit int) ([]dto.LatestInvoiceResponse, error) {
	if limit <= 0 {
		limit = defaultLatestInvoices
	}
	rows, err := uc.invoiceRepo.Latest(ctx, limit)
	if err != nil {
		uc.log.Error().Err(err).Msg("últimas facturas")
		return nil, domain.ErrDatabase
	}
	out := make([]dto.LatestInvoiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LatestInvoiceResponse{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
			Amount:   money.FormatCents(r.Amount),
		})
	}
	return out, nil
}
