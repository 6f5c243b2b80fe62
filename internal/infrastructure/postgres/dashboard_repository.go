package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para las tarjetas del dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de agregados.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountInvoices devuelve el total de facturas.
func (r *DashboardRepo) CountInvoices(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// CountCustomers devuelve el total de clientes.
func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// SumInvoiceAmountByStatus suma amount (centavos) de las facturas del estado dado.
// COALESCE devuelve cero cuando no hay ninguna factura del estado, no error.
func (r *DashboardRepo) SumInvoiceAmountByStatus(ctx context.Context, status string) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1`
	var sum int64
	if err := r.q.QueryRow(ctx, query, status).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum invoices %s: %w", status, err)
	}
	return sum, nil
}
