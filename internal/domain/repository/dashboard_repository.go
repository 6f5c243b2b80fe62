package repository

import "context"

// DashboardRepository agrupa los agregados de las tarjetas del dashboard.
type DashboardRepository interface {
	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	// SumInvoiceAmountByStatus suma en centavos; sin facturas del estado devuelve
	// cero, no error.
	SumInvoiceAmountByStatus(ctx context.Context, status string) (int64, error)
}
