package dto

import "github.com/shopspring/decimal"

// CardDataResponse tarjetas del dashboard. Los totales por estado salen
// formateados como moneda; sin facturas de un estado el total es "$0.00".
type CardDataResponse struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// RevenueResponse fila del gráfico de ingresos mensuales.
type RevenueResponse struct {
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}
