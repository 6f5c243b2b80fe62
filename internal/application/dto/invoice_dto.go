package dto

import "github.com/shopspring/decimal"

// InvoiceFormRequest entrada cruda del formulario de factura (crear y editar).
// Amount llega como texto en dólares ("88.88"); la coerción y las reglas viven
// en el paquete forms.
type InvoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// LatestInvoiceResponse fila del widget de últimas facturas. Amount ya viene
// formateado como moneda ("$1,234.56").
type LatestInvoiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

// FilteredInvoiceResponse fila de la tabla de facturas (factura + cliente).
type FilteredInvoiceResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // centavos
	Date     string `json:"date"`   // YYYY-MM-DD
	Status   string `json:"status"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// InvoiceResponse factura individual para el formulario de edición.
// Amount está en dólares: es el único punto donde los centavos ya vienen convertidos.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
}
