// Package forms convierte la entrada cruda de los formularios en registros
// tipados y acotados. La validación nunca toca red ni base de datos y no hay
// éxito parcial: o sale un registro completo o sale el reporte de errores por
// campo.
package forms

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/dashboard-api/pkg/money"
)

// FieldErrors reporte de validación: mensajes por campo más un mensaje general.
type FieldErrors struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

func (e *FieldErrors) add(field, msg string) {
	if e.Errors == nil {
		e.Errors = map[string][]string{}
	}
	e.Errors[field] = append(e.Errors[field], msg)
}

// InvoiceForm entrada cruda del formulario de factura.
type InvoiceForm struct {
	CustomerID string
	Amount     string // dólares, ej. "88.88"
	Status     string
}

// InvoiceInput registro tipado listo para persistir.
type InvoiceInput struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// Validate aplica las reglas del formulario de factura:
// customerId no vacío, amount numérico y estrictamente mayor que 0,
// status exactamente "pending" o "paid". El monto se convierte a centavos
// recién después de validar.
func (f InvoiceForm) Validate() (*InvoiceInput, *FieldErrors) {
	errs := &FieldErrors{Message: "Campos faltantes o inválidos."}

	customerID := strings.TrimSpace(f.CustomerID)
	if customerID == "" {
		errs.add("customerId", "Seleccione un cliente.")
	}

	var cents int64
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	switch {
	case err != nil:
		errs.add("amount", "Ingrese un monto numérico.")
	case !amount.IsPositive():
		errs.add("amount", "Ingrese un monto mayor que $0.")
	default:
		cents = money.FromDollars(amount)
	}

	if f.Status != "pending" && f.Status != "paid" {
		errs.add("status", "Seleccione un estado de factura.")
	}

	if len(errs.Errors) > 0 {
		return nil, errs
	}
	return &InvoiceInput{CustomerID: customerID, AmountCents: cents, Status: f.Status}, nil
}

// CustomerForm entrada cruda del formulario de cliente.
type CustomerForm struct {
	Name     string
	Email    string
	ImageURL string
}

// CustomerInput registro tipado listo para persistir.
type CustomerInput struct {
	Name     string
	Email    string
	ImageURL string
}

// Validate exige presencia de los tres campos. No hay validación de formato:
// el dashboard la resuelve en el cliente.
func (f CustomerForm) Validate() (*CustomerInput, *FieldErrors) {
	errs := &FieldErrors{Message: "Campos faltantes o inválidos."}

	if strings.TrimSpace(f.Name) == "" {
		errs.add("name", "Ingrese el nombre del cliente.")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs.add("email", "Ingrese el email del cliente.")
	}
	if strings.TrimSpace(f.ImageURL) == "" {
		errs.add("image_url", "Ingrese la URL de la imagen.")
	}

	if len(errs.Errors) > 0 {
		return nil, errs
	}
	return &CustomerInput{Name: f.Name, Email: f.Email, ImageURL: f.ImageURL}, nil
}
