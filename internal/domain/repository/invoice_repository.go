package repository

import (
	"context"
	"time"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// InvoiceWithCustomer es la proyección de lectura de una factura unida a su
// cliente. Solo salen de aquí facturas cuyo customer_id resolvió a un cliente
// existente; las referencias colgantes se descartan en el join.
type InvoiceWithCustomer struct {
	ID       string
	Amount   int64 // centavos
	Status   string
	Date     time.Time
	Name     string
	Email    string
	ImageURL string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// Latest devuelve las `limit` facturas más recientes unidas a su cliente.
	Latest(ctx context.Context, limit int) ([]*InvoiceWithCustomer, error)
	// ListFiltered filtra por substring case-insensitive sobre los campos del
	// cliente (name, email) y de la factura (amount, date, status), después del
	// join. El orden es estable entre páginas.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*InvoiceWithCustomer, error)
	// CountFiltered cuenta con el predicado idéntico al de ListFiltered; si los
	// predicados divergen las páginas no cuadran con el contenido.
	CountFiltered(ctx context.Context, query string) (int64, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
}
