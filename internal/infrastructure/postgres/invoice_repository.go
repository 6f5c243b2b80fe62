package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
//
// invoices.customer_id es texto sin foreign key, así que el join se hace por
// c.id::text = i.customer_id: una referencia colgante (o basura que ni siquiera
// parsea como uuid) simplemente no matchea y la fila queda fuera, sin abortar
// la consulta.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// filtro compartido por ListFiltered y CountFiltered. Mantenerlos idénticos:
// si divergen, el total de páginas deja de cuadrar con el contenido.
const invoiceFilter = `
	FROM invoices i
	JOIN customers c ON c.id::text = i.customer_id
	WHERE c.name ILIKE $1
	   OR c.email ILIKE $1
	   OR i.amount::text ILIKE $1
	   OR i.date::text ILIKE $1
	   OR i.status ILIKE $1`

// Create persiste una factura nueva.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve ErrNotFound si no existe: el
// caller nunca recibe una factura con campos vacíos en silencio.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// Latest devuelve las `limit` facturas más recientes unidas a su cliente.
// El join interno descarta facturas con customer_id colgante.
func (r *InvoiceRepo) Latest(ctx context.Context, limit int) ([]*repository.InvoiceWithCustomer, error) {
	const query = `
		SELECT i.id, i.amount, i.status, i.date, c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id::text = i.customer_id
		ORDER BY i.date DESC, i.id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("latest invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoicesWithCustomer(rows)
}

// ListFiltered filtra por substring case-insensitive sobre los campos del join
// (cliente y factura) y pagina con orden estable (date DESC, id DESC).
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*repository.InvoiceWithCustomer, error) {
	sql := `
		SELECT i.id, i.amount, i.status, i.date, c.name, c.email, c.image_url` +
		invoiceFilter + `
		ORDER BY i.date DESC, i.id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list filtered invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoicesWithCustomer(rows)
}

// CountFiltered cuenta las facturas que matchean el mismo predicado de ListFiltered.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	sql := `SELECT COUNT(*)` + invoiceFilter
	var n int64
	if err := r.q.QueryRow(ctx, sql, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// Update actualiza customer_id, amount y status de una factura.
// Devuelve ErrNotFound si el id no existe.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura por ID. Devuelve ErrNotFound si no había fila.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvoicesWithCustomer(rows pgx.Rows) ([]*repository.InvoiceWithCustomer, error) {
	var list []*repository.InvoiceWithCustomer
	for rows.Next() {
		var row repository.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.Amount, &row.Status, &row.Date,
			&row.Name, &row.Email, &row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
