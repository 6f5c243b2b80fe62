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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.ImageURL)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve ErrNotFound si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por nombre (sin paginar).
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers ORDER BY name, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// ListFiltered filtra por substring case-insensitive sobre name, email e image_url.
// El orden (name, id) es estable para que la misma página devuelva el mismo corte.
func (r *CustomerRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.Customer, error) {
	const sql = `
		SELECT id, name, email, image_url
		FROM customers
		WHERE name ILIKE $1 OR email ILIKE $1 OR image_url ILIKE $1
		ORDER BY name, id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list filtered customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// CountFiltered cuenta con el predicado idéntico al de ListFiltered.
func (r *CustomerRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	const sql = `
		SELECT COUNT(*)
		FROM customers
		WHERE name ILIKE $1 OR email ILIKE $1 OR image_url ILIKE $1`
	var n int64
	if err := r.q.QueryRow(ctx, sql, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// Update actualiza un cliente. Devuelve ErrNotFound si el id no existe.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, image_url = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.ImageURL)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. Devuelve ErrNotFound si no había fila.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
