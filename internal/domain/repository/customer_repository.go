package repository

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List devuelve todos los clientes sin paginar (selector de facturas).
	List(ctx context.Context) ([]*entity.Customer, error)
	// ListFiltered filtra por substring case-insensitive sobre name, email e
	// image_url, con orden estable por nombre.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.Customer, error)
	// CountFiltered cuenta con el mismo predicado que ListFiltered.
	CountFiltered(ctx context.Context, query string) (int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
