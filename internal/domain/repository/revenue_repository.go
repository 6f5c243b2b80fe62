package repository

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// RevenueRepository define el puerto de lectura para los ingresos mensuales.
type RevenueRepository interface {
	List(ctx context.Context) ([]*entity.Revenue, error)
}
