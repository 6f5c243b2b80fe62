package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo lectura de los ingresos mensuales (datos poblados fuera de la app).
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador.
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// List devuelve todas las filas de revenue ordenadas por mes.
func (r *RevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	rows, err := r.q.Query(ctx, `SELECT month, revenue FROM revenue ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer rows.Close()
	var list []*entity.Revenue
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}
