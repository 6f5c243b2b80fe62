package repository

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve (nil, nil) si el email no existe: la ausencia no es error.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
