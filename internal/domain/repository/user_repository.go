package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para los usuarios del tenant.
// GetByEmail es global (el email es único entre organizaciones: el login no
// pide subdominio).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, orgID, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, orgID string, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, orgID, id string) error
}
