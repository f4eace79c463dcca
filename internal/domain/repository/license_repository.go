package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// LicenseRepository define el puerto de persistencia para License.
type LicenseRepository interface {
	Create(ctx context.Context, license *entity.License) error
	GetByID(ctx context.Context, orgID, id string) (*entity.License, error)
	Update(ctx context.Context, license *entity.License) error
	List(ctx context.Context, orgID string, limit, offset int) ([]*entity.License, error)
	ListAll(ctx context.Context, orgID string) ([]*entity.License, error)
	Delete(ctx context.Context, orgID, id string) error
}
