package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// SiteRepository define el puerto de persistencia para Site.
type SiteRepository interface {
	Create(ctx context.Context, site *entity.Site) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Site, error)
	Update(ctx context.Context, site *entity.Site) error
	List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Site, error)
	Delete(ctx context.Context, orgID, id string) error
}
