package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
// Todas las consultas están acotadas por orgID (aislamiento de tenant).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Company, error)
	Delete(ctx context.Context, orgID, id string) error
}
