package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// AMCContractRepository define el puerto de persistencia para AMCContract.
type AMCContractRepository interface {
	Create(ctx context.Context, contract *entity.AMCContract) error
	GetByID(ctx context.Context, orgID, id string) (*entity.AMCContract, error)
	Update(ctx context.Context, contract *entity.AMCContract) error
	List(ctx context.Context, orgID string, limit, offset int) ([]*entity.AMCContract, error)
	ListAll(ctx context.Context, orgID string) ([]*entity.AMCContract, error)
	Delete(ctx context.Context, orgID, id string) error
}
