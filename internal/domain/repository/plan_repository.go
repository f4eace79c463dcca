package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// PlanRepository es el registro de planes: datos de referencia de solo
// lectura dentro de este core (se administran fuera).
type PlanRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Plan, error)
	GetByName(ctx context.Context, name string) (*entity.Plan, error)
	ListActive(ctx context.Context) ([]*entity.Plan, error)
}
