package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// UsageRepository calcula los contadores de consumo de un tenant.
// Debe reflejar estado CONFIRMADO al momento de la llamada: la verificación
// de cuotas lee estos contadores en cada intento de creación, nunca de una
// caché, para no autorizar por encima del límite con datos obsoletos.
type UsageRepository interface {
	GetUsageCounters(ctx context.Context, orgID string) (entity.UsageCounters, error)
}
