package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.UsageRepository = (*UsageRepo)(nil)

// UsageRepo calcula los contadores de consumo con COUNTs directos.
// Sin caché ni columnas materializadas: la verificación de cuota exige
// estado confirmado al momento de la llamada, y tres COUNT sobre índices
// de org_id son baratos a la escala de un tenant.
type UsageRepo struct {
	q Querier
}

// NewUsageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsageRepository(q Querier) *UsageRepo {
	return &UsageRepo{q: q}
}

// GetUsageCounters cuenta dispositivos, usuarios y empresas del tenant.
func (r *UsageRepo) GetUsageCounters(ctx context.Context, orgID string) (entity.UsageCounters, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM devices WHERE org_id = $1),
			(SELECT COUNT(*) FROM users WHERE org_id = $1),
			(SELECT COUNT(*) FROM companies WHERE org_id = $1)`
	var u entity.UsageCounters
	err := r.q.QueryRow(ctx, query, orgID).Scan(&u.DeviceCount, &u.UserCount, &u.CompanyCount)
	if err != nil {
		return entity.UsageCounters{}, fmt.Errorf("usage counters: %w", err)
	}
	return u, nil
}
