package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
// Los planes son datos de referencia: solo lectura desde la aplicación
// (cmd/seed_plans hace las inserciones).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, name, display_name, description, price_monthly, price_yearly,
	max_devices, max_users, max_companies, feature_flags, is_active, is_popular, sort_order, created_at`

// GetByID obtiene un plan por ID.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	return r.getBy(ctx, "id", id)
}

// GetByName obtiene un plan por nombre (free, pro, enterprise).
func (r *PlanRepo) GetByName(ctx context.Context, name string) (*entity.Plan, error) {
	return r.getBy(ctx, "name", name)
}

func (r *PlanRepo) getBy(ctx context.Context, column, value string) (*entity.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE ` + column + ` = $1`
	p, err := scanPlan(r.q.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// ListActive lista los planes visibles en el catálogo, ordenados.
func (r *PlanRepo) ListActive(ctx context.Context) ([]*entity.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE is_active ORDER BY sort_order`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPlan(row pgx.Row) (*entity.Plan, error) {
	var p entity.Plan
	var flags []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.DisplayName, &p.Description, &p.PriceMonthly, &p.PriceYearly,
		&p.Features.MaxDevices, &p.Features.MaxUsers, &p.Features.MaxCompanies,
		&flags, &p.IsActive, &p.IsPopular, &p.SortOrder, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(flags) > 0 {
		if err := json.Unmarshal(flags, &p.Features.Flags); err != nil {
			return nil, fmt.Errorf("parsear flags: %w", err)
		}
	}
	return &p, nil
}
