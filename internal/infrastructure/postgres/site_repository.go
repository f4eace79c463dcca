package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo implementación del puerto SiteRepository sobre PostgreSQL (usable con pool o tx).
type SiteRepo struct {
	q Querier
}

// NewSiteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSiteRepository(q Querier) *SiteRepo {
	return &SiteRepo{q: q}
}

const siteColumns = `id, org_id, company_id, name, address, city, created_at, updated_at`

// Create persiste una sede.
func (r *SiteRepo) Create(ctx context.Context, s *entity.Site) error {
	query := `
		INSERT INTO sites (` + siteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.OrgID, s.CompanyID, s.Name, s.Address, s.City, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert site: %w", err)
	}
	return nil
}

// GetByID obtiene una sede del tenant.
func (r *SiteRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE org_id = $1 AND id = $2`
	var s entity.Site
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&s.ID, &s.OrgID, &s.CompanyID, &s.Name, &s.Address, &s.City, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	return &s, nil
}

// Update actualiza una sede.
func (r *SiteRepo) Update(ctx context.Context, s *entity.Site) error {
	query := `
		UPDATE sites SET name = $3, address = $4, city = $5, updated_at = $6
		WHERE org_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query, s.OrgID, s.ID, s.Name, s.Address, s.City, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	return nil
}

// List lista las sedes del tenant con paginación.
func (r *SiteRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites
		WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()

	var list []*entity.Site
	for rows.Next() {
		var s entity.Site
		if err := rows.Scan(&s.ID, &s.OrgID, &s.CompanyID, &s.Name, &s.Address, &s.City,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una sede del tenant.
func (r *SiteRepo) Delete(ctx context.Context, orgID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sites WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}
