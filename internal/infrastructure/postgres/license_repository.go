package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// LicenseRepo implementación del puerto LicenseRepository sobre PostgreSQL (usable con pool o tx).
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

const licenseColumns = `id, org_id, company_id, software_name, vendor, license_type, license_key,
	seats, start_date, end_date, created_at, updated_at`

// Create persiste una licencia.
func (r *LicenseRepo) Create(ctx context.Context, l *entity.License) error {
	query := `
		INSERT INTO licenses (` + licenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.OrgID, l.CompanyID, l.SoftwareName, l.Vendor, l.LicenseType, l.LicenseKey,
		l.Seats, l.StartDate, l.EndDate, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetByID obtiene una licencia del tenant.
func (r *LicenseRepo) GetByID(ctx context.Context, orgID, id string) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE org_id = $1 AND id = $2`
	var l entity.License
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&l.ID, &l.OrgID, &l.CompanyID, &l.SoftwareName, &l.Vendor, &l.LicenseType, &l.LicenseKey,
		&l.Seats, &l.StartDate, &l.EndDate, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return &l, nil
}

// Update actualiza una licencia.
func (r *LicenseRepo) Update(ctx context.Context, l *entity.License) error {
	query := `
		UPDATE licenses SET software_name = $3, vendor = $4, license_type = $5, license_key = $6,
			seats = $7, start_date = $8, end_date = $9, updated_at = $10
		WHERE org_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		l.OrgID, l.ID, l.SoftwareName, l.Vendor, l.LicenseType, l.LicenseKey,
		l.Seats, l.StartDate, l.EndDate, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	return nil
}

// List lista las licencias del tenant con paginación.
func (r *LicenseRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses
		WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListAll devuelve el set completo del tenant para alertas y resúmenes.
func (r *LicenseRepo) ListAll(ctx context.Context, orgID string) ([]*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE org_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list all licenses: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *LicenseRepo) scanMany(rows pgx.Rows) ([]*entity.License, error) {
	var list []*entity.License
	for rows.Next() {
		var l entity.License
		if err := rows.Scan(&l.ID, &l.OrgID, &l.CompanyID, &l.SoftwareName, &l.Vendor,
			&l.LicenseType, &l.LicenseKey, &l.Seats, &l.StartDate, &l.EndDate,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina una licencia del tenant.
func (r *LicenseRepo) Delete(ctx context.Context, orgID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM licenses WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}
