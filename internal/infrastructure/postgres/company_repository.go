package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
// Todas las consultas filtran por org_id: el aislamiento de tenant se aplica
// también en la capa SQL, no solo en los casos de uso.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, org_id, name, gst_number, address, contact_name, contact_email,
	contact_phone, amc_status, notes, created_at, updated_at`

// Create persiste una empresa cliente.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.OrgID, c.Name, c.GSTNumber, c.Address, c.ContactName, c.ContactEmail,
		c.ContactPhone, c.AMCStatus, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa del tenant.
func (r *CompanyRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE org_id = $1 AND id = $2`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&c.ID, &c.OrgID, &c.Name, &c.GSTNumber, &c.Address, &c.ContactName, &c.ContactEmail,
		&c.ContactPhone, &c.AMCStatus, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $3, gst_number = $4, address = $5, contact_name = $6,
			contact_email = $7, contact_phone = $8, amc_status = $9, notes = $10, updated_at = $11
		WHERE org_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		c.OrgID, c.ID, c.Name, c.GSTNumber, c.Address, c.ContactName,
		c.ContactEmail, c.ContactPhone, c.AMCStatus, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista las empresas del tenant con paginación.
func (r *CompanyRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.OrgID, &c.Name, &c.GSTNumber, &c.Address, &c.ContactName,
			&c.ContactEmail, &c.ContactPhone, &c.AMCStatus, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa del tenant.
func (r *CompanyRepo) Delete(ctx context.Context, orgID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM companies WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
