package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.AMCContractRepository = (*AMCRepo)(nil)

// AMCRepo implementación del puerto AMCContractRepository sobre PostgreSQL (usable con pool o tx).
type AMCRepo struct {
	q Querier
}

// NewAMCRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAMCRepository(q Querier) *AMCRepo {
	return &AMCRepo{q: q}
}

const amcColumns = `id, org_id, company_id, name, amc_type, start_date, end_date, internal_notes, created_at, updated_at`

// Create persiste un contrato AMC.
func (r *AMCRepo) Create(ctx context.Context, c *entity.AMCContract) error {
	query := `
		INSERT INTO amc_contracts (` + amcColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.OrgID, c.CompanyID, c.Name, c.AMCType, c.StartDate, c.EndDate,
		c.InternalNotes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert amc contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato del tenant.
func (r *AMCRepo) GetByID(ctx context.Context, orgID, id string) (*entity.AMCContract, error) {
	query := `SELECT ` + amcColumns + ` FROM amc_contracts WHERE org_id = $1 AND id = $2`
	var c entity.AMCContract
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&c.ID, &c.OrgID, &c.CompanyID, &c.Name, &c.AMCType, &c.StartDate, &c.EndDate,
		&c.InternalNotes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get amc contract: %w", err)
	}
	return &c, nil
}

// Update actualiza un contrato.
func (r *AMCRepo) Update(ctx context.Context, c *entity.AMCContract) error {
	query := `
		UPDATE amc_contracts SET name = $3, amc_type = $4, start_date = $5, end_date = $6,
			internal_notes = $7, updated_at = $8
		WHERE org_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		c.OrgID, c.ID, c.Name, c.AMCType, c.StartDate, c.EndDate, c.InternalNotes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update amc contract: %w", err)
	}
	return nil
}

// List lista los contratos del tenant con paginación.
func (r *AMCRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.AMCContract, error) {
	query := `SELECT ` + amcColumns + ` FROM amc_contracts
		WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list amc contracts: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListAll devuelve el set completo del tenant para la agregación de alertas.
func (r *AMCRepo) ListAll(ctx context.Context, orgID string) ([]*entity.AMCContract, error) {
	query := `SELECT ` + amcColumns + ` FROM amc_contracts WHERE org_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list all amc contracts: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *AMCRepo) scanMany(rows pgx.Rows) ([]*entity.AMCContract, error) {
	var list []*entity.AMCContract
	for rows.Next() {
		var c entity.AMCContract
		if err := rows.Scan(&c.ID, &c.OrgID, &c.CompanyID, &c.Name, &c.AMCType,
			&c.StartDate, &c.EndDate, &c.InternalNotes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan amc contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un contrato del tenant.
func (r *AMCRepo) Delete(ctx context.Context, orgID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM amc_contracts WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete amc contract: %w", err)
	}
	return nil
}
