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

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo implementación del puerto DeviceRepository sobre PostgreSQL (usable con pool o tx).
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

const deviceColumns = `id, org_id, company_id, site_id, assigned_user_id, device_type, brand, model,
	serial_number, asset_tag, purchase_date, warranty_end_date, status, created_at, updated_at`

// Create persiste un dispositivo. (org_id, serial_number) tiene constraint único.
func (r *DeviceRepo) Create(ctx context.Context, d *entity.Device) error {
	query := `
		INSERT INTO devices (` + deviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.OrgID, d.CompanyID, d.SiteID, d.AssignedUserID, d.DeviceType, d.Brand, d.Model,
		d.SerialNumber, d.AssetTag, d.PurchaseDate, d.WarrantyEnd, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert device: %w", err)
	}
	return nil
}

// GetByID obtiene un dispositivo del tenant.
func (r *DeviceRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE org_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, orgID, id))
}

// GetBySerial obtiene un dispositivo por número de serie dentro del tenant.
func (r *DeviceRepo) GetBySerial(ctx context.Context, orgID, serial string) (*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE org_id = $1 AND serial_number = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, orgID, serial))
}

func (r *DeviceRepo) scanOne(row pgx.Row) (*entity.Device, error) {
	var d entity.Device
	err := row.Scan(
		&d.ID, &d.OrgID, &d.CompanyID, &d.SiteID, &d.AssignedUserID, &d.DeviceType, &d.Brand, &d.Model,
		&d.SerialNumber, &d.AssetTag, &d.PurchaseDate, &d.WarrantyEnd, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device: %w", err)
	}
	return &d, nil
}

// Update actualiza un dispositivo.
func (r *DeviceRepo) Update(ctx context.Context, d *entity.Device) error {
	query := `
		UPDATE devices SET site_id = $3, assigned_user_id = $4, device_type = $5, brand = $6,
			model = $7, asset_tag = $8, purchase_date = $9, warranty_end_date = $10,
			status = $11, updated_at = $12
		WHERE org_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		d.OrgID, d.ID, d.SiteID, d.AssignedUserID, d.DeviceType, d.Brand,
		d.Model, d.AssetTag, d.PurchaseDate, d.WarrantyEnd, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// List lista los dispositivos del tenant con paginación.
func (r *DeviceRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices
		WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListAll devuelve el set completo del tenant para la agregación de alertas.
func (r *DeviceRepo) ListAll(ctx context.Context, orgID string) ([]*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE org_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list all devices: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *DeviceRepo) scanMany(rows pgx.Rows) ([]*entity.Device, error) {
	var list []*entity.Device
	for rows.Next() {
		var d entity.Device
		if err := rows.Scan(&d.ID, &d.OrgID, &d.CompanyID, &d.SiteID, &d.AssignedUserID,
			&d.DeviceType, &d.Brand, &d.Model, &d.SerialNumber, &d.AssetTag,
			&d.PurchaseDate, &d.WarrantyEnd, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un dispositivo del tenant.
func (r *DeviceRepo) Delete(ctx context.Context, orgID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM devices WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	return nil
}
