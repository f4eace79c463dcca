package repository

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// DeviceRepository define el puerto de persistencia para Device.
type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Device, error)
	GetBySerial(ctx context.Context, orgID, serial string) (*entity.Device, error)
	Update(ctx context.Context, device *entity.Device) error
	List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Device, error)
	// ListAll devuelve el set completo del tenant para la agregación de
	// alertas (un render de dashboard cabe en memoria, ver diseño).
	ListAll(ctx context.Context, orgID string) ([]*entity.Device, error)
	Delete(ctx context.Context, orgID, id string) error
}
