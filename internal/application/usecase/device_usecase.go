package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/expiry"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// DeviceService gestiona los activos de TI del tenant.
// La creación pasa por el enforcement de cuotas (límite max_devices) y cada
// respuesta incluye el estado de garantía clasificado con el corte 7/15.
type DeviceService struct {
	deviceRepo  repository.DeviceRepository
	companyRepo repository.CompanyRepository
	quota       *QuotaService
	log         *logger.Logger
}

// NewDeviceService construye el servicio de dispositivos.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	companyRepo repository.CompanyRepository,
	quota *QuotaService,
	log *logger.Logger,
) *DeviceService {
	return &DeviceService{deviceRepo: deviceRepo, companyRepo: companyRepo, quota: quota, log: log}
}

// Create da de alta un dispositivo. El número de serie es único por tenant.
func (s *DeviceService) Create(ctx context.Context, tc tenant.Context, req dto.CreateDeviceRequest) (*dto.DeviceResponse, error) {
	device, err := s.buildDevice(tc.OrgID, req)
	if err != nil {
		return nil, err
	}
	if err := s.quota.EnforceCreate(ctx, tc, ActionCreateDevice, 1); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, tc.OrgID, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company_id no existe", domain.ErrInvalidInput)
	}

	if device.SerialNumber != "" {
		existing, err := s.deviceRepo.GetBySerial(ctx, tc.OrgID, device.SerialNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: ya existe un dispositivo con serie %s", domain.ErrDuplicate, device.SerialNumber)
		}
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, fmt.Errorf("crear dispositivo: %w", err)
	}

	s.log.WithOrg(tc.OrgID).Info().Str("device_id", device.ID).Msg("dispositivo creado")
	resp := toDeviceResponse(device, time.Now().UTC())
	return &resp, nil
}

// buildDevice valida y materializa la entidad desde el request.
func (s *DeviceService) buildDevice(orgID string, req dto.CreateDeviceRequest) (*entity.Device, error) {
	if strings.TrimSpace(req.DeviceType) == "" || req.CompanyID == "" {
		return nil, fmt.Errorf("%w: device_type y company_id son obligatorios", domain.ErrInvalidInput)
	}
	purchase, err := parseDate("purchase_date", req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warranty, err := parseDate("warranty_end_date", req.WarrantyEnd)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &entity.Device{
		ID:             uuid.NewString(),
		OrgID:          orgID,
		CompanyID:      req.CompanyID,
		SiteID:         req.SiteID,
		AssignedUserID: req.AssignedUserID,
		DeviceType:     strings.TrimSpace(req.DeviceType),
		Brand:          req.Brand,
		Model:          req.Model,
		SerialNumber:   strings.TrimSpace(req.SerialNumber),
		AssetTag:       req.AssetTag,
		PurchaseDate:   purchase,
		WarrantyEnd:    warranty,
		Status:         defaultStr(req.Status, entity.DeviceActive),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// GetByID devuelve un dispositivo del tenant.
func (s *DeviceService) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.DeviceResponse, error) {
	device, err := s.deviceRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}
	resp := toDeviceResponse(device, time.Now().UTC())
	return &resp, nil
}

// List devuelve los dispositivos del tenant paginados, cada uno con su
// estado de garantía al momento de la consulta.
func (s *DeviceService) List(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.DeviceListResponse, error) {
	page.DefaultPage()
	devices, err := s.deviceRepo.List(ctx, tc.OrgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := make([]dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		items = append(items, toDeviceResponse(d, now))
	}
	return &dto.DeviceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica un dispositivo existente.
func (s *DeviceService) Update(ctx context.Context, tc tenant.Context, id string, req dto.CreateDeviceRequest) (*dto.DeviceResponse, error) {
	device, err := s.deviceRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}

	if strings.TrimSpace(req.DeviceType) != "" {
		device.DeviceType = strings.TrimSpace(req.DeviceType)
	}
	device.SiteID = req.SiteID
	device.AssignedUserID = req.AssignedUserID
	device.Brand = req.Brand
	device.Model = req.Model
	device.AssetTag = req.AssetTag
	if req.Status != "" {
		device.Status = req.Status
	}
	if req.PurchaseDate != "" {
		purchase, err := parseDate("purchase_date", req.PurchaseDate)
		if err != nil {
			return nil, err
		}
		device.PurchaseDate = purchase
	}
	if req.WarrantyEnd != "" {
		warranty, err := parseDate("warranty_end_date", req.WarrantyEnd)
		if err != nil {
			return nil, err
		}
		device.WarrantyEnd = warranty
	}
	device.UpdatedAt = time.Now().UTC()

	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, fmt.Errorf("actualizar dispositivo: %w", err)
	}
	resp := toDeviceResponse(device, time.Now().UTC())
	return &resp, nil
}

// Delete elimina un dispositivo del tenant.
func (s *DeviceService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	if err := s.deviceRepo.Delete(ctx, tc.OrgID, id); err != nil {
		return err
	}
	s.log.WithOrg(tc.OrgID).Info().Str("device_id", id).Msg("dispositivo eliminado")
	return nil
}

func toDeviceResponse(d *entity.Device, now time.Time) dto.DeviceResponse {
	st := expiry.Classify(d.WarrantyEnd, now, expiry.DefaultThresholds())
	return dto.DeviceResponse{
		ID:             d.ID,
		CompanyID:      d.CompanyID,
		SiteID:         d.SiteID,
		AssignedUserID: d.AssignedUserID,
		DeviceType:     d.DeviceType,
		Brand:          d.Brand,
		Model:          d.Model,
		SerialNumber:   d.SerialNumber,
		AssetTag:       d.AssetTag,
		PurchaseDate:   d.PurchaseDate,
		WarrantyEnd:    d.WarrantyEnd,
		Status:         d.Status,
		WarrantyStatus: string(st.Bucket),
		DaysRemaining:  st.DaysRemaining,
		CreatedAt:      d.CreatedAt,
	}
}
