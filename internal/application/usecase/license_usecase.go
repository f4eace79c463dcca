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
)

// LicenseService gestiona las licencias de software de las empresas cliente.
type LicenseService struct {
	licenseRepo repository.LicenseRepository
	companyRepo repository.CompanyRepository
}

// NewLicenseService construye el servicio de licencias.
func NewLicenseService(licenseRepo repository.LicenseRepository, companyRepo repository.CompanyRepository) *LicenseService {
	return &LicenseService{licenseRepo: licenseRepo, companyRepo: companyRepo}
}

// Create da de alta una licencia. Si license_type es perpetual el end_date
// se descarta: una perpetua no vence y jamás genera alertas.
func (s *LicenseService) Create(ctx context.Context, tc tenant.Context, req dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	if strings.TrimSpace(req.SoftwareName) == "" || req.CompanyID == "" {
		return nil, fmt.Errorf("%w: software_name y company_id son obligatorios", domain.ErrInvalidInput)
	}
	licType := defaultStr(req.LicenseType, entity.LicenseSubscription)
	if licType != entity.LicenseSubscription && licType != entity.LicensePerpetual {
		return nil, fmt.Errorf("%w: license_type debe ser subscription o perpetual", domain.ErrInvalidInput)
	}

	company, err := s.companyRepo.GetByID(ctx, tc.OrgID, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company_id no existe", domain.ErrInvalidInput)
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if licType != entity.LicensePerpetual {
		end, err = parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	license := &entity.License{
		ID:           uuid.NewString(),
		OrgID:        tc.OrgID,
		CompanyID:    req.CompanyID,
		SoftwareName: strings.TrimSpace(req.SoftwareName),
		Vendor:       req.Vendor,
		LicenseType:  licType,
		LicenseKey:   req.LicenseKey,
		Seats:        req.Seats,
		StartDate:    start,
		EndDate:      end,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.licenseRepo.Create(ctx, license); err != nil {
		return nil, fmt.Errorf("crear licencia: %w", err)
	}
	resp := toLicenseResponse(license, now)
	return &resp, nil
}

// GetByID devuelve una licencia del tenant.
func (s *LicenseService) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.LicenseResponse, error) {
	license, err := s.licenseRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}
	resp := toLicenseResponse(license, time.Now().UTC())
	return &resp, nil
}

// List devuelve las licencias del tenant paginadas.
func (s *LicenseService) List(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.LicenseListResponse, error) {
	page.DefaultPage()
	licenses, err := s.licenseRepo.List(ctx, tc.OrgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := make([]dto.LicenseResponse, 0, len(licenses))
	for _, l := range licenses {
		items = append(items, toLicenseResponse(l, now))
	}
	return &dto.LicenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica una licencia existente.
func (s *LicenseService) Update(ctx context.Context, tc tenant.Context, id string, req dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	license, err := s.licenseRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}

	if strings.TrimSpace(req.SoftwareName) != "" {
		license.SoftwareName = strings.TrimSpace(req.SoftwareName)
	}
	license.Vendor = req.Vendor
	license.LicenseKey = req.LicenseKey
	if req.Seats > 0 {
		license.Seats = req.Seats
	}
	if req.LicenseType != "" {
		if req.LicenseType != entity.LicenseSubscription && req.LicenseType != entity.LicensePerpetual {
			return nil, fmt.Errorf("%w: license_type inválido", domain.ErrInvalidInput)
		}
		license.LicenseType = req.LicenseType
		if req.LicenseType == entity.LicensePerpetual {
			license.EndDate = nil
		}
	}
	if req.StartDate != "" {
		start, err := parseDate("start_date", req.StartDate)
		if err != nil {
			return nil, err
		}
		license.StartDate = start
	}
	if req.EndDate != "" && license.LicenseType != entity.LicensePerpetual {
		end, err := parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
		license.EndDate = end
	}
	license.UpdatedAt = time.Now().UTC()

	if err := s.licenseRepo.Update(ctx, license); err != nil {
		return nil, fmt.Errorf("actualizar licencia: %w", err)
	}
	resp := toLicenseResponse(license, time.Now().UTC())
	return &resp, nil
}

// Delete elimina una licencia del tenant.
func (s *LicenseService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	return s.licenseRepo.Delete(ctx, tc.OrgID, id)
}

// ExpirySummary cuenta las licencias del tenant por tramo de vencimiento
// (7/15/30 y expiradas). Las perpetuas no cuentan en ningún tramo.
func (s *LicenseService) ExpirySummary(ctx context.Context, tc tenant.Context, now time.Time) (*dto.LicenseExpirySummaryResponse, error) {
	licenses, err := s.licenseRepo.ListAll(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}

	var summary dto.LicenseExpirySummaryResponse
	for _, l := range licenses {
		st := expiry.Classify(l.EndDate, now, expiry.Thresholds{UrgentDays: 7, SoonDays: 30})
		switch st.Bucket {
		case expiry.BucketExpired:
			summary.Expired++
		case expiry.BucketExpiringUrgent:
			summary.Expiring7Days++
		case expiry.BucketExpiringSoon:
			if *st.DaysRemaining <= 15 {
				summary.Expiring15Days++
			} else {
				summary.Expiring30Days++
			}
		}
	}
	return &summary, nil
}

func toLicenseResponse(l *entity.License, now time.Time) dto.LicenseResponse {
	st := expiry.Classify(l.EndDate, now, expiry.DefaultThresholds())
	return dto.LicenseResponse{
		ID:            l.ID,
		CompanyID:     l.CompanyID,
		SoftwareName:  l.SoftwareName,
		Vendor:        l.Vendor,
		LicenseType:   l.LicenseType,
		LicenseKey:    l.LicenseKey,
		Seats:         l.Seats,
		StartDate:     l.StartDate,
		EndDate:       l.EndDate,
		Status:        string(st.Bucket),
		DaysRemaining: st.DaysRemaining,
		CreatedAt:     l.CreatedAt,
	}
}
