package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/expiry"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// OrgService expone la vista de la organización: datos del tenant, plan
// efectivo, consumo, dashboard y ajustes de integraciones.
type OrgService struct {
	orgRepo     repository.OrganizationRepository
	planRepo    repository.PlanRepository
	usageRepo   repository.UsageRepository
	deviceRepo  repository.DeviceRepository
	amcRepo     repository.AMCContractRepository
	licenseRepo repository.LicenseRepository
	quota       *QuotaService
	log         *logger.Logger
}

// NewOrgService construye el servicio de organización.
func NewOrgService(
	orgRepo repository.OrganizationRepository,
	planRepo repository.PlanRepository,
	usageRepo repository.UsageRepository,
	deviceRepo repository.DeviceRepository,
	amcRepo repository.AMCContractRepository,
	licenseRepo repository.LicenseRepository,
	quota *QuotaService,
	log *logger.Logger,
) *OrgService {
	return &OrgService{
		orgRepo:     orgRepo,
		planRepo:    planRepo,
		usageRepo:   usageRepo,
		deviceRepo:  deviceRepo,
		amcRepo:     amcRepo,
		licenseRepo: licenseRepo,
		quota:       quota,
		log:         log,
	}
}

// Me devuelve la organización del tenant con su plan efectivo y consumo.
func (s *OrgService) Me(ctx context.Context, tc tenant.Context) (*dto.OrgMeResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrOrgNotFound
	}

	features, plan, err := s.quota.EffectiveForOrg(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}
	usage, err := s.usageRepo.GetUsageCounters(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}

	planResp := toPlanResponse(plan)
	// La respuesta refleja los límites EFECTIVOS (con downgrade por
	// expiración incluido), no los nominales del plan contratado.
	planResp.MaxDevices = features.MaxDevices
	planResp.MaxUsers = features.MaxUsers
	planResp.MaxCompanies = features.MaxCompanies
	planResp.Features = flagsToMap(features.Flags)

	return &dto.OrgMeResponse{
		Organization: toOrgResponse(org),
		Plan:         planResp,
		Usage: dto.UsageResponse{
			Devices:   dto.UsageEntry{Current: usage.DeviceCount, Limit: features.MaxDevices},
			Users:     dto.UsageEntry{Current: usage.UserCount, Limit: features.MaxUsers},
			Companies: dto.UsageEntry{Current: usage.CompanyCount, Limit: features.MaxCompanies},
		},
	}, nil
}

// Dashboard arma los conteos de la pantalla principal del tenant.
func (s *OrgService) Dashboard(ctx context.Context, tc tenant.Context, now time.Time) (*dto.OrgDashboardResponse, error) {
	usage, err := s.usageRepo.GetUsageCounters(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}
	devices, err := s.deviceRepo.ListAll(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.amcRepo.ListAll(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}
	licenses, err := s.licenseRepo.ListAll(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}

	resp := &dto.OrgDashboardResponse{
		CompaniesCount: usage.CompanyCount,
		UsersCount:     usage.UserCount,
		DevicesCount:   usage.DeviceCount,
		LicensesCount:  len(licenses),
	}
	th := expiry.DefaultThresholds()
	for _, d := range devices {
		switch expiry.Classify(d.WarrantyEnd, now, th).Bucket {
		case expiry.BucketExpired:
			resp.ExpiredWarranties++
		case expiry.BucketActive, expiry.BucketExpiringSoon, expiry.BucketExpiringUrgent:
			resp.ActiveWarranties++
		}
	}
	for _, c := range contracts {
		st := expiry.Classify(c.EndDate, now, th)
		if st.Bucket != expiry.BucketExpired && st.Bucket != expiry.BucketNoExpiry {
			resp.ActiveAMC++
		}
	}
	return resp, nil
}

// ListPlans devuelve el catálogo público de planes activos.
func (s *OrgService) ListPlans(ctx context.Context) (*dto.PlanListResponse, error) {
	plans, err := s.planRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.PlanListResponse{Plans: make([]dto.PlanResponse, 0, len(plans))}
	for _, p := range plans {
		resp.Plans = append(resp.Plans, toPlanResponse(p))
	}
	return resp, nil
}

// UpdateTicketingSettings guarda las credenciales de la mesa de ayuda.
// Habilitarla exige el feature ticketing_integration en el plan efectivo;
// deshabilitarla se permite siempre (un downgrade no debe dejar credenciales
// activas imposibles de apagar).
func (s *OrgService) UpdateTicketingSettings(ctx context.Context, tc tenant.Context, req dto.TicketingSettingsRequest) error {
	if !tc.IsOwner() && tc.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if req.Enabled {
		ok, err := s.quota.HasFeature(ctx, tc.OrgID, entity.FeatureTicketingIntegration)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrFeatureDisabled
		}
		if strings.TrimSpace(req.BaseURL) == "" || strings.TrimSpace(req.APIKey) == "" {
			return fmt.Errorf("%w: base_url y api_key son obligatorios al habilitar", domain.ErrInvalidInput)
		}
	}

	org, err := s.orgRepo.GetByID(ctx, tc.OrgID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrOrgNotFound
	}

	org.Ticketing = entity.TicketingSettings{
		Enabled: req.Enabled,
		BaseURL: strings.TrimSpace(req.BaseURL),
		APIKey:  strings.TrimSpace(req.APIKey),
	}
	org.UpdatedAt = time.Now().UTC()

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return fmt.Errorf("guardar ajustes de ticketing: %w", err)
	}
	s.log.WithOrg(tc.OrgID).Info().Bool("enabled", req.Enabled).Msg("ajustes de ticketing actualizados")
	return nil
}

func toOrgResponse(o *entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:                 o.ID,
		Name:               o.Name,
		Slug:               o.Slug,
		Email:              o.Email,
		Industry:           o.Industry,
		CompanySize:        o.CompanySize,
		PlanID:             o.PlanID,
		SubscriptionStatus: o.SubscriptionStatus,
		TrialEndsAt:        o.TrialEndsAt,
		CreatedAt:          o.CreatedAt,
	}
}

func toPlanResponse(p *entity.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		DisplayName:  p.DisplayName,
		Description:  p.Description,
		PriceMonthly: p.PriceMonthly,
		PriceYearly:  p.PriceYearly,
		MaxDevices:   p.Features.MaxDevices,
		MaxUsers:     p.Features.MaxUsers,
		MaxCompanies: p.Features.MaxCompanies,
		Features:     flagsToMap(p.Features.Flags),
		IsPopular:    p.IsPopular,
		SortOrder:    p.SortOrder,
	}
}

func flagsToMap(flags map[entity.Feature]bool) map[string]bool {
	m := make(map[string]bool, len(flags))
	for k, v := range flags {
		m[string(k)] = v
	}
	return m
}
