// Package reports genera el reporte de vencimientos del tenant en PDF.
// La exportación está detrás del feature export_reports del plan.
package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/expiry"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// ExpiryReportData es el contenido ya agregado que recibe el generador.
type ExpiryReportData struct {
	OrgName     string
	OrgSlug     string
	GeneratedAt time.Time
	Sections    []Section
}

// Section agrupa los recursos de un tipo (garantías, AMC, licencias).
type Section struct {
	Title string
	Items []Item
}

// Item es una línea del reporte.
type Item struct {
	Label         string
	Bucket        string
	DaysRemaining *int
}

// PDFGenerator es el puerto hacia la infraestructura de render.
type PDFGenerator interface {
	GenerateExpiryReport(ctx context.Context, data ExpiryReportData) ([]byte, error)
}

// Service arma el reporte de vencimientos y lo renderiza.
type Service struct {
	orgRepo     repository.OrganizationRepository
	deviceRepo  repository.DeviceRepository
	amcRepo     repository.AMCContractRepository
	licenseRepo repository.LicenseRepository
	quota       *usecase.QuotaService
	generator   PDFGenerator
	log         *logger.Logger
}

// NewService construye el servicio de reportes.
func NewService(
	orgRepo repository.OrganizationRepository,
	deviceRepo repository.DeviceRepository,
	amcRepo repository.AMCContractRepository,
	licenseRepo repository.LicenseRepository,
	quota *usecase.QuotaService,
	generator PDFGenerator,
	log *logger.Logger,
) *Service {
	return &Service{
		orgRepo:     orgRepo,
		deviceRepo:  deviceRepo,
		amcRepo:     amcRepo,
		licenseRepo: licenseRepo,
		quota:       quota,
		generator:   generator,
		log:         log,
	}
}

// GenerateExpiryReport genera el PDF con todos los recursos del tenant que
// vencen dentro de 30 días o ya vencieron. Requiere export_reports.
func (s *Service) GenerateExpiryReport(ctx context.Context, tc tenant.Context, now time.Time) ([]byte, error) {
	ok, err := s.quota.HasFeature(ctx, tc.OrgID, entity.FeatureExportReports)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrFeatureDisabled
	}

	org, err := s.orgRepo.GetByID(ctx, tc.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrOrgNotFound
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

	data := ExpiryReportData{
		OrgName:     org.Name,
		OrgSlug:     org.Slug,
		GeneratedAt: now,
		Sections: []Section{
			{Title: "Garantías de dispositivos", Items: sectionItems(devicesAsResources(devices), now)},
			{Title: "Contratos AMC", Items: sectionItems(contractsAsResources(contracts), now)},
			{Title: "Licencias de software", Items: sectionItems(licensesAsResources(licenses), now)},
		},
	}

	pdf, err := s.generator.GenerateExpiryReport(ctx, data)
	if err != nil {
		return nil, err
	}
	s.log.WithOrg(tc.OrgID).Info().Int("bytes", len(pdf)).Msg("reporte de vencimientos generado")
	return pdf, nil
}

// sectionItems filtra los recursos que vencen en ≤30 días o ya vencieron.
func sectionItems(resources []expiry.Resource, now time.Time) []Item {
	th := expiry.Thresholds{UrgentDays: 7, SoonDays: 30}
	items := make([]Item, 0, len(resources))
	for _, r := range resources {
		st := expiry.Classify(r.EndsAt(), now, th)
		if st.Bucket == expiry.BucketNoExpiry || st.Bucket == expiry.BucketActive {
			continue
		}
		items = append(items, Item{
			Label:         r.ResourceLabel(),
			Bucket:        string(st.Bucket),
			DaysRemaining: st.DaysRemaining,
		})
	}
	return items
}

func devicesAsResources(devices []*entity.Device) []expiry.Resource {
	out := make([]expiry.Resource, len(devices))
	for i, d := range devices {
		out[i] = d
	}
	return out
}

func contractsAsResources(contracts []*entity.AMCContract) []expiry.Resource {
	out := make([]expiry.Resource, len(contracts))
	for i, c := range contracts {
		out[i] = c
	}
	return out
}

func licensesAsResources(licenses []*entity.License) []expiry.Resource {
	out := make([]expiry.Resource, len(licenses))
	for i, l := range licenses {
		out[i] = l
	}
	return out
}
