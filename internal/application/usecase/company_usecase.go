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
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// CompanyService gestiona las empresas cliente del tenant.
// La creación pasa por el enforcement de cuotas (límite max_companies).
type CompanyService struct {
	companyRepo repository.CompanyRepository
	quota       *QuotaService
	log         *logger.Logger
}

// NewCompanyService construye el servicio de empresas.
func NewCompanyService(companyRepo repository.CompanyRepository, quota *QuotaService, log *logger.Logger) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, quota: quota, log: log}
}

// Create da de alta una empresa cliente. Verifica la cuota ANTES de
// persistir; si el plan no alcanza devuelve *QuotaExceededError.
func (s *CompanyService) Create(ctx context.Context, tc tenant.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if err := s.quota.EnforceCreate(ctx, tc, ActionCreateCompany, 1); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	company := &entity.Company{
		ID:           uuid.NewString(),
		OrgID:        tc.OrgID,
		Name:         strings.TrimSpace(req.Name),
		GSTNumber:    req.GSTNumber,
		Address:      req.Address,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		AMCStatus:    defaultStr(req.AMCStatus, "not_applicable"),
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("crear empresa: %w", err)
	}

	s.log.WithOrg(tc.OrgID).Info().Str("company_id", company.ID).Msg("empresa creada")
	resp := toCompanyResponse(company)
	return &resp, nil
}

// GetByID devuelve una empresa del tenant.
func (s *CompanyService) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// List devuelve las empresas del tenant paginadas.
func (s *CompanyService) List(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	companies, err := s.companyRepo.List(ctx, tc.OrgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica una empresa existente.
func (s *CompanyService) Update(ctx context.Context, tc tenant.Context, id string, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		company.Name = strings.TrimSpace(req.Name)
	}
	company.GSTNumber = req.GSTNumber
	company.Address = req.Address
	company.ContactName = req.ContactName
	company.ContactEmail = req.ContactEmail
	company.ContactPhone = req.ContactPhone
	if req.AMCStatus != "" {
		company.AMCStatus = req.AMCStatus
	}
	company.Notes = req.Notes
	company.UpdatedAt = time.Now().UTC()

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("actualizar empresa: %w", err)
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// Delete elimina una empresa del tenant.
func (s *CompanyService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	if err := s.companyRepo.Delete(ctx, tc.OrgID, id); err != nil {
		return err
	}
	s.log.WithOrg(tc.OrgID).Info().Str("company_id", id).Msg("empresa eliminada")
	return nil
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		GSTNumber:    c.GSTNumber,
		Address:      c.Address,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		AMCStatus:    c.AMCStatus,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
