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
)

// SiteService gestiona las sedes de las empresas cliente.
// Las sedes no tienen cuota propia: cuelgan de la empresa.
type SiteService struct {
	siteRepo    repository.SiteRepository
	companyRepo repository.CompanyRepository
}

// NewSiteService construye el servicio de sedes.
func NewSiteService(siteRepo repository.SiteRepository, companyRepo repository.CompanyRepository) *SiteService {
	return &SiteService{siteRepo: siteRepo, companyRepo: companyRepo}
}

// Create da de alta una sede. La empresa debe existir en el mismo tenant.
func (s *SiteService) Create(ctx context.Context, tc tenant.Context, req dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	company, err := s.companyRepo.GetByID(ctx, tc.OrgID, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company_id no existe", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	site := &entity.Site{
		ID:        uuid.NewString(),
		OrgID:     tc.OrgID,
		CompanyID: req.CompanyID,
		Name:      strings.TrimSpace(req.Name),
		Address:   req.Address,
		City:      req.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.siteRepo.Create(ctx, site); err != nil {
		return nil, fmt.Errorf("crear sede: %w", err)
	}
	resp := toSiteResponse(site)
	return &resp, nil
}

// GetByID devuelve una sede del tenant.
func (s *SiteService) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.SiteResponse, error) {
	site, err := s.siteRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSiteResponse(site)
	return &resp, nil
}

// List devuelve las sedes del tenant paginadas.
func (s *SiteService) List(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.SiteListResponse, error) {
	page.DefaultPage()
	sites, err := s.siteRepo.List(ctx, tc.OrgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SiteResponse, 0, len(sites))
	for _, site := range sites {
		items = append(items, toSiteResponse(site))
	}
	return &dto.SiteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica una sede existente.
func (s *SiteService) Update(ctx context.Context, tc tenant.Context, id string, req dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	site, err := s.siteRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		site.Name = strings.TrimSpace(req.Name)
	}
	site.Address = req.Address
	site.City = req.City
	site.UpdatedAt = time.Now().UTC()

	if err := s.siteRepo.Update(ctx, site); err != nil {
		return nil, fmt.Errorf("actualizar sede: %w", err)
	}
	resp := toSiteResponse(site)
	return &resp, nil
}

// Delete elimina una sede del tenant.
func (s *SiteService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	return s.siteRepo.Delete(ctx, tc.OrgID, id)
}

func toSiteResponse(s *entity.Site) dto.SiteResponse {
	return dto.SiteResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		CreatedAt: s.CreatedAt,
	}
}
