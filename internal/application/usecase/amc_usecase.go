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

// AMCService gestiona los contratos anuales de mantenimiento.
// Los contratos no tienen cuota: el plan limita dispositivos, no contratos.
type AMCService struct {
	amcRepo     repository.AMCContractRepository
	companyRepo repository.CompanyRepository
}

// NewAMCService construye el servicio de contratos AMC.
func NewAMCService(amcRepo repository.AMCContractRepository, companyRepo repository.CompanyRepository) *AMCService {
	return &AMCService{amcRepo: amcRepo, companyRepo: companyRepo}
}

// Create da de alta un contrato AMC para una empresa del tenant.
func (s *AMCService) Create(ctx context.Context, tc tenant.Context, req dto.CreateAMCContractRequest) (*dto.AMCContractResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.CompanyID == "" {
		return nil, fmt.Errorf("%w: name y company_id son obligatorios", domain.ErrInvalidInput)
	}
	if req.AMCType != "" && !validAMCType(req.AMCType) {
		return nil, fmt.Errorf("%w: amc_type debe ser comprehensive, non_comprehensive o labour_only", domain.ErrInvalidInput)
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
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contract := &entity.AMCContract{
		ID:            uuid.NewString(),
		OrgID:         tc.OrgID,
		CompanyID:     req.CompanyID,
		Name:          strings.TrimSpace(req.Name),
		AMCType:       defaultStr(req.AMCType, entity.AMCComprehensive),
		StartDate:     start,
		EndDate:       end,
		InternalNotes: req.InternalNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.amcRepo.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("crear contrato AMC: %w", err)
	}
	resp := toAMCResponse(contract, now)
	return &resp, nil
}

// GetByID devuelve un contrato del tenant.
func (s *AMCService) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.AMCContractResponse, error) {
	contract, err := s.amcRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAMCResponse(contract, time.Now().UTC())
	return &resp, nil
}

// List devuelve los contratos del tenant paginados.
func (s *AMCService) List(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.AMCContractListResponse, error) {
	page.DefaultPage()
	contracts, err := s.amcRepo.List(ctx, tc.OrgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := make([]dto.AMCContractResponse, 0, len(contracts))
	for _, c := range contracts {
		items = append(items, toAMCResponse(c, now))
	}
	return &dto.AMCContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica un contrato existente.
func (s *AMCService) Update(ctx context.Context, tc tenant.Context, id string, req dto.CreateAMCContractRequest) (*dto.AMCContractResponse, error) {
	contract, err := s.amcRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		contract.Name = strings.TrimSpace(req.Name)
	}
	if req.AMCType != "" {
		if !validAMCType(req.AMCType) {
			return nil, fmt.Errorf("%w: amc_type inválido", domain.ErrInvalidInput)
		}
		contract.AMCType = req.AMCType
	}
	if req.StartDate != "" {
		start, err := parseDate("start_date", req.StartDate)
		if err != nil {
			return nil, err
		}
		contract.StartDate = start
	}
	if req.EndDate != "" {
		end, err := parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
		contract.EndDate = end
	}
	contract.InternalNotes = req.InternalNotes
	contract.UpdatedAt = time.Now().UTC()

	if err := s.amcRepo.Update(ctx, contract); err != nil {
		return nil, fmt.Errorf("actualizar contrato AMC: %w", err)
	}
	resp := toAMCResponse(contract, time.Now().UTC())
	return &resp, nil
}

// Delete elimina un contrato del tenant.
func (s *AMCService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	return s.amcRepo.Delete(ctx, tc.OrgID, id)
}

func validAMCType(t string) bool {
	return t == entity.AMCComprehensive || t == entity.AMCNonComprehensive || t == entity.AMCLabourOnly
}

func toAMCResponse(c *entity.AMCContract, now time.Time) dto.AMCContractResponse {
	st := expiry.Classify(c.EndDate, now, expiry.DefaultThresholds())
	return dto.AMCContractResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		AMCType:       c.AMCType,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Status:        string(st.Bucket),
		DaysRemaining: st.DaysRemaining,
		InternalNotes: c.InternalNotes,
		CreatedAt:     c.CreatedAt,
	}
}
