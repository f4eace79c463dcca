package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// Service orquesta una importación masiva completa:
//
//  1. parsear el archivo con el dialecto propio,
//  2. validar TODAS las filas contra el esquema,
//  3. si hay algún error de validación, no importar nada,
//  4. verificar la cuota con el total de filas en un solo chequeo,
//  5. insertar fila a fila acumulando fallos de persistencia.
//
// Los pasos 2-3 hacen la importación atómica frente a archivos mal armados;
// el paso 4 evita que un lote entre "a medias" en un plan sin espacio.
type Service struct {
	quota       *usecase.QuotaService
	deviceRepo  repository.DeviceRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	log         *logger.Logger
}

// NewService construye el servicio de importación.
func NewService(
	quota *usecase.QuotaService,
	deviceRepo repository.DeviceRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		quota:       quota,
		deviceRepo:  deviceRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

// prepare parsea y valida; devuelve los registros listos o el resultado con
// errores de validación (res != nil significa "no importar").
func prepare(kind, data string) ([]Record, *dto.ImportResultResponse, error) {
	schema, ok := SchemaFor(kind)
	if !ok {
		return nil, nil, fmt.Errorf("%w: tipo de importación %q", domain.ErrInvalidInput, kind)
	}
	_, records := ParseCSV(data)
	if len(records) == 0 {
		return nil, &dto.ImportResultResponse{}, nil
	}
	if errs := Validate(schema, records); len(errs) > 0 {
		return nil, &dto.ImportResultResponse{
			RowsParsed:       len(records),
			ValidationErrors: errs,
		}, nil
	}
	return records, nil, nil
}

// ImportDevices importa dispositivos para una empresa del tenant.
func (s *Service) ImportDevices(ctx context.Context, tc tenant.Context, companyID, data string) (*dto.ImportResultResponse, error) {
	records, res, err := prepare(KindDevices, data)
	if err != nil || res != nil {
		return res, err
	}

	company, err := s.companyRepo.GetByID(ctx, tc.OrgID, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company_id no existe", domain.ErrInvalidInput)
	}
	if err := s.quota.EnforceCreate(ctx, tc, usecase.ActionCreateDevice, len(records)); err != nil {
		return nil, err
	}

	result := &dto.ImportResultResponse{RowsParsed: len(records)}
	now := time.Now().UTC()
	for i, rec := range records {
		device := &entity.Device{
			ID:           uuid.NewString(),
			OrgID:        tc.OrgID,
			CompanyID:    companyID,
			DeviceType:   rec["device_type"],
			Brand:        rec["brand"],
			Model:        rec["model"],
			SerialNumber: rec["serial_number"],
			AssetTag:     rec["asset_tag"],
			PurchaseDate: parseOptionalDate(rec["purchase_date"]),
			WarrantyEnd:  parseOptionalDate(rec["warranty_end_date"]),
			Status:       entity.DeviceActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.deviceRepo.Create(ctx, device); err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row:     i + headerRowOffset,
				Message: err.Error(),
			})
			continue
		}
		result.Success++
	}

	s.log.WithOrg(tc.OrgID).Info().
		Int("rows", result.RowsParsed).
		Int("success", result.Success).
		Msg("importación de dispositivos completada")
	return result, nil
}

// ImportCompanies importa empresas cliente del tenant.
func (s *Service) ImportCompanies(ctx context.Context, tc tenant.Context, data string) (*dto.ImportResultResponse, error) {
	records, res, err := prepare(KindCompanies, data)
	if err != nil || res != nil {
		return res, err
	}
	if err := s.quota.EnforceCreate(ctx, tc, usecase.ActionCreateCompany, len(records)); err != nil {
		return nil, err
	}

	result := &dto.ImportResultResponse{RowsParsed: len(records)}
	now := time.Now().UTC()
	for i, rec := range records {
		company := &entity.Company{
			ID:           uuid.NewString(),
			OrgID:        tc.OrgID,
			Name:         rec["name"],
			GSTNumber:    rec["gst_number"],
			Address:      rec["address"],
			ContactName:  rec["contact_name"],
			ContactEmail: rec["contact_email"],
			ContactPhone: rec["contact_phone"],
			AMCStatus:    "not_applicable",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.companyRepo.Create(ctx, company); err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row:     i + headerRowOffset,
				Message: err.Error(),
			})
			continue
		}
		result.Success++
	}
	return result, nil
}

// ImportUsers importa usuarios del tenant. Cada usuario se crea con una
// contraseña aleatoria irreversible: debe pasar por el flujo de
// restablecimiento antes del primer login.
func (s *Service) ImportUsers(ctx context.Context, tc tenant.Context, data string) (*dto.ImportResultResponse, error) {
	records, res, err := prepare(KindUsers, data)
	if err != nil || res != nil {
		return res, err
	}
	if err := s.quota.EnforceCreate(ctx, tc, usecase.ActionCreateUser, len(records)); err != nil {
		return nil, err
	}

	result := &dto.ImportResultResponse{RowsParsed: len(records)}
	now := time.Now().UTC()
	for i, rec := range records {
		role := rec["role"]
		if role != entity.RoleAdmin && role != entity.RoleStaff {
			role = entity.RoleStaff
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de password: %w", err)
		}
		user := &entity.User{
			ID:           uuid.NewString(),
			OrgID:        tc.OrgID,
			Name:         rec["name"],
			Email:        strings.ToLower(rec["email"]),
			Phone:        rec["phone"],
			PasswordHash: string(hash),
			Role:         role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row:     i + headerRowOffset,
				Message: err.Error(),
			})
			continue
		}
		result.Success++
	}
	return result, nil
}

// parseOptionalDate asume valor ya validado por el esquema; vacío → nil.
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
