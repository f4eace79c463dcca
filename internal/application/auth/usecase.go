// Package auth implementa el registro de organizaciones (signup) y la
// autenticación de usuarios del tenant.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/pkg/config"
	"github.com/tu-usuario/activos-pro/pkg/jwt"
	"github.com/tu-usuario/activos-pro/pkg/logger"
	"github.com/tu-usuario/activos-pro/pkg/slug"
)

// TxRunner ejecuta el alta de organización y propietario como una sola
// unidad transaccional. La implementación vive en infrastructure.
type TxRunner interface {
	RunSignup(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		userRepo repository.UserRepository,
	) error) error
}

// Service orquesta signup, login y verificación de subdominios.
type Service struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
	planRepo repository.PlanRepository
	tx       TxRunner
	jwtCfg   config.JWTConfig
	saasCfg  config.SaaSConfig
	log      *logger.Logger
}

// NewService construye el servicio de autenticación.
func NewService(
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	tx TxRunner,
	jwtCfg config.JWTConfig,
	saasCfg config.SaaSConfig,
	log *logger.Logger,
) *Service {
	return &Service{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		planRepo: planRepo,
		tx:       tx,
		jwtCfg:   jwtCfg,
		saasCfg:  saasCfg,
		log:      log,
	}
}

// Signup crea la organización y su usuario propietario en un solo paso.
// El tenant arranca en período de prueba (trialing) sobre el plan por
// defecto. El slug se valida (o se deriva del nombre si viene vacío) y debe
// estar libre; después del signup es inmutable.
func (s *Service) Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.OwnerEmail))
	if name == "" || email == "" || req.OwnerPassword == "" {
		return nil, fmt.Errorf("%w: name, owner_email y owner_password son obligatorios", domain.ErrInvalidInput)
	}

	orgSlug := strings.TrimSpace(req.Slug)
	userChoseSlug := orgSlug != ""
	if !userChoseSlug {
		orgSlug = slug.Generate(name)
	}
	if ok, reason := slug.Validate(orgSlug); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlugInvalid, reason)
	}
	taken, err := s.orgRepo.SlugExists(ctx, orgSlug)
	if err != nil {
		return nil, err
	}
	if taken {
		// Un slug elegido a mano ocupado es error del usuario; uno derivado
		// del nombre se desambigua con sufijo numérico (acme, acme-1, ...).
		if userChoseSlug {
			return nil, domain.ErrSlugTaken
		}
		orgSlug, err = s.nextFreeSlug(ctx, orgSlug)
		if err != nil {
			return nil, err
		}
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	plan, err := s.planRepo.GetByID(ctx, s.saasCfg.DefaultPlan)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("signup: plan por defecto %s no existe", s.saasCfg.DefaultPlan)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de password: %w", err)
	}

	now := time.Now().UTC()
	trialEnds := now.AddDate(0, 0, s.saasCfg.TrialDays)
	org := &entity.Organization{
		ID:                 uuid.NewString(),
		Name:               name,
		Slug:               orgSlug,
		Email:              email,
		Industry:           req.Industry,
		CompanySize:        req.CompanySize,
		PlanID:             plan.ID,
		SubscriptionStatus: entity.SubscriptionTrialing,
		TrialEndsAt:        &trialEnds,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	owner := &entity.User{
		ID:           uuid.NewString(),
		OrgID:        org.ID,
		Name:         strings.TrimSpace(req.OwnerName),
		Email:        email,
		Phone:        req.OwnerPhone,
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	org.OwnerID = owner.ID

	// Organización y propietario entran juntos o no entra ninguno.
	err = s.tx.RunSignup(ctx, func(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) error {
		if err := orgRepo.Create(ctx, org); err != nil {
			return fmt.Errorf("crear organización: %w", err)
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			return fmt.Errorf("crear propietario: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(s.jwtCfg.Secret, owner.ID, org.ID, owner.Role, s.jwtCfg.Issuer, s.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	s.log.WithOrg(org.ID).Info().Str("slug", orgSlug).Msg("organización registrada")
	return &dto.SignupResponse{
		Organization: toOrgResponse(org),
		User:         toUserResponse(owner),
		Token:        token,
	}, nil
}

// nextFreeSlug prueba base-1, base-2, ... hasta dar con un subdominio libre.
func (s *Service) nextFreeSlug(ctx context.Context, base string) (string, error) {
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s-%d", base, counter)
		taken, err := s.orgRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// Login autentica por email global (sin subdominio) y devuelve el token con
// el contexto de tenant embebido en los claims.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Mismo error que password incorrecto: no revelar si el email existe.
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	org, err := s.orgRepo.GetByID(ctx, user.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil || !org.IsActive {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(s.jwtCfg.Secret, user.ID, org.ID, user.Role, s.jwtCfg.Issuer, s.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        token,
		User:         toUserResponse(user),
		Organization: toOrgResponse(org),
	}, nil
}

// CheckSlug informa la disponibilidad de un subdominio antes del signup.
func (s *Service) CheckSlug(ctx context.Context, candidate string) (*dto.SlugCheckResponse, error) {
	candidate = strings.TrimSpace(strings.ToLower(candidate))
	if ok, reason := slug.Validate(candidate); !ok {
		return &dto.SlugCheckResponse{Slug: candidate, Available: false, Reason: reason}, nil
	}
	taken, err := s.orgRepo.SlugExists(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if taken {
		return &dto.SlugCheckResponse{Slug: candidate, Available: false, Reason: "ya está en uso"}, nil
	}
	return &dto.SlugCheckResponse{Slug: candidate, Available: true}, nil
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

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
