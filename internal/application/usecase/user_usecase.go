package usecase

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
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// UserService gestiona los usuarios del tenant.
// La creación pasa por el enforcement de cuotas (límite max_users).
type UserService struct {
	userRepo repository.UserRepository
	quota    *QuotaService
	log      *logger.Logger
}

// NewUserService construye el servicio de usuarios.
func NewUserService(userRepo repository.UserRepository, quota *QuotaService, log *logger.Logger) *UserService {
	return &UserService{userRepo: userRepo, quota: quota, log: log}
}

// Create da de alta un usuario. El email es único global (el login no pide
// subdominio); la cuota se verifica antes de persistir.
func (s *UserService) Create(ctx context.Context, tc tenant.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if strings.TrimSpace(req.Name) == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email y password son obligatorios", domain.ErrInvalidInput)
	}
	role := defaultStr(req.Role, entity.RoleStaff)
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		// El rol owner solo se asigna en el signup de la organización.
		return nil, fmt.Errorf("%w: role debe ser admin o staff", domain.ErrInvalidInput)
	}

	if err := s.quota.EnforceCreate(ctx, tc, ActionCreateUser, 1); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		OrgID:        tc.OrgID,
		CompanyID:    req.CompanyID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}

	s.log.WithOrg(tc.OrgID).Info().Str("user_id", user.ID).Str("role", role).Msg("usuario creado")
	resp := toUserResponse(user)
	return &resp, nil
}

// GetByID devuelve un usuario del tenant.
func (s *UserService) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// List devuelve los usuarios del tenant paginados.
func (s *UserService) List(ctx context.Context, tc tenant.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := s.userRepo.List(ctx, tc.OrgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica nombre, teléfono, rol o estado de un usuario.
func (s *UserService) Update(ctx context.Context, tc tenant.Context, id string, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	user.Phone = req.Phone
	if req.Role != "" && user.Role != entity.RoleOwner {
		if req.Role != entity.RoleAdmin && req.Role != entity.RoleStaff {
			return nil, fmt.Errorf("%w: role debe ser admin o staff", domain.ErrInvalidInput)
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("actualizar usuario: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete elimina un usuario. El propietario de la organización no se puede
// eliminar (perdería el tenant su único acceso garantizado).
func (s *UserService) Delete(ctx context.Context, tc tenant.Context, id string) error {
	user, err := s.userRepo.GetByID(ctx, tc.OrgID, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role == entity.RoleOwner {
		return fmt.Errorf("%w: el propietario no puede eliminarse", domain.ErrForbidden)
	}
	return s.userRepo.Delete(ctx, tc.OrgID, id)
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
