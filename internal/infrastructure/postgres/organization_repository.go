package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL (usable con pool o tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

const orgColumns = `id, name, slug, owner_id, email, phone, industry, company_size,
	plan_id, subscription_status, trial_ends_at, feature_overrides,
	ticketing_enabled, ticketing_base_url, ticketing_api_key,
	is_active, created_at, updated_at`

// Create persiste una organización nueva. El slug tiene constraint único.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	overrides, err := json.Marshal(org.FeatureOverrides)
	if err != nil {
		return fmt.Errorf("serializar overrides: %w", err)
	}
	query := `
		INSERT INTO organizations (` + orgColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.q.Exec(ctx, query,
		org.ID, org.Name, org.Slug, org.OwnerID, org.Email, org.Phone, org.Industry, org.CompanySize,
		org.PlanID, org.SubscriptionStatus, org.TrialEndsAt, overrides,
		org.Ticketing.Enabled, org.Ticketing.BaseURL, org.Ticketing.APIKey,
		org.IsActive, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	return r.getBy(ctx, "id", id)
}

// GetBySlug obtiene una organización por su subdominio.
func (r *OrganizationRepo) GetBySlug(ctx context.Context, slug string) (*entity.Organization, error) {
	return r.getBy(ctx, "slug", slug)
}

func (r *OrganizationRepo) getBy(ctx context.Context, column, value string) (*entity.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE ` + column + ` = $1`
	var o entity.Organization
	var overrides []byte
	err := r.q.QueryRow(ctx, query, value).Scan(
		&o.ID, &o.Name, &o.Slug, &o.OwnerID, &o.Email, &o.Phone, &o.Industry, &o.CompanySize,
		&o.PlanID, &o.SubscriptionStatus, &o.TrialEndsAt, &overrides,
		&o.Ticketing.Enabled, &o.Ticketing.BaseURL, &o.Ticketing.APIKey,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &o.FeatureOverrides); err != nil {
			return nil, fmt.Errorf("parsear overrides: %w", err)
		}
	}
	return &o, nil
}

// SlugExists verifica si el subdominio ya está asignado.
func (r *OrganizationRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM organizations WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// Update actualiza la organización. El slug no se toca: es inmutable tras el signup.
func (r *OrganizationRepo) Update(ctx context.Context, org *entity.Organization) error {
	overrides, err := json.Marshal(org.FeatureOverrides)
	if err != nil {
		return fmt.Errorf("serializar overrides: %w", err)
	}
	query := `
		UPDATE organizations SET name = $2, email = $3, phone = $4, industry = $5, company_size = $6,
			plan_id = $7, subscription_status = $8, trial_ends_at = $9, feature_overrides = $10,
			ticketing_enabled = $11, ticketing_base_url = $12, ticketing_api_key = $13,
			is_active = $14, updated_at = $15
		WHERE id = $1`
	_, err = r.q.Exec(ctx, query,
		org.ID, org.Name, org.Email, org.Phone, org.Industry, org.CompanySize,
		org.PlanID, org.SubscriptionStatus, org.TrialEndsAt, overrides,
		org.Ticketing.Enabled, org.Ticketing.BaseURL, org.Ticketing.APIKey,
		org.IsActive, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	return nil
}
