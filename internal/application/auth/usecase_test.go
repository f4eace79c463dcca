package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/activos-pro/internal/application/auth"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/pkg/config"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memOrgRepo struct {
	bySlug map[string]*entity.Organization
}

func newMemOrgRepo(takenSlugs ...string) *memOrgRepo {
	r := &memOrgRepo{bySlug: map[string]*entity.Organization{}}
	for _, s := range takenSlugs {
		r.bySlug[s] = &entity.Organization{ID: "org_" + s, Slug: s}
	}
	return r
}

func (r *memOrgRepo) Create(ctx context.Context, org *entity.Organization) error {
	if _, ok := r.bySlug[org.Slug]; ok {
		return domain.ErrSlugTaken
	}
	r.bySlug[org.Slug] = org
	return nil
}

func (r *memOrgRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	for _, o := range r.bySlug {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOrgRepo) GetBySlug(ctx context.Context, slug string) (*entity.Organization, error) {
	return r.bySlug[slug], nil
}

func (r *memOrgRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, ok := r.bySlug[slug]
	return ok, nil
}

func (r *memOrgRepo) Update(ctx context.Context, org *entity.Organization) error { return nil }

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, orgID, id string) (*entity.User, error) {
	return nil, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *memUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }

func (r *memUserRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (r *memUserRepo) Delete(ctx context.Context, orgID, id string) error { return nil }

type memPlanRepo struct{}

func (memPlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	for _, p := range entity.DefaultPlans() {
		if p.ID == id {
			plan := p
			return &plan, nil
		}
	}
	return nil, nil
}

func (r memPlanRepo) GetByName(ctx context.Context, name string) (*entity.Plan, error) {
	return nil, nil
}

func (r memPlanRepo) ListActive(ctx context.Context) ([]*entity.Plan, error) { return nil, nil }

// memTxRunner ejecuta el callback directamente contra los mismos repos; la
// atomicidad no es lo que se prueba aquí.
type memTxRunner struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

func (t *memTxRunner) RunSignup(ctx context.Context, fn func(
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(t.orgRepo, t.userRepo)
}

func newAuthService(orgRepo *memOrgRepo) *auth.Service {
	userRepo := newMemUserRepo()
	return auth.NewService(
		orgRepo, userRepo, memPlanRepo{},
		&memTxRunner{orgRepo: orgRepo, userRepo: userRepo},
		config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "activos-pro-test"},
		config.SaaSConfig{TrialDays: 14, DefaultPlan: "plan_free"},
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
}

func signupReq(name, slug string) dto.SignupRequest {
	return dto.SignupRequest{
		Name:          name,
		Slug:          slug,
		OwnerName:     "Ana Propietaria",
		OwnerEmail:    "ana@" + name + ".test",
		OwnerPassword: "secreto123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Signup — desambiguación de slugs
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_SlugDerivadoOcupadoRecibeSufijo(t *testing.T) {
	svc := newAuthService(newMemOrgRepo("acme"))

	out, err := svc.Signup(context.Background(), signupReq("Acme", ""))
	require.NoError(t, err,
		"un slug derivado del nombre debe desambiguarse, no fallar")
	assert.Equal(t, "acme-1", out.Organization.Slug)
}

func TestSignup_SufijoAvanzaHastaElPrimeroLibre(t *testing.T) {
	svc := newAuthService(newMemOrgRepo("acme", "acme-1", "acme-2"))

	out, err := svc.Signup(context.Background(), signupReq("Acme", ""))
	require.NoError(t, err)
	assert.Equal(t, "acme-3", out.Organization.Slug)
}

func TestSignup_SlugElegidoOcupadoEsError(t *testing.T) {
	svc := newAuthService(newMemOrgRepo("acme"))

	_, err := svc.Signup(context.Background(), signupReq("Acme", "acme"))
	assert.ErrorIs(t, err, domain.ErrSlugTaken,
		"el slug elegido a mano no se desambigua en silencio")
}

func TestSignup_SlugLibreNoRecibeSufijo(t *testing.T) {
	svc := newAuthService(newMemOrgRepo())

	out, err := svc.Signup(context.Background(), signupReq("Acme", ""))
	require.NoError(t, err)
	assert.Equal(t, "acme", out.Organization.Slug)
}

func TestSignup_ArrancaEnTrialingConElPlanPorDefecto(t *testing.T) {
	svc := newAuthService(newMemOrgRepo())

	out, err := svc.Signup(context.Background(), signupReq("Acme", ""))
	require.NoError(t, err)
	assert.Equal(t, "plan_free", out.Organization.PlanID)
	assert.Equal(t, entity.SubscriptionTrialing, out.Organization.SubscriptionStatus)
	require.NotNil(t, out.Organization.TrialEndsAt)
	assert.NotEmpty(t, out.Token)
}
