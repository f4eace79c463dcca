package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
)

// Acciones sujetas a cuota.
const (
	ActionCreateDevice  = "create_device"
	ActionCreateUser    = "create_user"
	ActionCreateCompany = "create_company"
)

// QuotaAction describe la mutación que se quiere autorizar.
type QuotaAction struct {
	Kind           string
	RequestedCount int // cuántos recursos se quieren crear (importación masiva > 1)
}

// QuotaExceededError es el resultado tipado de una cuota superada.
// Es un valor recuperable, nunca un panic: el caller lo usa para armar el
// mensaje de upgrade específico (Kind selecciona el texto en la UI).
type QuotaExceededError struct {
	Kind    string `json:"kind"`
	Limit   int    `json:"limit"`
	Current int    `json:"current"`
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("cuota superada para %s: %d de %d en uso", e.Kind, e.Current, e.Limit)
}

// Authorize decide si la acción cabe dentro de los límites del plan.
//
// Reglas:
//   - límite -1 (entity.Unlimited) → autorizado sin comparar números.
//   - current + requested > límite → *QuotaExceededError con el consumo que
//     aportó el caller (nunca recalculado aquí).
//   - kind desconocido → error plano: defecto de programación, no un estado
//     de negocio recuperable.
//
// Función pura sobre los datos recibidos. La serialización de
// check-then-act entre peticiones concurrentes del mismo tenant es
// obligación del caller (ver QuotaService).
func Authorize(features entity.PlanFeatures, usage entity.UsageCounters, action QuotaAction) error {
	requested := action.RequestedCount
	if requested <= 0 {
		requested = 1
	}

	var limit, current int
	switch action.Kind {
	case ActionCreateDevice:
		limit, current = features.MaxDevices, usage.DeviceCount
	case ActionCreateUser:
		limit, current = features.MaxUsers, usage.UserCount
	case ActionCreateCompany:
		limit, current = features.MaxCompanies, usage.CompanyCount
	default:
		return fmt.Errorf("quota: acción desconocida %q", action.Kind)
	}

	if limit == entity.Unlimited {
		return nil
	}
	if current+requested > limit {
		return &QuotaExceededError{Kind: action.Kind, Limit: limit, Current: current}
	}
	return nil
}

// EffectiveFeatures calcula los features vigentes de una organización:
// features del plan + overrides booleanos del org. Si la suscripción está
// en estado "expired", el tenant baja a los límites del plan free y los
// overrides dejan de aplicar.
func EffectiveFeatures(org *entity.Organization, plan, freePlan *entity.Plan) entity.PlanFeatures {
	if org.SubscriptionStatus == entity.SubscriptionExpired && freePlan != nil {
		return freePlan.Features
	}

	eff := entity.PlanFeatures{
		MaxDevices:   plan.Features.MaxDevices,
		MaxUsers:     plan.Features.MaxUsers,
		MaxCompanies: plan.Features.MaxCompanies,
		Flags:        make(map[entity.Feature]bool, len(plan.Features.Flags)),
	}
	for k, v := range plan.Features.Flags {
		eff.Flags[k] = v
	}
	for k, v := range org.FeatureOverrides {
		if entity.KnownFeature(k) {
			eff.Flags[k] = v
		}
	}
	return eff
}

// QuotaService resuelve plan y consumo del tenant y aplica Authorize.
// Lee los contadores de uso en CADA llamada (estado confirmado), nunca de
// caché. La serialización de creaciones concurrentes del mismo tenant
// sigue siendo responsabilidad del despliegue (mutex por tenant o
// incremento condicional en storage); este servicio no puede impedir la
// carrera porque no posee estado persistente.
type QuotaService struct {
	orgRepo   repository.OrganizationRepository
	planRepo  repository.PlanRepository
	usageRepo repository.UsageRepository
}

// NewQuotaService construye el servicio de cuotas.
func NewQuotaService(
	orgRepo repository.OrganizationRepository,
	planRepo repository.PlanRepository,
	usageRepo repository.UsageRepository,
) *QuotaService {
	return &QuotaService{orgRepo: orgRepo, planRepo: planRepo, usageRepo: usageRepo}
}

// EffectiveForOrg devuelve los features vigentes y el plan base del tenant.
func (s *QuotaService) EffectiveForOrg(ctx context.Context, orgID string) (entity.PlanFeatures, *entity.Plan, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return entity.PlanFeatures{}, nil, err
	}
	if org == nil {
		return entity.PlanFeatures{}, nil, domain.ErrOrgNotFound
	}
	plan, err := s.planRepo.GetByID(ctx, org.PlanID)
	if err != nil {
		return entity.PlanFeatures{}, nil, err
	}
	if plan == nil {
		return entity.PlanFeatures{}, nil, fmt.Errorf("quota: plan %s no existe", org.PlanID)
	}

	var freePlan *entity.Plan
	if org.SubscriptionStatus == entity.SubscriptionExpired {
		freePlan, err = s.planRepo.GetByName(ctx, "free")
		if err != nil {
			return entity.PlanFeatures{}, nil, err
		}
	}
	return EffectiveFeatures(org, plan, freePlan), plan, nil
}

// EnforceCreate autoriza la creación de `count` recursos del tipo indicado.
// Devuelve *QuotaExceededError cuando el plan no alcanza.
func (s *QuotaService) EnforceCreate(ctx context.Context, tc tenant.Context, kind string, count int) error {
	features, _, err := s.EffectiveForOrg(ctx, tc.OrgID)
	if err != nil {
		return err
	}
	usage, err := s.usageRepo.GetUsageCounters(ctx, tc.OrgID)
	if err != nil {
		return err
	}
	return Authorize(features, usage, QuotaAction{Kind: kind, RequestedCount: count})
}

// HasFeature informa si el tenant tiene el flag activo en su plan efectivo.
// Los callers deben consultarlo ANTES de exponer o ejecutar una operación
// con gate (p.ej. guardar credenciales de ticketing).
func (s *QuotaService) HasFeature(ctx context.Context, orgID string, feature entity.Feature) (bool, error) {
	features, _, err := s.EffectiveForOrg(ctx, orgID)
	if err != nil {
		return false, err
	}
	return features.HasFlag(feature), nil
}
