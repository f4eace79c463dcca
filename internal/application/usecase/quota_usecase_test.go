package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del enforcement de cuotas.
//
// Authorize es pura: se testean los tres resultados posibles (autorizado,
// cuota superada, acción desconocida) y el cortocircuito de -1, que jamás
// debe entrar a la comparación numérica.
// ──────────────────────────────────────────────────────────────────────────────

func planConLimites(devices, users, companies int) entity.PlanFeatures {
	return entity.PlanFeatures{
		MaxDevices:   devices,
		MaxUsers:     users,
		MaxCompanies: companies,
		Flags:        map[entity.Feature]bool{},
	}
}

func TestAuthorize_IlimitadoNuncaComparaNumeros(t *testing.T) {
	features := planConLimites(entity.Unlimited, entity.Unlimited, entity.Unlimited)
	usage := entity.UsageCounters{DeviceCount: 1 << 30, UserCount: 1 << 30, CompanyCount: 1 << 30}

	// Con consumo astronómico y RequestedCount gigante sigue autorizado:
	// -1 corta antes de mirar los contadores.
	err := usecase.Authorize(features, usage, usecase.QuotaAction{
		Kind:           usecase.ActionCreateDevice,
		RequestedCount: 1 << 30,
	})

	assert.NoError(t, err)
}

func TestAuthorize_EnElLimiteExactoFalla(t *testing.T) {
	features := planConLimites(5, 2, 1)
	usage := entity.UsageCounters{DeviceCount: 5}

	err := usecase.Authorize(features, usage, usecase.QuotaAction{Kind: usecase.ActionCreateDevice})

	var qe *usecase.QuotaExceededError
	require.ErrorAs(t, err, &qe, "una cuota superada es un error tipado, no un error plano")
	assert.Equal(t, usecase.ActionCreateDevice, qe.Kind)
	assert.Equal(t, 5, qe.Limit)
	assert.Equal(t, 5, qe.Current, "el error refleja el consumo que aportó el caller")
}

func TestAuthorize_UnoPorDebajoDelLimitePasa(t *testing.T) {
	features := planConLimites(5, 2, 1)
	usage := entity.UsageCounters{DeviceCount: 4}

	err := usecase.Authorize(features, usage, usecase.QuotaAction{Kind: usecase.ActionCreateDevice})

	assert.NoError(t, err)
}

// Una importación masiva pide N de golpe: 4 en uso + 2 pedidos > 5 falla,
// aunque una sola alta sí cabría.
func TestAuthorize_LoteQueDesbordaFalla(t *testing.T) {
	features := planConLimites(5, 2, 1)
	usage := entity.UsageCounters{DeviceCount: 4}

	err := usecase.Authorize(features, usage, usecase.QuotaAction{
		Kind:           usecase.ActionCreateDevice,
		RequestedCount: 2,
	})

	var qe *usecase.QuotaExceededError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, 4, qe.Current)
}

func TestAuthorize_AccionDesconocidaEsErrorPlano(t *testing.T) {
	features := planConLimites(5, 2, 1)

	err := usecase.Authorize(features, entity.UsageCounters{}, usecase.QuotaAction{Kind: "create_rocket"})

	require.Error(t, err)
	var qe *usecase.QuotaExceededError
	assert.False(t, errors.As(err, &qe),
		"acción desconocida no debe disfrazarse de cuota superada")
}

func TestHasFlag_FeatureDesconocidaSiempreFalse(t *testing.T) {
	features := entity.PlanFeatures{
		Flags: map[entity.Feature]bool{
			entity.FeatureQRCodes: true,
			"totally_unknown":     true, // basura que jamás debería estar en el map
		},
	}

	assert.True(t, features.HasFlag(entity.FeatureQRCodes))
	assert.False(t, features.HasFlag("totally_unknown"),
		"una clave fuera del enum nunca coincide, ni aunque esté en el map")
}

func TestEffectiveFeatures_OverridesDelOrgAplicanSobreElPlan(t *testing.T) {
	plans := entity.DefaultPlans()
	free := plans[0]

	org := &entity.Organization{
		ID:                 "org_1",
		PlanID:             free.ID,
		SubscriptionStatus: entity.SubscriptionActive,
		FeatureOverrides: map[entity.Feature]bool{
			entity.FeatureExportReports: true, // concedido a mano
			"not_a_feature":             true, // ignorado: fuera del enum
		},
	}

	eff := usecase.EffectiveFeatures(org, &free, nil)

	assert.True(t, eff.HasFlag(entity.FeatureExportReports))
	assert.False(t, eff.HasFlag("not_a_feature"))
	assert.Equal(t, 10, eff.MaxDevices, "los overrides no tocan los límites numéricos")
}

// Suscripción expirada: el tenant baja a los límites del plan free y los
// overrides dejan de aplicar.
func TestEffectiveFeatures_ExpiradoBajaAFree(t *testing.T) {
	plans := entity.DefaultPlans()
	free, enterprise := plans[0], plans[2]

	org := &entity.Organization{
		ID:                 "org_1",
		PlanID:             enterprise.ID,
		SubscriptionStatus: entity.SubscriptionExpired,
		FeatureOverrides: map[entity.Feature]bool{
			entity.FeatureWhiteLabel: true,
		},
	}

	eff := usecase.EffectiveFeatures(org, &enterprise, &free)

	assert.Equal(t, 10, eff.MaxDevices)
	assert.Equal(t, 2, eff.MaxUsers)
	assert.Equal(t, 1, eff.MaxCompanies)
	assert.False(t, eff.HasFlag(entity.FeatureWhiteLabel))
}

func TestEffectiveFeatures_NoMutaElPlanOriginal(t *testing.T) {
	plans := entity.DefaultPlans()
	free := plans[0]

	org := &entity.Organization{
		ID:                 "org_1",
		PlanID:             free.ID,
		SubscriptionStatus: entity.SubscriptionActive,
		FeatureOverrides:   map[entity.Feature]bool{entity.FeatureAPIAccess: true},
	}

	_ = usecase.EffectiveFeatures(org, &free, nil)

	assert.False(t, free.Features.HasFlag(entity.FeatureAPIAccess),
		"EffectiveFeatures trabaja sobre una copia del map de flags")
}
