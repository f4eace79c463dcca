package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain/expiry"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
)

// Prefijos de recurso en las claves de bucket.
const (
	alertPrefixWarranty = "warranty"
	alertPrefixAMC      = "amc"
	alertPrefixLicense  = "license"
)

// AlertBucketKeys son las claves estables que consume la UI. Se devuelven
// SIEMPRE todas, vacías o no: el frontend las itera sin comprobar existencia.
// Los tramos son rangos semiabiertos que particionan [0,30]:
// 7_days = [0,7], 15_days = (7,15], 30_days = (15,30]; expired no tiene cota.
var AlertBucketKeys = []string{
	"warranty_expiring_7_days",
	"warranty_expiring_15_days",
	"warranty_expiring_30_days",
	"warranty_expired",
	"amc_expiring_7_days",
	"amc_expiring_15_days",
	"amc_expiring_30_days",
	"amc_expired",
	"license_expiring_7_days",
	"license_expiring_15_days",
	"license_expiring_30_days",
	"license_expired",
}

// alertThresholds cubre los tres tramos: urgente ≤7, pronto ≤30.
// La subdivisión 15/30 se hace sobre los días que devuelve el clasificador.
var alertThresholds = expiry.Thresholds{UrgentDays: 7, SoonDays: 30}

// AlertAggregator arma los buckets de alertas de vencimiento de un tenant.
// Clasifica cada recurso con el motor de expiry y los agrupa por tramo;
// se calcula fresco en cada petición, nunca se persiste (el "ahora" avanza).
type AlertAggregator struct {
	deviceRepo  repository.DeviceRepository
	amcRepo     repository.AMCContractRepository
	licenseRepo repository.LicenseRepository
}

// NewAlertAggregator construye el agregador con los puertos de lectura.
func NewAlertAggregator(
	deviceRepo repository.DeviceRepository,
	amcRepo repository.AMCContractRepository,
	licenseRepo repository.LicenseRepository,
) *AlertAggregator {
	return &AlertAggregator{deviceRepo: deviceRepo, amcRepo: amcRepo, licenseRepo: licenseRepo}
}

// BuildAlerts carga el set completo de recursos del tenant y lo agrega.
// Un tenant sin recursos devuelve todos los buckets vacíos, no un error.
func (uc *AlertAggregator) BuildAlerts(ctx context.Context, tc tenant.Context, now time.Time) (*dto.AlertBucketSetResponse, error) {
	devices, err := uc.deviceRepo.ListAll(ctx, tc.OrgID)
	if err != nil {
		return nil, fmt.Errorf("alerts: dispositivos: %w", err)
	}
	contracts, err := uc.amcRepo.ListAll(ctx, tc.OrgID)
	if err != nil {
		return nil, fmt.Errorf("alerts: contratos AMC: %w", err)
	}
	licenses, err := uc.licenseRepo.ListAll(ctx, tc.OrgID)
	if err != nil {
		return nil, fmt.Errorf("alerts: licencias: %w", err)
	}

	resources := map[string][]expiry.Resource{
		alertPrefixWarranty: make([]expiry.Resource, 0, len(devices)),
		alertPrefixAMC:      make([]expiry.Resource, 0, len(contracts)),
		alertPrefixLicense:  make([]expiry.Resource, 0, len(licenses)),
	}
	for _, d := range devices {
		resources[alertPrefixWarranty] = append(resources[alertPrefixWarranty], d)
	}
	for _, c := range contracts {
		resources[alertPrefixAMC] = append(resources[alertPrefixAMC], c)
	}
	for _, l := range licenses {
		resources[alertPrefixLicense] = append(resources[alertPrefixLicense], l)
	}

	return BuildAlertBuckets(resources, now), nil
}

// BuildAlertBuckets agrega recursos ya materializados en los buckets con
// clave estable. Es la parte pura del agregador: sin I/O, orden de entrada
// preservado dentro de cada bucket (simplificación documentada: el caller
// puede reordenar por urgencia si lo necesita).
//
// El reporte es best-effort: un recurso sin contexto para etiquetarse entra
// igual con label ""; una alerta nunca tumba el dashboard completo.
func BuildAlertBuckets(resources map[string][]expiry.Resource, now time.Time) *dto.AlertBucketSetResponse {
	buckets := make(map[string][]dto.AlertItem, len(AlertBucketKeys))
	for _, key := range AlertBucketKeys {
		buckets[key] = []dto.AlertItem{}
	}

	total := 0
	for prefix, list := range resources {
		for _, r := range list {
			st := expiry.Classify(r.EndsAt(), now, alertThresholds)
			key, ok := bucketKeyFor(prefix, st)
			if !ok {
				continue // no_expiry y active (>30 días) no generan alerta
			}
			buckets[key] = append(buckets[key], dto.AlertItem{
				ResourceID:    r.ResourceID(),
				ResourceLabel: r.ResourceLabel(),
				DaysRemaining: *st.DaysRemaining,
			})
			total++
		}
	}

	return &dto.AlertBucketSetResponse{Buckets: buckets, TotalAlerts: total}
}

// bucketKeyFor traduce la clasificación al bucket con clave estable.
// Cada recurso cae en EXACTAMENTE un bucket: los tramos no se solapan.
func bucketKeyFor(prefix string, st expiry.Status) (string, bool) {
	switch st.Bucket {
	case expiry.BucketExpired:
		return prefix + "_expired", true
	case expiry.BucketExpiringUrgent:
		return prefix + "_expiring_7_days", true
	case expiry.BucketExpiringSoon:
		if *st.DaysRemaining <= 15 {
			return prefix + "_expiring_15_days", true
		}
		return prefix + "_expiring_30_days", true
	default:
		return "", false
	}
}
