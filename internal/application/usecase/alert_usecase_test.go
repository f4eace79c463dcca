package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/expiry"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del agregador de alertas.
//
// El contrato con la UI son las 12 claves de bucket: se verifica que estén
// todas siempre, que cada recurso caiga en exactamente un bucket y que
// total_alerts sea la suma de los tamaños.
// ──────────────────────────────────────────────────────────────────────────────

var alertNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func enDias(n int) *time.Time {
	t := alertNow.Add(time.Duration(n) * 24 * time.Hour)
	return &t
}

func deviceConGarantia(id string, end *time.Time) expiry.Resource {
	return &entity.Device{ID: id, Brand: "Dell", Model: "Latitude", SerialNumber: id, WarrantyEnd: end}
}

func licenciaConFin(id string, end *time.Time) expiry.Resource {
	return &entity.License{ID: id, SoftwareName: "Office", Vendor: "Microsoft", EndDate: end}
}

func TestBuildAlertBuckets_SinRecursosDevuelveTodosLosBucketsVacios(t *testing.T) {
	resp := usecase.BuildAlertBuckets(map[string][]expiry.Resource{}, alertNow)

	assert.Len(t, resp.Buckets, 12)
	for _, key := range usecase.AlertBucketKeys {
		bucket, ok := resp.Buckets[key]
		require.True(t, ok, "la clave %s debe existir aunque esté vacía", key)
		assert.Empty(t, bucket)
		assert.NotNil(t, bucket, "bucket vacío se serializa como [], no null")
	}
	assert.Equal(t, 0, resp.TotalAlerts)
}

func TestBuildAlertBuckets_CadaRecursoCaeEnUnSoloBucket(t *testing.T) {
	resources := map[string][]expiry.Resource{
		"warranty": {
			deviceConGarantia("dev-urgente", enDias(5)),    // [0,7]
			deviceConGarantia("dev-quince", enDias(12)),    // (7,15]
			deviceConGarantia("dev-treinta", enDias(25)),   // (15,30]
			deviceConGarantia("dev-vencido", enDias(-3)),   // expirado
			deviceConGarantia("dev-lejano", enDias(90)),    // fuera de ventana
			deviceConGarantia("dev-sin-garantia", nil),     // sin vencimiento
		},
	}

	resp := usecase.BuildAlertBuckets(resources, alertNow)

	require.Len(t, resp.Buckets["warranty_expiring_7_days"], 1)
	assert.Equal(t, "dev-urgente", resp.Buckets["warranty_expiring_7_days"][0].ResourceID)
	assert.Equal(t, 5, resp.Buckets["warranty_expiring_7_days"][0].DaysRemaining)

	require.Len(t, resp.Buckets["warranty_expiring_15_days"], 1)
	assert.Equal(t, "dev-quince", resp.Buckets["warranty_expiring_15_days"][0].ResourceID)

	require.Len(t, resp.Buckets["warranty_expiring_30_days"], 1)
	assert.Equal(t, "dev-treinta", resp.Buckets["warranty_expiring_30_days"][0].ResourceID)

	require.Len(t, resp.Buckets["warranty_expired"], 1)
	assert.Equal(t, -3, resp.Buckets["warranty_expired"][0].DaysRemaining)

	// Los que no generan alerta no aparecen en ningún bucket.
	assert.Equal(t, 4, resp.TotalAlerts)
}

// Los bordes de tramo son semiabiertos: día 7 → 7_days, día 8 → 15_days,
// día 15 → 15_days, día 16 → 30_days, día 30 → 30_days, día 31 → nada.
func TestBuildAlertBuckets_BordesDeTramo(t *testing.T) {
	resources := map[string][]expiry.Resource{
		"license": {
			licenciaConFin("lic-7", enDias(7)),
			licenciaConFin("lic-8", enDias(8)),
			licenciaConFin("lic-15", enDias(15)),
			licenciaConFin("lic-16", enDias(16)),
			licenciaConFin("lic-30", enDias(30)),
			licenciaConFin("lic-31", enDias(31)),
		},
	}

	resp := usecase.BuildAlertBuckets(resources, alertNow)

	assert.Equal(t, "lic-7", resp.Buckets["license_expiring_7_days"][0].ResourceID)
	require.Len(t, resp.Buckets["license_expiring_15_days"], 2)
	assert.Equal(t, "lic-8", resp.Buckets["license_expiring_15_days"][0].ResourceID)
	assert.Equal(t, "lic-15", resp.Buckets["license_expiring_15_days"][1].ResourceID)
	require.Len(t, resp.Buckets["license_expiring_30_days"], 2)
	assert.Equal(t, "lic-16", resp.Buckets["license_expiring_30_days"][0].ResourceID)
	assert.Equal(t, "lic-30", resp.Buckets["license_expiring_30_days"][1].ResourceID)
	assert.Empty(t, resp.Buckets["license_expired"])
	assert.Equal(t, 5, resp.TotalAlerts)
}

// Las licencias perpetuas (EndDate nil) jamás generan alertas.
func TestBuildAlertBuckets_PerpetuasNoAlertan(t *testing.T) {
	resources := map[string][]expiry.Resource{
		"license": {
			licenciaConFin("lic-perpetua", nil),
			licenciaConFin("lic-sub", enDias(3)),
		},
	}

	resp := usecase.BuildAlertBuckets(resources, alertNow)

	assert.Equal(t, 1, resp.TotalAlerts)
	assert.Equal(t, "lic-sub", resp.Buckets["license_expiring_7_days"][0].ResourceID)
}

// Un recurso sin datos para etiquetarse entra igual con label vacío:
// la alerta nunca se descarta por un registro a medio completar.
func TestBuildAlertBuckets_EtiquetaVaciaNoDescartaLaAlerta(t *testing.T) {
	resources := map[string][]expiry.Resource{
		"warranty": {&entity.Device{ID: "dev-pelado", WarrantyEnd: enDias(2)}},
	}

	resp := usecase.BuildAlertBuckets(resources, alertNow)

	require.Len(t, resp.Buckets["warranty_expiring_7_days"], 1)
	item := resp.Buckets["warranty_expiring_7_days"][0]
	assert.Equal(t, "dev-pelado", item.ResourceID)
	assert.Equal(t, "", item.ResourceLabel)
}

func TestBuildAlertBuckets_TotalEsLaSumaDeLosBuckets(t *testing.T) {
	resources := map[string][]expiry.Resource{
		"warranty": {
			deviceConGarantia("d1", enDias(1)),
			deviceConGarantia("d2", enDias(10)),
		},
		"amc": {
			&entity.AMCContract{ID: "amc1", Name: "Soporte anual", EndDate: enDias(-1)},
		},
		"license": {
			licenciaConFin("l1", enDias(20)),
		},
	}

	resp := usecase.BuildAlertBuckets(resources, alertNow)

	suma := 0
	for _, bucket := range resp.Buckets {
		suma += len(bucket)
	}
	assert.Equal(t, suma, resp.TotalAlerts)
	assert.Equal(t, 4, resp.TotalAlerts)
}

// El orden dentro de un bucket es el orden de entrada de los recursos.
func TestBuildAlertBuckets_PreservaOrdenDeEntrada(t *testing.T) {
	resources := map[string][]expiry.Resource{
		"warranty": {
			deviceConGarantia("primero", enDias(6)),
			deviceConGarantia("segundo", enDias(2)),
			deviceConGarantia("tercero", enDias(4)),
		},
	}

	resp := usecase.BuildAlertBuckets(resources, alertNow)

	bucket := resp.Buckets["warranty_expiring_7_days"]
	require.Len(t, bucket, 3)
	assert.Equal(t, "primero", bucket[0].ResourceID)
	assert.Equal(t, "segundo", bucket[1].ResourceID)
	assert.Equal(t, "tercero", bucket[2].ResourceID)
}
