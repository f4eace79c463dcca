package expiry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/activos-pro/internal/domain/expiry"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del clasificador de vencimientos.
//
// La clasificación es una función pura de (endDate, now): estos tests fijan
// los bordes exactos de cada bucket con el corte 7/15 por defecto, porque un
// off-by-one aquí mueve recursos de "urgente" a "pronto" en el dashboard de
// todos los tenants a la vez.
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestClassify_SinFechaEsNoExpiry(t *testing.T) {
	st := expiry.Classify(nil, testNow, expiry.DefaultThresholds())

	assert.Equal(t, expiry.BucketNoExpiry, st.Bucket)
	assert.Nil(t, st.DaysRemaining, "sin endDate no hay días restantes")
}

func TestClassify_ExactamenteSieteDiasEsUrgente(t *testing.T) {
	end := testNow.Add(7 * 24 * time.Hour)
	st := expiry.Classify(&end, testNow, expiry.DefaultThresholds())

	require.NotNil(t, st.DaysRemaining)
	assert.Equal(t, 7, *st.DaysRemaining)
	assert.Equal(t, expiry.BucketExpiringUrgent, st.Bucket,
		"el día 7 todavía pertenece al tramo urgente")
}

func TestClassify_OchoDiasEsPronto(t *testing.T) {
	end := testNow.Add(8 * 24 * time.Hour)
	st := expiry.Classify(&end, testNow, expiry.DefaultThresholds())

	require.NotNil(t, st.DaysRemaining)
	assert.Equal(t, 8, *st.DaysRemaining)
	assert.Equal(t, expiry.BucketExpiringSoon, st.Bucket,
		"el día 8 cruza al tramo expiring_soon con corte 7/15")
}

func TestClassify_QuinceDiasEsPronto_DieciseisEsActivo(t *testing.T) {
	end15 := testNow.Add(15 * 24 * time.Hour)
	end16 := testNow.Add(16 * 24 * time.Hour)

	assert.Equal(t, expiry.BucketExpiringSoon,
		expiry.Classify(&end15, testNow, expiry.DefaultThresholds()).Bucket)
	assert.Equal(t, expiry.BucketActive,
		expiry.Classify(&end16, testNow, expiry.DefaultThresholds()).Bucket)
}

func TestClassify_VencidoAyerReportaMenosUno(t *testing.T) {
	end := testNow.Add(-24 * time.Hour)
	st := expiry.Classify(&end, testNow, expiry.DefaultThresholds())

	require.NotNil(t, st.DaysRemaining)
	assert.Equal(t, -1, *st.DaysRemaining)
	assert.Equal(t, expiry.BucketExpired, st.Bucket)
}

// El redondeo techo hace que cualquier hora de "hoy" cuente como 0 días:
// un vencimiento hoy a las 23:59 visto a las 00:01 no debe reportar -1.
func TestClassify_HoyCuentaComoCeroDias(t *testing.T) {
	manana := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC) // mismo día, más tarde
	st := expiry.Classify(&manana, testNow, expiry.DefaultThresholds())

	require.NotNil(t, st.DaysRemaining)
	assert.Equal(t, 0, *st.DaysRemaining)
	assert.Equal(t, expiry.BucketExpiringUrgent, st.Bucket)
}

// Determinismo: dos llamadas con la misma entrada siempre coinciden.
func TestClassify_Determinista(t *testing.T) {
	end := testNow.Add(42 * 24 * time.Hour)
	th := expiry.DefaultThresholds()

	st1 := expiry.Classify(&end, testNow, th)
	st2 := expiry.Classify(&end, testNow, th)

	assert.Equal(t, st1.Bucket, st2.Bucket)
	assert.Equal(t, *st1.DaysRemaining, *st2.DaysRemaining)
}

// Los umbrales los aporta el caller: con corte 7/30 el día 20 sigue en "pronto".
func TestClassify_UmbralesDelCaller(t *testing.T) {
	end := testNow.Add(20 * 24 * time.Hour)
	st := expiry.Classify(&end, testNow, expiry.Thresholds{UrgentDays: 7, SoonDays: 30})

	assert.Equal(t, expiry.BucketExpiringSoon, st.Bucket)
}
