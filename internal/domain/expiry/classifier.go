// Package expiry implementa la clasificación de recursos con fecha de
// vencimiento (garantías de dispositivos, contratos AMC, licencias) en
// buckets de estado relativos a "ahora". Es un servicio de dominio puro:
// sin I/O, sin estado, misma entrada → misma salida.
package expiry

import (
	"math"
	"time"
)

// Bucket es el estado de vencimiento de un recurso.
type Bucket string

const (
	BucketNoExpiry       Bucket = "no_expiry"
	BucketActive         Bucket = "active"
	BucketExpiringSoon   Bucket = "expiring_soon"
	BucketExpiringUrgent Bucket = "expiring_urgent"
	BucketExpired        Bucket = "expired"
)

// Thresholds define los cortes de días para los buckets de "por vencer".
// Los call sites del dashboard usan escalas 7/15 y 7/30 simultáneamente,
// por eso los umbrales siempre los aporta el caller.
type Thresholds struct {
	UrgentDays int // 0..UrgentDays → expiring_urgent
	SoonDays   int // UrgentDays+1..SoonDays → expiring_soon
}

// DefaultThresholds son los cortes 7/15 que usa la mayoría de pantallas.
func DefaultThresholds() Thresholds {
	return Thresholds{UrgentDays: 7, SoonDays: 15}
}

// Status es el resultado de clasificar un recurso.
// DaysRemaining es nil cuando no hay fecha de vencimiento; negativo cuando
// el recurso ya venció (días transcurridos desde el vencimiento).
type Status struct {
	Bucket        Bucket
	DaysRemaining *int
}

// Resource es la capacidad mínima que comparten Device (garantía),
// AMCContract y License para poder clasificarse de forma polimórfica.
type Resource interface {
	ResourceID() string
	ResourceLabel() string
	EndsAt() *time.Time
}

// Classify ubica endDate en un bucket relativo a now.
//
// Los días restantes se calculan con techo sobre días completos:
// ceil((endDate - now) / 24h). Así "hoy a las 23:59" y "hoy a las 00:01"
// cuentan ambos como 0 días restantes, y un recurso vencido ayer reporta -1.
// endDate nil → no_expiry con DaysRemaining nil.
//
// Función pura: el caller valida las fechas antes de llegar aquí.
func Classify(endDate *time.Time, now time.Time, th Thresholds) Status {
	if endDate == nil {
		return Status{Bucket: BucketNoExpiry}
	}

	days := DaysUntil(*endDate, now)

	var bucket Bucket
	switch {
	case days < 0:
		bucket = BucketExpired
	case days <= th.UrgentDays:
		bucket = BucketExpiringUrgent
	case days <= th.SoonDays:
		bucket = BucketExpiringSoon
	default:
		bucket = BucketActive
	}
	return Status{Bucket: bucket, DaysRemaining: &days}
}

// DaysUntil devuelve los días completos hasta end, con redondeo techo.
func DaysUntil(end, now time.Time) int {
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}
