package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Feature es el conjunto cerrado de flags de plan. Usar un tipo propio evita
// que un typo en la clave pase desapercibido como "feature desconocida".
type Feature string

const (
	FeatureAISupportBot         Feature = "ai_support_bot"
	FeatureQRCodes              Feature = "qr_codes"
	FeatureAPIAccess            Feature = "api_access"
	FeatureCustomBranding       Feature = "custom_branding"
	FeaturePrioritySupport      Feature = "priority_support"
	FeatureWhiteLabel           Feature = "white_label"
	FeatureExportReports        Feature = "export_reports"
	FeatureTicketingIntegration Feature = "ticketing_integration"
	FeatureEngineerPortal       Feature = "engineer_portal"
)

// KnownFeature informa si la clave pertenece al conjunto cerrado de flags.
func KnownFeature(f Feature) bool {
	switch f {
	case FeatureAISupportBot, FeatureQRCodes, FeatureAPIAccess,
		FeatureCustomBranding, FeaturePrioritySupport, FeatureWhiteLabel,
		FeatureExportReports, FeatureTicketingIntegration, FeatureEngineerPortal:
		return true
	}
	return false
}

// Unlimited es el valor centinela para límites numéricos sin tope.
const Unlimited = -1

// PlanFeatures agrupa los límites numéricos y flags booleanos de un plan.
// Un límite de -1 (Unlimited) significa "sin tope" y debe cortocircuitar
// antes de cualquier comparación numérica.
type PlanFeatures struct {
	MaxDevices   int
	MaxUsers     int
	MaxCompanies int

	Flags map[Feature]bool
}

// HasFlag informa si el flag está activo. Una clave fuera del enum conocido
// siempre devuelve false (nunca coincide en silencio).
func (f PlanFeatures) HasFlag(feature Feature) bool {
	if !KnownFeature(feature) {
		return false
	}
	return f.Flags[feature]
}

// Plan es una capa de datos de referencia: se administra fuera de este core
// y los casos de uso solo la leen.
type Plan struct {
	ID          string
	Name        string // free, pro, enterprise
	DisplayName string // "Free", "Pro", "Enterprise"
	Description string

	// Precios en INR (paise se maneja en la pasarela, aquí valor decimal).
	PriceMonthly decimal.Decimal
	PriceYearly  decimal.Decimal

	Features PlanFeatures

	IsActive  bool
	IsPopular bool
	SortOrder int
	CreatedAt time.Time
}

// DefaultPlans devuelve los tres planes de referencia con los que arranca la
// plataforma. cmd/seed_plans los inserta; PlanRepository los sirve después.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:          "plan_free",
			Name:        "free",
			DisplayName: "Free",
			Description: "Perfect for small teams getting started",
			Features: PlanFeatures{
				MaxDevices:   10,
				MaxUsers:     2,
				MaxCompanies: 1,
				Flags: map[Feature]bool{
					FeatureQRCodes: true,
				},
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			ID:           "plan_pro",
			Name:         "pro",
			DisplayName:  "Pro",
			Description:  "For growing businesses with more devices",
			PriceMonthly: decimal.NewFromInt(999),
			PriceYearly:  decimal.NewFromInt(9999),
			Features: PlanFeatures{
				MaxDevices:   100,
				MaxUsers:     10,
				MaxCompanies: 5,
				Flags: map[Feature]bool{
					FeatureAISupportBot:         true,
					FeatureQRCodes:              true,
					FeaturePrioritySupport:      true,
					FeatureExportReports:        true,
					FeatureTicketingIntegration: true,
					FeatureEngineerPortal:       true,
				},
			},
			IsActive:  true,
			IsPopular: true,
			SortOrder: 2,
		},
		{
			ID:           "plan_enterprise",
			Name:         "enterprise",
			DisplayName:  "Enterprise",
			Description:  "For large organizations with advanced needs",
			PriceMonthly: decimal.NewFromInt(2999),
			PriceYearly:  decimal.NewFromInt(29999),
			Features: PlanFeatures{
				MaxDevices:   Unlimited,
				MaxUsers:     Unlimited,
				MaxCompanies: Unlimited,
				Flags: map[Feature]bool{
					FeatureAISupportBot:         true,
					FeatureQRCodes:              true,
					FeatureAPIAccess:            true,
					FeatureCustomBranding:       true,
					FeaturePrioritySupport:      true,
					FeatureWhiteLabel:           true,
					FeatureExportReports:        true,
					FeatureTicketingIntegration: true,
					FeatureEngineerPortal:       true,
				},
			},
			IsActive:  true,
			SortOrder: 3,
		},
	}
}
