package entity

import "time"

// Estados de suscripción válidos para una Organization.
const (
	SubscriptionTrialing  = "trialing"
	SubscriptionActive    = "active"
	SubscriptionPastDue   = "past_due"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// Organization representa el tenant de nivel superior. Todo recurso
// (Company, Site, User, Device, AMCContract, License) pertenece a una.
// El Slug es el subdominio público: único global e inmutable tras el signup.
type Organization struct {
	ID      string
	Name    string
	Slug    string
	OwnerID string

	Email       string
	Phone       string
	Industry    string
	CompanySize string // 1-10, 11-50, 51-200, 200+

	PlanID             string
	SubscriptionStatus string     // ver constantes Subscription*
	TrialEndsAt        *time.Time // nil = sin período de prueba vigente

	// Overrides de flags booleanos sobre el plan (solo features, no límites).
	FeatureOverrides map[Feature]bool

	Ticketing TicketingSettings

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TicketingSettings son las credenciales de la integración de mesa de ayuda
// externa. Guardarlas con Enabled=true exige el feature ticketing_integration
// en el plan efectivo del tenant.
type TicketingSettings struct {
	Enabled bool
	BaseURL string
	APIKey  string
}
