package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrganizationResponse representación pública de una organización.
type OrganizationResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	Email              string     `json:"email,omitempty"`
	Industry           string     `json:"industry,omitempty"`
	CompanySize        string     `json:"company_size,omitempty"`
	PlanID             string     `json:"plan_id"`
	SubscriptionStatus string     `json:"subscription_status"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// PlanResponse representación pública de un plan.
type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DisplayName  string          `json:"display_name"`
	Description  string          `json:"description"`
	PriceMonthly decimal.Decimal `json:"price_monthly"`
	PriceYearly  decimal.Decimal `json:"price_yearly"`
	MaxDevices   int             `json:"max_devices"`
	MaxUsers     int             `json:"max_users"`
	MaxCompanies int             `json:"max_companies"`
	Features     map[string]bool `json:"features"`
	IsPopular    bool            `json:"is_popular"`
	SortOrder    int             `json:"sort_order"`
}

// PlanListResponse lista de planes activos.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// UsageResponse consumo actual vs límites del plan efectivo.
type UsageResponse struct {
	Devices   UsageEntry `json:"devices"`
	Users     UsageEntry `json:"users"`
	Companies UsageEntry `json:"companies"`
}

// UsageEntry un contador con su límite (-1 = ilimitado).
type UsageEntry struct {
	Current int `json:"current"`
	Limit   int `json:"limit"`
}

// OrgMeResponse respuesta de GET /api/org/me: organización + plan efectivo + consumo.
type OrgMeResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Plan         PlanResponse         `json:"plan"`
	Usage        UsageResponse        `json:"usage"`
}

// OrgDashboardResponse conteos del dashboard del tenant.
type OrgDashboardResponse struct {
	CompaniesCount    int `json:"companies_count"`
	UsersCount        int `json:"users_count"`
	DevicesCount      int `json:"devices_count"`
	LicensesCount     int `json:"licenses_count"`
	ActiveWarranties  int `json:"active_warranties"`
	ExpiredWarranties int `json:"expired_warranties"`
	ActiveAMC         int `json:"active_amc"`
}

// TicketingSettingsRequest credenciales de la integración de ticketing.
// Guardarlas con Enabled=true requiere el feature ticketing_integration.
type TicketingSettingsRequest struct {
	Enabled bool   `json:"enabled"`
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
}
