package entity

import "time"

// Tipos de licencia de software.
const (
	LicenseSubscription = "subscription"
	LicensePerpetual    = "perpetual"
)

// License representa una licencia de software de una empresa cliente.
// Las licencias perpetuas no tienen EndDate (nil): el clasificador las
// reporta como no_expiry y nunca generan alertas de vencimiento.
type License struct {
	ID           string
	OrgID        string
	CompanyID    string
	SoftwareName string
	Vendor       string
	LicenseType  string // subscription, perpetual
	LicenseKey   string
	Seats        int
	StartDate    *time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResourceID implementa expiry.Resource.
func (l *License) ResourceID() string { return l.ID }

// ResourceLabel devuelve "Software (Vendor)" para alertas.
func (l *License) ResourceLabel() string {
	if l.Vendor == "" {
		return l.SoftwareName
	}
	return l.SoftwareName + " (" + l.Vendor + ")"
}

// EndsAt devuelve el vencimiento de la licencia (nil = perpetua).
func (l *License) EndsAt() *time.Time { return l.EndDate }
