package entity

import "time"

// Company representa una empresa cliente administrada por la organización
// (el tenant revendedor). Los dispositivos y licencias cuelgan de ella.
type Company struct {
	ID           string
	OrgID        string
	Name         string
	GSTNumber    string
	Address      string
	ContactName  string
	ContactEmail string
	ContactPhone string
	AMCStatus    string // active, expired, not_applicable
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
