package entity

import "time"

// Site es una sede física de una Company (oficina, bodega, sucursal).
type Site struct {
	ID        string
	OrgID     string
	CompanyID string
	Name      string
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
