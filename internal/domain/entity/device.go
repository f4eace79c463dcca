package entity

import (
	"fmt"
	"time"
)

// Estados válidos para Device.
const (
	DeviceActive  = "active"
	DeviceRetired = "retired"
	DeviceLost    = "lost"
)

// Device representa un activo de TI registrado (laptop, CCTV, impresora, router...).
// La garantía del fabricante es el recurso vencible: WarrantyEndDate nil
// significa "sin fecha de vencimiento registrada".
type Device struct {
	ID             string
	OrgID          string
	CompanyID      string
	SiteID         string
	AssignedUserID string
	DeviceType     string
	Brand          string
	Model          string
	SerialNumber   string
	AssetTag       string
	PurchaseDate   *time.Time
	WarrantyEnd    *time.Time
	Status         string // active, retired, lost
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ResourceID implementa expiry.Resource.
func (d *Device) ResourceID() string { return d.ID }

// ResourceLabel devuelve una etiqueta legible para alertas ("Dell Latitude 5420 (SN123)").
func (d *Device) ResourceLabel() string {
	if d.Brand == "" && d.Model == "" {
		return d.SerialNumber
	}
	if d.SerialNumber == "" {
		return fmt.Sprintf("%s %s", d.Brand, d.Model)
	}
	return fmt.Sprintf("%s %s (%s)", d.Brand, d.Model, d.SerialNumber)
}

// EndsAt devuelve el fin de garantía (nil = sin vencimiento registrado).
func (d *Device) EndsAt() *time.Time { return d.WarrantyEnd }
