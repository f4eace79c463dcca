package dto

import "time"

// ── Dispositivos ──────────────────────────────────────────────────────────────

// CreateDeviceRequest alta de un dispositivo. Las fechas llegan como
// "2006-01-02"; WarrantyEnd vacío = sin vencimiento registrado.
type CreateDeviceRequest struct {
	CompanyID      string `json:"company_id"`
	SiteID         string `json:"site_id"`
	AssignedUserID string `json:"assigned_user_id"`
	DeviceType     string `json:"device_type"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	SerialNumber   string `json:"serial_number"`
	AssetTag       string `json:"asset_tag"`
	PurchaseDate   string `json:"purchase_date"`
	WarrantyEnd    string `json:"warranty_end_date"`
	Status         string `json:"status"`
}

// DeviceResponse representación de un dispositivo con su estado de garantía.
type DeviceResponse struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"company_id"`
	SiteID         string     `json:"site_id,omitempty"`
	AssignedUserID string     `json:"assigned_user_id,omitempty"`
	DeviceType     string     `json:"device_type"`
	Brand          string     `json:"brand"`
	Model          string     `json:"model"`
	SerialNumber   string     `json:"serial_number"`
	AssetTag       string     `json:"asset_tag,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	WarrantyEnd    *time.Time `json:"warranty_end_date,omitempty"`
	Status         string     `json:"status"`
	WarrantyStatus string     `json:"warranty_status"` // bucket de vencimiento
	DaysRemaining  *int       `json:"days_remaining,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DeviceListResponse listado paginado de dispositivos.
type DeviceListResponse struct {
	Items []DeviceResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ── Contratos AMC ─────────────────────────────────────────────────────────────

// CreateAMCContractRequest alta de un contrato AMC.
type CreateAMCContractRequest struct {
	CompanyID     string `json:"company_id"`
	Name          string `json:"name"`
	AMCType       string `json:"amc_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	InternalNotes string `json:"internal_notes"`
}

// AMCContractResponse representación de un contrato AMC.
type AMCContractResponse struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	Name          string     `json:"name"`
	AMCType       string     `json:"amc_type"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Status        string     `json:"status"` // bucket de vencimiento
	DaysRemaining *int       `json:"days_remaining,omitempty"`
	InternalNotes string     `json:"internal_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AMCContractListResponse listado paginado de contratos.
type AMCContractListResponse struct {
	Items []AMCContractResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ── Licencias ─────────────────────────────────────────────────────────────────

// CreateLicenseRequest alta de una licencia. Para license_type=perpetual
// el EndDate se ignora (licencia sin vencimiento).
type CreateLicenseRequest struct {
	CompanyID    string `json:"company_id"`
	SoftwareName string `json:"software_name"`
	Vendor       string `json:"vendor"`
	LicenseType  string `json:"license_type"`
	LicenseKey   string `json:"license_key"`
	Seats        int    `json:"seats"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// LicenseResponse representación de una licencia con su estado.
type LicenseResponse struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	SoftwareName  string     `json:"software_name"`
	Vendor        string     `json:"vendor,omitempty"`
	LicenseType   string     `json:"license_type"`
	LicenseKey    string     `json:"license_key,omitempty"`
	Seats         int        `json:"seats"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Status        string     `json:"status"` // bucket de vencimiento
	DaysRemaining *int       `json:"days_remaining,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// LicenseListResponse listado paginado de licencias.
type LicenseListResponse struct {
	Items []LicenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LicenseExpirySummaryResponse resumen 7/15/30 de licencias por vencer.
type LicenseExpirySummaryResponse struct {
	Expiring7Days  int `json:"expiring_7_days"`
	Expiring15Days int `json:"expiring_15_days"`
	Expiring30Days int `json:"expiring_30_days"`
	Expired        int `json:"expired"`
}
