package dto

import "time"

// CreateCompanyRequest alta de una empresa cliente.
type CreateCompanyRequest struct {
	Name         string `json:"name"`
	GSTNumber    string `json:"gst_number"`
	Address      string `json:"address"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	AMCStatus    string `json:"amc_status"`
	Notes        string `json:"notes"`
}

// CompanyResponse representación de una empresa cliente.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	GSTNumber    string    `json:"gst_number,omitempty"`
	Address      string    `json:"address,omitempty"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	AMCStatus    string    `json:"amc_status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateSiteRequest alta de una sede.
type CreateSiteRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

// SiteResponse representación de una sede.
type SiteResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SiteListResponse listado paginado de sedes.
type SiteListResponse struct {
	Items []SiteResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateUserRequest alta de un usuario del tenant.
type CreateUserRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// UserResponse representación de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
