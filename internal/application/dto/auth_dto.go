package dto

// SignupRequest crea una organización (tenant) con su usuario propietario.
// Si Slug viene vacío se deriva del nombre.
type SignupRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	OwnerName     string `json:"owner_name"`
	OwnerEmail    string `json:"owner_email"`
	OwnerPhone    string `json:"owner_phone"`
	OwnerPassword string `json:"owner_password"`
	Industry      string `json:"industry"`
	CompanySize   string `json:"company_size"` // 1-10, 11-50, 51-200, 200+
}

// SignupResponse resultado del signup.
type SignupResponse struct {
	Organization OrganizationResponse `json:"organization"`
	User         UserResponse         `json:"user"`
	Token        string               `json:"token"`
}

// LoginRequest credenciales de un usuario del tenant.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + datos básicos tras autenticarse.
type LoginResponse struct {
	Token        string               `json:"token"`
	User         UserResponse         `json:"user"`
	Organization OrganizationResponse `json:"organization"`
}

// SlugCheckResponse disponibilidad de un subdominio.
type SlugCheckResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
