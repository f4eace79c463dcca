package entity

import "time"

// Roles válidos para User dentro de la organización.
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario de la organización (admin o staff del tenant).
type User struct {
	ID           string
	OrgID        string
	CompanyID    string // opcional: usuario asociado a una empresa cliente
	Name         string
	Email        string
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // owner, admin, staff
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
