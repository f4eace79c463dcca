package entity

import "time"

// Tipos de contrato AMC.
const (
	AMCComprehensive    = "comprehensive"
	AMCNonComprehensive = "non_comprehensive"
	AMCLabourOnly       = "labour_only"
)

// AMCContract representa un contrato anual de mantenimiento sobre los activos
// de una empresa cliente. EndDate nil = contrato sin fecha de cierre (raro,
// pero el clasificador lo trata como "sin vencimiento" en vez de fallar).
type AMCContract struct {
	ID            string
	OrgID         string
	CompanyID     string
	Name          string
	AMCType       string // ver constantes AMC*
	StartDate     *time.Time
	EndDate       *time.Time
	InternalNotes string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ResourceID implementa expiry.Resource.
func (c *AMCContract) ResourceID() string { return c.ID }

// ResourceLabel devuelve el nombre del contrato para alertas.
func (c *AMCContract) ResourceLabel() string { return c.Name }

// EndsAt devuelve el fin de cobertura del contrato.
func (c *AMCContract) EndsAt() *time.Time { return c.EndDate }
