// Package tenant define el contexto explícito de tenant que viaja por todos
// los casos de uso. Reemplaza cualquier estado ambiental de sesión: ninguna
// función del core lee globals, lo que mantiene la lógica determinista y
// segura para tests en paralelo.
package tenant

// Context identifica al tenant y al usuario que ejecuta la operación.
// Se construye en el middleware de auth a partir de los claims del JWT y se
// pasa como parámetro; nunca se almacena en variables globales.
type Context struct {
	OrgID  string
	UserID string
	Role   string // owner, admin, staff
}

// Valid informa si el contexto tiene el mínimo necesario (OrgID).
func (c Context) Valid() bool { return c.OrgID != "" }

// IsOwner informa si el usuario es el propietario de la organización.
func (c Context) IsOwner() bool { return c.Role == "owner" }
