package entity

import (
	"strings"
	"time"
)

// Role rol cerrado de usuario. Se normaliza una sola vez con ParseRole
// en el borde de la aplicación; el dominio nunca compara strings libres.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRADOR"
	RoleOperator      Role = "OPERADOR"
)

// ParseRole normaliza y valida un rol recibido como texto.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdministrator:
		return RoleAdministrator, true
	case RoleOperator:
		return RoleOperator, true
	}
	return "", false
}

// String devuelve el rol como texto (para claims JWT y respuestas).
func (r Role) String() string { return string(r) }

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         Role
	Lifecycle
	CreatedAt time.Time
}
