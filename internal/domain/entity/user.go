package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleCliente  = "cliente"
)

// Estados de usuario.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa un usuario de la aplicación de estacionamientos.
type User struct {
	ID                 string
	Name               string
	Username           string
	NormalizedUsername string // username plegado (case folding) para búsquedas
	Email              string
	NormalizedEmail    string
	Phone              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Role               string // admin, operador, cliente
	Status             string // active, inactive, suspended
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
