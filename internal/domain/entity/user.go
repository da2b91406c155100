package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa una cuenta de operador del panel administrativo.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN | USER
	CreatedAt    time.Time
}
