package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
)

// User representa un usuario del back office. Los admins pueden estar
// asociados a una categoría (admins por categoría); el superadmin no.
// El flujo de login queda fuera del núcleo: los tokens se emiten por fuera.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       string // superadmin, admin
	CategoryID string // vacío para superadmin
	Status     string // active, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
