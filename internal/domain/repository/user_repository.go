package repository

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// ListAdmins devuelve los usuarios con rol admin (activos), para los
	// formularios de asignación y las vistas de stock por admin.
	ListAdmins() ([]*entity.User, error)
}
