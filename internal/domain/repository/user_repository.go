package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetActiveByEmail busca un usuario activo por email (login y unicidad).
	GetActiveByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(active bool) ([]*entity.User, error)
	// CountActiveByRole cuenta usuarios activos con el rol dado
	// (guarda del último administrador).
	CountActiveByRole(role entity.Role) (int64, error)
	Count() (int64, error)
}
