package repository

import "github.com/puntoventa/bodega-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios (auth/RBAC).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByEmail devuelve nil si no existe.
	GetByEmail(email string) (*entity.User, error)
}
