package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}
