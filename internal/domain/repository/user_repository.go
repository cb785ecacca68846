package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
