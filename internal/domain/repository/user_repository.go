package repository

import "github.com/jvaldiviae/cyberlink-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Count existe para el bootstrap idempotente del admin inicial.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Count() (int, error)
}
