package repository

import (
	"context"

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// El email es único dentro de la colección, sin distinguir mayúsculas.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	Remove(ctx context.Context, id string) (bool, error)
	Find(ctx context.Context, pred func(*entity.User) bool) ([]*entity.User, error)
}
