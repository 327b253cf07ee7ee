package records

import (
	"context"
	"encoding/json"

	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de la colección ecoShopUsers.
type UserRepo struct {
	store storage.RecordStore
}

// NewUserRepository construye el repositorio sobre el store inyectado.
func NewUserRepository(store storage.RecordStore) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) load(ctx context.Context) ([]*entity.User, error) {
	raw, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []*entity.User{}, nil
	}
	var list []*entity.User
	if err := json.Unmarshal(raw, &list); err != nil {
		// Payload corrupto: se lee como colección vacía.
		return []*entity.User{}, nil
	}
	return list, nil
}

func (r *UserRepo) save(ctx context.Context, list []*entity.User) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyUsers, raw)
}

// List devuelve la colección completa ([] si la clave no existe).
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.load(ctx)
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail busca por email sin distinguir mayúsculas. (nil, nil) si no hay.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.EmailMatches(email) {
			return u, nil
		}
	}
	return nil, nil
}

// Upsert valida y persiste el usuario. El email debe ser único en la
// colección: si otro registro ya lo usa devuelve ErrEmailAlreadyExists sin
// escribir. Con ID existente reemplaza en su posición.
func (r *UserRepo) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range list {
		if u.ID != user.ID && u.EmailMatches(user.Email) {
			return nil, domain.ErrEmailAlreadyExists
		}
	}

	if user.ID != "" {
		for i, u := range list {
			if u.ID == user.ID {
				list[i] = user
				if err := r.save(ctx, list); err != nil {
					return nil, err
				}
				return user, nil
			}
		}
	} else {
		user.ID = nextTimestampID(func(id string) bool {
			for _, u := range list {
				if u.ID == id {
					return true
				}
			}
			return false
		})
	}

	list = append(list, user)
	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	return user, nil
}

// Remove filtra el usuario y reescribe la colección (idempotente).
func (r *UserRepo) Remove(ctx context.Context, id string) (bool, error) {
	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	out := list[:0]
	removed := false
	for _, u := range list {
		if u.ID == id {
			removed = true
			continue
		}
		out = append(out, u)
	}
	if err := r.save(ctx, out); err != nil {
		return false, err
	}
	return removed, nil
}

// Find filtra la colección sin efectos de persistencia.
func (r *UserRepo) Find(ctx context.Context, pred func(*entity.User) bool) ([]*entity.User, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.User
	for _, u := range list {
		if pred(u) {
			out = append(out, u)
		}
	}
	return out, nil
}
