package repository

import (
	"context"

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	List(ctx context.Context) ([]*entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Upsert(ctx context.Context, order *entity.Order) (*entity.Order, error)
	Remove(ctx context.Context, id string) (bool, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*entity.Order, error)
}
