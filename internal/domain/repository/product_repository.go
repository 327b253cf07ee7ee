package repository

import (
	"context"

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Upsert asigna un ID nuevo cuando el registro no trae uno; si el ID ya
// existe, reemplaza el registro conservando su posición en la colección.
// El contexto llega hasta el driver del store para honrar la cancelación.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Upsert(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Remove(ctx context.Context, id string) (bool, error)
	Find(ctx context.Context, pred func(*entity.Product) bool) ([]*entity.Product, error)
}
