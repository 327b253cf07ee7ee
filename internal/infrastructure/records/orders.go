package records

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo repositorio de la colección ecoShopOrders.
type OrderRepo struct {
	store storage.RecordStore
}

// NewOrderRepository construye el repositorio sobre el store inyectado.
func NewOrderRepository(store storage.RecordStore) *OrderRepo {
	return &OrderRepo{store: store}
}

func (r *OrderRepo) load(ctx context.Context) ([]*entity.Order, error) {
	raw, err := r.store.Get(ctx, storage.KeyOrders)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []*entity.Order{}, nil
	}
	var list []*entity.Order
	if err := json.Unmarshal(raw, &list); err != nil {
		// Payload corrupto: se lee como colección vacía.
		return []*entity.Order{}, nil
	}
	return list, nil
}

func (r *OrderRepo) save(ctx context.Context, list []*entity.Order) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyOrders, raw)
}

// List devuelve la colección completa ([] si la clave no existe).
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.load(ctx)
}

// GetByID devuelve la orden o (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

// Upsert valida y persiste la orden. Con ID existente reemplaza en su
// posición (transiciones de estado); sin ID genera uno y agrega al final.
func (r *OrderRepo) Upsert(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if order.ID != "" {
		for i, o := range list {
			if o.ID == order.ID {
				list[i] = order
				if err := r.save(ctx, list); err != nil {
					return nil, err
				}
				return order, nil
			}
		}
	} else {
		order.ID = nextTimestampID(func(id string) bool {
			for _, o := range list {
				if o.ID == id {
					return true
				}
			}
			return false
		})
	}

	list = append(list, order)
	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	return order, nil
}

// Remove filtra la orden y reescribe la colección (idempotente).
func (r *OrderRepo) Remove(ctx context.Context, id string) (bool, error) {
	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	out := list[:0]
	removed := false
	for _, o := range list {
		if o.ID == id {
			removed = true
			continue
		}
		out = append(out, o)
	}
	if err := r.save(ctx, out); err != nil {
		return false, err
	}
	return removed, nil
}

// FindByCustomerEmail devuelve las órdenes del comprador (email sin
// distinguir mayúsculas), en el orden de creación.
func (r *OrderRepo) FindByCustomerEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Order
	for _, o := range list {
		if strings.EqualFold(o.CustomerInfo.Email, email) {
			out = append(out, o)
		}
	}
	return out, nil
}
