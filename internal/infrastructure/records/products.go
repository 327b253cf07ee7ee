// Package records implementa los repositorios de colecciones sobre el Record
// Store: cada colección es un arreglo JSON bajo su clave del namespace
// ecoShop. Toda escritura persiste la colección completa (write-through).
//
// Un valor almacenado corrupto se trata como colección ausente: nunca se
// propaga un error de deserialización al caller.
package records

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de la colección ecoShopProducts.
type ProductRepo struct {
	store storage.RecordStore
}

// NewProductRepository construye el repositorio sobre el store inyectado.
func NewProductRepository(store storage.RecordStore) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) load(ctx context.Context) ([]*entity.Product, error) {
	raw, err := r.store.Get(ctx, storage.KeyProducts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []*entity.Product{}, nil
	}
	var list []*entity.Product
	if err := json.Unmarshal(raw, &list); err != nil {
		// Payload corrupto: se lee como colección vacía.
		return []*entity.Product{}, nil
	}
	return list, nil
}

func (r *ProductRepo) save(ctx context.Context, list []*entity.Product) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyProducts, raw)
}

// List devuelve la colección completa ([] si la clave no existe).
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.load(ctx)
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Upsert valida y persiste el producto. Con ID existente reemplaza el
// registro en su posición; sin ID genera uno desde el timestamp de creación
// (milisegundos) y agrega al final. Devuelve el registro almacenado.
func (r *ProductRepo) Upsert(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if product.ID != "" {
		for i, p := range list {
			if p.ID == product.ID {
				list[i] = product
				if err := r.save(ctx, list); err != nil {
					return nil, err
				}
				return product, nil
			}
		}
	} else {
		product.ID = nextTimestampID(func(id string) bool {
			for _, p := range list {
				if p.ID == id {
					return true
				}
			}
			return false
		})
		if product.CreatedAt == "" {
			product.CreatedAt = time.Now().Format(time.RFC3339)
		}
	}

	list = append(list, product)
	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	return product, nil
}

// Remove filtra el producto y reescribe la colección. Devuelve si algo se
// eliminó; la escritura ocurre igual (idempotente).
func (r *ProductRepo) Remove(ctx context.Context, id string) (bool, error) {
	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	out := list[:0]
	removed := false
	for _, p := range list {
		if p.ID == id {
			removed = true
			continue
		}
		out = append(out, p)
	}
	if err := r.save(ctx, out); err != nil {
		return false, err
	}
	return removed, nil
}

// Find filtra la colección sin efectos de persistencia.
func (r *ProductRepo) Find(ctx context.Context, pred func(*entity.Product) bool) ([]*entity.Product, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range list {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// nextTimestampID genera un ID desde el reloj en milisegundos, avanzando
// hasta encontrar uno libre si dos creaciones caen en el mismo instante.
func nextTimestampID(taken func(string) bool) string {
	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !taken(id) {
			return id
		}
		n++
	}
}
