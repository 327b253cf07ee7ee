// Package cart implementa el sincronizador del carrito: carga, mutación y
// persistencia del carrito de la identidad activa.
//
// Máquina de estados por sesión:
//
//	NoIdentity          carrito vacío, nada persistido
//	IdentityActive(id)  líneas cargadas desde ecoShopCart_<id>
//
// Activate(id) entra a IdentityActive cargando el carrito persistido (o vacío
// si no hay). Deactivate() descarta las líneas en memoria sin borrar la clave.
// Cambiar de identidad equivale a salir y volver a entrar: como cada mutación
// es write-through, nunca hay estado sin flushear al cambiar.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

// Synchronizer posee el ciclo de vida del carrito de una identidad.
// Los totales consultan el precio vigente del producto, nunca uno congelado.
type Synchronizer struct {
	store      storage.RecordStore
	products   repository.ProductRepository
	identityID string
	lines      []entity.CartLine
}

// NewSynchronizer construye el sincronizador en estado NoIdentity.
func NewSynchronizer(store storage.RecordStore, products repository.ProductRepository) *Synchronizer {
	return &Synchronizer{store: store, products: products}
}

// Active reporta si hay una identidad activa.
func (s *Synchronizer) Active() bool {
	return s.identityID != ""
}

// IdentityID devuelve la identidad activa ("" en NoIdentity).
func (s *Synchronizer) IdentityID() string {
	return s.identityID
}

// Activate carga el carrito persistido de la identidad. Si ya había otra
// identidad activa, equivale a Deactivate + Activate. Un valor ausente o
// corrupto se carga como carrito vacío.
func (s *Synchronizer) Activate(ctx context.Context, identityID string) error {
	if identityID == "" {
		return fmt.Errorf("%w: identidad vacía", domain.ErrValidation)
	}
	raw, err := s.store.Get(ctx, storage.CartKey(identityID))
	if err != nil {
		return fmt.Errorf("cargar carrito: %w", err)
	}
	var lines []entity.CartLine
	if raw != nil {
		if err := json.Unmarshal(raw, &lines); err != nil {
			lines = nil // payload corrupto: carrito vacío
		}
	}
	s.identityID = identityID
	s.lines = lines
	return nil
}

// Deactivate vuelve a NoIdentity. Las líneas en memoria se descartan; la
// clave persistida queda intacta para la próxima sesión.
func (s *Synchronizer) Deactivate() {
	s.identityID = ""
	s.lines = nil
}

func (s *Synchronizer) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.cartOrEmpty())
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.CartKey(s.identityID), raw)
}

func (s *Synchronizer) cartOrEmpty() []entity.CartLine {
	if s.lines == nil {
		return []entity.CartLine{}
	}
	return s.lines
}

// AddItem agrega qty unidades del producto. Si ya hay una línea con ese
// producto acumula la cantidad en vez de duplicar la línea. qty <= 0 se
// interpreta como 1. Persiste el carrito completo tras la mutación.
func (s *Synchronizer) AddItem(ctx context.Context, productID string, qty int) error {
	if !s.Active() {
		return domain.ErrNoSession
	}
	if qty <= 0 {
		qty = 1
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("buscar producto: %w", err)
	}
	if p == nil {
		return domain.ErrNotFound
	}
	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, entity.CartLine{ProductID: productID, Quantity: qty})
	}
	return s.persist(ctx)
}

// RemoveItem elimina la línea del producto y persiste.
func (s *Synchronizer) RemoveItem(ctx context.Context, productID string) error {
	if !s.Active() {
		return domain.ErrNoSession
	}
	out := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	s.lines = out
	return s.persist(ctx)
}

// SetQuantity fija la cantidad de la línea; qty <= 0 equivale a RemoveItem.
func (s *Synchronizer) SetQuantity(ctx context.Context, productID string, qty int) error {
	if !s.Active() {
		return domain.ErrNoSession
	}
	if qty <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = qty
			break
		}
	}
	// Sin línea para ese producto la operación no cambia nada, pero la
	// escritura ocurre igual que en cualquier mutación.
	return s.persist(ctx)
}

// Clear vacía el carrito y persiste el arreglo vacío.
func (s *Synchronizer) Clear(ctx context.Context) error {
	if !s.Active() {
		return domain.ErrNoSession
	}
	s.lines = nil
	return s.persist(ctx)
}

// Lines devuelve una copia de las líneas actuales.
func (s *Synchronizer) Lines() []entity.CartLine {
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems suma las cantidades de todas las líneas. Puro.
func (s *Synchronizer) TotalItems() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice suma cantidad × precio vigente de cada línea. El precio se
// consulta en vivo: si el producto cambió de precio después de agregarse, el
// total refleja el precio nuevo. Una línea cuyo producto ya no existe
// contribuye cero.
func (s *Synchronizer) TotalPrice(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range s.lines {
		p, err := s.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("buscar producto: %w", err)
		}
		if p == nil {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total, nil
}
