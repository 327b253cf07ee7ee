// Package memstore implementa el Record Store en memoria, usado en tests y
// con STORE_DRIVER=memory en desarrollo. No sobrevive al reinicio.
package memstore

import (
	"context"
	"sync"

	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

var _ storage.RecordStore = (*Store)(nil)

// Store mapa protegido por RWMutex. Los valores se copian en Get y Set para
// que el caller no pueda mutar el estado interno por aliasing.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New construye un store vacío.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor, o (nil, nil) si la clave no existe.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set reemplaza el valor completo de la clave.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = cp
	return nil
}

// Remove elimina la clave; es idempotente.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
