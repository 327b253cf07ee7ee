// Package redisstore implementa el Record Store sobre Redis, para despliegues
// donde el estado debe vivir fuera del proceso. Las claves ya llegan
// namespaced (prefijo ecoShop), así que se usan tal cual.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

var _ storage.RecordStore = (*Store)(nil)

// Store adaptador del Record Store sobre un cliente Redis.
type Store struct {
	client *redis.Client
}

// New conecta con Redis a partir de una URL (redis://host:puerto/db) y
// verifica la conexión con un ping.
func New(redisURL string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: URL inválida: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: conectar: %w", err)
	}

	return &Store{client: client}, nil
}

// Close cierra el cliente.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get devuelve el valor de la clave, o (nil, nil) si no existe.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return val, nil
}

// Set reemplaza el valor completo de la clave, sin TTL: el store es el
// sistema de registro, no un caché.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave; es idempotente.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis: remove %s: %w", key, err)
	}
	return nil
}
