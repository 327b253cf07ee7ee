// Package postgres implementa el Record Store sobre PostgreSQL hosteado
// (ej. DATABASE_URL de Supabase). El namespace completo vive en una tabla
// key/value; cada Set reemplaza el arreglo JSON de la clave.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
	"github.com/ecoshop/ecoshop-api/pkg/config"
)

var _ storage.RecordStore = (*Store)(nil)

// Store adaptador del Record Store sobre un pool pgx.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore crea el pool de conexiones y asegura la tabla de registros.
func NewStore(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close cierra el pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Get devuelve el valor de la clave, o (nil, nil) si no existe.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM records WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set reemplaza el valor completo de la clave (last write wins).
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO records (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave; es idempotente.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM records WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
