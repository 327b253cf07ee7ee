// Package sqlitestore implementa el Record Store sobre un archivo SQLite
// embebido (driver puro Go). Es el backend por defecto: persistencia local
// del proceso que sobrevive reinicios, análoga al storage local original.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

var _ storage.RecordStore = (*Store)(nil)

// Store guarda cada clave del namespace como una fila (key, value).
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo de base de datos y asegura el esquema.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	// Una sola conexión: el store es single-writer y SQLite serializa igual.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: crear esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la base de datos.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get devuelve el valor de la clave, o (nil, nil) si no existe.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: get %s: %w", key, err)
	}
	return value, nil
}

// Set reemplaza el valor completo de la clave (last write wins).
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("sqlite: set %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave; es idempotente.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("sqlite: remove %s: %w", key, err)
	}
	return nil
}
