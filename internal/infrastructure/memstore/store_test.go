package memstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshop/ecoshop-api/internal/infrastructure/memstore"
)

func TestMemStore_GetClaveAusente_DevuelveNil(t *testing.T) {
	s := memstore.New()

	raw, err := s.Get(context.Background(), "noExiste")
	require.NoError(t, err)
	assert.Nil(t, raw, "una clave ausente debe leerse como nil sin error")
}

func TestMemStore_SetGet_RoundTrip(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "ecoShopProducts", []byte(`[{"id":"1"}]`)))

	raw, err := s.Get(ctx, "ecoShopProducts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(raw))
}

func TestMemStore_SetSobrescribe(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))

	raw, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(raw))
}

func TestMemStore_Remove_EsIdempotente(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Remove(ctx, "k"))

	raw, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, raw)

	// Remover de nuevo no debe fallar.
	require.NoError(t, s.Remove(ctx, "k"))
}

func TestMemStore_DevuelveCopias(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	original := []byte("inmutable")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'X'

	raw, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "inmutable", string(raw), "mutar el slice del caller no debe afectar lo almacenado")

	raw[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "inmutable", string(again), "mutar el slice devuelto no debe afectar lo almacenado")
}
