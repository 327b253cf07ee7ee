package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/memstore"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/records"
)

func TestEnsureSeeded_SiembraCatalogoYAdmin(t *testing.T) {
	store := memstore.New()
	products := records.NewProductRepository(store)
	users := records.NewUserRepository(store)

	require.NoError(t, records.EnsureSeeded(ctx, products, users))

	list, err := products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8, "el catálogo inicial trae 8 productos")
	assert.Equal(t, "1", list[0].ID, "los productos sembrados conservan sus IDs preset")
	assert.Equal(t, "Bamboo Toothbrush Set", list[0].Name)

	admin, err := users.GetByEmail(ctx, records.SeedAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin-1", admin.ID)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "admin123", admin.PasswordHash, "el password nunca se guarda en texto plano")
}

func TestEnsureSeeded_EsIdempotente(t *testing.T) {
	store := memstore.New()
	products := records.NewProductRepository(store)
	users := records.NewUserRepository(store)

	require.NoError(t, records.EnsureSeeded(ctx, products, users))
	require.NoError(t, records.EnsureSeeded(ctx, products, users))

	list, err := products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8, "resembrar no debe duplicar el catálogo")

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "resembrar no debe duplicar el admin")
}

func TestEnsureSeeded_NoPisaCatalogoExistente(t *testing.T) {
	store := memstore.New()
	products := records.NewProductRepository(store)
	users := records.NewUserRepository(store)

	propio := botella()
	_, err := products.Upsert(ctx, propio)
	require.NoError(t, err)

	require.NoError(t, records.EnsureSeeded(ctx, products, users))

	list, err := products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "un catálogo no vacío no se resiembra")
	assert.Equal(t, "Botella de acero", list[0].Name)
}
