package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/memstore"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/records"
)

func newUserRepo() *records.UserRepo {
	return records.NewUserRepository(memstore.New())
}

func maria() *entity.User {
	return &entity.User{
		FirstName: "María",
		LastName:  "Gómez",
		Email:     "maria@example.com",
		Role:      entity.RoleUser,
		IsActive:  true,
	}
}

func TestUserRepo_Upsert_GeneraID(t *testing.T) {
	repo := newUserRepo()

	stored, err := repo.Upsert(ctx, maria())
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
}

func TestUserRepo_Upsert_EmailDuplicado_Rechaza(t *testing.T) {
	repo := newUserRepo()

	_, err := repo.Upsert(ctx, maria())
	require.NoError(t, err)

	otra := maria()
	otra.FirstName = "Otra"
	_, err = repo.Upsert(ctx, otra)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserRepo_Upsert_EmailDuplicadoCaseInsensitive(t *testing.T) {
	repo := newUserRepo()

	_, err := repo.Upsert(ctx, maria())
	require.NoError(t, err)

	otra := maria()
	otra.Email = "MARIA@EXAMPLE.COM"
	_, err = repo.Upsert(ctx, otra)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"la unicidad del email no distingue mayúsculas")
}

func TestUserRepo_Upsert_MismoUsuarioConservaSuEmail(t *testing.T) {
	repo := newUserRepo()

	stored, err := repo.Upsert(ctx, maria())
	require.NoError(t, err)

	stored.FirstName = "María José"
	_, err = repo.Upsert(ctx, stored)
	require.NoError(t, err, "actualizar al dueño del email no es un duplicado")

	found, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "María José", found.FirstName)
}

func TestUserRepo_GetByEmail_NoDistingueMayusculas(t *testing.T) {
	repo := newUserRepo()

	_, err := repo.Upsert(ctx, maria())
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, "Maria@Example.Com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "maria@example.com", found.Email)
}

func TestUserRepo_GetByEmail_Inexistente_DevuelveNilNil(t *testing.T) {
	repo := newUserRepo()

	found, err := repo.GetByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}
