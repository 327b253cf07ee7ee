package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshop/ecoshop-api/internal/application/usecase"
	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/memstore"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/records"
)

func newUserUC(t *testing.T) (*usecase.UserUseCase, string) {
	t.Helper()
	users := records.NewUserRepository(memstore.New())
	stored, err := users.Upsert(ctx, &entity.User{
		FirstName: "Ana",
		LastName:  "Pérez",
		Email:     "ana@example.com",
		Role:      entity.RoleUser,
		IsActive:  true,
	})
	require.NoError(t, err)
	return usecase.NewUserUseCase(users), stored.ID
}

func TestToggleRole_AlternaUserAdmin(t *testing.T) {
	uc, id := newUserUC(t)

	out, err := uc.ToggleRole(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	out, err = uc.ToggleRole(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestToggleStatus_AlternaActivo(t *testing.T) {
	uc, id := newUserUC(t)

	out, err := uc.ToggleStatus(ctx, id)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	out, err = uc.ToggleStatus(ctx, id)
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestToggle_UsuarioInexistente(t *testing.T) {
	uc, _ := newUserUC(t)

	_, err := uc.ToggleRole(ctx, "fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.ToggleStatus(ctx, "fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
