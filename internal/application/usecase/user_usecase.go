package usecase

import (
	"context"

	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del back-office: listado y toggles
// de rol y estado. Los usuarios nunca se eliminan desde aquí.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios registrados.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// ToggleRole alterna el rol user ⇄ admin.
func (uc *UserUseCase) ToggleRole(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role == entity.RoleAdmin {
		user.Role = entity.RoleUser
	} else {
		user.Role = entity.RoleAdmin
	}
	return uc.saveUser(ctx, user)
}

// ToggleStatus alterna isActive. Un usuario inactivo no puede iniciar sesión.
func (uc *UserUseCase) ToggleStatus(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.IsActive = !user.IsActive
	return uc.saveUser(ctx, user)
}

func (uc *UserUseCase) saveUser(ctx context.Context, user *entity.User) (*dto.UserResponse, error) {
	if _, err := uc.repo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}, nil
}
