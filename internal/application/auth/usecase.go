// Package auth implementa el proveedor de identidad local: registro, login
// con bcrypt, sesiones JWT y suscripción a cambios de sesión.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/domain"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Session sesión activa notificada a los suscriptores. Nil significa que la
// identidad cerró sesión.
type Session struct {
	Token string
	User  dto.UserResponse
}

// UseCase casos de uso de autenticación y perfil.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig

	mu      sync.Mutex
	subs    map[int]func(*Session)
	nextSub int
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg, subs: make(map[int]func(*Session))}
}

// Register crea una identidad con rol "user": hashea el password con bcrypt
// y persiste. Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	if _, err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Login verifica email/password, genera JWT, notifica a los suscriptores y
// retorna token + usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp := &dto.LoginResponse{Token: token, User: toUserResponse(user)}
	uc.notify(&Session{Token: token, User: resp.User})
	return resp, nil
}

// GetSession resuelve el token a su perfil actual (lectura en vivo del
// store, no de los claims).
func (uc *UseCase) GetSession(ctx context.Context, token string) (*dto.UserResponse, error) {
	userID, _, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.FetchProfile(ctx, userID)
}

// Logout notifica el fin de sesión. Los tokens son stateless: no hay
// denylist, el token expira por su cuenta.
func (uc *UseCase) Logout() {
	uc.notify(nil)
}

// FetchProfile devuelve el perfil de la identidad.
func (uc *UseCase) FetchProfile(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

// UpdateProfile aplica un patch explícito al perfil: solo los campos
// presentes se modifican. Un password nuevo se rehashea con bcrypt.
func (uc *UseCase) UpdateProfile(ctx context.Context, id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if _, err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Subscribe registra un callback de cambio de sesión y devuelve la función
// para desuscribirse. El callback recibe nil cuando la sesión termina.
func (uc *UseCase) Subscribe(fn func(*Session)) func() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	id := uc.nextSub
	uc.nextSub++
	uc.subs[id] = fn
	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		delete(uc.subs, id)
	}
}

func (uc *UseCase) notify(s *Session) {
	uc.mu.Lock()
	fns := make([]func(*Session), 0, len(uc.subs))
	for _, fn := range uc.subs {
		fns = append(fns, fn)
	}
	uc.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
