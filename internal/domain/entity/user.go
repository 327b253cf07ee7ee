package entity

import (
	"fmt"
	"strings"

	"github.com/ecoshop/ecoshop-api/internal/domain"
)

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una identidad registrada en la tienda.
// PasswordHash nunca viaja en respuestas; los DTOs lo omiten.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"` // bcrypt
	Role         string `json:"role"`                   // user, admin
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt"` // RFC3339
}

// IsAdmin es el único punto de decisión de autorización por rol.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Name devuelve el nombre completo para mostrar.
func (u *User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// EmailMatches compara emails sin distinguir mayúsculas.
func (u *User) EmailMatches(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// Validate verifica los campos obligatorios antes de persistir.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return fmt.Errorf("%w: role debe ser user o admin", domain.ErrValidation)
	}
	return nil
}
