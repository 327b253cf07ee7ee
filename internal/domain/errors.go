package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrInvalidStatus      = errors.New("estado de orden inválido")
)
