package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual, reintente")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// IsRetryable indica si el error es transitorio (colisión de escritura concurrente).
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}
