package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUserAlreadyExists = errors.New("el usuario o el email ya están registrados")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidDateRange  = errors.New("la fecha de fin es anterior a la fecha de inicio")
	ErrInvalidAmount     = errors.New("monto inválido")
	ErrInvalidPeriod     = errors.New("la duración del período debe ser mayor a cero")
	ErrCommitFailed      = errors.New("no se pudieron confirmar los períodos generados")
)
