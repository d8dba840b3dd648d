package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrLastItem     = errors.New("el recibo debe conservar al menos un ítem de reparación")
	ErrSubmitted    = errors.New("el recibo ya fue enviado y es de solo lectura")
	ErrNotSubmitted = errors.New("el recibo aún no ha sido enviado")
)
