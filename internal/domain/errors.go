package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrProductNotFound = errors.New("producto no encontrado en el catálogo")
	ErrInvalidQuantity = errors.New("la cantidad debe ser al menos 1")
	ErrIndexOutOfRange = errors.New("índice de línea fuera de rango")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrValidation      = errors.New("validación fallida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrExportFailed    = errors.New("exportación fallida")
)
