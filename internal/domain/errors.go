package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrSourceUnavailable = errors.New("fuente de datos no disponible")
	ErrNoData            = errors.New("sin datos disponibles")
	ErrUnsupportedFormat = errors.New("formato de exportación no soportado")
	ErrInvalidValueMode  = errors.New("modo de valorización de inventario inválido")
)
