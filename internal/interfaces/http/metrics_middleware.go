package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// requestRecorder contrato mínimo que necesita el middleware; lo implementa *metrics.Metrics.
type requestRecorder interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// RequestMetrics registra método, ruta y status de cada petición.
// Se usa el patrón de ruta (/api/inventory/fifo-metrics) y no la URL cruda para acotar la cardinalidad.
func RequestMetrics(rec requestRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		rec.RecordHTTPRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
