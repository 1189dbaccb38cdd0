package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/inventario-fifo/internal/application/fifo"
	"github.com/jhoicas/inventario-fifo/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FIFOMetrics *fifo.MetricsUseCase
	Metrics     *metrics.Metrics // opcional: habilita /metrics y métricas por petición
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(RequestMetrics(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Costeo FIFO
	invGroup := api.Group("/inventory")
	fifoHandler := NewFIFOHandler(deps.FIFOMetrics)
	invGroup.Get("/fifo-metrics", fifoHandler.GetMetrics)
	invGroup.Post("/fifo-metrics", fifoHandler.ComputeMetrics)
	invGroup.Get("/fifo-metrics/export", fifoHandler.Export)
}
