package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/application/fifo"
	"github.com/jhoicas/inventario-fifo/internal/domain"
)

// FIFOHandler maneja las peticiones HTTP de métricas de costeo FIFO.
type FIFOHandler struct {
	uc *fifo.MetricsUseCase
}

// NewFIFOHandler construye el handler.
func NewFIFOHandler(uc *fifo.MetricsUseCase) *FIFOHandler {
	return &FIFOHandler{uc: uc}
}

// GetMetrics godoc
// @Summary      Métricas de inventario FIFO
// @Description  Obtiene compras y ventas de la fuente de datos y calcula valor de inventario,
//
//	costo de ventas (COGS) y utilidad estimada. Cada llamada recalcula desde cero.
//
// @Tags         inventory
// @Produce      json
// @Param        start_date            query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date              query  string  false  "Fecha final inclusive (YYYY-MM-DD)"
// @Param        inventory_value_mode  query  string  false  "original (defecto) | remaining"
// @Success      200  {object}  dto.FIFOMetricsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.FIFOMetricsDTO  "fuente no disponible: totales en cero"
// @Router       /api/inventory/fifo-metrics [get]
func (h *FIFOHandler) GetMetrics(c *fiber.Ctx) error {
	var req dto.FIFOMetricsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	metrics, err := h.uc.GetMetrics(c.Context(), req)
	if err != nil {
		return writeFIFOError(c, err, metrics)
	}
	return c.JSON(metrics)
}

// ComputeMetrics godoc
// @Summary      Calcular métricas FIFO desde un payload
// @Description  Calcula las métricas sobre compras y ventas enviadas en el cuerpo (mismo formato que la API de datos).
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        inventory_value_mode  query  string                 false  "original (defecto) | remaining"
// @Param        body                  body   dto.FIFODataResponse  true   "fifoData por producto"
// @Success      200  {object}  dto.FIFOMetricsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/fifo-metrics [post]
func (h *FIFOHandler) ComputeMetrics(c *fiber.Ctx) error {
	var payload dto.FIFODataResponse
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	metrics, err := h.uc.ComputeFromPayload(c.Context(), &payload, c.Query("inventory_value_mode"))
	if err != nil {
		return writeFIFOError(c, err, nil)
	}
	return c.JSON(metrics)
}

// Export godoc
// @Summary      Exportar métricas FIFO
// @Description  Descarga el reporte de métricas en PDF o Excel.
// @Tags         inventory
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format                query  string  false  "pdf (defecto) | xlsx"
// @Param        start_date            query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date              query  string  false  "Fecha final inclusive (YYYY-MM-DD)"
// @Param        inventory_value_mode  query  string  false  "original (defecto) | remaining"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/fifo-metrics/export [get]
func (h *FIFOHandler) Export(c *fiber.Ctx) error {
	var req dto.FIFOMetricsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	data, contentType, filename, err := h.uc.Export(c.Context(), req, c.Query("format"))
	if err != nil {
		return writeFIFOError(c, err, nil)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// writeFIFOError traduce los errores de dominio a respuestas HTTP.
// Si la fuente falló y hay métricas vacías, se devuelven con 502 para que el cliente
// muestre totales en cero junto al mensaje.
func writeFIFOError(c *fiber.Ctx, err error, metrics *dto.FIFOMetricsDTO) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidValueMode),
		errors.Is(err, domain.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSourceUnavailable):
		if metrics != nil {
			return c.Status(fiber.StatusBadGateway).JSON(metrics)
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SOURCE_UNAVAILABLE", Message: fifo.MessageFetchFailed})
	case errors.Is(err, domain.ErrNoData):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: "no hay datos de inventario para exportar"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
