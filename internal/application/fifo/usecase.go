package fifo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/application/ports"
	"github.com/jhoicas/inventario-fifo/internal/domain"
	"github.com/jhoicas/inventario-fifo/internal/domain/costing"
	"github.com/jhoicas/inventario-fifo/pkg/logger"
)

// MessageFetchFailed mensaje visible para el usuario cuando la fuente no responde.
const MessageFetchFailed = "error al obtener los datos de inventario"

// Recorder recibe las métricas operativas de cada cálculo (Prometheus en producción).
type Recorder interface {
	ObserveRun(source, result string, elapsed time.Duration)
	SetUnmatchedDemand(product string, qty float64)
}

// Config parámetros del cálculo.
type Config struct {
	// SourceName etiqueta para métricas y logs ("api", "postgres").
	SourceName string
	// DefaultMode modo de valorización si la petición no indica uno.
	DefaultMode costing.InventoryValueMode
	// MarkupRate margen de la política de precio estimado; nil usa costing.DefaultMarkupRate.
	MarkupRate *decimal.Decimal
	// Exporters formato ("pdf", "xlsx") → exportador.
	Exporters map[string]ports.ReportExporter
}

// MetricsUseCase orquesta fetch → ledgers → emparejamiento FIFO → formateo.
// Cada invocación construye sus propias copias: las ejecuciones son independientes
// y un "refresh" simplemente reemplaza el resultado anterior.
type MetricsUseCase struct {
	source   ports.FIFOSource
	cfg      Config
	markup   decimal.Decimal
	log      *logger.Logger
	recorder Recorder
	now      func() time.Time
}

// NewMetricsUseCase construye el caso de uso. recorder puede ser nil.
func NewMetricsUseCase(source ports.FIFOSource, cfg Config, log *logger.Logger, recorder Recorder) *MetricsUseCase {
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = costing.InventoryValueOriginal
	}
	markup := costing.DefaultMarkupRate
	if cfg.MarkupRate != nil {
		markup = *cfg.MarkupRate
	}
	if cfg.SourceName == "" {
		cfg.SourceName = "api"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MetricsUseCase{
		source:   source,
		cfg:      cfg,
		markup:   markup,
		log:      log,
		recorder: recorder,
		now:      time.Now,
	}
}

// GetMetrics obtiene compras y ventas de la fuente y calcula inventario, COGS y utilidad.
//
// Retorna:
//   - (metrics, nil) si todo sale bien.
//   - domain.ErrInvalidInput si fechas o modo son inválidos.
//   - (metrics vacío con Available=false, domain.ErrSourceUnavailable) si la fuente falla.
func (uc *MetricsUseCase) GetMetrics(ctx context.Context, req dto.FIFOMetricsRequest) (*dto.FIFOMetricsDTO, error) {
	mode, err := uc.resolveMode(req.InventoryValueMode)
	if err != nil {
		return nil, err
	}
	period, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	log := uc.log.ForRun(runID)
	start := uc.now()

	if uc.source == nil {
		return uc.empty(runID, mode, MessageFetchFailed), fmt.Errorf("%w: fuente no configurada", domain.ErrSourceUnavailable)
	}
	payload, err := uc.source.FetchFIFOData(ctx, period)
	if err != nil {
		log.Error().Err(err).Str("source", uc.cfg.SourceName).Msg("fifo: no se pudieron obtener los datos")
		uc.observe(uc.cfg.SourceName, "fetch_error", start)
		return uc.empty(runID, mode, MessageFetchFailed), fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	metrics := uc.compute(runID, log, payload, mode)
	uc.observe(uc.cfg.SourceName, "ok", start)
	return metrics, nil
}

// ComputeFromPayload calcula las métricas sobre un payload ya disponible (cuerpo de la petición, archivo).
func (uc *MetricsUseCase) ComputeFromPayload(
	_ context.Context,
	payload *dto.FIFODataResponse,
	modeStr string,
) (*dto.FIFOMetricsDTO, error) {
	mode, err := uc.resolveMode(modeStr)
	if err != nil {
		return nil, err
	}
	runID := uuid.New().String()
	start := uc.now()
	metrics := uc.compute(runID, uc.log.ForRun(runID), payload, mode)
	uc.observe("payload", "ok", start)
	return metrics, nil
}

// Export calcula las métricas y las entrega en el formato pedido.
// Retorna (bytes, content-type, nombre de archivo).
func (uc *MetricsUseCase) Export(
	ctx context.Context,
	req dto.FIFOMetricsRequest,
	format string,
) ([]byte, string, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "pdf"
	}
	exporter, ok := uc.cfg.Exporters[format]
	if !ok {
		return nil, "", "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	metrics, err := uc.GetMetrics(ctx, req)
	if err != nil {
		return nil, "", "", err
	}
	if !metrics.Available {
		return nil, "", "", domain.ErrNoData
	}

	data, err := exporter.Export(ctx, metrics)
	if err != nil {
		return nil, "", "", fmt.Errorf("fifo: exportar %s: %w", format, err)
	}
	filename := fmt.Sprintf("fifo-metrics-%s.%s", metrics.GeneratedAt.Format("20060102-150405"), exporter.Extension())
	return data, exporter.ContentType(), filename, nil
}

func (uc *MetricsUseCase) compute(
	runID string,
	log *logger.Logger,
	payload *dto.FIFODataResponse,
	mode costing.InventoryValueMode,
) *dto.FIFOMetricsDTO {
	if payload == nil || payload.FIFOData == nil {
		msg := ""
		if payload != nil {
			msg = payload.Message
		}
		return uc.empty(runID, mode, msg)
	}

	ledgers := costing.BuildLedgers(toRecords(payload))
	for _, l := range ledgers {
		for _, a := range l.Anomalies() {
			log.Warn().
				Str("product", a.ProductKey).
				Str("kind", a.Kind).
				Int64("batch_id", a.BatchID).
				Str("value", a.Value.String()).
				Msg("fifo: dato anómalo en la fuente")
		}
	}

	engine := costing.NewEngine(
		costing.WithInventoryValueMode(mode),
		costing.WithPricing(costing.NewMarkupPricing(uc.markup)),
	)
	report := engine.ComputeTotals(ledgers)

	for _, p := range report.Products {
		qty, _ := p.UnmatchedDemand.Float64()
		if uc.recorder != nil {
			uc.recorder.SetUnmatchedDemand(p.ProductKey, qty)
		}
		if p.UnmatchedDemand.IsPositive() {
			log.Warn().
				Str("product", p.ProductKey).
				Str("unmatched_demand", p.UnmatchedDemand.String()).
				Msg("fifo: ventas sin lote de compra")
		}
	}

	log.Info().
		Int("products", len(report.Products)).
		Str("mode", string(mode)).
		Str("total_cogs", report.Totals.COGS.String()).
		Msg("fifo: cálculo completado")

	return &dto.FIFOMetricsDTO{
		RunID:              runID,
		Available:          true,
		Message:            payload.Message,
		InventoryValueMode: string(mode),
		MarkupRate:         uc.markup.String(),
		Totals:             toTotalsDTO(report.Totals),
		Products:           toProductDTOs(report.Products),
		GeneratedAt:        uc.now(),
	}
}

// empty estado "sin datos": totales en cero y mensaje para el usuario.
func (uc *MetricsUseCase) empty(runID string, mode costing.InventoryValueMode, msg string) *dto.FIFOMetricsDTO {
	return &dto.FIFOMetricsDTO{
		RunID:              runID,
		Available:          false,
		Message:            msg,
		InventoryValueMode: string(mode),
		MarkupRate:         uc.markup.String(),
		Totals:             zeroTotalsDTO(),
		Products:           []dto.FIFOProductMetricsDTO{},
		GeneratedAt:        uc.now(),
	}
}

func (uc *MetricsUseCase) resolveMode(s string) (costing.InventoryValueMode, error) {
	if strings.TrimSpace(s) == "" {
		return uc.cfg.DefaultMode, nil
	}
	mode, err := costing.ParseInventoryValueMode(s)
	if err != nil {
		return "", errors.Join(domain.ErrInvalidInput, err)
	}
	return mode, nil
}

func (uc *MetricsUseCase) observe(source, result string, start time.Time) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.ObserveRun(source, result, uc.now().Sub(start))
}
