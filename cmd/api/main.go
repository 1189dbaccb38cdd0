// @title        Inventario FIFO API
// @version      1.0
// @description  Costeo FIFO de inventario: valor de inventario, costo de ventas y utilidad estimada.
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"

	_ "github.com/jhoicas/inventario-fifo/docs"
	"github.com/jhoicas/inventario-fifo/internal/application/fifo"
	"github.com/jhoicas/inventario-fifo/internal/application/ports"
	"github.com/jhoicas/inventario-fifo/internal/domain/costing"
	"github.com/jhoicas/inventario-fifo/internal/infrastructure/dataapi"
	infrapdf "github.com/jhoicas/inventario-fifo/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-fifo/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/inventario-fifo/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/inventario-fifo/internal/interfaces/http"
	"github.com/jhoicas/inventario-fifo/pkg/config"
	"github.com/jhoicas/inventario-fifo/pkg/logger"
	"github.com/jhoicas/inventario-fifo/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("fifo_source", cfg.FIFO.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()
	appMetrics := metrics.New("inventario")

	// Fuente de compras y ventas: API de datos (defecto) o tablas propias en PostgreSQL.
	var source ports.FIFOSource
	switch cfg.FIFO.Source {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
		if err != nil {
			log.Fatal().Err(err).Str("target", postgres.Target(cfg.DB)).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		source = postgres.NewFIFOSourceRepository(pool)
	default:
		source = dataapi.NewClient(dataapi.Config{
			BaseURL:          cfg.DataAPI.BaseURL,
			Timeout:          time.Duration(cfg.DataAPI.TimeoutSeconds) * time.Second,
			FailureThreshold: uint32(cfg.DataAPI.BreakerFailures),
			OpenTimeout:      time.Duration(cfg.DataAPI.BreakerOpenSeconds) * time.Second,
			OnStateChange: func(name string, _, to gobreaker.State) {
				appMetrics.SetCircuitBreakerState(name, int(to))
			},
		}, log)
	}

	mode, err := costing.ParseInventoryValueMode(cfg.FIFO.InventoryValueMode)
	if err != nil {
		log.Fatal().Err(err).Msg("FIFO_INVENTORY_VALUE_MODE")
	}
	markup, err := decimal.NewFromString(cfg.FIFO.MarkupRate)
	if err != nil {
		log.Fatal().Err(err).Msg("FIFO_MARKUP_RATE")
	}

	// Reportes descargables: PDF (maroto) y Excel (excelize).
	pdfReport := infrapdf.NewMarotoFIFOReport(cfg.FIFO.ReportLanguage)
	xlsxReport := infraxlsx.NewExcelFIFOReport()

	fifoUC := fifo.NewMetricsUseCase(source, fifo.Config{
		SourceName:  cfg.FIFO.Source,
		DefaultMode: mode,
		MarkupRate:  &markup,
		Exporters: map[string]ports.ReportExporter{
			pdfReport.Extension():  pdfReport,
			xlsxReport.Extension(): xlsxReport,
		},
	}, log, appMetrics)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario FIFO API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "fifo_source": cfg.FIFO.Source})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FIFOMetrics: fifoUC,
		Metrics:     appMetrics,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
