package cli

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fifo/internal/application/fifo"
	"github.com/jhoicas/inventario-fifo/internal/application/ports"
	"github.com/jhoicas/inventario-fifo/pkg/logger"
)

// Globals flags comunes a todos los comandos.
type Globals struct {
	Mode     string `help:"Valorización del inventario: original (cantidad comprada) o remaining (saldo tras ventas)." enum:"original,remaining" default:"original" env:"FIFO_INVENTORY_VALUE_MODE"`
	Markup   string `help:"Margen asumido sobre el costo para estimar el precio de venta." default:"0.30" env:"FIFO_MARKUP_RATE"`
	JSON     bool   `help:"Imprimir el resultado como JSON."`
	LogLevel string `help:"Nivel de log (trace, debug, info, warn, error)." default:"warn" env:"LOG_LEVEL"`
}

type Commands struct {
	Globals

	Compute ComputeCmd `cmd:"" help:"Calcula las métricas FIFO desde un archivo JSON (o stdin)."`
	Fetch   FetchCmd   `cmd:"" help:"Obtiene compras y ventas de la API de datos y calcula las métricas FIFO."`
}

// newUseCase arma el caso de uso con los flags globales. source puede ser nil (solo payloads).
func (g *Globals) newUseCase(source ports.FIFOSource, sourceName string, stderr io.Writer) (*fifo.MetricsUseCase, error) {
	markup, err := decimal.NewFromString(g.Markup)
	if err != nil {
		return nil, err
	}
	log := logger.NewWithWriter(stderr, g.LogLevel)
	return fifo.NewMetricsUseCase(source, fifo.Config{
		SourceName: sourceName,
		MarkupRate: &markup,
	}, log, nil), nil
}
