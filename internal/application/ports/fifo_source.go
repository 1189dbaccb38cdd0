package ports

import (
	"context"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
)

// FIFOSource puerto de salida hacia el colaborador externo que entrega compras y ventas
// agrupadas por producto (API de datos o base de datos).
// El contexto debe llevar timeout: la única espera del cálculo es esta lectura.
type FIFOSource interface {
	FetchFIFOData(ctx context.Context, period dto.FIFOPeriod) (*dto.FIFODataResponse, error)
}

// ReportExporter genera una representación descargable del reporte FIFO (PDF, XLSX).
type ReportExporter interface {
	Export(ctx context.Context, report *dto.FIFOMetricsDTO) ([]byte, error)
	ContentType() string
	Extension() string
}
