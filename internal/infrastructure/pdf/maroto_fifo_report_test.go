package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
)

func sampleReport() *dto.FIFOMetricsDTO {
	return &dto.FIFOMetricsDTO{
		RunID:              "run-1",
		Available:          true,
		Message:            "Inventario calculado",
		InventoryValueMode: "original",
		MarkupRate:         "0.3",
		Totals: dto.FIFOTotalsDTO{
			TotalInventoryValue: "1234.50",
			TotalProfit:         "3.30",
			TotalCOGS:           "11.00",
		},
		Products: []dto.FIFOProductMetricsDTO{{
			ProductKey:      "ARROZ-500",
			InventoryValue:  "20.00",
			COGS:            "11.00",
			Profit:          "3.30",
			PurchasedQty:    decimal.NewFromInt(10),
			SoldQty:         decimal.NewFromInt(12),
			MatchedQty:      decimal.NewFromInt(10),
			UnmatchedDemand: decimal.NewFromInt(2),
			RemainingQty:    decimal.Zero,
		}},
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestMarotoFIFOReport_GeneraPDF(t *testing.T) {
	g := NewMarotoFIFOReport("en-US")

	data, err := g.Export(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe ser un documento PDF")
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}

func TestMarotoFIFOReport_ReporteNil(t *testing.T) {
	_, err := NewMarotoFIFOReport("en-US").Export(context.Background(), nil)
	assert.Error(t, err)
}

func TestMoney_SeparadoresPorIdioma(t *testing.T) {
	assert.Equal(t, "1,234.50", NewMarotoFIFOReport("en-US").money("1234.50"))
	assert.Equal(t, "0.00", NewMarotoFIFOReport("en-US").money("0.00"))
	assert.Equal(t, "n/a", NewMarotoFIFOReport("en-US").money("n/a"))
	// Idioma inválido cae a en-US
	assert.Equal(t, "1,234.50", NewMarotoFIFOReport("??").money("1234.50"))
}
