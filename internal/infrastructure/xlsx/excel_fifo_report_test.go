package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/infrastructure/xlsx"
)

func TestExcelFIFOReport_Export(t *testing.T) {
	report := &dto.FIFOMetricsDTO{
		RunID:              "run-1",
		Available:          true,
		InventoryValueMode: "original",
		MarkupRate:         "0.3",
		Totals: dto.FIFOTotalsDTO{
			TotalInventoryValue: "20.00",
			TotalProfit:         "3.30",
			TotalCOGS:           "11.00",
		},
		Products: []dto.FIFOProductMetricsDTO{{
			ProductKey:      "P1",
			InventoryValue:  "20.00",
			COGS:            "11.00",
			Profit:          "3.30",
			PurchasedQty:    decimal.NewFromInt(10),
			SoldQty:         decimal.NewFromInt(7),
			MatchedQty:      decimal.NewFromInt(7),
			UnmatchedDemand: decimal.Zero,
			RemainingQty:    decimal.NewFromInt(3),
		}},
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	e := xlsx.NewExcelFIFOReport()
	data, err := e.Export(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", e.Extension())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumen", "Productos"}, f.GetSheetList())

	v, err := f.GetCellValue("Resumen", "B8")
	require.NoError(t, err)
	assert.Equal(t, "11", v)

	v, err = f.GetCellValue("Productos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "P1", v)

	v, err = f.GetCellValue("Productos", "F2")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestExcelFIFOReport_ReporteNil(t *testing.T) {
	_, err := xlsx.NewExcelFIFOReport().Export(context.Background(), nil)
	assert.Error(t, err)
}
