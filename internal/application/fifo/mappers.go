package fifo

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/domain/costing"
)

// toRecords convierte el payload de la fuente en registros de dominio.
// Colecciones ausentes quedan vacías.
func toRecords(payload *dto.FIFODataResponse) map[string]costing.ProductRecords {
	if payload == nil {
		return map[string]costing.ProductRecords{}
	}
	records := make(map[string]costing.ProductRecords, len(payload.FIFOData))
	for key, p := range payload.FIFOData {
		r := costing.ProductRecords{
			Purchases: make([]costing.PurchaseBatch, 0, len(p.Purchases)),
			Sales:     make([]costing.SaleDemand, 0, len(p.Sales)),
		}
		for _, b := range p.Purchases {
			r.Purchases = append(r.Purchases, costing.PurchaseBatch{
				BatchID:     int64(b.BatchID),
				Quantity:    b.Quantity,
				CostPerUnit: b.CostPerUnit,
			})
		}
		for _, s := range p.Sales {
			r.Sales = append(r.Sales, costing.SaleDemand{Quantity: s.Quantity})
		}
		records[key] = r
	}
	return records
}

// toTotalsDTO formatea los totales a 2 decimales.
func toTotalsDTO(t costing.Totals) dto.FIFOTotalsDTO {
	f := costing.FormatTotals(t)
	return dto.FIFOTotalsDTO{
		TotalInventoryValue: f.TotalInventoryValue,
		TotalProfit:         f.TotalProfit,
		TotalCOGS:           f.TotalCOGS,
	}
}

func toProductDTOs(results []costing.ProductResult) []dto.FIFOProductMetricsDTO {
	out := make([]dto.FIFOProductMetricsDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.FIFOProductMetricsDTO{
			ProductKey:      r.ProductKey,
			InventoryValue:  costing.FormatAmount(r.Totals.InventoryValue),
			COGS:            costing.FormatAmount(r.Totals.COGS),
			Profit:          costing.FormatAmount(r.Totals.Profit),
			PurchasedQty:    r.PurchasedQty,
			SoldQty:         r.DemandQty,
			MatchedQty:      r.MatchedQty,
			UnmatchedDemand: r.UnmatchedDemand,
			RemainingQty:    r.RemainingQty,
		})
	}
	return out
}

func zeroTotalsDTO() dto.FIFOTotalsDTO {
	return toTotalsDTO(costing.Totals{
		InventoryValue: decimal.Zero,
		COGS:           decimal.Zero,
		Profit:         decimal.Zero,
	})
}
