package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FIFODataResponse payload de la API de datos (GET /inventory-value) y cuerpo de
// POST /api/inventory/fifo-metrics. fifoData puede venir ausente: se trata como vacío.
type FIFODataResponse struct {
	Message  string                    `json:"message,omitempty"`
	FIFOData map[string]FIFOProductDTO `json:"fifoData"`
}

// FIFOProductDTO compras y ventas crudas de un producto.
type FIFOProductDTO struct {
	Purchases []FIFOPurchaseDTO `json:"purchases"`
	Sales     []FIFOSaleDTO     `json:"sales"`
}

// FIFOPurchaseDTO lote de compra.
type FIFOPurchaseDTO struct {
	BatchID     BatchID         `json:"batch_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// FIFOSaleDTO venta (solo cantidad; las ventas no traen precio).
type FIFOSaleDTO struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// BatchID identificador ordinal del lote. Acepta número o string numérico en JSON.
type BatchID int64

// UnmarshalJSON implementa json.Unmarshaler.
func (b *BatchID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*b = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("batch_id inválido %q: %w", string(data), err)
	}
	*b = BatchID(n)
	return nil
}

// MarshalJSON implementa json.Marshaler.
func (b BatchID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(b))
}

// FIFOPeriod rango de fechas reenviado a la fuente. Fechas cero = sin filtro.
type FIFOPeriod struct {
	Start time.Time
	End   time.Time
}

// IsZero indica si no se pidió filtro de fechas.
func (p FIFOPeriod) IsZero() bool { return p.Start.IsZero() && p.End.IsZero() }

// FIFOMetricsRequest parámetros de GET /api/inventory/fifo-metrics.
type FIFOMetricsRequest struct {
	StartDate          string `query:"start_date"`           // YYYY-MM-DD
	EndDate            string `query:"end_date"`             // YYYY-MM-DD
	InventoryValueMode string `query:"inventory_value_mode"` // original | remaining
}

// FIFOMetricsDTO respuesta del cálculo FIFO. Los montos van como string con 2 decimales.
type FIFOMetricsDTO struct {
	RunID              string                  `json:"run_id"`
	Available          bool                    `json:"available"`
	Message            string                  `json:"message,omitempty"`
	InventoryValueMode string                  `json:"inventory_value_mode"`
	MarkupRate         string                  `json:"markup_rate"`
	Totals             FIFOTotalsDTO           `json:"totals"`
	Products           []FIFOProductMetricsDTO `json:"products"`
	GeneratedAt        time.Time               `json:"generated_at"`
}

// FIFOTotalsDTO totales generales formateados.
type FIFOTotalsDTO struct {
	TotalInventoryValue string `json:"total_inventory_value"`
	TotalProfit         string `json:"total_profit"`
	TotalCOGS           string `json:"total_cogs"`
}

// FIFOProductMetricsDTO detalle por producto.
type FIFOProductMetricsDTO struct {
	ProductKey      string          `json:"product_key"`
	InventoryValue  string          `json:"inventory_value"`
	COGS            string          `json:"cogs"`
	Profit          string          `json:"profit"`
	PurchasedQty    decimal.Decimal `json:"purchased_qty"`
	SoldQty         decimal.Decimal `json:"sold_qty"`
	MatchedQty      decimal.Decimal `json:"matched_qty"`
	UnmatchedDemand decimal.Decimal `json:"unmatched_demand"` // > 0 indica ventas sin lote de compra
	RemainingQty    decimal.Decimal `json:"remaining_qty"`
}
