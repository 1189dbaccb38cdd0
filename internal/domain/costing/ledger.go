package costing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BuildLedgers construye un ledger por producto a partir de los registros crudos.
// Los ledgers devueltos son copias: el motor nunca modifica los datos del caller.
func BuildLedgers(records map[string]ProductRecords) map[string]ProductLedger {
	ledgers := make(map[string]ProductLedger, len(records))
	for key, r := range records {
		ledgers[key] = BuildLedger(key, r)
	}
	return ledgers
}

// BuildLedger clona compras y ventas de un producto y ordena las compras por BatchID.
// No valida los datos: cantidades o costos negativos pasan tal cual (ver Anomalies).
func BuildLedger(key string, r ProductRecords) ProductLedger {
	purchases := make([]PurchaseBatch, len(r.Purchases))
	copy(purchases, r.Purchases)
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].BatchID < purchases[j].BatchID
	})

	sales := make([]SaleDemand, len(r.Sales))
	copy(sales, r.Sales)

	return ProductLedger{
		ProductKey: key,
		Purchases:  purchases,
		Sales:      sales,
	}
}

// Anomaly dato sospechoso detectado en un ledger. Se reporta, no se corrige.
type Anomaly struct {
	ProductKey string
	Kind       string // negative_quantity | negative_cost | negative_sale | duplicate_batch
	BatchID    int64
	Value      decimal.Decimal
}

// Anomalies lista los problemas de calidad de datos del ledger: cantidades o costos negativos
// y batch_id repetidos dentro del producto.
func (l ProductLedger) Anomalies() []Anomaly {
	var out []Anomaly
	seen := make(map[int64]bool, len(l.Purchases))
	for _, b := range l.Purchases {
		if seen[b.BatchID] {
			out = append(out, Anomaly{ProductKey: l.ProductKey, Kind: "duplicate_batch", BatchID: b.BatchID})
		}
		seen[b.BatchID] = true
		if b.Quantity.IsNegative() {
			out = append(out, Anomaly{ProductKey: l.ProductKey, Kind: "negative_quantity", BatchID: b.BatchID, Value: b.Quantity})
		}
		if b.CostPerUnit.IsNegative() {
			out = append(out, Anomaly{ProductKey: l.ProductKey, Kind: "negative_cost", BatchID: b.BatchID, Value: b.CostPerUnit})
		}
	}
	for _, s := range l.Sales {
		if s.Quantity.IsNegative() {
			out = append(out, Anomaly{ProductKey: l.ProductKey, Kind: "negative_sale", Value: s.Quantity})
		}
	}
	return out
}
