// Package costing implementa el motor de costeo FIFO: construcción de ledgers por producto
// y emparejamiento de ventas contra lotes de compra en orden ascendente de batch_id.
package costing

import "github.com/shopspring/decimal"

// PurchaseBatch lote de compra de un producto a un único costo unitario.
// BatchID define el orden FIFO dentro del producto.
type PurchaseBatch struct {
	BatchID     int64
	Quantity    decimal.Decimal
	CostPerUnit decimal.Decimal
}

// SaleDemand cantidad vendida pendiente de emparejar contra lotes.
type SaleDemand struct {
	Quantity decimal.Decimal
}

// ProductRecords registros crudos de un producto tal como llegan de la fuente externa.
type ProductRecords struct {
	Purchases []PurchaseBatch
	Sales     []SaleDemand
}

// ProductLedger copia independiente de los registros de un producto, lista para el motor.
// Purchases está ordenado por BatchID ascendente; Sales conserva el orden de entrega de la API.
type ProductLedger struct {
	ProductKey string
	Purchases  []PurchaseBatch
	Sales      []SaleDemand
}

// Totals acumuladores monetarios del cálculo (sin redondear).
type Totals struct {
	InventoryValue decimal.Decimal
	COGS           decimal.Decimal
	Profit         decimal.Decimal
}

// Add devuelve la suma de t y o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		InventoryValue: t.InventoryValue.Add(o.InventoryValue),
		COGS:           t.COGS.Add(o.COGS),
		Profit:         t.Profit.Add(o.Profit),
	}
}

// ProductResult resultado del emparejamiento FIFO para un producto.
type ProductResult struct {
	ProductKey string
	Totals     Totals

	PurchasedQty    decimal.Decimal // suma de cantidades originales de los lotes
	DemandQty       decimal.Decimal // suma de cantidades vendidas
	MatchedQty      decimal.Decimal // unidades emparejadas (base del COGS)
	UnmatchedDemand decimal.Decimal // demanda sin lote disponible
	RemainingQty    decimal.Decimal // unidades que quedan en los lotes tras emparejar
}

// Report totales agregados más el detalle por producto, ordenado por ProductKey.
type Report struct {
	Totals   Totals
	Products []ProductResult
}

// UnmatchedProducts devuelve los productos con demanda sin emparejar.
func (r Report) UnmatchedProducts() []ProductResult {
	var out []ProductResult
	for _, p := range r.Products {
		if p.UnmatchedDemand.IsPositive() {
			out = append(out, p)
		}
	}
	return out
}
