package costing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fifo/internal/domain"
)

// InventoryValueMode define cómo se valoriza el inventario de cada producto.
type InventoryValueMode string

const (
	// InventoryValueOriginal suma cantidad original * costo de todos los lotes, antes de emparejar.
	// Es el comportamiento histórico del reporte: sobrevalora el inventario cuando hay ventas.
	InventoryValueOriginal InventoryValueMode = "original"
	// InventoryValueRemaining suma solo lo que queda en cada lote tras emparejar las ventas.
	InventoryValueRemaining InventoryValueMode = "remaining"
)

// ParseInventoryValueMode interpreta el modo; vacío equivale a InventoryValueOriginal.
func ParseInventoryValueMode(s string) (InventoryValueMode, error) {
	switch InventoryValueMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", InventoryValueOriginal:
		return InventoryValueOriginal, nil
	case InventoryValueRemaining:
		return InventoryValueRemaining, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidValueMode, s)
}

// Engine motor de emparejamiento FIFO. Es puro: no modifica los ledgers recibidos
// y puede invocarse concurrentemente.
type Engine struct {
	pricing PricingPolicy
	mode    InventoryValueMode
}

// Option configura el Engine.
type Option func(*Engine)

// WithPricing reemplaza la política de precio estimado.
func WithPricing(p PricingPolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.pricing = p
		}
	}
}

// WithInventoryValueMode fija el modo de valorización del inventario.
func WithInventoryValueMode(m InventoryValueMode) Option {
	return func(e *Engine) {
		if m != "" {
			e.mode = m
		}
	}
}

// NewEngine construye el motor. Por defecto: margen del 30 % y valorización original.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		pricing: NewMarkupPricing(DefaultMarkupRate),
		mode:    InventoryValueOriginal,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode devuelve el modo de valorización configurado.
func (e *Engine) Mode() InventoryValueMode { return e.mode }

// ComputeTotals empareja cada producto y acumula los totales generales.
// Los productos se procesan en orden de ProductKey para que el detalle sea estable.
func (e *Engine) ComputeTotals(ledgers map[string]ProductLedger) Report {
	keys := make([]string, 0, len(ledgers))
	for k := range ledgers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	report := Report{
		Totals:   zeroTotals(),
		Products: make([]ProductResult, 0, len(keys)),
	}
	for _, k := range keys {
		res := e.MatchProduct(ledgers[k])
		report.Totals = report.Totals.Add(res.Totals)
		report.Products = append(report.Products, res)
	}
	return report
}

// MatchProduct consume la demanda de ventas contra los lotes en el orden del ledger.
// Las cantidades restantes se llevan en acumuladores por posición; el ledger no se modifica.
//
// Por cada lote, mientras le quede cantidad y haya ventas pendientes:
// qty = min(lote, venta al frente); COGS += qty*costo; Profit += qty*(precio estimado - costo).
// La demanda que excede lo comprado queda en UnmatchedDemand, sin error.
func (e *Engine) MatchProduct(l ProductLedger) ProductResult {
	res := ProductResult{
		ProductKey:      l.ProductKey,
		Totals:          zeroTotals(),
		PurchasedQty:    decimal.Zero,
		DemandQty:       decimal.Zero,
		MatchedQty:      decimal.Zero,
		UnmatchedDemand: decimal.Zero,
		RemainingQty:    decimal.Zero,
	}

	remaining := make([]decimal.Decimal, len(l.Purchases))
	for i, b := range l.Purchases {
		remaining[i] = b.Quantity
		res.PurchasedQty = res.PurchasedQty.Add(b.Quantity)
		if e.mode == InventoryValueOriginal {
			res.Totals.InventoryValue = res.Totals.InventoryValue.Add(b.Quantity.Mul(b.CostPerUnit))
		}
	}

	pending := make([]decimal.Decimal, len(l.Sales))
	for i, s := range l.Sales {
		pending[i] = s.Quantity
		res.DemandQty = res.DemandQty.Add(s.Quantity)
	}

	front := 0
	for i, b := range l.Purchases {
		price := e.pricing.EstimatedPrice(b.CostPerUnit)
		margin := price.Sub(b.CostPerUnit)

		for remaining[i].IsPositive() && front < len(pending) {
			// Ventas en cero (o negativas) se consideran ya atendidas.
			if !pending[front].IsPositive() {
				front++
				continue
			}
			qty := decimal.Min(remaining[i], pending[front])

			res.Totals.COGS = res.Totals.COGS.Add(qty.Mul(b.CostPerUnit))
			res.Totals.Profit = res.Totals.Profit.Add(qty.Mul(margin))
			res.MatchedQty = res.MatchedQty.Add(qty)

			remaining[i] = remaining[i].Sub(qty)
			pending[front] = pending[front].Sub(qty)
			if pending[front].IsZero() {
				front++
			}
		}
	}

	for _, q := range pending[front:] {
		if q.IsPositive() {
			res.UnmatchedDemand = res.UnmatchedDemand.Add(q)
		}
	}
	for i, q := range remaining {
		res.RemainingQty = res.RemainingQty.Add(q)
		if e.mode == InventoryValueRemaining {
			res.Totals.InventoryValue = res.Totals.InventoryValue.Add(q.Mul(l.Purchases[i].CostPerUnit))
		}
	}
	return res
}

func zeroTotals() Totals {
	return Totals{
		InventoryValue: decimal.Zero,
		COGS:           decimal.Zero,
		Profit:         decimal.Zero,
	}
}
