package costing

import "github.com/shopspring/decimal"

// DefaultMarkupRate margen fijo asumido sobre el costo (30 %).
var DefaultMarkupRate = decimal.New(3, -1)

// PricingPolicy estima el precio de venta de una unidad a partir de su costo.
// El motor FIFO solo conoce este contrato; las ventas no traen precio real.
type PricingPolicy interface {
	EstimatedPrice(cost decimal.Decimal) decimal.Decimal
}

// PricingFunc adapta una función a PricingPolicy.
type PricingFunc func(cost decimal.Decimal) decimal.Decimal

// EstimatedPrice implementa PricingPolicy.
func (f PricingFunc) EstimatedPrice(cost decimal.Decimal) decimal.Decimal { return f(cost) }

// MarkupPricing precio = costo * (1 + Rate).
type MarkupPricing struct {
	Rate decimal.Decimal
}

// NewMarkupPricing construye la política de margen fijo.
func NewMarkupPricing(rate decimal.Decimal) MarkupPricing {
	return MarkupPricing{Rate: rate}
}

// EstimatedPrice implementa PricingPolicy.
func (p MarkupPricing) EstimatedPrice(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.NewFromInt(1).Add(p.Rate))
}
