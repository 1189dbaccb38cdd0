package costing

import "github.com/shopspring/decimal"

// CurrencyPlaces decimales usados al presentar montos.
const CurrencyPlaces = 2

// FormattedTotals totales listos para presentación (2 decimales).
type FormattedTotals struct {
	TotalInventoryValue string
	TotalProfit         string
	TotalCOGS           string
}

// FormatTotals redondea cada total a CurrencyPlaces. No altera los valores originales.
func FormatTotals(t Totals) FormattedTotals {
	return FormattedTotals{
		TotalInventoryValue: FormatAmount(t.InventoryValue),
		TotalProfit:         FormatAmount(t.Profit),
		TotalCOGS:           FormatAmount(t.COGS),
	}
}

// FormatAmount representa un monto con exactamente CurrencyPlaces decimales.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(CurrencyPlaces)
}

// FormattedProduct fila por producto con montos a 2 decimales.
type FormattedProduct struct {
	ProductKey     string
	InventoryValue string
	COGS           string
	Profit         string
}

// FormattedReport reporte completo listo para presentación.
type FormattedReport struct {
	Totals   FormattedTotals
	Products []FormattedProduct
}

// FormatReport formatea totales y filas por producto, conservando el orden del reporte.
func FormatReport(r Report) FormattedReport {
	out := FormattedReport{
		Totals:   FormatTotals(r.Totals),
		Products: make([]FormattedProduct, 0, len(r.Products)),
	}
	for _, p := range r.Products {
		out.Products = append(out.Products, FormattedProduct{
			ProductKey:     p.ProductKey,
			InventoryValue: FormatAmount(p.Totals.InventoryValue),
			COGS:           FormatAmount(p.Totals.COGS),
			Profit:         FormatAmount(p.Totals.Profit),
		})
	}
	return out
}
