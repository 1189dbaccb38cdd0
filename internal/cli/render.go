package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
)

// render imprime las métricas como tabla o como JSON indentado.
func render(w io.Writer, m *dto.FIFOMetricsDTO, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	if m.Message != "" && m.Available {
		printInfof(w, "%s", m.Message)
	}

	if len(m.Products) > 0 {
		rows := make([][]string, 0, len(m.Products))
		for _, p := range m.Products {
			rows = append(rows, []string{
				p.ProductKey,
				p.PurchasedQty.String(),
				p.SoldQty.String(),
				p.UnmatchedDemand.String(),
				p.InventoryValue,
				p.COGS,
				p.Profit,
			})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("PRODUCTO", "COMPRADO", "VENDIDO", "SIN LOTE", "INVENTARIO", "COGS", "UTILIDAD").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 0:
					return cellStyle
				default:
					return numberStyle
				}
			})
		_, _ = fmt.Fprintln(w, t.Render())
	}

	_, _ = fmt.Fprintf(w, "Valor de inventario (%s): %s\n", m.InventoryValueMode, m.Totals.TotalInventoryValue)
	_, _ = fmt.Fprintf(w, "Costo de ventas (COGS):  %s\n", m.Totals.TotalCOGS)
	_, _ = fmt.Fprintf(w, "Utilidad estimada:       %s\n", m.Totals.TotalProfit)

	for _, p := range m.Products {
		if p.UnmatchedDemand.IsPositive() {
			printWarnf(w, "%s: %s unidades vendidas sin lote de compra", p.ProductKey, p.UnmatchedDemand.String())
		}
	}
	if m.Available {
		printSuccess(w, fmt.Sprintf("%d productos calculados (run %s)", len(m.Products), m.RunID))
	}
	return nil
}
