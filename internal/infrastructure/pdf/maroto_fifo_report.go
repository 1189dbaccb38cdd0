// Package pdf genera el reporte FIFO de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación + run_id               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Inventario | Utilidad | COGS                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Comprado | Vendido | Sin lote | COGS ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: modo de valorización + margen asumido               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/application/ports"
)

var _ ports.ReportExporter = (*MarotoFIFOReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 190, Green: 60, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFIFOReport implementa ports.ReportExporter usando Maroto v2.
type MarotoFIFOReport struct {
	printer *message.Printer
}

// NewMarotoFIFOReport construye el generador. lang controla separadores de miles
// y decimales de los montos (ej. "es-CO", "en-US").
func NewMarotoFIFOReport(lang string) *MarotoFIFOReport {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &MarotoFIFOReport{printer: message.NewPrinter(tag)}
}

// ContentType implementa ports.ReportExporter.
func (g *MarotoFIFOReport) ContentType() string { return "application/pdf" }

// Extension implementa ports.ReportExporter.
func (g *MarotoFIFOReport) Extension() string { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoFIFOReport) Export(_ context.Context, report *dto.FIFOMetricsDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Métricas de inventario FIFO", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(report.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(report.Products)...)

	m.AddRows(row.New(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoFIFOReport) headerRow(r *dto.FIFOMetricsDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("MÉTRICAS DE INVENTARIO (FIFO)", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(r.Message, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Run: "+r.RunID, props.Text{
				Size: 6.5, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: los tres totales del reporte.
func (g *MarotoFIFOReport) summaryRow(t dto.FIFOTotalsDTO) core.Row {
	box := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorPrimary, Top: 2,
			}),
			text.New("$"+g.money(value), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 8,
			}),
		)
	}
	return row.New(20).Add(
		box("VALOR DE INVENTARIO", t.TotalInventoryValue),
		box("UTILIDAD", t.TotalProfit),
		box("COGS", t.TotalCOGS),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Comprado", 1, align.Right),
		h("Vendido", 1, align.Right),
		h("Sin lote", 1, align.Right),
		h("Inventario", 2, align.Right),
		h("COGS", 2, align.Right),
		h("Utilidad", 2, align.Right),
	)
}

// tableRows: una fila por producto; la demanda sin lote se resalta.
func (g *MarotoFIFOReport) tableRows(products []dto.FIFOProductMetricsDTO) []core.Row {
	result := make([]core.Row, 0, len(products))
	cell := func(s string, size int, a align.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
		}))
	}
	for _, p := range products {
		var unmatchedColor *props.Color
		if p.UnmatchedDemand.IsPositive() {
			unmatchedColor = colorWarn
		}
		result = append(result, row.New(7).Add(
			cell(p.ProductKey, 3, align.Left, nil),
			cell(g.qty(p.PurchasedQty), 1, align.Right, nil),
			cell(g.qty(p.SoldQty), 1, align.Right, nil),
			cell(g.qty(p.UnmatchedDemand), 1, align.Right, unmatchedColor),
			cell("$"+g.money(p.InventoryValue), 2, align.Right, nil),
			cell("$"+g.money(p.COGS), 2, align.Right, nil),
			cell("$"+g.money(p.Profit), 2, align.Right, nil),
		))
	}
	return result
}

func footerRow(r *dto.FIFOMetricsDTO) core.Row {
	mode := "cantidad original comprada (antes de descontar ventas)"
	if r.InventoryValueMode == "remaining" {
		mode = "cantidad restante tras descontar ventas"
	}
	return row.New(12).Add(col.New(12).Add(
		text.New("Inventario valorizado por "+mode+".", props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
		text.New("Utilidad estimada con margen fijo de "+r.MarkupRate+" sobre el costo; las ventas no registran precio.", props.Text{
			Size: 7, Color: colorGray, Top: 6,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea un monto ya redondeado ("1234.50") con separadores del idioma configurado.
func (g *MarotoFIFOReport) money(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return g.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func (g *MarotoFIFOReport) qty(d decimal.Decimal) string {
	return g.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(4)))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
