// Package xlsx exporta el reporte FIFO a una hoja de cálculo Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/application/ports"
)

var _ ports.ReportExporter = (*ExcelFIFOReport)(nil)

const (
	summarySheet  = "Resumen"
	productsSheet = "Productos"
)

var productHeaders = []string{
	"Producto", "Comprado", "Vendido", "Emparejado", "Sin lote", "Restante",
	"Inventario", "COGS", "Utilidad",
}

// ExcelFIFOReport implementa ports.ReportExporter con excelize.
// Los montos se escriben como números (no texto) para que la hoja pueda sumarlos.
type ExcelFIFOReport struct{}

// NewExcelFIFOReport construye el exportador.
func NewExcelFIFOReport() *ExcelFIFOReport { return &ExcelFIFOReport{} }

// ContentType implementa ports.ReportExporter.
func (e *ExcelFIFOReport) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension implementa ports.ReportExporter.
func (e *ExcelFIFOReport) Extension() string { return "xlsx" }

// Export genera el libro con una hoja de resumen y otra con el detalle por producto.
func (e *ExcelFIFOReport) Export(_ context.Context, report *dto.FIFOMetricsDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("xlsx: reporte vacío")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	summary := [][]interface{}{
		{"Generado", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Run", report.RunID},
		{"Mensaje", report.Message},
		{"Modo de valorización", report.InventoryValueMode},
		{"Margen asumido", amount(report.MarkupRate)},
		{"Valor de inventario", amount(report.Totals.TotalInventoryValue)},
		{"Utilidad", amount(report.Totals.TotalProfit)},
		{"COGS", amount(report.Totals.TotalCOGS)},
	}
	for i, r := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return nil, fmt.Errorf("xlsx: escribir resumen: %w", err)
		}
	}

	if _, err := f.NewSheet(productsSheet); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	if err := f.SetSheetRow(productsSheet, "A1", &productHeaders); err != nil {
		return nil, fmt.Errorf("xlsx: escribir encabezados: %w", err)
	}
	for i, p := range report.Products {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			p.ProductKey,
			p.PurchasedQty.InexactFloat64(),
			p.SoldQty.InexactFloat64(),
			p.MatchedQty.InexactFloat64(),
			p.UnmatchedDemand.InexactFloat64(),
			p.RemainingQty.InexactFloat64(),
			amount(p.InventoryValue),
			amount(p.COGS),
			amount(p.Profit),
		}
		if err := f.SetSheetRow(productsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: escribir producto %s: %w", p.ProductKey, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// amount convierte un monto formateado a número; si no es numérico se deja como texto.
func amount(s string) interface{} {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.InexactFloat64()
}
