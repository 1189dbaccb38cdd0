// seed_fifo genera un script SQL para poblar fifo_purchases y fifo_sales a partir de un CSV
// exportado desde la hoja de cálculo de compras/ventas (codificación Windows-1252).
//
// Uso: go run ./cmd/seed_fifo [ruta/movimientos.csv] [ruta/salida.sql]
// Columnas esperadas: tipo;producto;lote;cantidad;costo_unitario;fecha
// (tipo = compra | venta; lote y costo_unitario vacíos en ventas; fecha YYYY-MM-DD).
// Por defecto escribe internal/infrastructure/postgres/migrations/002_seed_fifo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type movement struct {
	kind     string // compra | venta
	product  string
	batchID  int64
	quantity decimal.Decimal
	cost     decimal.Decimal
	date     time.Time
	line     int
}

func main() {
	csvPath := "movimientos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_fifo.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	movements, err := parseMovements(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	purchases, sales, err := writeSeed(out, movements, filepath.Base(csvPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d compras, %d ventas\n", outPath, purchases, sales)
}

// parseMovements lee el CSV ya decodificado a UTF-8. Acepta ';' o ',' como separador
// (se detecta en la cabecera) y coma decimal cuando el separador es ';'.
func parseMovements(r io.Reader) ([]movement, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	content := strings.TrimPrefix(string(raw), "\ufeff")
	header, _, _ := strings.Cut(content, "\n")

	cr := csv.NewReader(strings.NewReader(content))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	decimalComma := false
	if strings.Count(header, ";") > strings.Count(header, ",") {
		cr.Comma = ';'
		decimalComma = true
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	var out []movement
	for i, rec := range records {
		line := i + 1
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "tipo") {
			continue
		}
		if len(rec) < 4 || strings.TrimSpace(strings.Join(rec, "")) == "" {
			continue
		}
		m, err := parseRecord(rec, decimalComma)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		m.line = line
		out = append(out, m)
	}
	return out, nil
}

func parseRecord(rec []string, decimalComma bool) (movement, error) {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	number := func(s string) (decimal.Decimal, error) {
		if decimalComma {
			s = strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
		}
		return decimal.NewFromString(s)
	}

	m := movement{kind: strings.ToLower(field(0)), product: field(1)}
	if m.product == "" {
		return m, fmt.Errorf("producto vacío")
	}

	qty, err := number(field(3))
	if err != nil {
		return m, fmt.Errorf("cantidad %q: %w", field(3), err)
	}
	m.quantity = qty

	if d := field(5); d != "" {
		m.date, err = time.Parse("2006-01-02", d)
		if err != nil {
			return m, fmt.Errorf("fecha %q: %w", d, err)
		}
	}

	switch m.kind {
	case "compra":
		m.batchID, err = strconv.ParseInt(field(2), 10, 64)
		if err != nil {
			return m, fmt.Errorf("lote %q: %w", field(2), err)
		}
		m.cost, err = number(field(4))
		if err != nil {
			return m, fmt.Errorf("costo_unitario %q: %w", field(4), err)
		}
	case "venta":
	default:
		return m, fmt.Errorf("tipo desconocido %q (compra|venta)", m.kind)
	}
	return m, nil
}

// writeSeed escribe los INSERT. Las compras usan ON CONFLICT por (product_key, batch_id);
// las ventas se insertan en el orden del archivo, que es el orden de consumo FIFO.
func writeSeed(w io.Writer, movements []movement, origin string) (purchases, sales int, err error) {
	var b strings.Builder
	b.WriteString("-- Compras y ventas para el cálculo FIFO\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", origin)

	b.WriteString("-- 1. Compras (lotes)\n")
	for _, m := range movements {
		if m.kind != "compra" {
			continue
		}
		fmt.Fprintf(&b, "INSERT INTO fifo_purchases (product_key, batch_id, quantity, cost_per_unit, purchased_at)\n")
		fmt.Fprintf(&b, "VALUES ('%s', %d, %s, %s, %s)\n", escapeSQL(m.product), m.batchID, m.quantity.String(), m.cost.String(), sqlDate(m.date))
		b.WriteString("ON CONFLICT (product_key, batch_id) DO UPDATE SET quantity = EXCLUDED.quantity, cost_per_unit = EXCLUDED.cost_per_unit;\n")
		purchases++
	}

	b.WriteString("\n-- 2. Ventas (orden de registro)\n")
	for _, m := range movements {
		if m.kind != "venta" {
			continue
		}
		fmt.Fprintf(&b, "INSERT INTO fifo_sales (product_key, quantity, sold_at) VALUES ('%s', %s, %s);\n",
			escapeSQL(m.product), m.quantity.String(), sqlDate(m.date))
		sales++
	}

	_, err = io.WriteString(w, b.String())
	return purchases, sales, err
}

func sqlDate(t time.Time) string {
	if t.IsZero() {
		return "NOW()"
	}
	return "'" + t.Format("2006-01-02") + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
