package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/domain"
)

const payloadJSON = `{
  "message": "corte mensual",
  "fifoData": {
    "P1": {
      "purchases": [
        {"batch_id": 2, "quantity": 5, "cost_per_unit": 3.00},
        {"batch_id": 1, "quantity": 5, "cost_per_unit": 1.00}
      ],
      "sales": [{"quantity": 7}]
    },
    "P2": {
      "purchases": [{"batch_id": 1, "quantity": 2, "cost_per_unit": 1.50}],
      "sales": [{"quantity": 4}]
    }
  }
}`

// run parsea y ejecuta args sobre una instancia fresca de Commands.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var cmds Commands
	var stdout, stderr bytes.Buffer

	parser, err := kong.New(&cmds,
		kong.Name("fifo"),
		kong.Writers(&stdout, &stderr),
		kong.Bind(&cmds.Globals),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return stdout.String(), stderr.String(), err
	}
	err = ctx.Run()
	return stdout.String(), stderr.String(), err
}

func writePayload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestComputeCmd_Tabla(t *testing.T) {
	out, _, err := run(t, "compute", writePayload(t, payloadJSON))
	require.NoError(t, err)

	assert.Contains(t, out, "corte mensual")
	assert.Contains(t, out, "PRODUCTO")
	// COGS = 11 (P1) + 3 (P2)
	assert.Contains(t, out, "Costo de ventas (COGS):  14.00")
	assert.Contains(t, out, "P2: 2 unidades vendidas sin lote de compra")
}

func TestComputeCmd_JSON(t *testing.T) {
	out, _, err := run(t, "--json", "--mode", "remaining", "compute", writePayload(t, payloadJSON))
	require.NoError(t, err)

	var m dto.FIFOMetricsDTO
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "remaining", m.InventoryValueMode)
	assert.Equal(t, "14.00", m.Totals.TotalCOGS)
	// 11·0.3 + 3·0.3
	assert.Equal(t, "4.20", m.Totals.TotalProfit)
	// quedan 3 unidades del lote 2 de P1
	assert.Equal(t, "9.00", m.Totals.TotalInventoryValue)
	require.Len(t, m.Products, 2)
	assert.Equal(t, "P1", m.Products[0].ProductKey)
}

func TestComputeCmd_Markup(t *testing.T) {
	out, _, err := run(t, "--json", "--markup", "0.5", "compute", writePayload(t, payloadJSON))
	require.NoError(t, err)

	var m dto.FIFOMetricsDTO
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "7.00", m.Totals.TotalProfit)
}

func TestComputeCmd_Errores(t *testing.T) {
	_, _, err := run(t, "compute", writePayload(t, `{"fifoData":`))
	assert.Error(t, err)

	_, _, err = run(t, "--markup", "abc", "compute", writePayload(t, payloadJSON))
	assert.Error(t, err)

	_, _, err = run(t, "--mode", "lifo", "compute", writePayload(t, payloadJSON))
	assert.Error(t, err, "kong valida el enum")
}

func TestFetchCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inventory-value", r.URL.Path)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("start_date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payloadJSON))
	}))
	defer srv.Close()

	out, _, err := run(t, "--json", "fetch", "--base-url", srv.URL+"/api", "--start-date", "2024-03-01")
	require.NoError(t, err)

	var m dto.FIFOMetricsDTO
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.True(t, m.Available)
	assert.Equal(t, "14.00", m.Totals.TotalCOGS)
}

func TestFetchCmd_FuenteCaida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, stderr, err := run(t, "fetch", "--base-url", srv.URL)
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, stderr, "error al obtener los datos de inventario")
	assert.Contains(t, out, "Valor de inventario (original): 0.00")
	assert.Contains(t, out, "Utilidad estimada:       0.00")
}
