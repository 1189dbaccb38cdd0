package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParseMovements_PuntoYComaYWindows1252(t *testing.T) {
	csvText := "tipo;producto;lote;cantidad;costo_unitario;fecha\n" +
		"compra;Café 500g;2;5;3,00;2024-01-10\n" +
		"compra;Café 500g;1;1.000;1,50;2024-01-05\n" +
		"venta;Café 500g;;7;;2024-01-20\n"

	encoded, err := charmap.Windows1252.NewEncoder().String(csvText)
	require.NoError(t, err)

	movements, err := parseMovements(transform.NewReader(strings.NewReader(encoded), charmap.Windows1252.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, movements, 3)

	assert.Equal(t, "Café 500g", movements[0].product)
	assert.Equal(t, int64(2), movements[0].batchID)
	assert.Equal(t, "3", movements[0].cost.String())
	assert.Equal(t, "1000", movements[1].quantity.String(), "punto como separador de miles")
	assert.Equal(t, "1.5", movements[1].cost.String())
	assert.Equal(t, "venta", movements[2].kind)
	assert.Equal(t, "2024-01-20", movements[2].date.Format("2006-01-02"))
}

func TestParseMovements_Coma(t *testing.T) {
	csvText := "tipo,producto,lote,cantidad,costo_unitario,fecha\ncompra,P1,1,10,2.5,\nventa,P1,,4,,\n"

	movements, err := parseMovements(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "2.5", movements[0].cost.String())
	assert.True(t, movements[1].date.IsZero())
}

func TestParseMovements_Errores(t *testing.T) {
	cases := map[string]string{
		"tipo desconocido": "devolucion,P1,1,10,2,\n",
		"lote inválido":    "compra,P1,x,10,2,\n",
		"cantidad":         "venta,P1,,diez,,\n",
		"fecha":            "venta,P1,,1,,10/01/2024\n",
	}
	for name, csvText := range cases {
		_, err := parseMovements(strings.NewReader(csvText))
		assert.Error(t, err, name)
	}
}

func TestWriteSeed(t *testing.T) {
	movements, err := parseMovements(strings.NewReader("compra,D'Onofrio,1,10,2.5,2024-01-01\nventa,D'Onofrio,,4,,\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	purchases, sales, err := writeSeed(&buf, movements, "movimientos.csv")
	require.NoError(t, err)

	assert.Equal(t, 1, purchases)
	assert.Equal(t, 1, sales)
	sql := buf.String()
	assert.Contains(t, sql, "VALUES ('D''Onofrio', 1, 10, 2.5, '2024-01-01')")
	assert.Contains(t, sql, "INSERT INTO fifo_sales (product_key, quantity, sold_at) VALUES ('D''Onofrio', 4, NOW());")
}
