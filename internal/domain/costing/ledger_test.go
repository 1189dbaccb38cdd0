package costing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fifo/internal/domain/costing"
)

func TestBuildLedger_OrdenaComprasYConservaVentas(t *testing.T) {
	in := costing.ProductRecords{
		Purchases: []costing.PurchaseBatch{batch(3, "1", "1"), batch(1, "1", "1"), batch(2, "1", "1")},
		Sales:     []costing.SaleDemand{sale("5"), sale("1"), sale("3")},
	}
	l := costing.BuildLedger("SKU-1", in)

	assert.Equal(t, "SKU-1", l.ProductKey)
	require.Len(t, l.Purchases, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{l.Purchases[0].BatchID, l.Purchases[1].BatchID, l.Purchases[2].BatchID})
	assertDec(t, "5", l.Sales[0].Quantity)
	assertDec(t, "1", l.Sales[1].Quantity)
	assertDec(t, "3", l.Sales[2].Quantity)
	// La entrada no se reordena
	assert.Equal(t, int64(3), in.Purchases[0].BatchID)
}

func TestBuildLedger_CopiasIndependientes(t *testing.T) {
	in := costing.ProductRecords{
		Purchases: []costing.PurchaseBatch{batch(1, "4", "2")},
		Sales:     []costing.SaleDemand{sale("1")},
	}
	l := costing.BuildLedger("P", in)
	l.Purchases[0].Quantity = d("0")
	l.Sales[0].Quantity = d("0")

	assertDec(t, "4", in.Purchases[0].Quantity)
	assertDec(t, "1", in.Sales[0].Quantity)
}

func TestBuildLedgers_ColeccionesAusentes(t *testing.T) {
	ledgers := costing.BuildLedgers(map[string]costing.ProductRecords{"P": {}})

	require.Contains(t, ledgers, "P")
	assert.Empty(t, ledgers["P"].Purchases)
	assert.Empty(t, ledgers["P"].Sales)
}

func TestAnomalies(t *testing.T) {
	l := costing.BuildLedger("P", costing.ProductRecords{
		Purchases: []costing.PurchaseBatch{batch(1, "-2", "1"), batch(1, "3", "-1")},
		Sales:     []costing.SaleDemand{sale("-1"), sale("2")},
	})

	kinds := map[string]int{}
	for _, a := range l.Anomalies() {
		assert.Equal(t, "P", a.ProductKey)
		kinds[a.Kind]++
	}
	assert.Equal(t, map[string]int{
		"negative_quantity": 1,
		"negative_cost":     1,
		"duplicate_batch":   1,
		"negative_sale":     1,
	}, kinds)

	clean := costing.BuildLedger("Q", costing.ProductRecords{
		Purchases: []costing.PurchaseBatch{batch(1, "2", "1")},
	})
	assert.Empty(t, clean.Anomalies())
}
