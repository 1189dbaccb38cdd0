package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/application/ports"
)

var _ ports.FIFOSource = (*FIFOSourceRepo)(nil)

// FIFOSourceRepo lee compras (fifo_purchases) y ventas (fifo_sales) desde PostgreSQL
// y las agrupa por producto con la misma forma que entrega la API de datos.
// Es de solo lectura: el CRUD de compras y ventas vive fuera de este servicio.
type FIFOSourceRepo struct {
	q Querier
}

// NewFIFOSourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFIFOSourceRepository(q Querier) *FIFOSourceRepo {
	return &FIFOSourceRepo{q: q}
}

// FetchFIFOData devuelve compras y ventas del período (fechas cero = sin filtro).
// Las ventas se leen por id ascendente, que es el orden de registro.
func (r *FIFOSourceRepo) FetchFIFOData(ctx context.Context, period dto.FIFOPeriod) (*dto.FIFODataResponse, error) {
	start, end := nullableTime(period.Start), nullableTime(period.End)
	acc := newFIFOAccumulator()

	const purchasesQuery = `
	SELECT product_key, batch_id, quantity, cost_per_unit
	FROM fifo_purchases
	WHERE ($1::timestamptz IS NULL OR purchased_at >= $1)
	  AND ($2::timestamptz IS NULL OR purchased_at <= $2)
	ORDER BY product_key, batch_id, id`

	rows, err := r.q.Query(ctx, purchasesQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("fifo.FetchFIFOData purchases: %w", err)
	}
	for rows.Next() {
		var (
			key       string
			batchID   int64
			qty, cost decimal.Decimal
		)
		if err := rows.Scan(&key, &batchID, &qty, &cost); err != nil {
			rows.Close()
			return nil, fmt.Errorf("fifo.FetchFIFOData purchases scan: %w", err)
		}
		acc.addPurchase(key, batchID, qty, cost)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fifo.FetchFIFOData purchases: %w", err)
	}

	const salesQuery = `
	SELECT product_key, quantity
	FROM fifo_sales
	WHERE ($1::timestamptz IS NULL OR sold_at >= $1)
	  AND ($2::timestamptz IS NULL OR sold_at <= $2)
	ORDER BY id`

	rows, err = r.q.Query(ctx, salesQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("fifo.FetchFIFOData sales: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key string
			qty decimal.Decimal
		)
		if err := rows.Scan(&key, &qty); err != nil {
			return nil, fmt.Errorf("fifo.FetchFIFOData sales scan: %w", err)
		}
		acc.addSale(key, qty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fifo.FetchFIFOData sales: %w", err)
	}

	return acc.payload(), nil
}

// fifoAccumulator agrupa filas por producto conservando el orden de llegada.
type fifoAccumulator struct {
	data map[string]dto.FIFOProductDTO
}

func newFIFOAccumulator() *fifoAccumulator {
	return &fifoAccumulator{data: make(map[string]dto.FIFOProductDTO)}
}

func (a *fifoAccumulator) addPurchase(key string, batchID int64, qty, cost decimal.Decimal) {
	p := a.data[key]
	p.Purchases = append(p.Purchases, dto.FIFOPurchaseDTO{
		BatchID:     dto.BatchID(batchID),
		Quantity:    qty,
		CostPerUnit: cost,
	})
	a.data[key] = p
}

func (a *fifoAccumulator) addSale(key string, qty decimal.Decimal) {
	p := a.data[key]
	p.Sales = append(p.Sales, dto.FIFOSaleDTO{Quantity: qty})
	a.data[key] = p
}

func (a *fifoAccumulator) payload() *dto.FIFODataResponse {
	return &dto.FIFODataResponse{FIFOData: a.data}
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
