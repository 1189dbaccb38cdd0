package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier lo que la fuente FIFO necesita de *pgxpool.Pool (o de una pgx.Tx).
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
