package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/domain"
	"github.com/jhoicas/inventario-fifo/internal/infrastructure/dataapi"
	"github.com/jhoicas/inventario-fifo/pkg/logger"
)

type FetchCmd struct {
	BaseURL   string        `help:"URL base de la API de datos." default:"http://localhost:5000/api" env:"DATA_API_BASE_URL"`
	StartDate string        `help:"Fecha inicial (YYYY-MM-DD)." placeholder:"YYYY-MM-DD"`
	EndDate   string        `help:"Fecha final inclusive (YYYY-MM-DD)." placeholder:"YYYY-MM-DD"`
	Timeout   time.Duration `help:"Timeout de la llamada a la API." default:"15s"`
}

func (cmd *FetchCmd) Run(ctx *kong.Context, globals *Globals) error {
	client := dataapi.NewClient(dataapi.Config{
		BaseURL: cmd.BaseURL,
		Timeout: cmd.Timeout,
	}, logger.NewWithWriter(ctx.Stderr, globals.LogLevel))

	uc, err := globals.newUseCase(client, "api", ctx.Stderr)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(context.Background(), cmd.Timeout+time.Second)
	defer cancel()

	metrics, err := uc.GetMetrics(runCtx, dto.FIFOMetricsRequest{
		StartDate:          cmd.StartDate,
		EndDate:            cmd.EndDate,
		InventoryValueMode: globals.Mode,
	})
	if errors.Is(err, domain.ErrSourceUnavailable) {
		// Se muestran los totales en cero igual que la API HTTP.
		printError(ctx.Stderr, metrics.Message)
		_ = render(ctx.Stdout, metrics, globals.JSON)
		return err
	}
	if err != nil {
		return err
	}
	return render(ctx.Stdout, metrics, globals.JSON)
}
