package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
)

type ComputeCmd struct {
	File FileOrStdin `help:"Archivo JSON con fifoData (use '-' u omita para stdin)." arg:"" optional:""`
}

func (cmd *ComputeCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	var payload dto.FIFODataResponse
	if err := json.Unmarshal(cmd.File.Contents, &payload); err != nil {
		printError(ctx.Stderr, "JSON inválido en "+cmd.File.Filename)
		return fmt.Errorf("decodificar %s: %w", cmd.File.Filename, err)
	}

	uc, err := globals.newUseCase(nil, "file", ctx.Stderr)
	if err != nil {
		return fmt.Errorf("--markup: %w", err)
	}
	metrics, err := uc.ComputeFromPayload(context.Background(), &payload, globals.Mode)
	if err != nil {
		return err
	}
	return render(ctx.Stdout, metrics, globals.JSON)
}
