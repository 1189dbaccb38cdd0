package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jhoicas/inventario-fifo/internal/cli"
)

var (
	// Version se inyecta vía ldflags al compilar.
	Version = ""

	// CommitSHA se inyecta vía ldflags al compilar.
	CommitSHA = ""

	app struct {
		Version kong.VersionFlag `help:"Muestra la versión."`
		cli.Commands
	}
)

func main() {
	ctx := kong.Parse(&app,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("fifo"),
		kong.Description("Costeo FIFO de inventario: valor de inventario, costo de ventas y utilidad estimada."),
		kong.UsageOnError(),
		kong.Bind(&app.Globals),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
