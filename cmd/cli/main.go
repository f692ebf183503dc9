package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/rosdobro/dobrodela-cli/internal/buildinfo"
	"github.com/rosdobro/dobrodela-cli/internal/client/cli"
	"github.com/rosdobro/dobrodela-cli/internal/client/config"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	app := cli.NewApp(ctx, cfg, log)
	app.Run(ctx)

}
