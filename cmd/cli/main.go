package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/artembredak/todocli/internal/buildinfo"
	"github.com/artembredak/todocli/internal/client/cli"
	"github.com/artembredak/todocli/internal/client/config"
	"github.com/artembredak/todocli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
