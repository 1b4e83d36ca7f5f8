package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/undefineddevelopers/skillexchange/internal/buildinfo"
	"github.com/undefineddevelopers/skillexchange/internal/client/cli"
	"github.com/undefineddevelopers/skillexchange/internal/client/config"
	"github.com/undefineddevelopers/skillexchange/internal/logging"
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

	app.Run(ctx)

}
