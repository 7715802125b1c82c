package main

import (
	"context"
	"os"

	"github.com/dgidpl/startup-app/internal/client/cli"
	"github.com/dgidpl/startup-app/internal/client/config"
	"github.com/dgidpl/startup-app/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewDefault()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
