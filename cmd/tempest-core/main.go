package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tempestweather/tempest-core/internal/app"
	"github.com/tempestweather/tempest-core/internal/config"
	"github.com/tempestweather/tempest-core/internal/constants"
	"github.com/tempestweather/tempest-core/internal/log"
)

func main() {
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tempest-core %s\n", constants.Version)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	if err := log.Init(*debug || cfg.Debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Forecast and search collaborators are bound by the embedding host;
	// standalone the core runs with them absent.
	application := app.New(cfg, nil, nil, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}
