package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/utils"
)

const configFile = "life.json"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintln(os.Stderr, "Using default configuration:", err)
		}
		config = utils.DefaultConfig()
	}

	grid, renderer, stats, err := initializeGame(config, os.Stdout)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ended, err := runSimulation(ctx, grid, renderer, stats, config)
	if err != nil {
		return errors.Wrap(err, "[run] simulation failed")
	}
	if !ended {
		displaySummary(os.Stdout, stats)
	}
	return nil
}
