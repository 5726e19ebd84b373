package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/model"
	"github.com/sheikhrachel/go-torus-life/utils"
)

const endMessage = "Simulation ended"

// newGrid builds the board described by config, defaulting height to width
func newGrid(config utils.Config) (*model.Grid, error) {
	opts := []model.Option{model.WithWorkers(config.Workers), model.WithPool(model.NewGridPool())}
	if config.Height == 0 {
		return model.NewSquareGrid(config.Width, opts...)
	}
	return model.NewGrid(config.Width, config.Height, opts...)
}

// seedPatterns stamps the configured patterns onto the grid
func seedPatterns(grid *model.Grid, config utils.Config, rng model.Source) []model.Placement {
	var placements []model.Placement
	for range config.Exploders {
		placements = append(placements, grid.AddExploder(rng))
	}
	for range config.Gliders {
		placements = append(placements, grid.AddGlider(rng))
	}
	for range config.Oscillators {
		placements = append(placements, grid.AddOscillator(rng))
	}
	for range config.Statics {
		placements = append(placements, grid.AddStatic(rng))
	}
	return placements
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := newGrid(config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}
	seedPatterns(grid, config, utils.NewRand(config.Seed))

	return grid, model.NewTerminalRenderer(out), utils.NewStats(), nil
}

// runSimulation prints generations until the grid stops changing or ctx is done.
// It reports whether a fixed point was reached.
func runSimulation(
	ctx context.Context,
	grid *model.Grid,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
) (bool, error) {
	for generation := 0; ; generation++ {
		if ctx.Err() != nil {
			return false, nil
		}

		if config.ClearScreen {
			if err := renderer.Clear(); err != nil {
				return false, err
			}
		}
		if err := renderer.Display(grid); err != nil {
			return false, err
		}
		stats.Update(generation, grid.CountLivingCells())

		if !grid.Advance() {
			return true, renderer.Println(endMessage)
		}

		if !waitFrame(ctx, config.FrameRate) {
			return false, nil
		}
	}
}

// waitFrame sleeps for d and reports false if ctx ended first
func waitFrame(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// displaySummary shows the final stats after an interrupted run
func displaySummary(out io.Writer, stats *utils.Stats) {
	fmt.Fprintln(out, "\nShutting down...")
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds | Living: %d | Avg Pop: %.1f\n",
		stats.TotalGenerations, stats.Elapsed().Seconds(), stats.Population, stats.AveragePopulation)
}
