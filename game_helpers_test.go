package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/model"
	"github.com/sheikhrachel/go-torus-life/utils"
)

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.FrameRate = 0
	c.Seed = 1
	return c
}

func TestRunSimulationStopsAtFixedPoint(t *testing.T) {
	grid, err := model.NewGrid(6, 5)
	if err != nil {
		t.Fatal(err)
	}
	grid.Stamp(model.Block, 1, 1)
	frame := grid.String()

	var out bytes.Buffer
	ended, err := runSimulation(context.Background(), grid, model.NewTerminalRenderer(&out), utils.NewStats(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !ended {
		t.Fatal("expected the run to reach a fixed point")
	}
	if got, want := out.String(), frame+endMessage+"\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunSimulationPrintsEveryGeneration(t *testing.T) {
	grid, err := model.NewGrid(6, 6)
	if err != nil {
		t.Fatal(err)
	}
	// two lonely cells die after one generation
	grid.Set(2, 2, true)
	grid.Set(2, 3, true)

	var out bytes.Buffer
	stats := utils.NewStats()
	ended, err := runSimulation(context.Background(), grid, model.NewTerminalRenderer(&out), stats, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !ended {
		t.Fatal("expected the run to reach a fixed point")
	}

	frames := strings.Count(out.String(), "\n") - 1
	if frames != 2*6 {
		t.Fatalf("printed %d rows, want two frames of 6", frames)
	}
	if !strings.HasSuffix(out.String(), ". \n"+endMessage+"\n") {
		t.Fatalf("missing end line: %q", out.String())
	}
	if stats.TotalGenerations != 1 || stats.Population != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRunSimulationHonorsCancellation(t *testing.T) {
	grid, err := model.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	grid.Stamp(model.Blinker, 2, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	ended, err := runSimulation(ctx, grid, model.NewTerminalRenderer(&out), utils.NewStats(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if ended {
		t.Fatal("a blinker never reaches a fixed point")
	}
	if out.Len() != 0 {
		t.Fatalf("cancelled run printed %q", out.String())
	}
}

func TestInitializeGameSeedsDefaultBoard(t *testing.T) {
	config := testConfig()

	a, _, _, err := initializeGame(config, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	b, _, _, err := initializeGame(config, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if got := a.Properties(); got != (model.Size{Width: 40, Height: 20}) {
		t.Fatalf("Properties() = %+v", got)
	}
	if a.CountLivingCells() == 0 {
		t.Fatal("no patterns were seeded")
	}
	if !a.Equal(b) {
		t.Fatal("the same seed produced different boards")
	}
}

func TestInitializeGameDefaultsHeightToWidth(t *testing.T) {
	config := testConfig()
	config.Width, config.Height = 12, 0

	g, _, _, err := initializeGame(config, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Properties(); got != (model.Size{Width: 12, Height: 12}) {
		t.Fatalf("Properties() = %+v", got)
	}
}

func TestInitializeGameRejectsBadDimensions(t *testing.T) {
	config := testConfig()
	config.Height = -3

	if _, _, _, err := initializeGame(config, &bytes.Buffer{}); !errors.Is(err, model.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestSeedPatternsCounts(t *testing.T) {
	grid, err := model.NewGrid(40, 20)
	if err != nil {
		t.Fatal(err)
	}
	config := testConfig()
	config.Oscillators = 2

	placements := seedPatterns(grid, config, utils.NewRand(5))
	counts := map[string]int{}
	for _, p := range placements {
		counts[p.Pattern.Name]++
	}

	if counts["exploder"] != 3 || counts["glider"] != 3 || counts["blinker"] != 2 {
		t.Fatalf("counts = %v", counts)
	}
	if counts["block"]+counts["beehive"] != 3 {
		t.Fatalf("static counts = %v", counts)
	}
}
