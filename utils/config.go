package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"` // 0 means same as width
	FrameRate   time.Duration `json:"frame_rate"`
	Gliders     int           `json:"gliders"`
	Exploders   int           `json:"exploders"`
	Oscillators int           `json:"oscillators"`
	Statics     int           `json:"statics"`
	Seed        int64         `json:"seed"` // 0 seeds from the clock
	Workers     int           `json:"workers"`
	ClearScreen bool          `json:"clear_screen"`
}

// DefaultConfig returns the stock 40x20 board with three exploders, gliders and still lifes
func DefaultConfig() Config {
	return Config{
		Width:       40,
		Height:      20,
		FrameRate:   100 * time.Millisecond,
		Gliders:     3,
		Exploders:   3,
		Oscillators: 0,
		Statics:     3,
		Seed:        0,
		Workers:     1,
		ClearScreen: false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
