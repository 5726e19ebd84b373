package utils

import "time"

// Stats tracks progress of a run
type Stats struct {
	TotalGenerations  int
	Population        int
	AveragePopulation float64
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population of the given generation
func (s *Stats) Update(generation int, population int) {
	s.TotalGenerations = generation
	s.Population = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Elapsed returns the wall time since the run started
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
