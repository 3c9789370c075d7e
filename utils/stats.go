package utils

import "time"

// populationSmoothing is the weight of the newest sample in the population moving average
const populationSmoothing = 0.1

// Stats tracks driver-side performance and population figures
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts the runtime clock
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation that took duration to produce
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += (float64(population) - s.AveragePopulation) * populationSmoothing
}

// Runtime returns how long the simulation has been running
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
