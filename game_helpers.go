package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

// periodicRefresh reseeds an auto-restarting board this often even when it is still active
const periodicRefresh = 200

// game is the driver-owned simulation state: the current grid and everything needed to advance it
type game struct {
	config  utils.Config
	grid    *model.Grid
	stepper *model.Stepper
	history model.History
	stats   *utils.Stats
	rng     *rand.Rand

	generation     int
	stagnantCount  int
	lastRestartGen int
	restarts       int
	lastStep       time.Time
	paused         bool
	status         string
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	grid, stepper, _, err := config.Build()
	if err != nil {
		return nil, err
	}

	g := &game{
		config:   config,
		grid:     grid,
		stepper:  stepper,
		stats:    utils.NewStats(),
		rng:      patterns.NewRNG(config.Initializer.Seed + 1),
		lastStep: time.Now(),
	}
	g.history.Record(grid)
	g.status = g.describe(grid.CountLiving(), "Active")
	return g, nil
}

// gameInfo summarizes the configuration for the exit report
func gameInfo(config utils.Config, stepper *model.Stepper) string {
	return fmt.Sprintf("Grid: %dx%d | Rule: %s | Topology: %s | Bounded: %v | Initializer: %s",
		config.Width, config.Height, stepper.Rule(), stepper.Topology(), config.UseBoundedGrid, config.Initializer.Strategy)
}

// advance steps one generation and applies the restart and injection policy.
// It reports true once the generation limit has been reached.
func (g *game) advance() bool {
	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		return true
	}

	g.stepper.Step(g.grid)
	g.generation++

	livingCells, status, isStagnant := updateGameState(g.grid, &g.history, g.generation, g.lastStep, g.stats)
	g.lastStep = time.Now()

	// Update stagnation counter
	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.status = g.describe(livingCells, status)

	shouldRestart, restartReason := checkRestartConditions(livingCells, g.stagnantCount, g.generation, g.config)
	switch {
	case shouldRestart && g.config.AutoRestart:
		if err := g.restart(restartReason); err != nil {
			g.status = fmt.Sprintf("Restart failed: %v", err)
		}
	case g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold:
		// Inject some life to try to break the stagnation
		patterns.InjectRandom(g.grid, g.config.InjectionCount, g.rng)
	}
	return false
}

// updateGameState records the new generation and returns status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation int,
	lastStep time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := grid.CountLiving()
	stats.Update(generation, livingCells, time.Since(lastStep))

	isStagnant := history.IsStagnant(grid)
	history.Record(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	return livingCells, status, isStagnant
}

// describe formats the status line shown under the grid
func (g *game) describe(livingCells int, status string) string {
	density := float64(livingCells) / float64(g.grid.Width()*g.grid.Height()) * 100
	line := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		g.generation, livingCells, density, status, g.stats.GenerationsPerSecond)
	if g.generation > g.lastRestartGen && g.lastRestartGen > 0 {
		line += fmt.Sprintf(" | Since restart: %d", g.generation-g.lastRestartGen)
	}
	if g.paused {
		line += " | Paused"
	}
	return line
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restart reseeds the board from the configured initializer, advancing the
// seed so a random fill does not replay the board that just stagnated
func (g *game) restart(reason string) error {
	opts := g.config.Initializer
	opts.Seed += int64(g.restarts + 1)
	initializer, err := patterns.FromOptions(opts)
	if err != nil {
		return err
	}
	grid, err := initializer(g.config.Width, g.config.Height)
	if err != nil {
		return err
	}

	g.grid = grid
	g.restarts++
	g.history.Reset()
	g.history.Record(grid)
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.status = g.describe(grid.CountLiving(), fmt.Sprintf("Restarted (%s)", reason))
	return nil
}

// togglePause flips the paused flag and refreshes the status line
func (g *game) togglePause() {
	g.paused = !g.paused
	g.status = g.describe(g.grid.CountLiving(), "Active")
}

// finalReport summarizes the run once the driver stops
func (g *game) finalReport() string {
	return fmt.Sprintf("%s\nFinal stats: %d generations in %.1f seconds\nAverage: %.1f gen/sec, %.1f avg population, %d peak",
		gameInfo(g.config, g.stepper),
		g.generation, g.stats.Runtime().Seconds(),
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation)
}
