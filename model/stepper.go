package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// StepperOptions configures a Stepper. The zero value steps with the Conway
// rule on a clamped grid using one worker per CPU.
type StepperOptions struct {
	Rule     rules.Rule
	Topology Topology
	// Workers is the number of row bands computed concurrently; 0 means runtime.NumCPU()
	Workers int
	// Bounded restricts the pass to the live region plus a one-cell margin.
	// Only honored for the Clamped topology.
	Bounded bool
}

// Stepper advances a grid one generation at a time. It owns the scratch
// buffer that receives the next generation and swaps it with the caller's
// grid, so repeated steps of the same-sized grid allocate nothing.
//
// A Stepper is not safe for concurrent use.
type Stepper struct {
	rule       rules.Rule
	topology   Topology
	count      func(g *Grid, x, y int) int
	workers    int
	bounded    bool
	scratch    *Grid
	generation uint64
}

// NewStepper creates a stepper with the given options
func NewStepper(opts StepperOptions) *Stepper {
	rule := opts.Rule
	if rule == (rules.Rule{}) {
		rule = rules.Conway
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Stepper{
		rule:     rule,
		topology: opts.Topology,
		count:    opts.Topology.Counter(),
		workers:  workers,
		bounded:  opts.Bounded && opts.Topology == Clamped,
	}
}

// Rule returns the rule applied on every step
func (s *Stepper) Rule() rules.Rule {
	return s.rule
}

// Topology returns the boundary policy used for neighbor counting
func (s *Stepper) Topology() Topology {
	return s.topology
}

// Generation returns how many steps have completed since creation or the last Reset
func (s *Stepper) Generation() uint64 {
	return s.generation
}

// Reset zeroes the generation counter, typically after the driver seeds a fresh grid
func (s *Stepper) Reset() {
	s.generation = 0
}

// region is an inclusive rectangle of cells to recompute
type region struct {
	minX, maxX, minY, maxY int
}

// Step replaces g's contents with the next generation. Every cell of the
// next generation is computed from the pre-step state of g.
func (s *Stepper) Step(g *Grid) {
	if !g.sameShape(s.scratch) {
		s.scratch = &Grid{width: g.width, height: g.height, cells: make([]bool, len(g.cells))}
	}
	next := s.scratch

	area := region{maxX: g.width - 1, maxY: g.height - 1}
	if s.bounded {
		next.Clear()
		minX, maxX, minY, maxY, ok := g.activeBounds()
		if !ok {
			s.publish(g, next)
			return
		}
		// Births can only happen one cell outside the live region
		area = region{
			minX: max(0, minX-1),
			maxX: min(g.width-1, maxX+1),
			minY: max(0, minY-1),
			maxY: min(g.height-1, maxY+1),
		}
	}

	s.fill(g, next, area)
	s.publish(g, next)
}

// publish swaps the freshly computed buffer into g
func (s *Stepper) publish(g, next *Grid) {
	g.cells, next.cells = next.cells, g.cells
	s.generation++
}

// fill writes the next state of every cell in area into next, reading only cur
func (s *Stepper) fill(cur, next *Grid, area region) {
	rows := area.maxY - area.minY + 1
	if s.workers <= 1 || rows < 2 {
		s.fillRows(cur, next, area, area.minY, area.maxY+1)
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(s.workers, rows)
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = area.minY + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, area.maxY+1)
		)
		if startRow > area.maxY {
			break
		}

		eg.Go(func() error {
			s.fillRows(cur, next, area, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		panic(fmt.Sprintf("model: step worker failed: %v", err))
	}
}

// fillRows handles rows [startRow, endRow) of area; bands never overlap so no locking is needed
func (s *Stepper) fillRows(cur, next *Grid, area region, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := area.minX; x <= area.maxX; x++ {
			idx := y*cur.width + x
			next.cells[idx] = s.rule.NextState(cur.cells[idx], s.count(cur, x, y))
		}
	}
}
