package model

import "github.com/pkg/errors"

// Topology selects how the neighborhood window behaves at the grid edges
type Topology int

const (
	// Clamped clips the window at the edges; corner cells see 4 cells, edge cells 6
	Clamped Topology = iota
	// Toroidal wraps the window around opposite edges; every cell sees 9
	Toroidal
)

// String returns the config name of the topology
func (t Topology) String() string {
	switch t {
	case Clamped:
		return "clamped"
	case Toroidal:
		return "toroidal"
	}
	return "unknown"
}

// ParseTopology maps a config name to a Topology. The empty string means Clamped.
func ParseTopology(name string) (Topology, error) {
	switch name {
	case "", "clamped":
		return Clamped, nil
	case "toroidal":
		return Toroidal, nil
	}
	return Clamped, errors.Errorf("[ParseTopology] unknown topology %q", name)
}

// Counter returns the neighbor counting function for the topology
func (t Topology) Counter() func(g *Grid, x, y int) int {
	if t == Toroidal {
		return CountLiveWrapped
	}
	return CountLive
}

// CountLive counts living cells in the clipped 3x3 window around (x, y),
// including the cell itself
func CountLive(g *Grid, x, y int) int {
	g.mustContain(x, y)

	var (
		count = 0
		minX  = max(0, x-1)
		maxX  = min(g.width-1, x+1)
		minY  = max(0, y-1)
		maxY  = min(g.height-1, y+1)
	)
	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.width+minX : ny*g.width+maxX+1]
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return count
}

// CountLiveWrapped counts living cells in the toroidally wrapped 3x3 window
// around (x, y), including the cell itself. On grids narrower than three cells
// a wrapped offset can land on the same cell twice; each distinct cell is
// counted once.
func CountLiveWrapped(g *Grid, x, y int) int {
	g.mustContain(x, y)

	var (
		count   = 0
		xs, nxs = wrapWindow(x, g.width)
		ys, nys = wrapWindow(y, g.height)
	)
	for _, ny := range ys[:nys] {
		for _, nx := range xs[:nxs] {
			if g.cells[ny*g.width+nx] {
				count++
			}
		}
	}
	return count
}

// wrapWindow returns the distinct wrapped coordinates in [v-1, v+1]
func wrapWindow(v, size int) ([3]int, int) {
	var (
		out [3]int
		n   int
	)
	for d := -1; d <= 1; d++ {
		w := (v + d + size) % size
		dup := false
		for _, seen := range out[:n] {
			if seen == w {
				dup = true
				break
			}
		}
		if !dup {
			out[n] = w
			n++
		}
	}
	return out, n
}
