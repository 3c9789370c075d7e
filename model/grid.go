package model

import (
	"crypto/md5"
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when a grid is requested with a zero or negative side
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Grid represents the game board as a fixed-size row-major array of cell states
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a grid with every cell initialized to fill
func NewGrid(width, height int, fill bool) (*Grid, error) {
	return NewGridFunc(width, height, func(int, int) bool { return fill })
}

// NewGridFunc creates a grid whose cells are initialized by fn(x, y)
func NewGridFunc(width, height int, fn func(x, y int) bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
	if fn == nil {
		return g, nil
	}
	for y := range height {
		for x := range width {
			g.cells[y*width+x] = fn(x, y)
		}
	}
	return g, nil
}

// MustGrid is NewGridFunc for callers with known-good dimensions, mostly tests and fixed patterns
func MustGrid(width, height int, fn func(x, y int) bool) *Grid {
	g, err := NewGridFunc(width, height, fn)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// mustContain panics when (x, y) is outside the grid; callers must never clamp
func (g *Grid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("model: cell (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
}

func (g *Grid) index(x, y int) int {
	g.mustContain(x, y)
	return y*g.width + x
}

// Get returns the state of a cell. Out-of-bounds access panics.
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.index(x, y)]
}

// Set sets a cell to alive (true) or dead (false). Out-of-bounds access panics.
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[g.index(x, y)] = alive
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// CountLiving returns the total number of living cells
func (g *Grid) CountLiving() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of living cells ordered by row, then column
func (g *Grid) LiveCells() [][2]int {
	var out [][2]int
	for i, alive := range g.cells {
		if alive {
			out = append(out, [2]int{i % g.width, i / g.width})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}
		return out[i][0] < out[j][0]
	})
	return out
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// sameShape reports whether g and other can share a buffer swap
func (g *Grid) sameShape(other *Grid) bool {
	return other != nil && g.width == other.width && g.height == other.height
}

// activeBounds returns the bounding box of living cells; ok is false for an empty grid
func (g *Grid) activeBounds() (minX, maxX, minY, maxY int, ok bool) {
	for y := range g.height {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x, alive := range row {
			if !alive {
				continue
			}
			if !ok {
				minX, maxX, minY, maxY, ok = x, x, y, y, true
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return
}

// BoundingBoxSize returns the area of the region holding living cells
func (g *Grid) BoundingBoxSize() int {
	minX, maxX, minY, maxY, ok := g.activeBounds()
	if !ok {
		return 0
	}
	return (maxX - minX + 1) * (maxY - minY + 1)
}
