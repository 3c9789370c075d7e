package patterns

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// DefaultBits is the tile used by the bits strategy when none is configured
var DefaultBits = []string{
	"01100110",
	"11000011",
	"00011000",
}

// ModRule marks a cell (x, y) alive when (X*x + Y*y) mod Mod == Rem
type ModRule struct {
	X   int `json:"x"`
	Y   int `json:"y"`
	Mod int `json:"mod"`
	Rem int `json:"rem"`
}

// DefaultModulus is the rule set used by the modulus strategy when none is configured
var DefaultModulus = []ModRule{
	{X: 1, Y: 0, Mod: 7, Rem: 3},
	{X: 0, Y: 1, Mod: 5, Rem: 1},
	{X: 1, Y: 1, Mod: 11, Rem: 0},
}

// Bits tiles rows of '0'/'1' characters across the grid, so cell (x, y)
// takes the bit at rows[y mod len(rows)][x mod len(row)]
func Bits(rows []string) (Initializer, error) {
	if len(rows) == 0 {
		return nil, errors.New("[Bits] pattern has no rows")
	}
	tile := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) == 0 {
			return nil, errors.Errorf("[Bits] pattern row %d is empty", y)
		}
		tile[y] = make([]bool, len(row))
		for x, c := range row {
			switch c {
			case '1':
				tile[y][x] = true
			case '0':
			default:
				return nil, errors.Errorf("[Bits] pattern row %d: unexpected %q", y, c)
			}
		}
	}

	return func(width, height int) (*model.Grid, error) {
		return model.NewGridFunc(width, height, func(x, y int) bool {
			row := tile[y%len(tile)]
			return row[x%len(row)]
		})
	}, nil
}

// Modulus marks a cell alive when any of the rules holds for its coordinates
func Modulus(rules []ModRule) (Initializer, error) {
	if len(rules) == 0 {
		return nil, errors.New("[Modulus] no rules given")
	}
	for i, r := range rules {
		if r.Mod <= 0 {
			return nil, errors.Errorf("[Modulus] rule %d: modulus must be positive, got %d", i, r.Mod)
		}
		if r.Rem < 0 || r.Rem >= r.Mod {
			return nil, errors.Errorf("[Modulus] rule %d: remainder %d outside [0,%d)", i, r.Rem, r.Mod)
		}
	}

	return func(width, height int) (*model.Grid, error) {
		return model.NewGridFunc(width, height, func(x, y int) bool {
			for _, r := range rules {
				if (r.X*x+r.Y*y)%r.Mod == r.Rem {
					return true
				}
			}
			return false
		})
	}, nil
}

// Patterns lays out gliders and blinkers scaled to the grid, then sets each
// explicit cell alive. Explicit cells outside the grid are an error.
func Patterns(cells [][2]int) Initializer {
	return func(width, height int) (*model.Grid, error) {
		g, err := model.NewGrid(width, height, false)
		if err != nil {
			return nil, err
		}

		if width >= 10 && height >= 10 {
			Glider(g, 5, 5)
			if width >= 20 && height >= 15 {
				Glider(g, width-8, 5)
			}

			Blinker(g, width/4, height/4)
			if width >= 30 {
				Blinker(g, 3*width/4, 3*height/4)
			}
		}

		for _, c := range cells {
			if !g.InBounds(c[0], c[1]) {
				return nil, errors.Errorf("[Patterns] cell (%d,%d) outside %dx%d grid", c[0], c[1], width, height)
			}
			g.Set(c[0], c[1], true)
		}
		return g, nil
	}
}

var glider = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// Glider stamps a south-east travelling glider with its top-left corner at
// (startX, startY). Cells falling outside the grid are dropped.
func Glider(g *model.Grid, startX, startY int) {
	for y, row := range glider {
		for x, cell := range row {
			stamp(g, startX+x, startY+y, cell)
		}
	}
}

// Blinker stamps a horizontal three-cell blinker starting at (startX, startY)
func Blinker(g *model.Grid, startX, startY int) {
	for x := range 3 {
		stamp(g, startX+x, startY, true)
	}
}

func stamp(g *model.Grid, x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.Set(x, y, alive)
	}
}

// InjectRandom sets count random cells alive, used to shake a stagnant board
func InjectRandom(g *model.Grid, count int, rng *rand.Rand) {
	for range count {
		g.Set(rng.IntN(g.Width()), rng.IntN(g.Height()), true)
	}
}
