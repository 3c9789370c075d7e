package patterns

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Initializer produces the starting grid for a simulation of the given size
type Initializer func(width, height int) (*model.Grid, error)

// Strategy names one of the built-in initializers
type Strategy string

const (
	// StrategyRandom fills each cell independently with probability Density
	StrategyRandom Strategy = "random"
	// StrategyBits tiles a fixed bit pattern across the grid
	StrategyBits Strategy = "bits"
	// StrategyModulus marks cells whose coordinates satisfy divisibility rules
	StrategyModulus Strategy = "modulus"
	// StrategyPatterns places gliders and blinkers plus any explicit cells
	StrategyPatterns Strategy = "patterns"
)

// Strategies lists every built-in strategy
var Strategies = []Strategy{StrategyRandom, StrategyBits, StrategyModulus, StrategyPatterns}

// Options carries the parameters of every strategy; only the fields of the
// selected strategy are read.
type Options struct {
	Strategy Strategy  `json:"strategy"`
	Density  float64   `json:"density"`
	Seed     int64     `json:"seed"`
	Bits     []string  `json:"bits"`
	Modulus  []ModRule `json:"modulus"`
	Cells    [][2]int  `json:"cells"`
}

// DefaultOptions returns an even random fill
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyRandom,
		Density:  0.5,
		Seed:     42,
		Bits:     DefaultBits,
		Modulus:  DefaultModulus,
	}
}

// FromOptions resolves opts into an Initializer
func FromOptions(opts Options) (Initializer, error) {
	switch opts.Strategy {
	case StrategyRandom, "":
		return Random(opts.Density, opts.Seed)
	case StrategyBits:
		return Bits(opts.Bits)
	case StrategyModulus:
		return Modulus(opts.Modulus)
	case StrategyPatterns:
		return Patterns(opts.Cells), nil
	}
	return nil, errors.Errorf("[FromOptions] unknown initializer strategy %q", opts.Strategy)
}

// Random fills each cell independently, alive with probability density
func Random(density float64, seed int64) (Initializer, error) {
	if density < 0 || density > 1 {
		return nil, errors.Errorf("[Random] density %v outside [0,1]", density)
	}
	return func(width, height int) (*model.Grid, error) {
		rng := NewRNG(seed)
		return model.NewGridFunc(width, height, func(int, int) bool {
			return rng.Float64() < density
		})
	}, nil
}
