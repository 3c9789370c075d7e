package utils

import (
	"encoding/json"
	"flag"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/rules"
)

// Config holds the configuration for the game
type Config struct {
	Width               int              `json:"width"`
	Height              int              `json:"height"`
	WindowWidth         int              `json:"window_width"`
	WindowHeight        int              `json:"window_height"`
	FrameRate           time.Duration    `json:"frame_rate"`
	Rule                string           `json:"rule"`
	Topology            string           `json:"topology"`
	Workers             int              `json:"workers"`
	UseBoundedGrid      bool             `json:"use_bounded_grid"`
	Initializer         patterns.Options `json:"initializer"`
	MaxGenerations      int              `json:"max_generations"`
	AutoRestart         bool             `json:"auto_restart"`
	StagnationThreshold int              `json:"stagnation_threshold"`
	InjectionCount      int              `json:"injection_count"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               350,
		Height:              300,
		WindowWidth:         1050,
		WindowHeight:        900,
		FrameRate:           50 * time.Millisecond,
		Rule:                "B3/S23",
		Topology:            model.Clamped.String(),
		Workers:             0,
		UseBoundedGrid:      true, // Enable active region optimization
		Initializer:         patterns.DefaultOptions(),
		MaxGenerations:      0,
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
	}
}

// LoadConfig loads configuration from JSON file, starting from DefaultConfig
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

// DefaultConfigPath is read by ParseArgs when no -config flag is given
const DefaultConfigPath = "config.json"

// ParseArgs layers configuration sources: defaults, then the JSON file named
// by -config (a missing file falls back to defaults), then explicit flags.
// extra, if non-nil, registers driver-specific flags on the final FlagSet.
func ParseArgs(name string, args []string, extra func(*flag.FlagSet)) (Config, error) {
	var (
		path   = DefaultConfigPath
		config = DefaultConfig()
		pre    = flag.NewFlagSet(name, flag.ContinueOnError)
	)
	pre.SetOutput(io.Discard)
	config.Bind(pre)
	pre.StringVar(&path, "config", path, "path to a JSON config file")
	if extra != nil {
		extra(pre)
	}
	if err := pre.Parse(args); err != nil && !errors.Is(err, flag.ErrHelp) {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	loaded, err := LoadConfig(path)
	switch {
	case err == nil:
		config = loaded
	case errors.Is(err, fs.ErrNotExist):
		config = DefaultConfig()
	default:
		return config, err
	}

	final := flag.NewFlagSet(name, flag.ContinueOnError)
	config.Bind(final)
	final.String("config", path, "path to a JSON config file")
	if extra != nil {
		extra(final)
	}
	if err = final.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}
	return config, nil
}

// Bind attaches the command-line overrides to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "window height in pixels")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule in B/S notation")
	fs.StringVar(&c.Topology, "topology", c.Topology, "edge policy: clamped or toroidal")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands stepped in parallel (0 = NumCPU)")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only recompute the live region")
	fs.StringVar((*string)(&c.Initializer.Strategy), "init", string(c.Initializer.Strategy), "initializer: random, bits, modulus or patterns")
	fs.Float64Var(&c.Initializer.Density, "density", c.Initializer.Density, "live probability for the random initializer")
	fs.Int64Var(&c.Initializer.Seed, "seed", c.Initializer.Seed, "seed for the random initializer")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = run forever)")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed on extinction or stagnation")
}

// Validate checks the configuration for values the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.Errorf("[Validate] window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	if _, err := c.StepperOptions(); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if _, err := patterns.FromOptions(c.Initializer); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}

// StepperOptions resolves the rule and topology names into stepper options
func (c Config) StepperOptions() (model.StepperOptions, error) {
	rule, err := rules.Parse(c.Rule)
	if err != nil {
		return model.StepperOptions{}, err
	}
	topology, err := model.ParseTopology(c.Topology)
	if err != nil {
		return model.StepperOptions{}, err
	}
	return model.StepperOptions{
		Rule:     rule,
		Topology: topology,
		Workers:  c.Workers,
		Bounded:  c.UseBoundedGrid,
	}, nil
}

// Build validates the configuration, seeds the starting grid, and returns it
// with a stepper and the initializer used to reseed on restart
func (c Config) Build() (*model.Grid, *model.Stepper, patterns.Initializer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, nil, err
	}

	opts, err := c.StepperOptions()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[Build]")
	}
	initializer, err := patterns.FromOptions(c.Initializer)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[Build]")
	}
	grid, err := initializer(c.Width, c.Height)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "[Build] failed to seed %dx%d grid", c.Width, c.Height)
	}

	return grid, model.NewStepper(opts), initializer, nil
}
