package model

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/sheikhrachel/go-life/rules"
)

// stepperVariants covers every execution path of Step for the clamped topology
var stepperVariants = []StepperOptions{
	{Workers: 1},
	{Workers: 4},
	{Workers: 1, Bounded: true},
	{Workers: 3, Bounded: true},
}

func gridWith(w, h int, live ...[2]int) *Grid {
	g := MustGrid(w, h, nil)
	for _, c := range live {
		g.Set(c[0], c[1], true)
	}
	return g
}

func assertLive(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	expects := map[[2]int]bool{}
	for _, c := range want {
		expects[c] = true
	}
	for y := range g.Height() {
		for x := range g.Width() {
			if g.Get(x, y) != expects[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v; live cells %v", x, y, g.Get(x, y), expects[[2]int{x, y}], g.LiveCells())
			}
		}
	}
}

// referenceStep computes the next generation cell by cell from a frozen snapshot
func referenceStep(g *Grid, rule rules.Rule, count func(*Grid, int, int) int) *Grid {
	snapshot := g.Clone()
	return MustGrid(g.Width(), g.Height(), func(x, y int) bool {
		return rule.NextState(snapshot.Get(x, y), count(snapshot, x, y))
	})
}

func TestBlinkerOscillation(t *testing.T) {
	for _, opts := range stepperVariants {
		t.Run(fmt.Sprintf("%+v", opts), func(t *testing.T) {
			g := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
			s := NewStepper(opts)

			s.Step(g)
			assertLive(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

			s.Step(g)
			assertLive(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

			if s.Generation() != 2 {
				t.Fatalf("Generation = %d, want 2", s.Generation())
			}
		})
	}
}

func TestSingleCellDies(t *testing.T) {
	g := gridWith(3, 3, [2]int{1, 1})
	if got := CountLive(g, 1, 1); got != 1 {
		t.Fatalf("CountLive(1,1) = %d, want 1", got)
	}
	if rules.NextState(true, 1) {
		t.Fatalf("NextState(true, 1) = true, want false")
	}
	NewStepper(StepperOptions{}).Step(g)
	if got := g.CountLiving(); got != 0 {
		t.Fatalf("living after step = %d, want 0", got)
	}
}

func TestEveryPairDies(t *testing.T) {
	const w, h = 4, 4
	s := NewStepper(StepperOptions{Workers: 1})
	for a := range w * h {
		for b := a + 1; b < w*h; b++ {
			g := gridWith(w, h, [2]int{a % w, a / w}, [2]int{b % w, b / w})
			s.Step(g)
			if got := g.CountLiving(); got != 0 {
				t.Fatalf("pair %d,%d left %d live cells: %v", a, b, got, g.LiveCells())
			}
		}
	}
}

func TestDeadGridIsFixedPoint(t *testing.T) {
	for _, opts := range append(stepperVariants, StepperOptions{Topology: Toroidal}) {
		g := MustGrid(7, 6, nil)
		s := NewStepper(opts)
		for range 10 {
			s.Step(g)
			if g.CountLiving() != 0 {
				t.Fatalf("%+v: dead grid came alive: %v", opts, g.LiveCells())
			}
		}
	}
}

func TestStepMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	variants := append([]StepperOptions{}, stepperVariants...)
	variants = append(variants,
		StepperOptions{Topology: Toroidal, Workers: 1},
		StepperOptions{Topology: Toroidal, Workers: 5},
		StepperOptions{Topology: Toroidal, Bounded: true},
		StepperOptions{Rule: rules.Rule{Birth: 1<<3 | 1<<6, Survive: 1<<3 | 1<<4}, Workers: 2},
	)

	for _, opts := range variants {
		t.Run(fmt.Sprintf("%+v", opts), func(t *testing.T) {
			s := NewStepper(opts)
			for trial := range 20 {
				w, h := 1+rng.IntN(17), 1+rng.IntN(13)
				density := rng.Float64()
				g := MustGrid(w, h, func(int, int) bool { return rng.Float64() < density })

				for gen := range 4 {
					want := referenceStep(g, s.Rule(), opts.Topology.Counter())
					s.Step(g)
					if !g.Equal(want) {
						t.Fatalf("trial %d gen %d (%dx%d): got %v, want %v", trial, gen, w, h, g.LiveCells(), want.LiveCells())
					}
				}
			}
		})
	}
}

func TestToroidalBlinkerWrapsEdge(t *testing.T) {
	g := gridWith(5, 5, [2]int{0, 4}, [2]int{0, 0}, [2]int{0, 1})
	s := NewStepper(StepperOptions{Topology: Toroidal, Workers: 1})

	s.Step(g)
	assertLive(t, g, [2]int{4, 0}, [2]int{0, 0}, [2]int{1, 0})

	s.Step(g)
	assertLive(t, g, [2]int{0, 4}, [2]int{0, 0}, [2]int{0, 1})
}

func TestClampedCornerBlockIsStill(t *testing.T) {
	g := gridWith(4, 4, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	s := NewStepper(StepperOptions{Bounded: true})
	for range 3 {
		s.Step(g)
		assertLive(t, g, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	}
}

func TestBoundedIgnoredForToroidal(t *testing.T) {
	s := NewStepper(StepperOptions{Topology: Toroidal, Bounded: true})
	if s.bounded {
		t.Fatalf("bounded pass enabled for a toroidal grid")
	}
}

func TestStepReusesScratchBuffer(t *testing.T) {
	g := gridWith(32, 32, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	s := NewStepper(StepperOptions{Workers: 1})
	s.Step(g)

	allocs := testing.AllocsPerRun(50, func() { s.Step(g) })
	if allocs != 0 {
		t.Fatalf("Step allocated %.1f times per run, want 0", allocs)
	}
}

func TestStepHandlesResizedGrid(t *testing.T) {
	s := NewStepper(StepperOptions{Workers: 2})
	s.Step(gridWith(5, 5, [2]int{1, 1}))

	g := gridWith(6, 3, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	s.Step(g)
	assertLive(t, g, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})
}

func TestStepperDefaults(t *testing.T) {
	s := NewStepper(StepperOptions{})
	if s.Rule() != rules.Conway {
		t.Fatalf("default rule = %v, want %v", s.Rule(), rules.Conway)
	}
	if s.Topology() != Clamped {
		t.Fatalf("default topology = %v, want clamped", s.Topology())
	}
	if s.workers < 1 {
		t.Fatalf("default workers = %d", s.workers)
	}
	s.Step(MustGrid(2, 2, nil))
	s.Reset()
	if s.Generation() != 0 {
		t.Fatalf("Generation after Reset = %d", s.Generation())
	}
}
