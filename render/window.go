//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sheikhrachel/go-life/model"
)

// Window adapts a grid and its stepper to the ebiten.Game interface
type Window struct {
	grid    *model.Grid
	stepper *model.Stepper
	layout  Layout
	reseed  func() (*model.Grid, error)

	paused   bool
	tickOnce bool
}

// NewWindow constructs a Window; reseed is called when the user asks for a fresh board
func NewWindow(grid *model.Grid, stepper *model.Stepper, layout Layout, reseed func() (*model.Grid, error)) *Window {
	return &Window{
		grid:    grid,
		stepper: stepper,
		layout:  layout,
		reseed:  reseed,
	}
}

// Update handles input and advances the simulation by at most one generation per tick
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && w.reseed != nil {
		grid, err := w.reseed()
		if err != nil {
			return err
		}
		w.grid = grid
		w.stepper.Reset()
	}

	if !w.paused || w.tickOnce {
		w.stepper.Step(w.grid)
		w.tickOnce = false
	}
	return nil
}

// Draw renders one filled rectangle per cell
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	for y := range w.grid.Height() {
		for x := range w.grid.Width() {
			px, py, cw, ch := w.layout.Cell(x, y)
			vector.DrawFilledRect(screen, px, py, cw, ch, CellColor(w.grid.Get(x, y)), false)
		}
	}
}

// Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.layout.WindowW, w.layout.WindowH
}
