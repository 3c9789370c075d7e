package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/model"
)

// ScreenRenderer paints the grid onto a tcell screen, two columns per cell so cells look square
type ScreenRenderer struct {
	screen tcell.Screen
	live   tcell.Style
	dead   tcell.Style
}

// NewScreenRenderer wraps an initialized tcell screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		live:   tcell.StyleDefault.Background(tcellColor(LiveColor)),
		dead:   tcell.StyleDefault.Background(tcellColor(DeadColor)),
	}
}

// Draw paints as much of the grid as fits, puts status on the row below it and shows the frame
func (r *ScreenRenderer) Draw(g *model.Grid, status string) {
	cols, rows := r.screen.Size()
	var (
		visibleW = min(g.Width(), cols/2)
		visibleH = min(g.Height(), max(rows-1, 0))
	)

	r.screen.Clear()
	for y := range visibleH {
		for x := range visibleW {
			style := r.dead
			if g.Get(x, y) {
				style = r.live
			}
			r.screen.SetContent(x*2, y, ' ', nil, style)
			r.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	for i, c := range []rune(status) {
		if i >= cols {
			break
		}
		r.screen.SetContent(i, visibleH, c, nil, tcell.StyleDefault)
	}
	r.screen.Show()
}

func tcellColor(c color.Color) tcell.Color {
	red, green, blue, _ := c.RGBA()
	return tcell.NewRGBColor(int32(red>>8), int32(green>>8), int32(blue>>8))
}
