package render

import "image/color"

// DefaultPad is the blank margin, in pixels, kept around the drawn grid
const DefaultPad = 10

var (
	// LiveColor fills live cells
	LiveColor = color.Gray{Y: 26}
	// DeadColor fills dead cells
	DeadColor = color.Gray{Y: 230}
)

// CellColor returns the fill for a cell state
func CellColor(alive bool) color.Gray {
	if alive {
		return LiveColor
	}
	return DeadColor
}

// Layout maps grid coordinates onto a padded window
type Layout struct {
	WindowW, WindowH int
	Pad              int
	Cols, Rows       int
}

// NewLayout returns a layout for a cols x rows grid in a window of the given size
func NewLayout(windowW, windowH, cols, rows int) Layout {
	return Layout{WindowW: windowW, WindowH: windowH, Pad: DefaultPad, Cols: cols, Rows: rows}
}

// CellSize returns the width and height of one cell in pixels
func (l Layout) CellSize() (float32, float32) {
	w := float32(l.WindowW-2*l.Pad) / float32(l.Cols)
	h := float32(l.WindowH-2*l.Pad) / float32(l.Rows)
	return w, h
}

// Cell returns the rectangle covering cell (x, y): its top-left corner and size
func (l Layout) Cell(x, y int) (px, py, w, h float32) {
	w, h = l.CellSize()
	px = float32(l.Pad) + float32(x)*w
	py = float32(l.Pad) + float32(y)*h
	return
}
