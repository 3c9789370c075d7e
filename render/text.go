package render

import (
	"io"
	"strings"

	"github.com/sheikhrachel/go-life/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TextRenderer implements basic terminal rendering for dumb terminals and logs
type TextRenderer struct {
	Out io.Writer
}

// Display renders the grid followed by the status line
func (r *TextRenderer) Display(g *model.Grid, status string) error {
	var b strings.Builder
	b.Grow((g.Width()*len(gridPosBlock) + 1) * g.Height())
	for y := range g.Height() {
		for x := range g.Width() {
			if g.Get(x, y) {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	if status != "" {
		b.WriteString(status)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.Out, b.String())
	return err
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return err
}
