package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/model"
)

func TestLayoutScalesToWindow(t *testing.T) {
	l := NewLayout(1050, 900, 350, 300)
	w, h := l.CellSize()
	if w != 1030.0/350 || h != 880.0/300 {
		t.Fatalf("cell size = %vx%v", w, h)
	}

	px, py, cw, ch := l.Cell(0, 0)
	if px != DefaultPad || py != DefaultPad || cw != w || ch != h {
		t.Fatalf("Cell(0,0) = %v,%v %vx%v", px, py, cw, ch)
	}

	px, py, _, _ = l.Cell(349, 299)
	if right := px + w; right < 1040-0.01 || right > 1040+0.01 {
		t.Fatalf("last column ends at %v, want 1040", right)
	}
	if bottom := py + h; bottom < 890-0.01 || bottom > 890+0.01 {
		t.Fatalf("last row ends at %v, want 890", bottom)
	}
}

func TestCellColor(t *testing.T) {
	if CellColor(true) != LiveColor || CellColor(false) != DeadColor {
		t.Fatalf("CellColor mapped states to the wrong colors")
	}
	if LiveColor.Y >= DeadColor.Y {
		t.Fatalf("live cells must be darker than dead cells")
	}
}

func TestTextRenderer(t *testing.T) {
	g := model.MustGrid(3, 2, func(x, y int) bool { return x == y })
	var out bytes.Buffer
	r := &TextRenderer{Out: &out}

	if err := r.Display(g, "Gen: 0"); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosBlock + gridPosEmpty + "\n" +
		"Gen: 0\n"
	if out.String() != want {
		t.Fatalf("Display wrote %q, want %q", out.String(), want)
	}

	out.Reset()
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\033[") {
		t.Fatalf("Clear wrote %q, want an ANSI sequence", out.String())
	}
}

func newSimulationScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestScreenRendererPaintsCells(t *testing.T) {
	screen := newSimulationScreen(t, 20, 6)
	g := model.MustGrid(4, 3, func(x, y int) bool { return x == 1 && y == 2 })

	NewScreenRenderer(screen).Draw(g, "ok")

	live, dead := tcellColor(LiveColor), tcellColor(DeadColor)
	for y := range 3 {
		for x := range 4 {
			want := dead
			if x == 1 && y == 2 {
				want = live
			}
			for _, col := range []int{x * 2, x*2 + 1} {
				_, _, style, _ := screen.GetContent(col, y)
				_, bg, _ := style.Decompose()
				if bg != want {
					t.Fatalf("cell (%d,%d) column %d background = %v, want %v", x, y, col, bg, want)
				}
			}
		}
	}

	for i, want := range "ok" {
		if got, _, _, _ := screen.GetContent(i, 3); got != want {
			t.Fatalf("status rune %d = %q, want %q", i, got, want)
		}
	}
}

func TestScreenRendererClipsToScreen(t *testing.T) {
	screen := newSimulationScreen(t, 6, 3)
	g := model.MustGrid(10, 10, func(int, int) bool { return true })

	NewScreenRenderer(screen).Draw(g, "status line longer than the screen")

	_, _, style, _ := screen.GetContent(5, 1)
	if _, bg, _ := style.Decompose(); bg != tcellColor(LiveColor) {
		t.Fatalf("visible cell not painted")
	}
	if got, _, _, _ := screen.GetContent(0, 2); got != 's' {
		t.Fatalf("status row starts with %q, want 's'", got)
	}
}
