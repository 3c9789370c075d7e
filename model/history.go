package model

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// History remembers recent grid states so a driver can spot still lifes and short oscillators
type History struct {
	hashes []string
}

// Record adds the grid's current state to the history, keeping only the most recent entries
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// which covers still lifes and oscillators of period two or three
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
