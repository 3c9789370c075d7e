package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxCount is the largest neighbor count a cell can report, itself included
const MaxCount = 9

/*
Rule holds birth and survival thresholds as bit masks over neighbor counts
that include the cell itself. Bit n of Birth set means a dead cell with n
live cells in its window comes alive; bit n of Survive set means a live cell
with n live cells in its window (itself among them) stays alive.
*/
type Rule struct {
	Birth   uint16
	Survive uint16
}

/*
Conway is the classic B3/S23 rule expressed over self-inclusive counts:
a live cell survives with a window count of 3 or 4, a dead cell is born
with a window count of exactly 3.
*/
var Conway = Rule{
	Birth:   1 << 3,
	Survive: 1<<3 | 1<<4,
}

// NextState returns the next state of a cell given its self-inclusive window count
func (r Rule) NextState(alive bool, count int) bool {
	if count < 0 || count > MaxCount {
		return false
	}
	if alive {
		return r.Survive&(1<<count) != 0
	}
	return r.Birth&(1<<count) != 0
}

// NextState applies the Conway rule
func NextState(alive bool, count int) bool {
	return Conway.NextState(alive, count)
}

// String renders the rule in classic B/S notation, where counts exclude the cell itself
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Birth&(1<<n) != 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	b.WriteString("/S")
	for n := 1; n <= MaxCount; n++ {
		if r.Survive&(1<<n) != 0 {
			b.WriteString(strconv.Itoa(n - 1))
		}
	}
	return b.String()
}

// Parse reads classic B/S notation (e.g. "B3/S23") and shifts survival
// counts by one so they include the surviving cell.
func Parse(notation string) (Rule, error) {
	if notation == "" {
		return Conway, nil
	}

	parts := strings.Split(strings.ToUpper(strings.TrimSpace(notation)), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Errorf("[Parse] rule %q: want B<digits>/S<digits>", notation)
	}

	var (
		r              Rule
		sawB, sawS     bool
		birth, survive string
	)
	for _, part := range parts {
		switch {
		case strings.HasPrefix(part, "B") && !sawB:
			birth, sawB = part[1:], true
		case strings.HasPrefix(part, "S") && !sawS:
			survive, sawS = part[1:], true
		default:
			return Rule{}, errors.Errorf("[Parse] rule %q: unexpected section %q", notation, part)
		}
	}

	for _, c := range birth {
		n, err := digit(c)
		if err != nil {
			return Rule{}, errors.Wrapf(err, "[Parse] rule %q birth", notation)
		}
		r.Birth |= 1 << n
	}
	for _, c := range survive {
		n, err := digit(c)
		if err != nil {
			return Rule{}, errors.Wrapf(err, "[Parse] rule %q survival", notation)
		}
		r.Survive |= 1 << (n + 1)
	}
	return r, nil
}

func digit(c rune) (int, error) {
	if c < '0' || c > '8' {
		return 0, errors.Errorf("neighbor count %q out of range 0-8", c)
	}
	return int(c - '0'), nil
}
