package asciigrid

import (
	"fmt"
	"math"
)

/*
RoundMethod selects which character wins when a sub-image's brightness
falls between two characters' normalized brightness values. The set is
closed: exactly these three behaviors exist.
*/
type RoundMethod int

const (
	// RoundNearest picks the character minimizing the absolute brightness
	// difference; ties prefer the dimmer character, then the smaller code.
	RoundNearest RoundMethod = iota
	// RoundUp picks the dimmest character at least as bright as the
	// target, falling back to the brightest character in the set.
	RoundUp
	// RoundDown picks the brightest character no brighter than the
	// target, falling back to the dimmest character in the set.
	RoundDown
)

func (m RoundMethod) String() string {
	switch m {
	case RoundNearest:
		return "abs"
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	}
	return fmt.Sprintf("RoundMethod(%d)", int(m))
}

func (m RoundMethod) valid() bool {
	return m == RoundNearest || m == RoundUp || m == RoundDown
}

/*
CharTable maps each character of a charset snapshot to its raw rendered
brightness and exposes brightness normalized against the set's extremes.
It is rebuilt whenever the character set changes, since normalization
depends on the current min and max; the raw values behind it come from
the converter's per-character cache and are not recomputed.
*/
type CharTable struct {
	raw      map[rune]float64
	min, max float64
	runes    []rune // ascending code order
}

func newCharTable(set *Charset, g *glyphRenderer) *CharTable {
	runes := set.Runes()
	t := &CharTable{
		raw:   make(map[rune]float64, len(runes)),
		runes: runes,
	}
	for i, r := range runes {
		b := g.rawBrightness(r)
		t.raw[r] = b
		if i == 0 || b < t.min {
			t.min = b
		}
		if i == 0 || b > t.max {
			t.max = b
		}
	}
	return t
}

// Runes returns the table's characters in ascending code order.
func (t *CharTable) Runes() []rune { return t.runes }

/*
Normalized returns r's brightness scaled linearly so the dimmest
character in the set maps to 0 and the brightest to 1. When every
character renders to the same raw brightness (including the
single-character set) all characters normalize to 0.
*/
func (t *CharTable) Normalized(r rune) float64 {
	if t.max == t.min {
		return 0
	}
	return (t.raw[r] - t.min) / (t.max - t.min)
}

/*
Match selects the character for a sub-image brightness in [0,1] according
to the rounding method. The scan order is the ascending code order of the
table's runes, which makes every tie-break deterministic: among equally
good candidates the smaller character code wins.
*/
func (t *CharTable) Match(brightness float64, method RoundMethod) (rune, error) {
	switch method {
	case RoundUp:
		return t.matchUp(brightness), nil
	case RoundDown:
		return t.matchDown(brightness), nil
	case RoundNearest:
		return t.matchNearest(brightness), nil
	}
	return 0, &ConfigError{Reason: fmt.Sprintf("unsupported rounding method %s", method)}
}

func (t *CharTable) matchUp(brightness float64) rune {
	var best rune
	bestN := math.Inf(1)
	found := false
	for _, r := range t.runes {
		if n := t.Normalized(r); n >= brightness && n < bestN {
			best, bestN, found = r, n, true
		}
	}
	if !found {
		return t.brightest()
	}
	return best
}

func (t *CharTable) matchDown(brightness float64) rune {
	var best rune
	bestN := math.Inf(-1)
	found := false
	for _, r := range t.runes {
		if n := t.Normalized(r); n <= brightness && n > bestN {
			best, bestN, found = r, n, true
		}
	}
	if !found {
		return t.dimmest()
	}
	return best
}

func (t *CharTable) matchNearest(brightness float64) rune {
	var best rune
	bestD := math.Inf(1)
	bestN := 0.0
	for _, r := range t.runes {
		n := t.Normalized(r)
		d := math.Abs(n - brightness)
		if d < bestD || (d == bestD && n < bestN) {
			best, bestD, bestN = r, d, n
		}
	}
	return best
}

func (t *CharTable) brightest() rune {
	var best rune
	bestN := math.Inf(-1)
	for _, r := range t.runes {
		if n := t.Normalized(r); n > bestN {
			best, bestN = r, n
		}
	}
	return best
}

func (t *CharTable) dimmest() rune {
	var best rune
	bestN := math.Inf(1)
	for _, r := range t.runes {
		if n := t.Normalized(r); n < bestN {
			best, bestN = r, n
		}
	}
	return best
}
