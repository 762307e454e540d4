package asciigrid

import (
	"fmt"
	"sort"
)

// Printable ASCII range the character set accepts.
const (
	FirstPrintable rune = ' ' // 32
	LastPrintable  rune = '~' // 126
)

/*
Charset is the mutable set of candidate characters a Converter matches
sub-image brightness against. Only printable ASCII (32-126) is accepted.
Every mutation that actually changes the set bumps an internal generation
counter, which the converter uses to rebuild its normalized brightness
table lazily; the raw per-character brightness cache is unaffected by
charset edits.
*/
type Charset struct {
	runes map[rune]struct{}
	gen   uint64
}

// NewCharset builds a set from the given runes. Runes outside the
// printable ASCII range are ignored.
func NewCharset(rs ...rune) *Charset {
	s := &Charset{runes: make(map[rune]struct{}, len(rs))}
	for _, r := range rs {
		if inPrintableRange(r) {
			s.runes[r] = struct{}{}
		}
	}
	return s
}

// DefaultCharset returns the digits '0' through '9'.
func DefaultCharset() *Charset {
	s := &Charset{runes: make(map[rune]struct{}, 10)}
	for r := '0'; r <= '9'; r++ {
		s.runes[r] = struct{}{}
	}
	return s
}

func inPrintableRange(r rune) bool {
	return r >= FirstPrintable && r <= LastPrintable
}

// Add inserts a single character into the set.
func (s *Charset) Add(r rune) error {
	if !inPrintableRange(r) {
		return &ConfigError{Reason: fmt.Sprintf("character %q outside printable ASCII range", r)}
	}
	if _, ok := s.runes[r]; !ok {
		s.runes[r] = struct{}{}
		s.gen++
	}
	return nil
}

// AddRange inserts every character between from and to inclusive. The
// bounds may be given in either order.
func (s *Charset) AddRange(from, to rune) error {
	if !inPrintableRange(from) || !inPrintableRange(to) {
		return &ConfigError{Reason: fmt.Sprintf("range %q-%q outside printable ASCII range", from, to)}
	}
	if from > to {
		from, to = to, from
	}
	changed := false
	for r := from; r <= to; r++ {
		if _, ok := s.runes[r]; !ok {
			s.runes[r] = struct{}{}
			changed = true
		}
	}
	if changed {
		s.gen++
	}
	return nil
}

// AddAll inserts the entire printable ASCII range.
func (s *Charset) AddAll() {
	s.AddRange(FirstPrintable, LastPrintable)
}

// Remove deletes a single character. Removing an absent character is a
// no-op.
func (s *Charset) Remove(r rune) {
	if _, ok := s.runes[r]; ok {
		delete(s.runes, r)
		s.gen++
	}
}

// RemoveRange deletes every character between from and to inclusive. The
// bounds may be given in either order.
func (s *Charset) RemoveRange(from, to rune) {
	if from > to {
		from, to = to, from
	}
	changed := false
	for r := from; r <= to; r++ {
		if _, ok := s.runes[r]; ok {
			delete(s.runes, r)
			changed = true
		}
	}
	if changed {
		s.gen++
	}
}

// RemoveAll empties the set.
func (s *Charset) RemoveAll() {
	s.RemoveRange(FirstPrintable, LastPrintable)
}

func (s *Charset) Contains(r rune) bool {
	_, ok := s.runes[r]
	return ok
}

func (s *Charset) Len() int { return len(s.runes) }

// Runes returns the characters in ascending code order.
func (s *Charset) Runes() []rune {
	rs := make([]rune, 0, len(s.runes))
	for r := range s.runes {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

func (s *Charset) generation() uint64 { return s.gen }
