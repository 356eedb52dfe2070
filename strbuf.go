// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: strbuf.go
// Summary: SequenceString — the append-only code-point body buffer
// for OSC/DCS/APC/PM/SOS sequences (spec.md §3, §9 "string cap").

package vtparse

const (
	defaultStringCap = 128
	maxStringCap     = 4096
)

// SequenceString is an append-only, reusable buffer of code points.
// Its capacity only ever grows (by doubling) up to a fixed maximum;
// it never shrinks, so the buffer backing array is amortised across
// an entire input stream's worth of string sequences.
type SequenceString struct {
	runes []rune
	max   int
	// truncated records that at least one code point was dropped
	// because the buffer had already reached max.
	truncated bool
}

func newSequenceString(max int) SequenceString {
	if max <= 0 || max > maxStringCap {
		max = maxStringCap
	}
	return SequenceString{runes: make([]rune, 0, defaultStringCap), max: max}
}

func (s *SequenceString) reset() {
	s.runes = s.runes[:0]
	s.truncated = false
}

// append adds one code point, growing the backing array by doubling
// (capped at s.max). Once len(s.runes) == s.max, further code points
// are silently dropped and Truncated becomes true.
func (s *SequenceString) append(r rune) {
	if len(s.runes) >= s.max {
		s.truncated = true
		return
	}
	if len(s.runes) == cap(s.runes) {
		newCap := cap(s.runes) * 2
		if newCap == 0 {
			newCap = defaultStringCap
		}
		if newCap > s.max {
			newCap = s.max
		}
		grown := make([]rune, len(s.runes), newCap)
		copy(grown, s.runes)
		s.runes = grown
	}
	s.runes = append(s.runes, r)
}

// Runes returns the accumulated code points. The returned slice
// aliases internal storage and is only valid until the next Feed
// call on the owning Parser.
func (s SequenceString) Runes() []rune { return s.runes }

// String returns the accumulated code points as a string.
func (s SequenceString) String() string { return string(s.runes) }

// Len returns the number of accumulated code points.
func (s SequenceString) Len() int { return len(s.runes) }

// full reports whether the buffer has already reached its cap, i.e.
// the next append would be dropped (spec.md §7 "arity overflow").
func (s SequenceString) full() bool { return len(s.runes) >= s.max }

// Truncated reports whether the body hit the cap and had code points
// dropped (spec.md §7, "arity overflow" for string bodies).
func (s SequenceString) Truncated() bool { return s.truncated }
