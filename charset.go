// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: charset.go
// Summary: ISO 2022 character-set designation tables, grounded
// byte-for-byte on original_source/src/parser-charset-tables.hh
// (charset_graphic_94, charset_graphic_96, charset_graphic_94_n).

package vtparse

// Charset identifies a resolved ISO 2022 character set designation.
// Positive values are iso-ir registry numbers re-used directly as the
// identifier (IR(NNN) == iso-ir NNN); DEC- and NRCS-private sets get
// negative values with names of their own since they were never
// registered with ISO-IR.
type Charset int

const (
	CharsetNone Charset = 0

	// DEC and NRCS private 94-sets (no ISO-IR registration).
	DECSpecialGraphic Charset = -(iota + 1)
	DECUPSS
	DECTechnical
	NRCSDutch
	NRCSFinnish
	NRCSNorwegianDanish
	NRCSSwedish
	NRCSFrenchCanadian
	NRCSSwiss
	DECHebrew
	NRCSGreek
	DECGreek
	DECTurkish
	NRCSTurkish
	NRCSSoft
	DECSupplementalGraphic
	NRCSPortuguese
	NRCSHebrew
	DECThai
	DECCyrillic
	NRCSRussian
	DECKanji1978
	DECKanji1983
)

// IR returns the Charset identifier for ISO-IR registry number n
// (e.g. IR(6) is ISO 646 IRV / ASCII, per spec.md S6).
func IR(n int) Charset { return Charset(n) }

// gset94 is charset_graphic_94 from the original: indices 0 is final
// byte 0x30, running through final byte 0x7d.
var gset94 = []Charset{
	DECSpecialGraphic, CharsetNone, CharsetNone, CharsetNone, NRCSDutch, NRCSFinnish, NRCSNorwegianDanish, NRCSSwedish,
	CharsetNone, NRCSFrenchCanadian, CharsetNone, CharsetNone, DECUPSS, NRCSSwiss, DECTechnical, CharsetNone,
	IR(2), IR(4), IR(6), IR(8), IR(8), IR(9), IR(9), IR(10),
	IR(11), IR(13), IR(14), IR(21), IR(16), IR(39), IR(37), IR(38),
	IR(53), IR(54), IR(25), IR(55), IR(57), IR(27), IR(47), IR(49),
	IR(31), IR(15), IR(17), IR(18), IR(19), IR(50), IR(51), IR(59),
	IR(60), IR(61), IR(70), IR(71), IR(72), IR(68), IR(69), IR(84),
	IR(85), IR(86), IR(88), IR(89), IR(90), IR(91), IR(92), IR(93),
	IR(94), IR(95), IR(96), IR(98), IR(99), IR(102), IR(103), IR(121),
	IR(122), IR(137), IR(141), IR(146), IR(128), IR(147),
}

// gset94With21 is charset_graphic_94_with_2_1: second intermediate 2/1.
var gset94With21 = []Charset{IR(150), IR(151), IR(170), IR(207), IR(230), IR(231), IR(232)}

// gset94With22 is charset_graphic_94_with_2_2: second intermediate 2/2.
var gset94With22 = []Charset{
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, DECHebrew, CharsetNone, CharsetNone, CharsetNone,
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, NRCSGreek, DECGreek,
}

// gset94With25 is charset_graphic_94_with_2_5: second intermediate 2/5.
var gset94With25 = []Charset{
	DECTurkish, CharsetNone, NRCSTurkish, NRCSSoft, CharsetNone, DECSupplementalGraphic, NRCSPortuguese, CharsetNone,
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, NRCSHebrew, CharsetNone, CharsetNone,
}

// gset94With26 is charset_graphic_94_with_2_6: second intermediate 2/6.
var gset94With26 = []Charset{
	CharsetNone, CharsetNone, CharsetNone, DECThai, DECCyrillic, NRCSRussian, CharsetNone, CharsetNone,
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone,
}

// gset96 is charset_graphic_96 (G1..G3 only; final byte 0x30..0x7d).
var gset96 = []Charset{
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone,
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, DECUPSS, CharsetNone, CharsetNone, CharsetNone,
	IR(111), IR(100), IR(101), IR(109), IR(110), IR(123), IR(126), IR(127),
	IR(138), IR(139), IR(142), IR(143), IR(144), IR(148), IR(152), IR(153),
	IR(154), IR(155), IR(156), IR(164), IR(166), IR(167), IR(157), CharsetNone,
	IR(158), IR(179), IR(180), IR(181), IR(182), IR(197), IR(198), IR(199),
	IR(200), IR(201), IR(203), IR(204), IR(205), IR(206), IR(226), IR(208),
	IR(209), IR(227), IR(234), CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone,
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone,
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, IR(129),
}

// gset94n is charset_graphic_94_n: multi-byte sets, ESC 2/4 2/8..2/11 F.
var gset94n = []Charset{
	CharsetNone, DECKanji1978, CharsetNone, DECKanji1983, CharsetNone, CharsetNone, CharsetNone, CharsetNone,
	CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone, CharsetNone,
	IR(42), IR(58), IR(87), IR(149), IR(159), IR(165), IR(169), IR(171),
	IR(172), IR(183), IR(184), IR(185), IR(186), IR(187), IR(202), IR(228),
	IR(229), IR(233),
}

// lookupCharsetTable resolves a final byte against one of the tables
// above. The caller (resolveEscape) picks the table from the
// already-consumed intermediates: the first selects the table family,
// an optional second narrows it further.
func lookupCharsetTable(table []Charset, final byte) Charset {
	idx := int(final) - 0x30
	if idx < 0 || idx >= len(table) {
		return CharsetNone
	}
	return table[idx]
}

// GSetSlot is the G0..G3 designation slot number. Sequence keeps it in
// a field of its own, reported by Sequence.GSet(); Sequence.Charset()
// returns the resolved Charset id alone, with no slot bits packed in.
type GSetSlot uint8

const (
	G0 GSetSlot = 0
	G1 GSetSlot = 1
	G2 GSetSlot = 2
	G3 GSetSlot = 3
)

// gsetSlotForIntermediate maps the first ESC intermediate byte that
// introduces a 94-set/96-set designation to its G-set slot.
//
//	'('  -> G0 (94-set)     ')'  -> G1 (94-set)
//	'*'  -> G2 (94-set)     '+'  -> G3 (94-set)
//	'-'  -> G1 (96-set)     '.'  -> G2 (96-set)     '/' -> G3 (96-set)
func gsetSlotForIntermediate(b byte) (slot GSetSlot, is96 bool, ok bool) {
	switch b {
	case '(':
		return G0, false, true
	case ')':
		return G1, false, true
	case '*':
		return G2, false, true
	case '+':
		return G3, false, true
	case '-':
		return G1, true, true
	case '.':
		return G2, true, true
	case '/':
		return G3, true, true
	default:
		return 0, false, false
	}
}

// charsetField pairs a resolved Charset id with its G-set slot as a
// logical pairing rather than a bit-pack (the id may be negative for
// DEC/NRCS private sets). Sequence stores the two in separate fields;
// callers read them with Sequence.Charset()/GSet().
type charsetField struct {
	id   Charset
	slot GSetSlot
}
