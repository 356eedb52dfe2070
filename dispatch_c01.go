// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dispatch_c01.go
// Summary: C0/C1 control dispatch table, byte-for-byte from
// original_source/src/parser-c01.hh.

package vtparse

var c01Table = map[rune]Command{
	0x07: BEL,
	0x08: BS,
	0x09: HT,
	0x0a: LF,
	0x0b: VT,
	0x0c: FF,
	0x0d: CR,
	0x0e: LS1,
	0x0f: LS0,
	0x1a: SUB,
	0x84: IND,
	0x85: NEL,
	0x88: HTS,
	0x89: HTJ,
	0x8d: RI,
	0x8e: SS2,
	0x8f: SS3,
}

// lookupControl resolves a C0 (0x00..0x1f, 0x7f) or C1 (0x80..0x9f)
// control byte to its Command. Returns NONE for a control code point
// with no dispatch-table entry; the caller still reports Kind ==
// Control.
func lookupControl(r rune) Command {
	if cmd, ok := c01Table[r]; ok {
		return cmd
	}
	if r == 0x7f {
		return DEL
	}
	return NONE
}
