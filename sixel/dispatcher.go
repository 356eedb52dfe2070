// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sixel/dispatcher.go
// Summary: Dispatcher — the capability set a caller implements to
// consume a sixel bitmap programme, grounded on sixel-parser.hh's
// template delegate (DECGRI/DECGRA/DECGCI/DECGCR/DECGCH/DECGNL/SIXEL/
// SIXEL_NOP/SIXEL_ST) and on spec.md §9's "capability set" design
// note.
package sixel

// Dispatcher receives the decoded commands and bitmap columns of a
// DECSIXEL programme as the SixelParser consumes it byte by byte.
type Dispatcher interface {
	// DECGRI is the repeat introducer: repeat the next sixel data
	// byte seq.Param(0, 1) times.
	DECGRI(seq *SixelSequence)
	// DECGRA sets the raster attributes (pan, pad, width, height).
	DECGRA(seq *SixelSequence)
	// DECGCI selects or defines a palette colour.
	DECGCI(seq *SixelSequence)
	// DECGCR is a graphics carriage return.
	DECGCR(seq *SixelSequence)
	// DECGCH moves the graphics cursor to the image origin.
	DECGCH(seq *SixelSequence)
	// DECGNL advances to the next sixel row.
	DECGNL(seq *SixelSequence)
	// Nop is called for a recognised-but-unimplemented command byte;
	// its parameters are already cleared.
	Nop(seq *SixelSequence)
	// Sixel receives one decoded 6-bit bitmap column (0..63).
	Sixel(value uint8)
	// ST is called once, when the programme completes normally.
	ST()
}
