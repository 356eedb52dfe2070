// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dispatch_sci.go
// Summary: SCI (Single Character Introducer, ESC Z / 0x9a) dispatch
// table. SCI has exactly one historically defined function — it asks
// the terminal to identify itself — so every valid terminator in
// spec.md §4.1's accepted range (0x08..0x0d, 0x20..0x7e) resolves to
// the same command.

package vtparse

// lookupSCI resolves an SCI sequence's terminator to a Command.
func lookupSCI(final rune) Command {
	if (final >= 0x08 && final <= 0x0d) || (final >= 0x20 && final <= 0x7e) {
		return SCI_ANSWERBACK
	}
	return NONE
}
