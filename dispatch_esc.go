// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dispatch_esc.go
// Summary: ESC (nF/Fp/Fe) dispatch table, grounded on
// original_source/src/parser-esc.hh.

package vtparse

type escKey struct {
	final byte
	interm byte // 0 if the sequence has no intermediate
}

var escTable = map[escKey]Command{
	{'3', '#'}: DECDHL_TH,
	{'4', '#'}: DECDHL_BH,
	{'5', '#'}: DECSWL,
	{'6', 0}:   DECBI,
	{'6', '#'}: DECDWL,
	{'7', 0}:   DECSC,
	{'8', 0}:   DECRC,
	{'8', '#'}: DECALN,
	{'9', 0}:   DECFI,
	{'<', 0}:   DECANM,
	{'=', 0}:   DECKPAM,
	{'>', 0}:   DECKPNM,
	{'D', 0}:   IND,
	{'E', 0}:   NEL,
	{'F', 0}:   XTERM_CLLHP,
	{'H', 0}:   HTS,
	{'M', 0}:   RI,
	{'N', 0}:   SS2,
	{'O', 0}:   SS3,
	{'V', 0}:   SPA,
	{'W', 0}:   EPA,
	{'\\', 0}:  ST,
	{'c', 0}:   RIS,
	{'d', 0}:   CMD,
	{'l', 0}:   XTERM_MLHP,
	{'m', 0}:   XTERM_MUHP,
	{'n', 0}:   LS2,
	{'o', 0}:   LS3,
	{'|', 0}:   LS3R,
	{'}', 0}:   LS2R,
	{'~', 0}:   LS1R,
}

// lookupEscape resolves a completed ESC sequence's final byte and (at
// most one significant) intermediate byte to a Command.
func lookupEscape(final byte, intermediates []byte) Command {
	var interm byte
	if len(intermediates) > 0 {
		interm = intermediates[0]
	}
	if cmd, ok := escTable[escKey{final, interm}]; ok {
		return cmd
	}
	return NONE
}
