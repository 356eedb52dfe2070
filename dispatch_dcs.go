// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dispatch_dcs.go
// Summary: DCS final-byte dispatch table, grounded on
// original_source/src/parser-dcs.hh.

package vtparse

type dcsKey struct {
	final  byte
	intro  byte
	interm byte
}

var dcsTable = map[dcsKey]Command{
	{'p', 0, 0}:   DECREGIS,
	{'p', 0, '$'}: DECRSTS,
	{'q', 0, 0}:   DECSIXEL,
	{'q', 0, '$'}: DECRQSS,
	{'r', 0, 0}:   DECLBAN,
	{'r', 0, '$'}: DECRQSS,
	{'s', 0, '$'}: DECRQTSR,
	{'t', 0, '$'}: DECRSPS,
	{'u', 0, '!'}: DECAUPSS,
	{'v', 0, 0}:   DECLANS,
	{'w', 0, 0}:   DECLBD,
	{'x', 0, '"'}: DECPFK,
	{'y', 0, '"'}: DECPAK,
	{'z', 0, '!'}: DECDMAC,
	{'{', 0, 0}:   DECDLD,
	{'|', 0, 0}:   DECUDK,
}

// lookupDCS resolves a completed DCS sequence's final byte, optional
// parameter-introducer byte, and (at most one significant)
// intermediate byte to a Command.
func lookupDCS(final byte, intro byte, intermediates []byte) Command {
	var interm byte
	if len(intermediates) > 0 {
		interm = intermediates[0]
	}
	if cmd, ok := dcsTable[dcsKey{final, intro, interm}]; ok {
		return cmd
	}
	return NONE
}
