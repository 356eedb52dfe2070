// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: state.go
// Summary: Parser state enumeration, grounded on
// original_source/src/parser.hh's vte_parser_state enum and the
// transition table implemented by parser_feed_to_state in parser.cc.

package vtparse

type state uint8

const (
	stateGround state = iota
	stateEsc
	stateEscInt
	stateCSIEntry
	stateCSIParam
	stateCSIInt
	stateCSIIgnore
	stateDCSEntry
	stateDCSParam
	stateDCSInt
	stateDCSPass
	stateDCSIgnore
	stateDCSPassEsc
	stateOSCString
	stateOSCStringEsc
	stateSTIgnore
	stateSCI
)
