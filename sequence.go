// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sequence.go
// Summary: Sequence — the record produced by Parser.Feed for every
// non-empty result, and its read-only accessors (spec.md §3, §4.1
// "Intermediate packing rule").

package vtparse

// MaxArgs is the fixed maximum parameter-slot width (spec.md §3).
// A sequence that would need more is dropped (spec.md §7, P6).
const MaxArgs = 32

// maxIntermediates bounds how many intermediate bytes a single
// sequence can carry before the 5-bits-per-slot pack would overflow a
// uint32 alongside the 3-bit parameter-introducer field: (32-3)/5 = 5.
const maxIntermediates = 5

// paramIntroValues maps the CSI/DCS parameter-introducer bytes
// (3/12..3/15, i.e. '<','=','>','?') to the 1..4 values packed into
// the low 3 bits of Sequence.intermediates (spec.md §4.1).
var paramIntroValues = map[byte]uint32{
	'?': 1,
	'>': 2,
	'=': 3,
	'<': 4,
}

var paramIntroBytes = [5]byte{0, '?', '>', '=', '<'}

// Sequence is the record a Parser mutates in place and hands to the
// caller on every non-NONE Feed result. It is valid only until the
// next Feed call.
type Sequence struct {
	kind        Kind
	command     Command
	terminator  rune
	introducer  rune
	intermBytes [maxIntermediates]byte
	nInterm     int
	paramIntro  byte // raw byte, 0 if absent

	args       [MaxArgs]SequenceArg
	nArgs      int
	nFinalArgs int

	charset Charset
	gset    GSetSlot

	str SequenceString
}

func newSequence(stringCap int) Sequence {
	return Sequence{str: newSequenceString(stringCap)}
}

func (s *Sequence) reset() {
	s.kind = None
	s.command = NONE
	s.terminator = 0
	s.introducer = 0
	s.nInterm = 0
	s.paramIntro = 0
	s.charset = CharsetNone
	s.gset = 0
	s.str.reset()
	s.resetArgs()
}

func (s *Sequence) resetArgs() {
	s.nArgs = 0
	s.nFinalArgs = 0
	for i := range s.args {
		s.args[i] = defaultArg()
	}
}

// pushDigit feeds one decimal digit into the currently open parameter
// slot, dropping it once MaxArgs has been reached (spec.md P6).
func (s *Sequence) pushDigit(d int32) bool {
	if s.nArgs >= MaxArgs {
		return false
	}
	s.args[s.nArgs].push(d)
	return true
}

// finishParam closes the currently open slot on a ';' separator: it
// becomes a top-level (non-sub) parameter. Grounded on
// original_source/src/parser.cc's parser_finish_param.
func (s *Sequence) finishParam() bool {
	if s.nArgs >= MaxArgs-1 {
		return false
	}
	s.args[s.nArgs].sub = false
	s.nArgs++
	s.nFinalArgs++
	return true
}

// finishSubparam closes the currently open slot on a ':' separator:
// it becomes a sub-parameter of the parameter it belongs to. Grounded
// on parser_finish_subparam.
func (s *Sequence) finishSubparam() bool {
	if s.nArgs >= MaxArgs-1 {
		return false
	}
	s.args[s.nArgs].sub = true
	s.nArgs++
	return true
}

// finishTrailingArg closes the still-open final slot when the
// terminator arrives, but only if that slot actually accumulated a
// digit — a bare trailing separator (e.g. "1;2;" or ";::;;") does not
// manufacture an extra slot (spec.md §8 S5). Grounded on
// parser_csi/parser_dcs_consume's arg_started(args[n_args]) test.
func (s *Sequence) finishTrailingArg() {
	if s.nArgs >= MaxArgs {
		return
	}
	if s.args[s.nArgs].started() {
		s.args[s.nArgs].sub = false
		s.nArgs++
		s.nFinalArgs++
	}
}

func (s *Sequence) resetIntermediates() {
	s.nInterm = 0
	s.paramIntro = 0
}

func (s *Sequence) addIntermediate(b byte) {
	if s.nInterm < maxIntermediates {
		s.intermBytes[s.nInterm] = b
		s.nInterm++
	}
}

func (s *Sequence) setParamIntro(b byte) {
	s.paramIntro = b
}

// --- public accessors; all are reads, none mutate (spec.md §6) ---

// Kind returns the sequence's kind tag.
func (s *Sequence) Kind() Kind { return s.kind }

// Command returns the resolved command identifier, or NONE if the
// dispatch tables have no entry for this sequence's shell.
func (s *Sequence) Command() Command { return s.command }

// Terminator returns the code point that finalised the sequence.
func (s *Sequence) Terminator() rune { return s.terminator }

// Introducer returns the code point that began a string sequence.
// Zero for sequence kinds that don't carry one.
func (s *Sequence) Introducer() rune { return s.introducer }

// NumArgs returns the total number of parameter slots, including
// sub-parameters (spec.md §3 "n_args").
func (s *Sequence) NumArgs() int { return s.nArgs }

// NumFinalArgs returns the number of top-level (semicolon-terminated)
// parameters (spec.md §3 "n_final_args").
func (s *Sequence) NumFinalArgs() int { return s.nFinalArgs }

// Param returns the raw value of slot i, or def if i is out of range
// or the slot never accumulated a digit (spec.md P1, P2).
func (s *Sequence) Param(i int, def int32) int32 {
	if i < 0 || i >= s.nArgs {
		return def
	}
	return s.args[i].ValueOr(def)
}

// ParamIsDefault reports whether slot i is out of range or default.
func (s *Sequence) ParamIsDefault(i int) bool {
	if i < 0 || i >= s.nArgs {
		return true
	}
	return s.args[i].IsDefault()
}

// ParamIsSubParameter reports whether slot i was colon-terminated
// (spec.md P3).
func (s *Sequence) ParamIsSubParameter(i int) bool {
	if i < 0 || i >= s.nArgs {
		return false
	}
	return s.args[i].IsSubParameter()
}

// CollectSubparams returns the run of slots starting at i that belong
// to the same top-level parameter as i: i itself plus every
// subsequent slot marked as a sub-parameter, stopping at (and
// including) the first slot that is not itself marked sub-parameter
// — that slot is the run's "final" (semicolon-terminated) member
// (spec.md P3). Returns nil if i is out of range.
func (s *Sequence) CollectSubparams(i int) []SequenceArg {
	if i < 0 || i >= s.nArgs {
		return nil
	}
	j := i
	for j < s.nArgs && s.args[j].IsSubParameter() {
		j++
	}
	if j < s.nArgs {
		j++ // include the terminating final slot
	}
	return s.args[i:j]
}

// Intermediates returns the intermediate bytes in arrival order
// (spec.md P4: "i1 is extracted first").
func (s *Sequence) Intermediates() []byte {
	return s.intermBytes[:s.nInterm]
}

// ParamIntroducer returns the CSI/DCS parameter-introducer byte
// ('<','=','>','?'), or 0 if none was present.
func (s *Sequence) ParamIntroducer() byte { return s.paramIntro }

// Packed returns the spec.md §3/§4.1 bit-packed intermediates field:
// the parameter-introducer in the low 3 bits (0 if absent, else
// 1..4 per paramIntroValues), then each intermediate byte normalised
// to 1..16 (byte-0x1f) in successive 5-bit slots in arrival order.
func (s *Sequence) Packed() uint32 {
	var v uint32
	if s.paramIntro != 0 {
		v = paramIntroValues[s.paramIntro]
	}
	for i := 0; i < s.nInterm; i++ {
		v |= uint32(s.intermBytes[i]-0x1f) << (3 + 5*i)
	}
	return v
}

// UnpackIntermediate extracts the i-th intermediate byte from a
// Packed() value, or 0 if there is none (the documented unpacking
// procedure referenced by spec.md P4).
func UnpackIntermediate(packed uint32, i int) byte {
	n := byte((packed >> (3 + 5*i)) & 0x1f)
	if n == 0 {
		return 0
	}
	return n + 0x1f
}

// UnpackParamIntroducer extracts the parameter-introducer byte from a
// Packed() value, or 0 if none.
func UnpackParamIntroducer(packed uint32) byte {
	return paramIntroBytes[packed&0x7]
}

// introducerKind maps a SOS/PM/APC introducer code point (C1 0x98,
// 0x9e, 0x9f, or their ESC Fe equivalents normalised to the same
// values by sciSevenBitIntroducer) to its Kind.
func (s *Sequence) introducerKind() Kind {
	switch s.introducer {
	case 0x98:
		return SOS
	case 0x9e:
		return PM
	case 0x9f:
		return APC
	default:
		return Ignore
	}
}

// Charset returns the resolved ISO 2022 charset id for a GnDm/GnDMm
// designation command; CharsetNone otherwise.
func (s *Sequence) Charset() Charset { return s.charset }

// GSet returns the designation slot (G0..G3) for a GnDm/GnDMm
// designation command.
func (s *Sequence) GSet() GSetSlot { return s.gset }

// String returns the accumulated string body for OSC and DCS
// sequences. APC, PM and SOS bodies are consumed without being stored,
// so for those kinds String does not hold their body.
func (s *Sequence) String() string { return s.str.String() }

// StringRunes returns the accumulated string body as code points, with
// the same coverage as String.
func (s *Sequence) StringRunes() []rune { return s.str.Runes() }

// StringTruncated reports whether the string body was clamped at the
// string cap (spec.md §7 "arity overflow").
func (s *Sequence) StringTruncated() bool { return s.str.Truncated() }
