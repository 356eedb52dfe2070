// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sixel/parser.go
// Summary: SixelParser — the DECSIXEL bitmap sub-parser, grounded on
// original_source/src/sixel-parser.hh's vte::sixel::Parser and on
// ../parser.go's state-machine shape (states as unexported constants,
// Feed as the single entry point, a reusable Sequence record).

package sixel

import "github.com/framegrace/vtparse/vtlog"

type state uint8

const (
	stateGround state = iota
	stateParams
	stateIgnore
	stateEsc
	stateUTF8C2
)

// Option configures a SixelParser at construction time.
type Option func(*SixelParser)

// WithMode selects the control-set encoding the sub-parser expects
// (default UTF8, matching the teacher's vte::sixel::Parser default).
func WithMode(m Mode) Option {
	return func(p *SixelParser) { p.mode = m }
}

// WithLogger attaches a logger for diagnostic events (parameter
// overflow).
func WithLogger(l vtlog.Logger) Option {
	return func(p *SixelParser) { p.log = l }
}

// SixelParser consumes raw bytes of a DECSIXEL bitmap programme (the
// string body of a DCS/DECSIXEL Sequence from the main parser) and
// reports decoded commands and bitmap columns to a Dispatcher.
type SixelParser struct {
	state state
	mode  Mode
	seq   SixelSequence
	log   vtlog.Logger
}

// NewSixelParser constructs a ready-to-use SixelParser in the ground
// state.
func NewSixelParser(opts ...Option) *SixelParser {
	p := &SixelParser{state: stateGround, mode: UTF8, log: vtlog.Nop()}
	p.seq.clear()
	for _, o := range opts {
		o(p)
	}
	return p
}

// Reset returns the parser to the ground state, as if newly
// constructed, without changing the selected Mode.
func (p *SixelParser) Reset() {
	p.state = stateGround
	p.seq.clear()
}

// SetMode resets the parser and selects a new control-set encoding.
func (p *SixelParser) SetMode(m Mode) {
	p.Reset()
	p.mode = m
}

// Sequence returns the parser's internal SixelSequence record. Valid
// only during a Dispatcher callback invoked from the current Feed
// call.
func (p *SixelParser) Sequence() *SixelSequence { return &p.seq }

// Feed advances the sub-parser by one raw byte, invoking d for any
// command or bitmap column it completes.
func (p *SixelParser) Feed(raw byte, d Dispatcher) Status {
	switch p.state {
	case stateParams:
		return p.feedParams(raw, d)
	case stateGround:
		return p.feedGround(raw, d)
	case stateIgnore:
		return p.feedIgnore(raw, d)
	case stateEsc:
		return p.feedEsc(raw, d)
	case stateUTF8C2:
		return p.feedUTF8C2(raw, d)
	}
	return Continue
}

// Flush signals end of input with no further bytes available. A
// pending PARAMS command is dispatched; any in-progress ESC/UTF8_C2
// sub-state is abandoned with a rewind so the caller can recover the
// bytes it already consumed.
func (p *SixelParser) Flush(d Dispatcher) Status {
	switch p.state {
	case stateParams:
		p.dispatch(d)
		p.state = stateGround
		return Abort
	case stateGround, stateIgnore:
		p.state = stateGround
		return Abort
	default: // stateEsc, stateUTF8C2
		p.state = stateGround
		return AbortRewindOne
	}
}

func isIgnoredC0(raw byte) bool {
	return raw <= 0x1f && raw != 0x18 && raw != 0x1a && raw != 0x1b
}

// feedParams implements the PARAMS state. Grounded on sixel-parser.hh's
// Parser::feed PARAMS case: digits, ':', and ';' are handled in place;
// ignored C0 controls, DEL, and high bytes the mode does not treat as
// C1 are skipped; every other byte either dispatches the pending
// command and reprocesses itself from GROUND, or (SUB) abandons the
// command and reprocesses as a literal '?' sixel data byte.
func (p *SixelParser) feedParams(raw byte, d Dispatcher) Status {
	switch {
	case isIgnoredC0(raw):
		return Continue
	case raw >= '0' && raw <= '9':
		if !p.seq.pushDigit(int32(raw - '0')) {
			p.overflow()
		}
		return Continue
	case raw == ':':
		p.state = stateIgnore
		return Continue
	case raw == ';':
		if !p.seq.finishParam() {
			p.overflow()
		}
		return Continue
	case raw == 0x7f || (raw >= 0xa0 && raw <= 0xc1) || (raw >= 0xc3 && raw <= 0xff):
		return Continue
	case raw == 0xc2 && (p.mode == EightBit || p.mode == SevenBit):
		return Continue
	case raw >= 0x80 && raw <= 0x9f && p.mode == SevenBit:
		return Continue
	case raw == 0x1a: // SUB: abandon the pending command, don't dispatch it
		p.state = stateGround
		return p.feedGround(raw, d)
	default: // CAN, ESC, 0x20-0x2f, 0x3c-0x7e, and (mode-permitting) 0xc2/0x80-0x9f
		p.dispatch(d)
		p.state = stateGround
		return p.feedGround(raw, d)
	}
}

func (p *SixelParser) overflow() {
	p.state = stateIgnore
	p.log.Warn("sixel: parameter count overflow, dropping command", vtlog.Int("max_args", MaxArgs))
}

// feedGround implements the GROUND state.
func (p *SixelParser) feedGround(raw byte, d Dispatcher) Status {
	switch {
	case isIgnoredC0(raw):
		return Continue
	case raw == 0x18: // CAN
		p.state = stateGround
		return AbortRewindOne
	case raw == 0x1b: // ESC
		p.state = stateEsc
		return Continue
	case raw == 0x20: // SP
		return Continue
	case (raw >= 0x21 && raw <= 0x2f) || (raw >= 0x3c && raw <= 0x3e):
		p.seq.clearTrailing()
		p.seq.command = Command(raw)
		p.state = stateParams
		return Continue
	case raw >= 0x30 && raw <= 0x3b: // digits, ':', ';' with no command yet
		p.state = stateIgnore
		return Continue
	case raw == 0x1a: // SUB: same as '?' (value 0)
		d.Sixel(0)
		return Continue
	case raw >= 0x3f && raw <= 0x7e:
		d.Sixel(raw - 0x3f)
		return Continue
	case raw == 0x7f: // DEL
		return Continue
	case raw == 0xc2:
		if p.mode == UTF8 {
			p.state = stateUTF8C2
		}
		return Continue
	case raw == 0x9c:
		if p.mode == EightBit {
			p.state = stateGround
			d.ST()
			return Complete
		}
		return Continue
	case (raw >= 0x80 && raw <= 0x9b) || (raw >= 0x9d && raw <= 0x9f):
		if p.mode == EightBit {
			p.state = stateGround
			return AbortRewindOne
		}
		return Continue
	default: // 0xa0-0xc1, 0xc3-0xff
		return Continue
	}
}

// feedIgnore implements the IGNORE state: everything but a digit,
// colon, semicolon, or DEL returns to GROUND and is reprocessed there.
func (p *SixelParser) feedIgnore(raw byte, d Dispatcher) Status {
	switch {
	case (raw >= 0x30 && raw <= 0x3b) || raw == 0x7f:
		return Continue
	default:
		p.state = stateGround
		return p.feedGround(raw, d)
	}
}

// feedEsc implements the ESC state: only a backslash completes the
// programme; DEL is skipped; any other byte aborts and asks the caller
// to rewind both the ESC and this byte back into the enclosing parser.
func (p *SixelParser) feedEsc(raw byte, d Dispatcher) Status {
	switch {
	case raw == 0x5c:
		p.state = stateGround
		d.ST()
		return Complete
	case raw == 0x7f:
		return Continue
	default:
		p.state = stateGround
		return AbortRewindTwo
	}
}

// feedUTF8C2 implements the UTF8_C2 state: the second byte of a
// two-byte UTF-8 C1 control sequence introduced by 0xc2.
func (p *SixelParser) feedUTF8C2(raw byte, d Dispatcher) Status {
	switch {
	case raw == 0x1b:
		p.state = stateEsc
		return Continue
	case (raw >= 0x80 && raw <= 0x9b) || (raw >= 0x9d && raw <= 0x9f):
		p.state = stateGround
		return AbortRewindTwo
	case raw == 0x9c:
		p.state = stateGround
		d.ST()
		return Complete
	case raw == 0xc2:
		return Continue
	default:
		p.state = stateGround
		return p.feedGround(raw, d)
	}
}

func (p *SixelParser) dispatch(d Dispatcher) {
	p.seq.finishTrailing()
	switch p.seq.command {
	case None:
		return
	case DECGRI:
		d.DECGRI(&p.seq)
	case DECGRA:
		d.DECGRA(&p.seq)
	case DECGCI:
		d.DECGCI(&p.seq)
	case DECGCR:
		d.DECGCR(&p.seq)
	case DECGCH:
		d.DECGCH(&p.seq)
	case DECGNL:
		d.DECGNL(&p.seq)
	default:
		p.seq.clearTrailing()
		d.Nop(&p.seq)
	}
}
