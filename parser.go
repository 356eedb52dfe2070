// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser.go
// Summary: Parser — the byte/code-point-oriented state machine, grounded
// on original_source/src/parser.cc's vte_parser_feed/parser_feed_to_state
// and on apps/texelterm/parser/parser.go's state-machine shape (states as
// unexported constants, Feed as the single entry point, a reusable
// Sequence record instead of allocating a new value per call).

package vtparse

import "github.com/framegrace/vtparse/vtlog"

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithStringCap bounds how many code points an OSC or DCS string body
// accumulates (spec.md §7): an OSC body past the cap is truncated, a
// DCS body past it drops the sequence. The default and upper limit is
// 4096 code points.
func WithStringCap(n int) Option {
	return func(p *Parser) { p.stringCap = n }
}

// WithLogger attaches a logger for diagnostic events (malformed
// sequences, truncated strings, argument overflow).
func WithLogger(l vtlog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// Parser is a single-goroutine, allocation-free VT control-sequence
// state machine. It consumes one decoded Unicode code point at a time
// via Feed and reports what that code point completed, if anything.
// The zero value is not usable; construct with NewParser.
type Parser struct {
	state     state
	seq       Sequence
	log       vtlog.Logger
	stringCap int
}

// NewParser constructs a ready-to-use Parser in the ground state.
func NewParser(opts ...Option) *Parser {
	p := &Parser{state: stateGround, log: vtlog.Nop(), stringCap: maxStringCap}
	for _, o := range opts {
		o(p)
	}
	p.seq = newSequence(p.stringCap)
	return p
}

// Reset returns the Parser to the ground state and clears any
// in-progress sequence, as if newly constructed.
func (p *Parser) Reset() {
	p.state = stateGround
	p.seq.reset()
}

// Sequence returns the Parser's internal Sequence record. It is only
// meaningful immediately after a Feed call that returned a non-None,
// non-Ignore Kind, and is overwritten by the next Feed call.
func (p *Parser) Sequence() *Sequence { return &p.seq }

// Feed advances the state machine by one decoded Unicode code point
// and reports what it completed. Kind is None for every code point
// that only advanced internal state without completing anything.
func (p *Parser) Feed(r rune) Kind {
	// Controls recognized regardless of current state (parser.cc's
	// vte_parser_feed outer switch): CAN and SUB always abort whatever
	// was in progress; DEL is always a silent no-op; most C1 controls
	// execute immediately; the C1 string introducers (DCS, SOS, SCI,
	// CSI, OSC, PM, APC) always start their own sequence kind. ST
	// (0x9c) is deliberately absent here: it falls through to
	// per-state handling below, since its meaning (dispatch vs. plain
	// ignore) depends on what it is terminating.
	switch r {
	case 0x18: // CAN
		p.state = stateGround
		return None
	case 0x1a: // SUB
		p.state = stateGround
		return p.emitControl(lookupControl(r), r)
	case 0x7f: // DEL
		return None
	case 0x90: // DCS
		p.startDCS(r)
		return None
	case 0x98, 0x9e, 0x9f: // SOS, PM, APC
		p.seq.introducer = r
		p.state = stateSTIgnore
		return None
	case 0x9a: // SCI
		p.state = stateSCI
		return None
	case 0x9b: // CSI
		p.seq.resetIntermediates()
		p.seq.resetArgs()
		p.state = stateCSIEntry
		return None
	case 0x9d: // OSC
		p.startOSC(r)
		return None
	}
	if (r >= 0x80 && r <= 0x8f) || (r >= 0x91 && r <= 0x97) || r == 0x99 {
		p.state = stateGround
		return p.emitControl(lookupControl(r), r)
	}
	return p.feedState(r)
}

func (p *Parser) emitControl(cmd Command, r rune) Kind {
	p.seq.kind = Control
	p.seq.command = cmd
	p.seq.terminator = r
	return Control
}

func (p *Parser) emitIgnore(r rune) Kind {
	p.seq.kind = Ignore
	p.seq.command = NONE
	p.seq.terminator = r
	return Ignore
}

func (p *Parser) startDCS(r rune) {
	p.seq.resetIntermediates()
	p.seq.resetArgs()
	p.seq.str.reset()
	p.seq.introducer = r
	p.state = stateDCSEntry
}

func (p *Parser) startOSC(r rune) {
	p.seq.str.reset()
	p.seq.introducer = r
	p.state = stateOSCString
}

// feedState implements parser_feed_to_state: the per-state transition
// table for every code point not already claimed by Feed's top-level
// switch above.
func (p *Parser) feedState(r rune) Kind {
	switch p.state {
	case stateGround:
		return p.feedGround(r)
	case stateEsc:
		return p.feedEsc(r)
	case stateEscInt:
		return p.feedEscInt(r)
	case stateCSIEntry:
		return p.feedCSIEntry(r)
	case stateCSIParam:
		return p.feedCSIParam(r)
	case stateCSIInt:
		return p.feedCSIInt(r)
	case stateCSIIgnore:
		return p.feedCSIIgnore(r)
	case stateDCSEntry:
		return p.feedDCSEntry(r)
	case stateDCSParam:
		return p.feedDCSParam(r)
	case stateDCSInt:
		return p.feedDCSInt(r)
	case stateDCSPass:
		return p.feedDCSPass(r)
	case stateDCSIgnore:
		return p.feedDCSIgnore(r)
	case stateDCSPassEsc:
		return p.feedDCSPassEsc(r)
	case stateOSCString:
		return p.feedOSCString(r)
	case stateOSCStringEsc:
		return p.feedOSCStringEsc(r)
	case stateSTIgnore:
		return p.feedSTIgnore(r)
	case stateSCI:
		return p.feedSCI(r)
	}
	return None
}

// isC0 reports whether r is a C0 control other than CAN/SUB/ESC,
// which Feed's top-level switch already intercepted.
func isC0(r rune) bool {
	return r <= 0x1f && r != 0x1b
}

func (p *Parser) feedGround(r rune) Kind {
	if isC0(r) {
		return p.emitControl(lookupControl(r), r)
	}
	if r == 0x1b {
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	}
	if r == 0x9c { // ST with nothing open
		return p.emitIgnore(r)
	}
	p.seq.kind = Graphic
	p.seq.command = NONE
	p.seq.terminator = r
	return Graphic
}

func (p *Parser) feedEsc(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitControl(lookupControl(r), r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		p.state = stateEscInt
		return None
	case r == 0x50: // 'P' DCS
		p.startDCS(r)
		return None
	case r == 0x5a: // 'Z' SCI
		p.state = stateSCI
		return None
	case r == 0x5b: // '[' CSI
		p.seq.resetArgs()
		p.state = stateCSIEntry
		return None
	case r == 0x5d: // ']' OSC
		p.startOSC(r)
		return None
	case r == 0x58, r == 0x5e, r == 0x5f: // 'X','^','_' -> SOS/PM/APC
		p.seq.introducer = sciSevenBitIntroducer(byte(r))
		p.state = stateSTIgnore
		return None
	case r == 0x9c: // ST with nothing open
		p.state = stateGround
		return p.emitIgnore(r)
	case (r >= 0x30 && r <= 0x4f) || (r >= 0x51 && r <= 0x57) ||
		r == 0x59 || r == 0x5c || (r >= 0x60 && r <= 0x7e):
		p.state = stateGround
		return p.dispatchEsc(r)
	}
	p.state = stateGround
	return p.emitIgnore(r)
}

// sciSevenBitIntroducer maps the 7-bit ESC Fe forms of SOS/PM/APC to
// their C1 equivalent, so the eventual ST dispatch can still report
// the specific Kind the caller asked for (spec.md's SOS/PM/APC kinds;
// the original treats all three identically as "ignore until ST").
func sciSevenBitIntroducer(final byte) rune {
	switch final {
	case 0x58:
		return 0x98 // SOS
	case 0x5e:
		return 0x9e // PM
	default:
		return 0x9f // APC
	}
}

func (p *Parser) feedEscInt(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitControl(lookupControl(r), r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		return None
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	case r >= 0x30 && r <= 0x7e:
		p.state = stateGround
		return p.dispatchEsc(r)
	}
	p.state = stateGround
	return p.emitIgnore(r)
}

// dispatchEsc resolves a completed ESC sequence's command, including
// the ISO 2022 GnDm/GnDMm charset-designation special case (spec.md
// §4.1, grounded on parser-charset.hh's vte_parse_host_escape).
func (p *Parser) dispatchEsc(final rune) Kind {
	p.seq.kind = Escape
	p.seq.terminator = final
	p.seq.charset = CharsetNone
	p.seq.command = resolveEscape(&p.seq, byte(final))
	return Escape
}

func resolveEscape(s *Sequence, final byte) Command {
	interm := s.Intermediates()
	if len(interm) == 0 {
		return lookupEscape(final, nil)
	}
	first := interm[0]
	if first == '$' { // GnDMm: multi-byte 94^n designation
		slot := G0
		if len(interm) >= 2 {
			if sl, _, ok := gsetSlotForIntermediate(interm[1]); ok {
				slot = sl
			}
		}
		s.charset = lookupCharsetTable(gset94n, final)
		s.gset = slot
		return GnDMm
	}
	if slot, is96, ok := gsetSlotForIntermediate(first); ok {
		var table []Charset
		switch {
		case len(interm) >= 2 && !is96:
			switch interm[1] {
			case 0x21:
				table = gset94With21
			case 0x22:
				table = gset94With22
			case 0x25:
				table = gset94With25
			case 0x26:
				table = gset94With26
			}
		case is96:
			table = gset96
		default:
			table = gset94
		}
		if table != nil {
			s.charset = lookupCharsetTable(table, final)
		}
		s.gset = slot
		return GnDm
	}
	return lookupEscape(final, interm)
}

func (p *Parser) feedCSIEntry(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitControl(lookupControl(r), r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		p.state = stateCSIInt
		return None
	case r >= 0x30 && r <= 0x39:
		p.seq.pushDigit(r - '0')
		p.state = stateCSIParam
		return None
	case r == 0x3a:
		p.seq.finishSubparam()
		p.state = stateCSIParam
		return None
	case r == 0x3b:
		p.seq.finishParam()
		p.state = stateCSIParam
		return None
	case r >= 0x3c && r <= 0x3f:
		p.seq.setParamIntro(byte(r))
		p.state = stateCSIParam
		return None
	case r >= 0x40 && r <= 0x7e:
		p.state = stateGround
		return p.dispatchCSI(r)
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	}
	p.state = stateCSIIgnore
	return None
}

func (p *Parser) feedCSIParam(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitControl(lookupControl(r), r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		p.state = stateCSIInt
		return None
	case r >= 0x30 && r <= 0x39:
		if !p.seq.pushDigit(r - '0') {
			p.overflowCSI()
		}
		return None
	case r == 0x3a:
		if !p.seq.finishSubparam() {
			p.overflowCSI()
		}
		return None
	case r == 0x3b:
		if !p.seq.finishParam() {
			p.overflowCSI()
		}
		return None
	case r >= 0x3c && r <= 0x3f:
		p.state = stateCSIIgnore
		return None
	case r >= 0x40 && r <= 0x7e:
		p.state = stateGround
		return p.dispatchCSI(r)
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	}
	p.state = stateCSIIgnore
	return None
}

// overflowCSI transitions to CSI_IGNORE on a 33rd parameter slot
// (spec.md P6) and logs the drop for diagnostics.
func (p *Parser) overflowCSI() {
	p.state = stateCSIIgnore
	p.log.Warn("csi: parameter count overflow, dropping sequence", vtlog.Int("max_args", MaxArgs))
}

// overflowDCS is overflowCSI's DCS-header counterpart.
func (p *Parser) overflowDCS() {
	p.state = stateDCSIgnore
	p.log.Warn("dcs: parameter count overflow, dropping sequence", vtlog.Int("max_args", MaxArgs))
}

func (p *Parser) feedCSIInt(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitControl(lookupControl(r), r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		return None
	case r >= 0x30 && r <= 0x3f:
		p.state = stateCSIIgnore
		return None
	case r >= 0x40 && r <= 0x7e:
		p.state = stateGround
		return p.dispatchCSI(r)
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	}
	p.state = stateCSIIgnore
	return None
}

func (p *Parser) feedCSIIgnore(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitControl(lookupControl(r), r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x3f:
		return None
	case r >= 0x40 && r <= 0x7e:
		p.state = stateGround
		return None
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	}
	return None
}

// dispatchCSI resolves a completed CSI sequence's command, finishing
// any still-open trailing argument slot first (grounded on
// parser_csi).
func (p *Parser) dispatchCSI(final rune) Kind {
	p.seq.finishTrailingArg()
	p.seq.kind = CSI
	p.seq.terminator = final
	p.seq.command = lookupCSI(byte(final), p.seq.paramIntro, p.seq.Intermediates())
	return CSI
}

func (p *Parser) feedDCSEntry(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitIgnore(r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		p.state = stateDCSInt
		return None
	case r >= 0x30 && r <= 0x39:
		p.seq.pushDigit(r - '0')
		p.state = stateDCSParam
		return None
	case r == 0x3a:
		p.seq.finishSubparam()
		p.state = stateDCSParam
		return None
	case r == 0x3b:
		p.seq.finishParam()
		p.state = stateDCSParam
		return None
	case r >= 0x3c && r <= 0x3f:
		p.seq.setParamIntro(byte(r))
		p.state = stateDCSParam
		return None
	case r >= 0x40 && r <= 0x7e:
		p.state = stateDCSPass
		p.dcsConsume(r)
		return None
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	}
	p.state = stateDCSPass
	p.dcsConsume(r)
	return None
}

func (p *Parser) feedDCSParam(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitIgnore(r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		p.state = stateDCSInt
		return None
	case r >= 0x30 && r <= 0x39:
		if !p.seq.pushDigit(r - '0') {
			p.overflowDCS()
		}
		return None
	case r == 0x3a:
		if !p.seq.finishSubparam() {
			p.overflowDCS()
		}
		return None
	case r == 0x3b:
		if !p.seq.finishParam() {
			p.overflowDCS()
		}
		return None
	case r >= 0x3c && r <= 0x3f:
		p.state = stateDCSIgnore
		return None
	case r >= 0x40 && r <= 0x7e:
		p.state = stateDCSPass
		p.dcsConsume(r)
		return None
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	}
	p.state = stateDCSPass
	p.dcsConsume(r)
	return None
}

func (p *Parser) feedDCSInt(r rune) Kind {
	switch {
	case isC0(r):
		return p.emitIgnore(r)
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r >= 0x20 && r <= 0x2f:
		p.seq.addIntermediate(byte(r))
		return None
	case r >= 0x30 && r <= 0x3f:
		p.state = stateDCSIgnore
		return None
	case r >= 0x40 && r <= 0x7e:
		p.state = stateDCSPass
		p.dcsConsume(r)
		return None
	case r == 0x9c:
		p.state = stateGround
		return p.emitIgnore(r)
	}
	p.state = stateDCSPass
	p.dcsConsume(r)
	return None
}

func (p *Parser) dcsConsume(final rune) {
	p.seq.finishTrailingArg()
	p.seq.kind = DCS
	p.seq.terminator = final
	p.seq.command = lookupDCS(byte(final), p.seq.paramIntro, p.seq.Intermediates())
}

func (p *Parser) feedDCSPass(r rune) Kind {
	switch {
	case r == 0x1b:
		p.state = stateDCSPassEsc
		return None
	case r == 0x9c:
		p.state = stateGround
		return p.dispatchDCS(r)
	}
	if p.seq.str.full() {
		p.state = stateDCSIgnore
		p.log.Warn("dcs: string body exceeded cap, dropping sequence")
		return None
	}
	p.seq.str.append(r)
	return None
}

func (p *Parser) feedDCSPassEsc(r rune) Kind {
	if r == 0x5c { // '\'
		p.state = stateGround
		return p.dispatchDCS(r)
	}
	// Deferred clear-and-fallthrough to ESC (parser.cc's comment: "Do
	// the deferred clear and fallthrough to STATE_ESC").
	p.seq.resetIntermediates()
	p.state = stateEsc
	return p.feedEsc(r)
}

// dispatchDCS finishes a DCS body on ST, discarding it as Ignore if
// the introducer and terminator belong to different control sets
// (spec.md's matching-controls rule, grounded on
// parser_check_matching_controls).
func (p *Parser) dispatchDCS(terminator rune) Kind {
	if !controlsMatch(p.seq.introducer, terminator) {
		p.log.Warn("dcs: introducer/terminator control-set mismatch",
			vtlog.Rune("introducer", p.seq.introducer), vtlog.Rune("terminator", terminator))
		return p.emitIgnore(terminator)
	}
	p.seq.kind = DCS
	p.seq.terminator = terminator
	return DCS
}

func controlsMatch(introducer, terminator rune) bool {
	return (introducer^terminator)&0x80 == 0
}

func (p *Parser) feedDCSIgnore(r rune) Kind {
	switch {
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r == 0x9c:
		p.state = stateGround
		return None
	}
	return None
}

func (p *Parser) feedOSCString(r rune) Kind {
	switch {
	case r == 0x1b:
		p.state = stateOSCStringEsc
		return None
	case r == 0x07, r == 0x9c:
		p.state = stateGround
		return p.dispatchOSC(r)
	case (r >= 0x00 && r <= 0x06) || (r >= 0x08 && r <= 0x1a) || (r >= 0x1c && r <= 0x1f):
		return None
	}
	// Unlike CSI/DCS (dropped outright on overflow), an overrun OSC
	// body is clamped: accumulation past the cap is silently dropped
	// by append, but the sequence still dispatches normally at its
	// terminator with StringTruncated() reporting the clamp.
	p.seq.str.append(r)
	return None
}

func (p *Parser) feedOSCStringEsc(r rune) Kind {
	if r == 0x5c { // '\'
		p.state = stateGround
		return p.dispatchOSC(r)
	}
	p.seq.resetIntermediates()
	p.state = stateEsc
	return p.feedEsc(r)
}

// dispatchOSC finishes an OSC body on BEL or ST (spec.md's "Open
// question — OSC BEL termination": both are accepted, grounded on
// xterm's and VTE's longstanding behaviour).
func (p *Parser) dispatchOSC(terminator rune) Kind {
	if !controlsMatch(p.seq.introducer, terminator) {
		p.log.Warn("osc: introducer/terminator control-set mismatch",
			vtlog.Rune("introducer", p.seq.introducer), vtlog.Rune("terminator", terminator))
		return p.emitIgnore(terminator)
	}
	p.seq.kind = OSC
	p.seq.terminator = terminator
	p.seq.command = NONE
	return OSC
}

func (p *Parser) feedSTIgnore(r rune) Kind {
	switch {
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case r == 0x9c:
		p.state = stateGround
		kind := p.seq.introducerKind()
		p.seq.kind = kind
		p.seq.terminator = r
		return kind
	}
	return None
}

func (p *Parser) feedSCI(r rune) Kind {
	switch {
	case r == 0x1b:
		p.seq.resetIntermediates()
		p.state = stateEsc
		return None
	case (r >= 0x08 && r <= 0x0d) || (r >= 0x20 && r <= 0x7e):
		p.state = stateGround
		p.seq.kind = SCI
		p.seq.terminator = r
		p.seq.command = lookupSCI(r)
		return SCI
	}
	p.state = stateGround
	return p.emitIgnore(r)
}
