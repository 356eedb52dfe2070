// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser_test.go
// Summary: End-to-end state-machine scenarios and the universally
// quantified properties from the design notes, grounded on the
// worked byte sequences checked against original_source/src/parser.cc.

package vtparse

import "testing"

func feedAll(p *Parser, bytes ...byte) Kind {
	var last Kind
	for _, b := range bytes {
		last = p.Feed(rune(b))
	}
	return last
}

func TestSimpleSGR(t *testing.T) {
	p := NewParser()
	kind := feedAll(p, 0x1b, 0x5b, 0x33, 0x31, 0x6d)
	if kind != CSI {
		t.Fatalf("expected CSI, got %v", kind)
	}
	seq := p.Sequence()
	if seq.Command() != SGR {
		t.Fatalf("expected SGR, got %v", seq.Command())
	}
	if seq.NumArgs() != 1 {
		t.Fatalf("expected 1 arg, got %d", seq.NumArgs())
	}
	if v := seq.Param(0, -1); v != 31 {
		t.Fatalf("expected args[0]=31, got %d", v)
	}
}

func TestSGRColonSubparams(t *testing.T) {
	p := NewParser()
	// ESC [ 38:2::10:20:30 m
	kind := feedAll(p, 0x1b, 0x5b,
		0x33, 0x38, 0x3a, 0x32, 0x3a, 0x3a,
		0x31, 0x30, 0x3a, 0x32, 0x30, 0x3a, 0x33, 0x30, 0x6d)
	if kind != CSI {
		t.Fatalf("expected CSI, got %v", kind)
	}
	seq := p.Sequence()
	if seq.Command() != SGR {
		t.Fatalf("expected SGR, got %v", seq.Command())
	}
	if seq.NumArgs() != 6 {
		t.Fatalf("expected 6 args, got %d", seq.NumArgs())
	}
	want := []int32{38, 2, -1, 10, 20, 30}
	for i, w := range want {
		if got := seq.Param(i, -1); got != w {
			t.Fatalf("args[%d]: expected %d, got %d", i, w, got)
		}
	}
	for i := 0; i <= 4; i++ {
		if !seq.ParamIsSubParameter(i) {
			t.Fatalf("args[%d]: expected sub-parameter", i)
		}
	}
	if seq.ParamIsSubParameter(5) {
		t.Fatalf("args[5]: expected final, not sub-parameter")
	}
}

func TestOSCSetTitle(t *testing.T) {
	p := NewParser()
	kind := feedAll(p, 0x1b, 0x5d, 0x30, 0x3b, 'h', 'e', 'l', 'l', 'o', 0x07)
	if kind != OSC {
		t.Fatalf("expected OSC, got %v", kind)
	}
	seq := p.Sequence()
	if seq.String() != "0;hello" {
		t.Fatalf("expected body %q, got %q", "0;hello", seq.String())
	}
	if seq.Terminator() != 0x07 {
		t.Fatalf("expected terminator BEL, got %#x", seq.Terminator())
	}
}

func TestDCSSixelBody(t *testing.T) {
	p := NewParser()
	body := "\"3;8;300;200#0;2;100;50;50"
	bytes := []byte{0x1b, 0x50, 'q'}
	bytes = append(bytes, []byte(body)...)
	bytes = append(bytes, 0x1b, 0x5c)
	var kind Kind
	for _, b := range bytes {
		kind = p.Feed(rune(b))
	}
	if kind != DCS {
		t.Fatalf("expected DCS, got %v", kind)
	}
	seq := p.Sequence()
	if seq.Command() != DECSIXEL {
		t.Fatalf("expected DECSIXEL, got %v", seq.Command())
	}
	if seq.String() != body {
		t.Fatalf("expected body %q, got %q", body, seq.String())
	}
}

func TestSGRAllDefaultTrailingSeparators(t *testing.T) {
	p := NewParser()
	// ESC [ ;::;; m
	kind := feedAll(p, 0x1b, 0x5b, 0x3b, 0x3a, 0x3a, 0x3b, 0x3b, 0x6d)
	if kind != CSI {
		t.Fatalf("expected CSI, got %v", kind)
	}
	seq := p.Sequence()
	if seq.Command() != SGR {
		t.Fatalf("expected SGR, got %v", seq.Command())
	}
	if seq.NumArgs() != 5 {
		t.Fatalf("expected 5 args, got %d", seq.NumArgs())
	}
	for i := 0; i < seq.NumArgs(); i++ {
		if !seq.ParamIsDefault(i) {
			t.Fatalf("args[%d]: expected default", i)
		}
	}
	if !seq.ParamIsSubParameter(1) || !seq.ParamIsSubParameter(2) {
		t.Fatalf("expected args[1] and args[2] marked sub-parameter")
	}
	if seq.ParamIsSubParameter(0) || seq.ParamIsSubParameter(3) {
		t.Fatalf("only args[1] and args[2] should be sub-parameter")
	}
}

func TestDesignateASCIIAsG0(t *testing.T) {
	p := NewParser()
	kind := feedAll(p, 0x1b, '(', 'B')
	if kind != Escape {
		t.Fatalf("expected Escape, got %v", kind)
	}
	seq := p.Sequence()
	if seq.Command() != GnDm {
		t.Fatalf("expected GnDm, got %v", seq.Command())
	}
	if seq.Charset() != IR(6) {
		t.Fatalf("expected IR(6), got %v", seq.Charset())
	}
	if seq.GSet() != G0 {
		t.Fatalf("expected G0, got %v", seq.GSet())
	}
}

// P1/P2: default-promotion and the -1 "never started" sentinel.
func TestParamDefaultPromotion(t *testing.T) {
	p := NewParser()
	feedAll(p, 0x1b, 0x5b, 0x6d) // ESC [ m, no params at all
	seq := p.Sequence()
	if v := seq.Param(0, -9); v != -9 {
		t.Fatalf("expected default -9 for out-of-range slot, got %d", v)
	}
	if !seq.ParamIsDefault(0) {
		t.Fatalf("expected slot 0 to read as default")
	}
}

// P5: a DCS opened with a C1 introducer but closed via the 7-bit
// ESC '\' form carries mismatched control-set bits in (introducer ^
// terminator) and is reported as Ignore, not DCS.
func TestControlSetMismatchDroppedAsIgnore(t *testing.T) {
	p := NewParser()
	kind := feedAll(p, 0x90, 'q', 0x1b, 0x5c)
	if kind != Ignore {
		t.Fatalf("expected Ignore for mismatched control sets, got %v", kind)
	}

	p2 := NewParser()
	// C1 DCS (0x90) terminated by a raw C1 ST (0x9c): matching control
	// sets, normal dispatch.
	kind2 := feedAll(p2, 0x90, 'q', 0x9c)
	if kind2 != DCS {
		t.Fatalf("expected DCS, got %v", kind2)
	}
}

// P6: a CSI with 33 semicolon-separated parameters is dropped (NONE)
// and the parser returns to GROUND.
func TestArityOverflowDropsSequence(t *testing.T) {
	p := NewParser()
	p.Feed(0x1b)
	p.Feed(0x5b)
	for i := 0; i < 33; i++ {
		p.Feed(';')
	}
	kind := p.Feed('m')
	if kind != None {
		t.Fatalf("expected None (dropped), got %v", kind)
	}
	// parser must be back in ground: the next printable byte is GRAPHIC.
	if k := p.Feed('x'); k != Graphic {
		t.Fatalf("expected parser back in ground state, got %v", k)
	}
}

// P7: reset() returns the parser to a behaviourally fresh state.
func TestResetIsIdempotent(t *testing.T) {
	p := NewParser()
	feedAll(p, 0x1b, 0x5b, 0x33, 0x31) // partial CSI, never finished
	p.Reset()

	fresh := NewParser()
	got := feedAll(p, 'm')
	want := feedAll(fresh, 'm')
	if got != want {
		t.Fatalf("post-reset behaviour diverged: got %v, want %v", got, want)
	}
}

// P8: a run of printable scalars all yields GRAPHIC, one per scalar,
// in order.
func TestPrintableRunNoLoss(t *testing.T) {
	p := NewParser()
	input := "hello, world!"
	for i, r := range input {
		kind := p.Feed(r)
		if kind != Graphic {
			t.Fatalf("byte %d (%q): expected Graphic, got %v", i, r, kind)
		}
		if got := p.Sequence().Terminator(); got != r {
			t.Fatalf("byte %d: expected terminator %q, got %q", i, r, got)
		}
	}
}

// P9: during DCS_PASS, ESC followed by anything but '\' aborts the
// DCS and re-enters ESC handling for that byte.
func TestDCSAbortOnEscNonBackslash(t *testing.T) {
	p := NewParser()
	feedAll(p, 0x90, 'q', 'a', 'b', 'c', 0x1b)
	// Feeding '[' now should behave exactly like a fresh ESC '[':
	// entering CSI_ENTRY, not resuming the aborted DCS.
	kind := p.Feed('[')
	if kind != None {
		t.Fatalf("expected None entering CSI_ENTRY, got %v", kind)
	}
	kind = p.Feed('m')
	if kind != CSI {
		t.Fatalf("expected the abort to leave a clean path into a new CSI, got %v", kind)
	}
	if p.Sequence().Command() != SGR {
		t.Fatalf("expected SGR, got %v", p.Sequence().Command())
	}
}

func TestCANAbortsInProgressSequence(t *testing.T) {
	p := NewParser()
	feedAll(p, 0x1b, 0x5b, 0x33, 0x31, 0x18) // ESC [ 3 1 CAN
	if k := p.Feed('m'); k != Graphic {
		t.Fatalf("expected CAN to abort back to ground, got %v", k)
	}
}
