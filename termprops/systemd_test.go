// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/systemd_test.go

package termprops

import "testing"

func TestSystemdRegistryPreinstallsContextAttributes(t *testing.T) {
	r := NewSystemdRegistry()
	info, ok := r.Lookup(NameContextID)
	if !ok {
		t.Fatalf("expected %s to be pre-installed", NameContextID)
	}
	if info.Type != UUID || info.Flags != NoOSC {
		t.Fatalf("unexpected PropertyInfo for %s: %+v", NameContextID, info)
	}
}

func TestSystemdStartEndFlagsPartitionAttributes(t *testing.T) {
	r := NewSystemdRegistry()
	boot, _ := r.Lookup(NameBootID)
	if boot.Flags&SystemdStart == 0 {
		t.Fatalf("expected %s to carry SystemdStart", NameBootID)
	}
	exitStatus, _ := r.Lookup(NameExitStatus)
	if exitStatus.Flags&SystemdEnd == 0 {
		t.Fatalf("expected %s to carry SystemdEnd", NameExitStatus)
	}
}

func TestParseContextType(t *testing.T) {
	r := NewSystemdRegistry()
	info, _ := r.Lookup(NameContextType)
	v, ok := r.Parse(info.ID, "shell")
	if !ok || ContextType(v.IntValue()) != ContextTypeShell {
		t.Fatalf("expected \"shell\" to parse to ContextTypeShell, got ok=%v v=%+v", ok, v)
	}
	if _, ok := r.Parse(info.ID, "not-a-type"); ok {
		t.Fatalf("expected an unrecognised context type string to fail parsing")
	}
}

func TestParseExitCondition(t *testing.T) {
	r := NewSystemdRegistry()
	info, _ := r.Lookup(NameExitCondition)
	v, ok := r.Parse(info.ID, "crash")
	if !ok || ExitCondition(v.IntValue()) != ExitConditionCrash {
		t.Fatalf("expected \"crash\" to parse to ExitConditionCrash, got ok=%v v=%+v", ok, v)
	}
}

func TestParseExitStatusRange(t *testing.T) {
	r := NewSystemdRegistry()
	info, _ := r.Lookup(NameExitStatus)
	if _, ok := r.Parse(info.ID, "255"); !ok {
		t.Fatalf("expected exit status 255 to parse")
	}
	if _, ok := r.Parse(info.ID, "256"); ok {
		t.Fatalf("expected exit status 256 (out of 0..255) to be rejected")
	}
}

func TestSystemdCurrentDirectoryPromotesBarePath(t *testing.T) {
	r := NewSystemdRegistry()
	info, _ := r.Lookup(NameCurrentDirectory)
	v, ok := r.Parse(info.ID, "/var/lib/myservice")
	if !ok {
		t.Fatalf("expected a bare path to parse")
	}
	if v.URIValue().Scheme != "file" {
		t.Fatalf("expected file:// promotion, got %+v", v.URIValue())
	}
}

func TestSystemdRegistryIsIndependentOfTermprops(t *testing.T) {
	sys := NewSystemdRegistry()
	term := NewTermpropsRegistry()
	if _, ok := sys.Lookup(NameXtermTitle); ok {
		t.Fatalf("systemd registry should not see the public termprop namespace")
	}
	if _, ok := term.Lookup(NameContextID); ok {
		t.Fatalf("termprops registry should not see the internal systemd namespace")
	}
}
