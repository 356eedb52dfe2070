// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/registry_test.go

package termprops

import "testing"

func TestWellKnownPropertiesPreinstalled(t *testing.T) {
	r := NewTermpropsRegistry()
	info, ok := r.Lookup(NameXtermTitle)
	if !ok {
		t.Fatalf("expected %s to be pre-installed", NameXtermTitle)
	}
	if info.ID != IDXtermTitle || info.Type != String || info.Flags != NoOSC {
		t.Fatalf("unexpected PropertyInfo for %s: %+v", NameXtermTitle, info)
	}
	if byID, ok := r.LookupByID(IDXtermTitle); !ok || byID.Name != NameXtermTitle {
		t.Fatalf("LookupByID(%d) did not round-trip to %s", IDXtermTitle, NameXtermTitle)
	}
}

func TestInstallRejectsMissingExtensionPrefix(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, err := r.Install("my.custom.prop", String, None); err == nil {
		t.Fatalf("expected an error installing a non-prefixed, non-well-known name")
	}
}

func TestInstallExtensionPropertySucceeds(t *testing.T) {
	r := NewTermpropsRegistry()
	id, err := r.Install("vte.ext.mytool.state", String, None)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id <= IDIconImage {
		t.Fatalf("expected a fresh id beyond the well-known range, got %d", id)
	}
	// Re-installing with the same type/flags is a no-op returning the
	// same id.
	id2, err := r.Install("vte.ext.mytool.state", String, None)
	if err != nil || id2 != id {
		t.Fatalf("expected idempotent re-install, got id=%d err=%v", id2, err)
	}
}

func TestInstallRejectsConflictingReinstall(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, err := r.Install("vte.ext.mytool.state", String, None); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Install("vte.ext.mytool.state", Int, None); err == nil {
		t.Fatalf("expected an error re-installing with a different type")
	}
}

func TestInstallRejectsWellKnownWithWrongType(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, err := r.Install(NameXtermTitle, Int, None); err == nil {
		t.Fatalf("expected an error installing a well-known name with the wrong type")
	}
}

func TestInstallAliasResolvesToTarget(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, err := r.Install("vte.ext.mytool.alt_title", String, None); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.InstallAlias("vte.ext.mytool.title_alias", "vte.ext.mytool.alt_title"); err != nil {
		t.Fatalf("unexpected error installing alias: %v", err)
	}
	info, ok := r.Lookup("vte.ext.mytool.title_alias")
	if !ok || info.Name != "vte.ext.mytool.alt_title" {
		t.Fatalf("alias did not resolve to target: %+v", info)
	}
}

func TestInstallAliasRejectsUnknownTarget(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, err := r.InstallAlias("vte.ext.mytool.alias", "vte.ext.mytool.nonexistent"); err == nil {
		t.Fatalf("expected an error aliasing to an unregistered target")
	}
}

func TestParseProgressHintRange(t *testing.T) {
	r := NewTermpropsRegistry()
	v, ok := r.Parse(IDProgressHint, "2")
	if !ok || v.IntValue() != 2 {
		t.Fatalf("expected progress hint 2 to parse, got ok=%v v=%+v", ok, v)
	}
	if _, ok := r.Parse(IDProgressHint, "5"); ok {
		t.Fatalf("expected progress hint 5 (out of 0..4) to be rejected")
	}
}

func TestParseProgressValueRange(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, ok := r.Parse(IDProgressValue, "100"); !ok {
		t.Fatalf("expected progress value 100 to parse")
	}
	if _, ok := r.Parse(IDProgressValue, "101"); ok {
		t.Fatalf("expected progress value 101 (out of 0..100) to be rejected")
	}
}

func TestParseRGBHexForms(t *testing.T) {
	r := NewTermpropsRegistry()
	v, ok := r.Parse(IDIconColor, "#ff0080")
	if !ok {
		t.Fatalf("expected #ff0080 to parse")
	}
	c := v.RGBValue()
	if c.R < 0.99 || c.G > 0.01 || c.B < 0.49 || c.B > 0.51 {
		t.Fatalf("unexpected RGB decode for #ff0080: %+v", c)
	}
}

func TestParseRGBX11Form(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, ok := r.Parse(IDIconColor, "rgb:ff/00/80"); !ok {
		t.Fatalf("expected rgb:ff/00/80 to parse")
	}
}

func TestParseCWDPromotesBarePath(t *testing.T) {
	v, ok := parseCWD("/home/user/project")
	if !ok {
		t.Fatalf("expected bare path to parse")
	}
	u := v.URIValue()
	if u.Scheme != "file" || u.Path != "/home/user/project" {
		t.Fatalf("expected file:// promotion, got %+v", u)
	}
}

func TestParseUUID(t *testing.T) {
	v, ok := parseUUID("550e8400-e29b-41d4-a716-446655440000")
	if !ok {
		t.Fatalf("expected a valid UUID to parse")
	}
	if v.Type() != UUID {
		t.Fatalf("expected Type()==UUID, got %v", v.Type())
	}
}

func TestParseStringPercentEscape(t *testing.T) {
	v, ok := parseString("hello%20world")
	if !ok || v.StringValue() != "hello world" {
		t.Fatalf("expected percent-escape decode, got ok=%v v=%q", ok, v.StringValue())
	}
}

func TestLookupUnknownNameFails(t *testing.T) {
	r := NewTermpropsRegistry()
	if _, ok := r.Lookup("vte.ext.never.installed"); ok {
		t.Fatalf("expected lookup of an uninstalled name to fail")
	}
}
