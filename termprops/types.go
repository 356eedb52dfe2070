// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/types.go
// Summary: Type, Flags, Value, and PropertyInfo — the typed-property
// data model, grounded on spec.md §3 "PropertyRegistry" and §4.3, and
// on original_source/src/termpropsregistry.cc /
// systemdpropsregistry.cc's vte::property::Type/Flags usage.

package termprops

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Type names the wire/textual encoding a property's value is parsed
// from and the Go type its Value carries.
type Type uint8

const (
	// Valueless means the property name alone carries the signal; no
	// value body is parsed.
	Valueless Type = iota
	// String is a UTF-8 text value, percent- or backslash-escape
	// decoded from the wire payload.
	String
	// Int is a signed decimal, optionally range-constrained.
	Int
	// Uint is an unsigned decimal, optionally range-constrained.
	Uint
	// RGB is a colour parsed from #rrggbb, #rrrrggggbbbb, or rgb:r/g/b.
	RGB
	// URI is a URI, parsed and re-serialised.
	URI
	// UUID is dashed-hex parsed.
	UUID
	// Image is an opaque handle to a binary body, format-version
	// prefixed.
	Image
)

func (t Type) String() string {
	switch t {
	case Valueless:
		return "VALUELESS"
	case String:
		return "STRING"
	case Int:
		return "INT"
	case Uint:
		return "UINT"
	case RGB:
		return "RGB"
	case URI:
		return "URI"
	case UUID:
		return "UUID"
	case Image:
		return "IMAGE"
	}
	return "UNKNOWN"
}

// Flags are bit flags modifying how a property participates in the
// OSC termprop mechanism and the systemd context attribute stream.
type Flags uint8

const (
	// None carries no special behaviour.
	None Flags = 0
	// NoOSC means the property cannot be set via the OSC termprop
	// control sequence; only the internal (e.g. systemd) producer may
	// set it.
	NoOSC Flags = 1 << iota
	// Ephemeral means the value is cleared after the next screen
	// update rather than persisting across reads.
	Ephemeral
	// SystemdStart marks a property delivered on a systemd context
	// "start" message.
	SystemdStart
	// SystemdEnd marks a property delivered on a systemd context "end"
	// message.
	SystemdEnd
)

// Value is the typed sum of every value a property can carry. Exactly
// one field is meaningful, selected by the owning PropertyInfo's Type
// (Valueless carries none).
type Value struct {
	typ  Type
	str  string
	i    int64
	u    uint64
	rgb  colorful.Color
	uri  *url.URL
	uuid uuid.UUID
	img  []byte
}

// Type reports which field of Value is meaningful.
func (v Value) Type() Type { return v.typ }

// StringValue returns the decoded text for a Type == String value.
func (v Value) StringValue() string { return v.str }

// IntValue returns the decimal value for a Type == Int value.
func (v Value) IntValue() int64 { return v.i }

// UintValue returns the decimal value for a Type == Uint value.
func (v Value) UintValue() uint64 { return v.u }

// RGBValue returns the colour for a Type == RGB value.
func (v Value) RGBValue() colorful.Color { return v.rgb }

// URIValue returns the parsed URI for a Type == URI value.
func (v Value) URIValue() *url.URL { return v.uri }

// UUIDValue returns the parsed UUID for a Type == UUID value.
func (v Value) UUIDValue() uuid.UUID { return v.uuid }

// ImageValue returns the opaque binary body for a Type == Image value,
// with the wire form's version prefix and base64 encoding removed.
func (v Value) ImageValue() []byte { return v.img }

func valuelessValue() Value            { return Value{typ: Valueless} }
func stringValue(s string) Value       { return Value{typ: String, str: s} }
func intValue(i int64) Value           { return Value{typ: Int, i: i} }
func uintValue(u uint64) Value         { return Value{typ: Uint, u: u} }
func rgbValue(c colorful.Color) Value  { return Value{typ: RGB, rgb: c} }
func uriValue(u *url.URL) Value        { return Value{typ: URI, uri: u} }
func uuidValue(id uuid.UUID) Value     { return Value{typ: UUID, uuid: id} }
func imageValue(b []byte) Value        { return Value{typ: Image, img: b} }

// ParseFunc resolves a property's raw wire payload into a Value. Most
// properties use the default parser for their Type; a few (systemd
// enum-like attributes, progress's range constraints) supply their
// own, matching termpropsregistry.cc's per-entry parse_fn.
type ParseFunc func(text string) (Value, bool)

// PropertyInfo is everything the registry knows about one installed
// property.
type PropertyInfo struct {
	ID       int
	Name     string
	Type     Type
	Flags    Flags
	ParseFn  ParseFunc
}
