// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/parse_string.go
// Summary: STRING/INT/UINT/IMAGE parsing, grounded on spec.md §4.3's
// parse rules ("percent-style or backslash-style escape decoding...
// UTF-8 validated", "decimal with optional range constraint") and on
// termpropsregistry.cc's parse_termprop_integral_range<T>(str, lo, hi).

package termprops

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// parseString decodes an OSC-style payload using percent-escapes
// (%XX) and backslash-escapes (\\, \;, \xHH), then validates the
// result as UTF-8 and normalises it to NFC so a caller can't smuggle
// an invalid combining sequence downstream of the escape decode.
func parseString(text string) (Value, bool) {
	decoded, ok := decodeEscapes(text)
	if !ok {
		return Value{}, false
	}
	if !utf8.ValidString(decoded) {
		return Value{}, false
	}
	return stringValue(norm.NFC.String(decoded)), true
}

func decodeEscapes(text string) (string, bool) {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '%':
			if i+2 >= len(text) {
				return "", false
			}
			v, err := strconv.ParseUint(text[i+1:i+3], 16, 8)
			if err != nil {
				return "", false
			}
			b.WriteByte(byte(v))
			i += 2
		case '\\':
			if i+1 >= len(text) {
				return "", false
			}
			next := text[i+1]
			switch next {
			case '\\', ';':
				b.WriteByte(next)
				i++
			case 'x':
				if i+3 >= len(text) {
					return "", false
				}
				v, err := strconv.ParseUint(text[i+2:i+4], 16, 8)
				if err != nil {
					return "", false
				}
				b.WriteByte(byte(v))
				i += 3
			default:
				return "", false
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}

// parseInt parses a signed decimal, optionally constrained to
// [lo, hi] when bounds is non-nil.
func parseInt(text string, bounds *[2]int64) (Value, bool) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Value{}, false
	}
	if bounds != nil && (v < bounds[0] || v > bounds[1]) {
		return Value{}, false
	}
	return intValue(v), true
}

// parseUint parses an unsigned decimal, optionally constrained to
// [lo, hi] when bounds is non-nil.
func parseUint(text string, bounds *[2]uint64) (Value, bool) {
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Value{}, false
	}
	if bounds != nil && (v < bounds[0] || v > bounds[1]) {
		return Value{}, false
	}
	return uintValue(v), true
}

// rangedInt returns a ParseFunc constraining an Int property to
// [lo, hi], mirroring parse_termprop_integral_range<int64_t>.
func rangedInt(lo, hi int64) ParseFunc {
	bounds := [2]int64{lo, hi}
	return func(text string) (Value, bool) { return parseInt(text, &bounds) }
}

// rangedUint returns a ParseFunc constraining a Uint property to
// [lo, hi], mirroring parse_termprop_integral_range<uint64_t>.
func rangedUint(lo, hi uint64) ParseFunc {
	bounds := [2]uint64{lo, hi}
	return func(text string) (Value, bool) { return parseUint(text, &bounds) }
}

// parseImage decodes a format-version-prefixed, base64-encoded opaque
// image body: "1;<base64 data>". Only the version-1 envelope is
// recognised; unknown versions are rejected so a future format change
// doesn't get misread as image bytes.
func parseImage(text string) (Value, bool) {
	version, data, found := strings.Cut(text, ";")
	if !found || version != "1" {
		return Value{}, false
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Value{}, false
	}
	return imageValue(raw), true
}
