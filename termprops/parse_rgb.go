// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/parse_rgb.go
// Summary: RGB parsing via go-colorful, grounded on spec.md §4.3
// ("parsed from #rrggbb, #rrrrggggbbbb, or rgb:r/g/b") and on
// SPEC_FULL.md §5's go-colorful wiring.

package termprops

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// parseRGB parses #rrggbb via colorful.Hex (the 12-hex-digit
// #rrrrggggbbbb form is first reduced to 6 digits by normalizeHex),
// and rgb:r/g/b (X11-style, 1-4 hex digits per channel) by hand.
func parseRGB(text string) (Value, bool) {
	if strings.HasPrefix(text, "#") {
		c, err := colorful.Hex(normalizeHex(text))
		if err != nil {
			return Value{}, false
		}
		return rgbValue(c), true
	}
	if rest, ok := strings.CutPrefix(text, "rgb:"); ok {
		return parseX11RGB(rest)
	}
	return Value{}, false
}

// normalizeHex downsamples a 12-hex-digit "#rrrrggggbbbb" form to the
// 6-digit form colorful.Hex accepts, keeping the high byte of each
// 16-bit channel.
func normalizeHex(text string) string {
	if len(text) != 13 {
		return text
	}
	return "#" + text[1:3] + text[5:7] + text[9:11]
}

func parseX11RGB(rest string) (Value, bool) {
	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return Value{}, false
	}
	var chans [3]float64
	for i, p := range parts {
		if len(p) < 1 || len(p) > 4 {
			return Value{}, false
		}
		v, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return Value{}, false
		}
		max := uint64(1)<<(4*len(p)) - 1
		chans[i] = float64(v) / float64(max)
	}
	return rgbValue(colorful.Color{R: chans[0], G: chans[1], B: chans[2]}), true
}
