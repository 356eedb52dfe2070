// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr.go
// Summary: SGR (Select Graphic Rendition) parameter taxonomy and
// colour decoding, grounded on original_source/src/parser-sgr.hh and
// adapted from apps/texelterm/parser/vterm_sgr.go (handleSGR) to the
// full colon-subparameter grammar spec.md §9 requires.

package vtparse

import "github.com/lucasb-eyer/go-colorful"

// SGRAttribute names one SGR set/reset parameter, grounded on
// parser-sgr.hh's SGR()/NGR() macro table.
type SGRAttribute int

const (
	SGRResetAll SGRAttribute = iota
	SGRBold
	SGRDim
	SGRItalic
	SGRUnderline
	SGRBlink
	SGRBlinkRapid
	SGRReverse
	SGRInvisible
	SGRStrikethrough
	SGRUnderlineDouble
	SGRResetBoldAndDim
	SGRResetItalic
	SGRResetUnderline
	SGRResetBlink
	SGRResetReverse
	SGRResetInvisible
	SGRResetStrikethrough
	SGRResetForeground
	SGRResetBackground
	SGROverline
	SGRResetOverline
	SGRDecoration
	SGRResetDecoration
)

var sgrParamAttribute = map[int32]SGRAttribute{
	0:  SGRResetAll,
	1:  SGRBold,
	2:  SGRDim,
	3:  SGRItalic,
	4:  SGRUnderline,
	5:  SGRBlink,
	6:  SGRBlinkRapid,
	7:  SGRReverse,
	8:  SGRInvisible,
	9:  SGRStrikethrough,
	21: SGRUnderlineDouble,
	22: SGRResetBoldAndDim,
	23: SGRResetItalic,
	24: SGRResetUnderline,
	25: SGRResetBlink,
	27: SGRResetReverse,
	28: SGRResetInvisible,
	29: SGRResetStrikethrough,
	39: SGRResetForeground,
	49: SGRResetBackground,
	53: SGROverline,
	55: SGRResetOverline,
	58: SGRDecoration,
	59: SGRResetDecoration,
}

// ColorTarget says whether a decoded SGR colour sets the foreground,
// background, or underline/decoration colour.
type ColorTarget int

const (
	ColorForeground ColorTarget = iota
	ColorBackground
	ColorDecoration
)

// ColorKind is the representation a decoded SGR colour parameter
// carries.
type ColorKind int

const (
	ColorKindLegacy ColorKind = iota // 30-37, 40-47, 90-97, 100-107
	ColorKindPalette256
	ColorKindRGB
)

// Color is one decoded SGR (or termprop RGB) colour value.
type Color struct {
	Kind    ColorKind
	Index   uint8 // legacy (0..15) or 256-palette (0..255) index
	RGB     colorful.Color
	HasRGB  bool
}

// SGREffect is one decoded element of an SGR parameter list: either a
// plain attribute toggle or a colour assignment.
type SGREffect struct {
	Attribute SGRAttribute
	HasColor  bool
	Target    ColorTarget
	Color     Color
}

// DecodeSGR walks a completed SGR Sequence's parameters and returns
// the ordered list of effects it specifies, honouring sub-parameter
// colour forms. It accepts each of these ways to spell an extended
// colour (spec.md §9 "Open question — SGR 48:2 arity"):
//
//	38;5;N          (semicolon form, palette)
//	38:5:N          (colon form, palette)
//	38;2;R;G;B      (semicolon form, RGB)
//	38:2:R:G:B      (colon form, four sub-parameters)
//	38:2::R:G:B     (colon form, five sub-parameters, ITU-T T.416
//	                 colour-space id in slot 2 is ignored)
func DecodeSGR(s *Sequence) []SGREffect {
	n := s.NumArgs()
	if n == 0 {
		return []SGREffect{{Attribute: SGRResetAll}}
	}
	var effects []SGREffect
	for i := 0; i < n; {
		v := s.Param(i, 0)
		switch {
		case v == 38 || v == 48 || v == 58:
			target := ColorForeground
			if v == 48 {
				target = ColorBackground
			} else if v == 58 {
				target = ColorDecoration
			}
			eff, consumed := decodeExtendedColor(s, i, target)
			effects = append(effects, eff)
			i += consumed
			continue
		case v >= 30 && v <= 37:
			effects = append(effects, legacyColorEffect(ColorForeground, uint8(v-30)))
		case v >= 40 && v <= 47:
			effects = append(effects, legacyColorEffect(ColorBackground, uint8(v-40)))
		case v >= 90 && v <= 97:
			effects = append(effects, legacyColorEffect(ColorForeground, uint8(v-90+8)))
		case v >= 100 && v <= 107:
			effects = append(effects, legacyColorEffect(ColorBackground, uint8(v-100+8)))
		default:
			if attr, ok := sgrParamAttribute[v]; ok {
				effects = append(effects, SGREffect{Attribute: attr})
			}
		}
		i++
	}
	return effects
}

func legacyColorEffect(target ColorTarget, idx uint8) SGREffect {
	return SGREffect{
		HasColor: true,
		Target:   target,
		Color:    Color{Kind: ColorKindLegacy, Index: idx},
	}
}

// decodeExtendedColor decodes the 38/48/58 colour-introducer starting
// at slot i, returning the effect and how many slots it consumed
// (always >= 1; the caller's loop advances past exactly that many).
func decodeExtendedColor(s *Sequence, i int, target ColorTarget) (SGREffect, int) {
	sub := s.ParamIsSubParameter(i)
	// Colon form: 38:mode:... all within one run of sub-parameters.
	if sub {
		run := s.CollectSubparams(i)
		if len(run) >= 2 {
			mode := run[1].ValueOr(0)
			switch mode {
			case 5:
				if len(run) >= 3 {
					return SGREffect{HasColor: true, Target: target,
						Color: Color{Kind: ColorKindPalette256, Index: uint8(run[2].ValueOr(0))}}, len(run)
				}
			case 2:
				// 38:2:r:g:b — four-slot run (introducer, mode, r, g)
				// plus the final b slot makes five total.
				if len(run) == 5 {
					return SGREffect{HasColor: true, Target: target,
						Color: rgbColor(run[2].ValueOr(0), run[3].ValueOr(0), run[4].ValueOr(0))}, len(run)
				}
				// 38:2::r:g:b — ITU-T T.416 form: slot 2 is an
				// ignored colour-space id, six slots total.
				if len(run) == 6 {
					return SGREffect{HasColor: true, Target: target,
						Color: rgbColor(run[3].ValueOr(0), run[4].ValueOr(0), run[5].ValueOr(0))}, len(run)
				}
			}
		}
		return SGREffect{}, len(run)
	}
	// Semicolon form: 38;5;N or 38;2;R;G;B as independent final args.
	if i+1 < s.NumArgs() {
		mode := s.Param(i+1, 0)
		switch mode {
		case 5:
			if i+2 < s.NumArgs() {
				return SGREffect{HasColor: true, Target: target,
					Color: Color{Kind: ColorKindPalette256, Index: uint8(s.Param(i+2, 0))}}, 3
			}
		case 2:
			if i+4 < s.NumArgs() {
				return SGREffect{HasColor: true, Target: target,
					Color: rgbColor(s.Param(i+2, 0), s.Param(i+3, 0), s.Param(i+4, 0))}, 5
			}
		}
	}
	return SGREffect{}, 1
}

func rgbColor(r, g, b int32) Color {
	clamp := func(v int32) float64 {
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return float64(v) / 255.0
	}
	return Color{
		Kind:   ColorKindRGB,
		HasRGB: true,
		RGB:    colorful.Color{R: clamp(r), G: clamp(g), B: clamp(b)},
	}
}
