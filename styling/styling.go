/*
Package styling styles mathematical symbols in Unicode.

Content

Mathematical notation uses letter styles to distinguish meaning: a bold
upright x is a different entity than an italic x. Unicode encodes these
styled letters in the Mathematical Alphanumeric Symbols block (and, for
Arabic, in the Arabic Mathematical Alphabetic Symbols block). This
package remaps ordinary letters and digits to their styled counterparts:

   r, _ := styling.To('M', styling.SerifItalicBold)   // '𝑴'
   s := styling.String("mono", styling.Monospace)      // "𝚖𝚘𝚗𝚘"

The chancery and roundhand variants of script style have no code points
of their own; they are selected by variation sequences with U+FE00 and
U+FE01. Styles therefore may expand one character into two.

Mappings are sourced from the Unicode Core Specification, the code
charts for the two blocks named above, and the text-transform mappings
of MathML Core (https://www.w3.org/TR/mathml-core/).

Styling is stateless and independent of the symbol tables of this
module; it operates on the values the tables produce.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styling

import "strings"

// MathStyle is a styled form for mathematical symbols.
type MathStyle int

const (
	// Serif is the normal style, and the isolated style for Arabic. It may
	// render as serif or sans-serif depending upon the font. This is the
	// default.
	Serif MathStyle = iota
	SerifBold
	SerifItalic
	SerifItalicBold
	SansSerif
	SansSerifBold
	SansSerifItalic
	SansSerifItalicBold
	// Fraktur is also known as black-letter.
	Fraktur
	FrakturBold
	Script
	ScriptBold
	// Chancery is a variant of script style, selected by a variation
	// sequence with U+FE00.
	Chancery
	ChanceryBold
	// Roundhand is a variant of script style, selected by a variation
	// sequence with U+FE01.
	Roundhand
	RoundhandBold
	// DoubleStruck is also known as open-face or blackboard-bold.
	DoubleStruck
	DoubleStruckItalic
	Monospace
	Initial   // initial style, for Arabic
	Tailed    // tailed style, for Arabic
	Looped    // looped style, for Arabic
	Stretched // stretched style, for Arabic
)

var mathStyleNames = []string{
	"Serif", "SerifBold", "SerifItalic", "SerifItalicBold",
	"SansSerif", "SansSerifBold", "SansSerifItalic", "SansSerifItalicBold",
	"Fraktur", "FrakturBold", "Script", "ScriptBold",
	"Chancery", "ChanceryBold", "Roundhand", "RoundhandBold",
	"DoubleStruck", "DoubleStruckItalic", "Monospace",
	"Initial", "Tailed", "Looped", "Stretched",
}

func (style MathStyle) String() string {
	if style < 0 || int(style) >= len(mathStyleNames) {
		return "MathStyle(unknown)"
	}
	return mathStyleNames[style]
}

const (
	variationSelector1 = '\uFE00'
	variationSelector2 = '\uFE01'
)

// To converts a character to the styled form specified by style.
//
// Some styles convert a character into a variation sequence of two
// characters; vs then is the variation selector to append, otherwise 0.
// Characters a style has no mapping for are returned unchanged.
func To(c rune, style MathStyle) (styled rune, vs rune) {
	switch style {
	case Serif:
		return c, 0
	case SerifBold:
		return toSerifBold(c), 0
	case SerifItalic:
		return toSerifItalic(c), 0
	case SerifItalicBold:
		return toSerifItalicBold(c), 0
	case SansSerif:
		return toSansSerif(c), 0
	case SansSerifBold:
		return toSansSerifBold(c), 0
	case SansSerifItalic:
		return toSansSerifItalic(c), 0
	case SansSerifItalicBold:
		return toSansSerifItalicBold(c), 0
	case Fraktur:
		return toFraktur(c), 0
	case FrakturBold:
		return toFrakturBold(c), 0
	case Script:
		return toScript(c), 0
	case ScriptBold:
		return toScriptBold(c), 0
	case Chancery:
		return toScript(c), variationSelector1
	case ChanceryBold:
		return toScriptBold(c), variationSelector1
	case Roundhand:
		return toScript(c), variationSelector2
	case RoundhandBold:
		return toScriptBold(c), variationSelector2
	case DoubleStruck:
		return toDoubleStruck(c), 0
	case DoubleStruckItalic:
		return toDoubleStruckItalic(c), 0
	case Monospace:
		return toMonospace(c), 0
	case Initial:
		return toInitial(c), 0
	case Tailed:
		return toTailed(c), 0
	case Looped:
		return toLooped(c), 0
	case Stretched:
		return toStretched(c), 0
	}
	return c, 0
}

// String converts each character of s to the styled form given by style.
// Styles with variation sequences expand each styled character into two.
func String(s string, style MathStyle) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		styled, vs := To(c, style)
		b.WriteRune(styled)
		if vs != 0 {
			b.WriteRune(vs)
		}
	}
	return b.String()
}

// --- Per-style mappings ----------------------------------------------------

// Mapping functions add a per-range delta to the code point. Ranges are
// checked in order: specific characters excepted from a block range have
// to precede it.

func toSerifBold(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D3BF
	case c >= 'a' && c <= 'z':
		return c + 0x1D3B9
	case c >= 'Α' && c <= 'Ρ':
		return c + 0x1D317
	case c == 'ϴ':
		return c + 0x1D2C5
	case c >= 'Σ' && c <= 'Ω':
		return c + 0x1D317
	case c == '∇':
		return c + 0x1B4BA
	case c >= 'α' && c <= 'ω':
		return c + 0x1D311
	case c == '∂':
		return c + 0x1B4D9
	case c == 'ϵ':
		return c + 0x1D2E7
	case c == 'ϑ':
		return c + 0x1D30C
	case c == 'ϰ':
		return c + 0x1D2EE
	case c == 'ϕ':
		return c + 0x1D30A
	case c == 'ϱ':
		return c + 0x1D2EF
	case c == 'ϖ':
		return c + 0x1D30B
	case c == 'Ϝ' || c == 'ϝ':
		return c + 0x1D3EE
	case c >= '0' && c <= '9':
		return c + 0x1D79E
	}
	return c
}

func toSerifItalic(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D3F3
	case c == 'h': // ℎ lives in the Letterlike Symbols block
		return c + 0x20A6
	case c >= 'a' && c <= 'z':
		return c + 0x1D3ED
	case c == 'ı':
		return c + 0x1D573
	case c == 'ȷ':
		return c + 0x1D46E
	case c >= 'Α' && c <= 'Ρ':
		return c + 0x1D351
	case c == 'ϴ':
		return c + 0x1D2FF
	case c >= 'Σ' && c <= 'Ω':
		return c + 0x1D351
	case c == '∇':
		return c + 0x1B4F4
	case c >= 'α' && c <= 'ω':
		return c + 0x1D34B
	case c == '∂':
		return c + 0x1B513
	case c == 'ϵ':
		return c + 0x1D321
	case c == 'ϑ':
		return c + 0x1D346
	case c == 'ϰ':
		return c + 0x1D328
	case c == 'ϕ':
		return c + 0x1D344
	case c == 'ϱ':
		return c + 0x1D329
	case c == 'ϖ':
		return c + 0x1D345
	case c == 'ħ': // missing from MathML Core
		return c + 0x1FE8
	}
	return c
}

func toSerifItalicBold(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D427
	case c >= 'a' && c <= 'z':
		return c + 0x1D421
	case c >= 'Α' && c <= 'Ρ':
		return c + 0x1D38B
	case c == 'ϴ':
		return c + 0x1D339
	case c >= 'Σ' && c <= 'Ω':
		return c + 0x1D38B
	case c == '∇':
		return c + 0x1B52E
	case c >= 'α' && c <= 'ω':
		return c + 0x1D385
	case c == '∂':
		return c + 0x1B54D
	case c == 'ϵ':
		return c + 0x1D35B
	case c == 'ϑ':
		return c + 0x1D380
	case c == 'ϰ':
		return c + 0x1D362
	case c == 'ϕ':
		return c + 0x1D37E
	case c == 'ϱ':
		return c + 0x1D363
	case c == 'ϖ':
		return c + 0x1D37F
	}
	return c
}

func toSansSerif(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D55F
	case c >= 'a' && c <= 'z':
		return c + 0x1D559
	case c >= '0' && c <= '9':
		return c + 0x1D7B2
	}
	return c
}

func toSansSerifBold(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D593
	case c >= 'a' && c <= 'z':
		return c + 0x1D58D
	case c >= 'Α' && c <= 'Ρ':
		return c + 0x1D3C5
	case c == 'ϴ':
		return c + 0x1D373
	case c >= 'Σ' && c <= 'Ω':
		return c + 0x1D3C5
	case c == '∇':
		return c + 0x1B568
	case c >= 'α' && c <= 'ω':
		return c + 0x1D3BF
	case c == '∂':
		return c + 0x1B587
	case c == 'ϵ':
		return c + 0x1D395
	case c == 'ϑ':
		return c + 0x1D3BA
	case c == 'ϰ':
		return c + 0x1D39C
	case c == 'ϕ':
		return c + 0x1D3B8
	case c == 'ϱ':
		return c + 0x1D39D
	case c == 'ϖ':
		return c + 0x1D3B9
	case c >= '0' && c <= '9':
		return c + 0x1D7BC
	}
	return c
}

func toSansSerifItalic(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D5C7
	case c >= 'a' && c <= 'z':
		return c + 0x1D5C1
	}
	return c
}

// Unicode has no sans-serif italic digits; bold italic falls back to the
// bold digit set, as MathML Core does.
func toSansSerifItalicBold(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D5FB
	case c >= 'a' && c <= 'z':
		return c + 0x1D5F5
	case c >= 'Α' && c <= 'Ρ':
		return c + 0x1D3FF
	case c == 'ϴ':
		return c + 0x1D3AD
	case c >= 'Σ' && c <= 'Ω':
		return c + 0x1D3FF
	case c == '∇':
		return c + 0x1B5A2
	case c >= 'α' && c <= 'ω':
		return c + 0x1D3F9
	case c == '∂':
		return c + 0x1B5C1
	case c == 'ϵ':
		return c + 0x1D3CF
	case c == 'ϑ':
		return c + 0x1D3F4
	case c == 'ϰ':
		return c + 0x1D3D6
	case c == 'ϕ':
		return c + 0x1D3F2
	case c == 'ϱ':
		return c + 0x1D3D7
	case c == 'ϖ':
		return c + 0x1D3F3
	case c >= '0' && c <= '9':
		return c + 0x1D7BC
	}
	return c
}

func toFraktur(c rune) rune {
	switch {
	case c == 'C':
		return c + 0x20EA
	case c == 'H':
		return c + 0x20C4
	case c == 'I':
		return c + 0x20C8
	case c == 'R':
		return c + 0x20CA
	case c == 'Z':
		return c + 0x20CE
	case c >= 'A' && c <= 'Z':
		return c + 0x1D4C3
	case c >= 'a' && c <= 'z':
		return c + 0x1D4BD
	}
	return c
}

func toFrakturBold(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D52B
	case c >= 'a' && c <= 'z':
		return c + 0x1D525
	}
	return c
}

func toScript(c rune) rune {
	switch {
	case c == 'B':
		return c + 0x20EA
	case c == 'E' || c == 'F':
		return c + 0x20EB
	case c == 'H':
		return c + 0x20C3
	case c == 'I':
		return c + 0x20C7
	case c == 'L':
		return c + 0x20C6
	case c == 'M':
		return c + 0x20E6
	case c == 'R':
		return c + 0x20C9
	case c >= 'A' && c <= 'Z':
		return c + 0x1D45B
	case c == 'e':
		return c + 0x20CA
	case c == 'g':
		return c + 0x20A3
	case c == 'o':
		return c + 0x20C5
	case c >= 'a' && c <= 'z':
		return c + 0x1D455
	}
	return c
}

func toScriptBold(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D48F
	case c >= 'a' && c <= 'z':
		return c + 0x1D489
	}
	return c
}

func toDoubleStruck(c rune) rune {
	switch {
	case c == 'C':
		return c + 0x20BF
	case c == 'H':
		return c + 0x20C5
	case c == 'N':
		return c + 0x20C7
	case c == 'P' || c == 'Q':
		return c + 0x20C9
	case c == 'R':
		return c + 0x20CB
	case c == 'Z':
		return c + 0x20CA
	case c >= 'A' && c <= 'Z':
		return c + 0x1D4F7
	case c >= 'a' && c <= 'z':
		return c + 0x1D4F1
	case c >= '0' && c <= '9':
		return c + 0x1D7A8
	case c == 'ب':
		return c + 0x1E879
	case c == 'ج' || c == 'ع':
		return c + 0x1E876
	case c == 'د' || c == 'ز':
		return c + 0x1E874
	case c == 'و':
		return c + 0x1E85D
	case c == 'ح':
		return c + 0x1E87A
	case c == 'ط':
		return c + 0x1E871
	case c == 'ي':
		return c + 0x1E85F
	case c >= 'ل' && c <= 'ن':
		return c + 0x1E867
	case c == 'س':
		return c + 0x1E87B
	case c == 'ف':
		return c + 0x1E86F
	case c == 'ص':
		return c + 0x1E87C
	case c == 'ق':
		return c + 0x1E870
	case c == 'ر' || c == 'ظ':
		return c + 0x1E882
	case c == 'ش':
		return c + 0x1E880
	case c >= 'ت' && c <= 'ث':
		return c + 0x1E88B
	case c == 'خ':
		return c + 0x1E889
	case c == 'ذ':
		return c + 0x1E888
	case c == 'ض':
		return c + 0x1E883
	case c == 'غ':
		return c + 0x1E881
	case c == 'Γ': // missing from MathML Core
		return c + 0x1DAB
	case c == 'Π':
		return c + 0x1D9F
	case c == 'γ':
		return c + 0x1D8A
	case c == 'π':
		return c + 0x1D7C
	case c == '∑': // delta is negative
		return '⅀'
	}
	return c
}

// Unicode has no double-struck italic alphabet; only a few such symbols
// exist, all in the Letterlike Symbols block.
func toDoubleStruckItalic(c rune) rune {
	switch {
	case c == 'D':
		return c + 0x2101
	case c == 'd' || c == 'e':
		return c + 0x20E2
	case c == 'i' || c == 'j':
		return c + 0x20DF
	}
	return c
}

func toMonospace(c rune) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x1D62F
	case c >= 'a' && c <= 'z':
		return c + 0x1D629
	case c >= '0' && c <= '9':
		return c + 0x1D7C6
	}
	return c
}

func toInitial(c rune) rune {
	switch {
	case c == 'ب':
		return c + 0x1E7F9
	case c == 'ج' || c == 'ع':
		return c + 0x1E7F6
	case c == 'ه':
		return c + 0x1E7DD
	case c == 'ح':
		return c + 0x1E7FA
	case c == 'ي':
		return c + 0x1E7DF
	case c >= 'ك' && c <= 'ن':
		return c + 0x1E7E7
	case c == 'س':
		return c + 0x1E7FB
	case c == 'ف':
		return c + 0x1E7EF
	case c == 'ص':
		return c + 0x1E7FC
	case c == 'ق':
		return c + 0x1E7F0
	case c == 'ش':
		return c + 0x1E800
	case c >= 'ت' && c <= 'ث':
		return c + 0x1E80B
	case c == 'خ':
		return c + 0x1E809
	case c == 'ض':
		return c + 0x1E803
	case c == 'غ':
		return c + 0x1E801
	}
	return c
}

func toTailed(c rune) rune {
	switch {
	case c == 'ج' || c == 'ع':
		return c + 0x1E816
	case c == 'ح':
		return c + 0x1E81A
	case c == 'ي':
		return c + 0x1E7FF
	case c == 'ل' || c == 'ن':
		return c + 0x1E807
	case c == 'س':
		return c + 0x1E81B
	case c == 'ص':
		return c + 0x1E81C
	case c == 'ق':
		return c + 0x1E810
	case c == 'ش':
		return c + 0x1E820
	case c == 'خ':
		return c + 0x1E829
	case c == 'ض':
		return c + 0x1E823
	case c == 'غ':
		return c + 0x1E821
	case c == 'ں':
		return c + 0x1E7A3
	case c == 'ٯ':
		return c + 0x1E7F0
	}
	return c
}

func toStretched(c rune) rune {
	switch {
	case c == 'ب':
		return c + 0x1E839
	case c == 'ج' || c == 'ع':
		return c + 0x1E836
	case c == 'ه':
		return c + 0x1E81D
	case c == 'ح':
		return c + 0x1E83A
	case c == 'ط':
		return c + 0x1E831
	case c == 'ي':
		return c + 0x1E81F
	case c == 'ك' || (c >= 'م' && c <= 'ن'):
		return c + 0x1E827
	case c == 'س':
		return c + 0x1E83B
	case c == 'ف':
		return c + 0x1E82F
	case c == 'ص':
		return c + 0x1E83C
	case c == 'ق':
		return c + 0x1E830
	case c == 'ش':
		return c + 0x1E840
	case c >= 'ت' && c <= 'ث':
		return c + 0x1E84B
	case c == 'خ':
		return c + 0x1E849
	case c == 'ض':
		return c + 0x1E843
	case c == 'ظ':
		return c + 0x1E842
	case c == 'غ':
		return c + 0x1E841
	case c == 'ٮ':
		return c + 0x1E80E
	case c == 'ڡ':
		return c + 0x1E7DD
	}
	return c
}

func toLooped(c rune) rune {
	switch {
	case c >= 'ا' && c <= 'ب':
		return c + 0x1E859
	case c == 'ج' || c == 'ع':
		return c + 0x1E856
	case c == 'د' || c == 'ز':
		return c + 0x1E854
	case c >= 'ه' && c <= 'و':
		return c + 0x1E83D
	case c == 'ح':
		return c + 0x1E85A
	case c == 'ط':
		return c + 0x1E851
	case c == 'ي':
		return c + 0x1E83F
	case c >= 'ل' && c <= 'ن':
		return c + 0x1E847
	case c == 'س':
		return c + 0x1E85B
	case c == 'ف':
		return c + 0x1E84F
	case c == 'ص':
		return c + 0x1E85C
	case c == 'ق':
		return c + 0x1E850
	case c == 'ر' || c == 'ظ':
		return c + 0x1E862
	case c == 'ش':
		return c + 0x1E860
	case c >= 'ت' && c <= 'ث':
		return c + 0x1E86B
	case c == 'خ':
		return c + 0x1E869
	case c == 'ذ':
		return c + 0x1E868
	case c == 'ض':
		return c + 0x1E863
	case c == 'غ':
		return c + 0x1E861
	}
	return c
}
