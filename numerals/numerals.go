/*
Package numerals formats integers in numeral systems used worldwide.

Content

A numeral system turns an unsigned integer into its textual
representation: Roman numerals, Greek additive numerals, bijective
letter systems as used for list labels and spreadsheet columns,
positional digit sets, and a few symbolic schemes.

   numerals.LowerRoman.Format(7)     // "vii"
   numerals.UpperLatin.Format(28)    // "AB"
   numerals.CircledNumber.Format(3)  // "③"

Systems are identified by dotted names such as "hiragana.aiueo"; see
FromName. Formatting is stateless and independent of the symbol tables
of this module.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package numerals

import (
	"strconv"
	"strings"
)

// System identifies a numeral system.
type System int

const (
	// Arabic is base-ten Arabic numerals: 0, 1, 2, 3, ...
	Arabic System = iota
	// LowerLatin is lowercase Latin letters: a, b, ..., z, aa, ab, ...
	LowerLatin
	// UpperLatin is uppercase Latin letters: A, B, ..., Z, AA, AB, ...
	UpperLatin
	// LowerRoman is lowercase Roman numerals: i, ii, iii, ...
	LowerRoman
	// UpperRoman is uppercase Roman numerals: I, II, III, ...
	UpperRoman
	// LowerGreek is Greek additive numerals with lowercase letters.
	LowerGreek
	// UpperGreek is Greek additive numerals with uppercase letters.
	UpperGreek
	// Symbol is note-like symbols: *, †, ‡, §, ¶ and ‖, repeated for
	// further items.
	Symbol
	// Hebrew is Hebrew additive numerals.
	Hebrew
	// LowerSimplifiedChinese is simplified Chinese standard numerals.
	LowerSimplifiedChinese
	// UpperSimplifiedChinese is simplified Chinese banknote numerals.
	UpperSimplifiedChinese
	// LowerTraditionalChinese is traditional Chinese standard numerals.
	LowerTraditionalChinese
	// UpperTraditionalChinese is traditional Chinese banknote numerals.
	UpperTraditionalChinese
	// HiraganaAiueo is hiragana in the gojūon order. Includes n but
	// excludes wi and we.
	HiraganaAiueo
	// HiraganaIroha is hiragana in the iroha order. Includes wi and we
	// but excludes n.
	HiraganaIroha
	// KatakanaAiueo is katakana in the gojūon order.
	KatakanaAiueo
	// KatakanaIroha is katakana in the iroha order.
	KatakanaIroha
	// KoreanJamo is Korean jamo: ㄱ, ㄴ, ㄷ, ...
	KoreanJamo
	// KoreanSyllable is Korean syllables: 가, 나, 다, ...
	KoreanSyllable
	// EasternArabic is Eastern Arabic numerals.
	EasternArabic
	// EasternArabicPersian is the Persian and Urdu variant of Eastern
	// Arabic numerals.
	EasternArabicPersian
	// Devanagari is Devanagari numerals.
	Devanagari
	// BengaliNumber is Bengali numerals.
	BengaliNumber
	// BengaliLetter is Bengali letters: ক, খ, গ, ..., কক, কখ, ...
	BengaliLetter
	// CircledNumber is circled numbers up to fifty: ①, ②, ③, ...
	CircledNumber
	// DoubleCircledNumber is double-circled numbers up to ten: ⓵, ⓶, ...
	DoubleCircledNumber
)

var systemNames = []string{
	"arabic",
	"latin",
	"Latin",
	"roman",
	"Roman",
	"greek",
	"Greek",
	"symbols",
	"hebrew",
	"chinese.simplified",
	"Chinese.simplified",
	"chinese.traditional",
	"Chinese.traditional",
	"hiragana.aiueo",
	"hiragana.iroha",
	"katakana.aiueo",
	"katakana.iroha",
	"korean.jamo",
	"korean.syllable",
	"arabic.eastern",
	"arabic.persian",
	"devanagari",
	"bengali.number",
	"bengali.letter",
	"circled",
	"circled.double",
}

// FromName finds a numeral system by its dotted name, e.g. "roman" or
// "hiragana.aiueo". Names are case sensitive: "latin" and "Latin" denote
// the lowercase and uppercase Latin letter systems.
//
// The katakana iroha system was historically registered under the
// misspelled name "katakana.oroha"; the legacy spelling is still
// accepted. Name reports the corrected one.
func FromName(name string) (System, bool) {
	if name == "katakana.oroha" {
		return KatakanaIroha, true
	}
	for i, n := range systemNames {
		if n == name {
			return System(i), true
		}
	}
	return Arabic, false
}

// Name returns the dotted name of the system.
func (sys System) Name() string {
	if sys < 0 || int(sys) >= len(systemNames) {
		return "unknown"
	}
	return systemNames[sys]
}

func (sys System) String() string {
	return sys.Name()
}

// Format formats a number in this numeral system.
func (sys System) Format(n uint64) string {
	switch sys {
	case Arabic:
		return positional(arabicDigits, n)
	case LowerLatin:
		return bijective(lowerLatinSymbols, n)
	case UpperLatin:
		return bijective(upperLatinSymbols, n)
	case LowerRoman:
		return additive(lowerRomanSymbols, n)
	case UpperRoman:
		return additive(upperRomanSymbols, n)
	case LowerGreek:
		return additive(lowerGreekSymbols, n)
	case UpperGreek:
		return additive(upperGreekSymbols, n)
	case Symbol:
		return symbolic(noteSymbols, n)
	case Hebrew:
		return additive(hebrewSymbols, n)
	case LowerSimplifiedChinese:
		return chinese(simplifiedLower, n)
	case UpperSimplifiedChinese:
		return chinese(simplifiedUpper, n)
	case LowerTraditionalChinese:
		return chinese(traditionalLower, n)
	case UpperTraditionalChinese:
		return chinese(traditionalUpper, n)
	case HiraganaAiueo:
		return bijective(hiraganaAiueoSymbols, n)
	case HiraganaIroha:
		return bijective(hiraganaIrohaSymbols, n)
	case KatakanaAiueo:
		return bijective(katakanaAiueoSymbols, n)
	case KatakanaIroha:
		return bijective(katakanaIrohaSymbols, n)
	case KoreanJamo:
		return bijective(koreanJamoSymbols, n)
	case KoreanSyllable:
		return bijective(koreanSyllableSymbols, n)
	case EasternArabic:
		return positional(easternArabicDigits, n)
	case EasternArabicPersian:
		return positional(persianDigits, n)
	case Devanagari:
		return positional(devanagariDigits, n)
	case BengaliNumber:
		return positional(bengaliDigits, n)
	case BengaliLetter:
		return bijective(bengaliLetterSymbols, n)
	case CircledNumber:
		return fixed(circledSymbols, n)
	case DoubleCircledNumber:
		return fixed(doubleCircledSymbols, n)
	}
	return strconv.FormatUint(n, 10)
}

// --- Formatting schemes ----------------------------------------------------

type weightedSymbol struct {
	symbol string
	weight uint64
}

// additive formats a number in sign-value notation: symbols, given by
// decreasing weight, are repeated and concatenated until their weights
// sum up to the number. A zero-weight symbol, if present, represents the
// number zero.
func additive(symbols []weightedSymbol, n uint64) string {
	if n == 0 {
		if last := symbols[len(symbols)-1]; last.weight == 0 {
			return last.symbol
		}
		return "0"
	}
	var b strings.Builder
	for _, ws := range symbols {
		if ws.weight == 0 || ws.weight > n {
			continue
		}
		for reps := n / ws.weight; reps > 0; reps-- {
			b.WriteString(ws.symbol)
		}
		n %= ws.weight
	}
	return b.String()
}

// bijective formats a number in big-endian bijective base-b notation,
// with b the number of symbols. This is the familiar spreadsheet column
// scheme: a, b, ..., z, aa, ab, ...  There is no symbol for zero.
func bijective(symbols []rune, n uint64) string {
	if n == 0 {
		return "-"
	}
	radix := uint64(len(symbols))
	var digits []rune
	for n != 0 {
		n--
		digits = append(digits, symbols[n%radix])
		n /= radix
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteRune(digits[i])
	}
	return b.String()
}

// fixed formats a number with one symbol per value, falling back to the
// Arabic representation when the number exceeds the symbol list.
func fixed(symbols []rune, n uint64) string {
	if n < uint64(len(symbols)) {
		return string(symbols[n])
	}
	return strconv.FormatUint(n, 10)
}

// positional formats a number in big-endian positional notation with the
// given digit set.
func positional(digits []rune, n uint64) string {
	radix := uint64(len(digits))
	if n == 0 {
		return string(digits[0])
	}
	var ds []rune
	for n != 0 {
		ds = append(ds, digits[n%radix])
		n /= radix
	}
	var b strings.Builder
	for i := len(ds) - 1; i >= 0; i-- {
		b.WriteRune(ds[i])
	}
	return b.String()
}

// symbolic formats a number with repeating symbols: the n-th symbol,
// repeated once per completed cycle through the symbol list.
func symbolic(symbols []rune, n uint64) string {
	if n == 0 {
		return "-"
	}
	count := uint64(len(symbols))
	reps := (n + count - 1) / count
	var b strings.Builder
	for ; reps > 0; reps-- {
		b.WriteRune(symbols[(n-1)%count])
	}
	return b.String()
}
