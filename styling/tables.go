package styling

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// The universe of code points any style may remap: Latin letters and
// digits, the Greek block with its symbol variants, a few letterlike
// specials, and the Arabic letters covered by the Arabic Mathematical
// Alphabetic Symbols block.
var styleableUniverse = func() []rune {
	var universe []rune
	for _, span := range [][2]rune{
		{'A', 'Z'}, {'a', 'z'}, {'0', '9'},
		{0x0391, 0x03D6}, // Greek incl. ϑ ϕ ϖ etc.
		{0x03F0, 0x03F5}, // ϰ ϱ ϴ ϵ
		{0x0621, 0x064A}, // Arabic
	} {
		for c := span[0]; c <= span[1]; c++ {
			universe = append(universe, c)
		}
	}
	universe = append(universe, 'ı', 'ȷ', 'ħ', '∇', '∂', '∑', 'ں', 'ٮ', 'ٯ', 'ڡ')
	return universe
}()

var styleableOnce sync.Once
var styleableTables map[MathStyle]*unicode.RangeTable

// Styleable returns the set of code points the given style remaps, as a
// Unicode range table usable with the unicode.Is family of functions.
// Code points outside the set pass through To and String unchanged.
func Styleable(style MathStyle) *unicode.RangeTable {
	styleableOnce.Do(func() {
		styleableTables = make(map[MathStyle]*unicode.RangeTable)
		for s := Serif; s <= Stretched; s++ {
			var runes []rune
			for _, c := range styleableUniverse {
				if styled, vs := To(c, s); styled != c || vs != 0 {
					runes = append(runes, c)
				}
			}
			styleableTables[s] = rangetable.New(runes...)
		}
	})
	if t, ok := styleableTables[style]; ok {
		return t
	}
	return rangetable.New()
}
