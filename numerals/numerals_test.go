package numerals_test

import (
	"testing"

	"github.com/npillmayer/usym/numerals"
	"github.com/stretchr/testify/assert"
)

func TestRomanNumerals(t *testing.T) {
	inputs := []struct {
		n   uint64
		out string
	}{
		{0, "n"},
		{1, "i"},
		{4, "iv"},
		{8, "viii"},
		{9, "ix"},
		{14, "xiv"},
		{49, "xlix"},
		{1994, "mcmxciv"},
		{3999, "mmmcmxcix"},
		{4000, "i̅v̅"},
		{10000, "x̅"},
	}
	for _, input := range inputs {
		if have := numerals.LowerRoman.Format(input.n); have != input.out {
			t.Errorf("roman %d: expected %q, have %q", input.n, input.out, have)
		}
	}
	assert.Equal(t, "MCMXCIV", numerals.UpperRoman.Format(1994))
	assert.Equal(t, "N", numerals.UpperRoman.Format(0))
}

func TestBijectiveLatin(t *testing.T) {
	inputs := []struct {
		n   uint64
		out string
	}{
		{0, "-"},
		{1, "a"},
		{26, "z"},
		{27, "aa"},
		{28, "ab"},
		{702, "zz"},
		{703, "aaa"},
	}
	for _, input := range inputs {
		if have := numerals.LowerLatin.Format(input.n); have != input.out {
			t.Errorf("latin %d: expected %q, have %q", input.n, input.out, have)
		}
	}
	assert.Equal(t, "AB", numerals.UpperLatin.Format(28))
}

func TestGreekNumerals(t *testing.T) {
	assert.Equal(t, "𐆊", numerals.LowerGreek.Format(0))
	assert.Equal(t, "α", numerals.LowerGreek.Format(1))
	assert.Equal(t, "ιβ", numerals.LowerGreek.Format(12))
	assert.Equal(t, "ρϟθ", numerals.LowerGreek.Format(199))
	assert.Equal(t, "͵βκδ", numerals.LowerGreek.Format(2024))
	assert.Equal(t, "ΡϞΘ", numerals.UpperGreek.Format(199))
}

func TestHebrewNumerals(t *testing.T) {
	assert.Equal(t, "א", numerals.Hebrew.Format(1))
	assert.Equal(t, "טו", numerals.Hebrew.Format(15))
	assert.Equal(t, "טז", numerals.Hebrew.Format(16))
	assert.Equal(t, "יז", numerals.Hebrew.Format(17))
	assert.Equal(t, "תשפד", numerals.Hebrew.Format(784))
}

func TestPositionalDigits(t *testing.T) {
	assert.Equal(t, "0", numerals.Arabic.Format(0))
	assert.Equal(t, "1907", numerals.Arabic.Format(1907))
	assert.Equal(t, "١٢٣", numerals.EasternArabic.Format(123))
	assert.Equal(t, "۱۲۳", numerals.EasternArabicPersian.Format(123))
	assert.Equal(t, "१२३", numerals.Devanagari.Format(123))
	assert.Equal(t, "১২৩", numerals.BengaliNumber.Format(123))
}

func TestKanaNumbering(t *testing.T) {
	assert.Equal(t, "あ", numerals.HiraganaAiueo.Format(1))
	assert.Equal(t, "ん", numerals.HiraganaAiueo.Format(46))
	assert.Equal(t, "ああ", numerals.HiraganaAiueo.Format(47))
	assert.Equal(t, "い", numerals.HiraganaIroha.Format(1))
	assert.Equal(t, "ア", numerals.KatakanaAiueo.Format(1))
	assert.Equal(t, "イ", numerals.KatakanaIroha.Format(1))
}

func TestFixedAndSymbolic(t *testing.T) {
	assert.Equal(t, "⓪", numerals.CircledNumber.Format(0))
	assert.Equal(t, "③", numerals.CircledNumber.Format(3))
	assert.Equal(t, "㊿", numerals.CircledNumber.Format(50))
	assert.Equal(t, "51", numerals.CircledNumber.Format(51))
	assert.Equal(t, "⓵", numerals.DoubleCircledNumber.Format(1))
	assert.Equal(t, "11", numerals.DoubleCircledNumber.Format(11))
	//
	assert.Equal(t, "-", numerals.Symbol.Format(0))
	assert.Equal(t, "*", numerals.Symbol.Format(1))
	assert.Equal(t, "†", numerals.Symbol.Format(2))
	assert.Equal(t, "‖", numerals.Symbol.Format(6))
	assert.Equal(t, "**", numerals.Symbol.Format(7))
	assert.Equal(t, "‡‡", numerals.Symbol.Format(9))
}

func TestChineseNumerals(t *testing.T) {
	inputs := []struct {
		sys numerals.System
		n   uint64
		out string
	}{
		{numerals.LowerSimplifiedChinese, 0, "零"},
		{numerals.LowerSimplifiedChinese, 7, "七"},
		{numerals.LowerSimplifiedChinese, 10, "十"},
		{numerals.LowerSimplifiedChinese, 12, "十二"},
		{numerals.LowerSimplifiedChinese, 20, "二十"},
		{numerals.LowerSimplifiedChinese, 105, "一百零五"},
		{numerals.LowerSimplifiedChinese, 110, "一百一十"},
		{numerals.LowerSimplifiedChinese, 1001, "一千零一"},
		{numerals.LowerSimplifiedChinese, 10000, "一万"},
		{numerals.LowerSimplifiedChinese, 100000, "十万"},
		{numerals.LowerSimplifiedChinese, 100200, "十万零二百"},
		{numerals.LowerSimplifiedChinese, 123456, "十二万三千四百五十六"},
		{numerals.LowerSimplifiedChinese, 100000000, "一亿"},
		{numerals.LowerSimplifiedChinese, 100000001, "一亿零一"},
		{numerals.LowerTraditionalChinese, 10000, "一萬"},
		{numerals.LowerTraditionalChinese, 100000, "十萬"},
		{numerals.LowerTraditionalChinese, 123456, "十二萬三千四百五十六"},
		{numerals.UpperSimplifiedChinese, 12, "壹拾贰"},
		{numerals.UpperSimplifiedChinese, 123456, "壹拾贰万叁仟肆佰伍拾陆"},
		{numerals.UpperTraditionalChinese, 123456, "壹拾貳萬參仟肆佰伍拾陸"},
	}
	for _, input := range inputs {
		if have := input.sys.Format(input.n); have != input.out {
			t.Errorf("%s %d: expected %q, have %q", input.sys, input.n, input.out, have)
		}
	}
}

func TestSystemNames(t *testing.T) {
	sys, ok := numerals.FromName("hiragana.aiueo")
	assert.True(t, ok)
	assert.Equal(t, numerals.HiraganaAiueo, sys)
	sys, ok = numerals.FromName("Latin")
	assert.True(t, ok)
	assert.Equal(t, numerals.UpperLatin, sys)
	sys, ok = numerals.FromName("latin")
	assert.True(t, ok)
	assert.Equal(t, numerals.LowerLatin, sys)
	_, ok = numerals.FromName("klingon")
	assert.False(t, ok)
	assert.Equal(t, "circled.double", numerals.DoubleCircledNumber.Name())
	// the legacy misspelling resolves, the reported name is corrected
	sys, ok = numerals.FromName("katakana.oroha")
	assert.True(t, ok)
	assert.Equal(t, numerals.KatakanaIroha, sys)
	assert.Equal(t, "katakana.iroha", sys.Name())
}
