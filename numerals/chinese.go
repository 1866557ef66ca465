package numerals

import "strings"

// Chinese numerals group by ten thousand: four-digit groups, scaled by
// 万, 亿, 兆 and 京. Each script comes in a standard ("lower") and a
// banknote ("upper") form; the banknote form uses fraud-resistant digit
// characters on cheques and banknotes.
type chineseScript struct {
	digits      []rune   // 0 to 9
	units       []string // ten, hundred, thousand
	groups      []string // myriad group scales, ascending
	dropLeading bool     // write 十二 instead of 一十二
}

var simplifiedLower = chineseScript{
	digits:      []rune("零一二三四五六七八九"),
	units:       []string{"十", "百", "千"},
	groups:      []string{"", "万", "亿", "兆", "京"},
	dropLeading: true,
}

var simplifiedUpper = chineseScript{
	digits: []rune("零壹贰叁肆伍陆柒捌玖"),
	units:  []string{"拾", "佰", "仟"},
	groups: []string{"", "万", "亿", "兆", "京"},
}

var traditionalLower = chineseScript{
	digits:      []rune("零一二三四五六七八九"),
	units:       []string{"十", "百", "千"},
	groups:      []string{"", "萬", "億", "兆", "京"},
	dropLeading: true,
}

var traditionalUpper = chineseScript{
	digits: []rune("零壹貳參肆伍陸柒捌玖"),
	units:  []string{"拾", "佰", "仟"},
	groups: []string{"", "萬", "億", "兆", "京"},
}

// chinese formats a number in the ten-thousand grouping scheme. Zero
// digits collapse into a single 零 between non-zero parts and never
// trail; a number of 10 to 19 drops the leading 一 in standard form.
func chinese(script chineseScript, n uint64) string {
	if n == 0 {
		return string(script.digits[0])
	}
	// split into four-digit groups, lowest first
	var groups []uint64
	for rest := n; rest != 0; rest /= 10000 {
		groups = append(groups, rest%10000)
	}
	var b strings.Builder
	needZero := false
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			// a zero group marks a gap if anything follows
			needZero = b.Len() > 0
			continue
		}
		if needZero || (b.Len() > 0 && g < 1000) {
			b.WriteRune(script.digits[0])
		}
		writeGroup(&b, script, g)
		b.WriteString(script.groups[i])
		needZero = false
	}
	s := b.String()
	if script.dropLeading {
		one, ten := string(script.digits[1]), script.units[0]
		if strings.HasPrefix(s, one+ten) {
			s = strings.TrimPrefix(s, one)
		}
	}
	return s
}

// writeGroup formats one group of up to four digits, with a single 零
// standing in for any run of interior zeros.
func writeGroup(b *strings.Builder, script chineseScript, g uint64) {
	digits := [4]uint64{g / 1000, g / 100 % 10, g / 10 % 10, g % 10}
	pendingZero := false
	written := false
	for pos, d := range digits {
		if d == 0 {
			pendingZero = written
			continue
		}
		if pendingZero {
			b.WriteRune(script.digits[0])
			pendingZero = false
		}
		b.WriteRune(script.digits[d])
		if pos < 3 {
			b.WriteString(script.units[2-pos])
		}
		written = true
	}
}
