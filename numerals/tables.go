package numerals

// Symbol tables for the formatting schemes. Additive tables are ordered
// by decreasing weight; the Roman tables use combining overlines for the
// thousands-multiplied symbols (vinculum notation).

var arabicDigits = []rune("0123456789")
var easternArabicDigits = []rune("٠١٢٣٤٥٦٧٨٩")
var persianDigits = []rune("۰۱۲۳۴۵۶۷۸۹")
var devanagariDigits = []rune("०१२३४५६७८९")
var bengaliDigits = []rune("০১২৩৪৫৬৭৮৯")

var lowerLatinSymbols = []rune("abcdefghijklmnopqrstuvwxyz")
var upperLatinSymbols = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

var lowerRomanSymbols = []weightedSymbol{
	{"m̅", 1000000},
	{"d̅", 500000},
	{"c̅", 100000},
	{"l̅", 50000},
	{"x̅", 10000},
	{"v̅", 5000},
	{"i̅v̅", 4000},
	{"m", 1000},
	{"cm", 900},
	{"d", 500},
	{"cd", 400},
	{"c", 100},
	{"xc", 90},
	{"l", 50},
	{"xl", 40},
	{"x", 10},
	{"ix", 9},
	{"v", 5},
	{"iv", 4},
	{"i", 1},
	{"n", 0},
}

var upperRomanSymbols = []weightedSymbol{
	{"M̅", 1000000},
	{"D̅", 500000},
	{"C̅", 100000},
	{"L̅", 50000},
	{"X̅", 10000},
	{"V̅", 5000},
	{"I̅V̅", 4000},
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
	{"N", 0},
}

var lowerGreekSymbols = []weightedSymbol{
	{"͵θ", 9000},
	{"͵η", 8000},
	{"͵ζ", 7000},
	{"͵ϛ", 6000},
	{"͵ε", 5000},
	{"͵δ", 4000},
	{"͵γ", 3000},
	{"͵β", 2000},
	{"͵α", 1000},
	{"ϡ", 900},
	{"ω", 800},
	{"ψ", 700},
	{"χ", 600},
	{"φ", 500},
	{"υ", 400},
	{"τ", 300},
	{"σ", 200},
	{"ρ", 100},
	{"ϟ", 90},
	{"π", 80},
	{"ο", 70},
	{"ξ", 60},
	{"ν", 50},
	{"μ", 40},
	{"λ", 30},
	{"κ", 20},
	{"ι", 10},
	{"θ", 9},
	{"η", 8},
	{"ζ", 7},
	{"ϛ", 6},
	{"ε", 5},
	{"δ", 4},
	{"γ", 3},
	{"β", 2},
	{"α", 1},
	{"𐆊", 0},
}

var upperGreekSymbols = []weightedSymbol{
	{"͵Θ", 9000},
	{"͵Η", 8000},
	{"͵Ζ", 7000},
	{"͵Ϛ", 6000},
	{"͵Ε", 5000},
	{"͵Δ", 4000},
	{"͵Γ", 3000},
	{"͵Β", 2000},
	{"͵Α", 1000},
	{"Ϡ", 900},
	{"Ω", 800},
	{"Ψ", 700},
	{"Χ", 600},
	{"Φ", 500},
	{"Υ", 400},
	{"Τ", 300},
	{"Σ", 200},
	{"Ρ", 100},
	{"Ϟ", 90},
	{"Π", 80},
	{"Ο", 70},
	{"Ξ", 60},
	{"Ν", 50},
	{"Μ", 40},
	{"Λ", 30},
	{"Κ", 20},
	{"Ι", 10},
	{"Θ", 9},
	{"Η", 8},
	{"Ζ", 7},
	{"Ϛ", 6},
	{"Ε", 5},
	{"Δ", 4},
	{"Γ", 3},
	{"Β", 2},
	{"Α", 1},
	{"𐆊", 0},
}

// Hebrew numerals skip 15 and 16 as digit pairs for religious reasons;
// they are written 9+6 and 9+7.
var hebrewSymbols = []weightedSymbol{
	{"ת", 400},
	{"ש", 300},
	{"ר", 200},
	{"ק", 100},
	{"צ", 90},
	{"פ", 80},
	{"ע", 70},
	{"ס", 60},
	{"נ", 50},
	{"מ", 40},
	{"ל", 30},
	{"כ", 20},
	{"יט", 19},
	{"יח", 18},
	{"יז", 17},
	{"טז", 16},
	{"טו", 15},
	{"י", 10},
	{"ט", 9},
	{"ח", 8},
	{"ז", 7},
	{"ו", 6},
	{"ה", 5},
	{"ד", 4},
	{"ג", 3},
	{"ב", 2},
	{"א", 1},
	{"-", 0},
}

var hiraganaAiueoSymbols = []rune("あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん")

var hiraganaIrohaSymbols = []rune("いろはにほへとちりぬるをわかよたれそつねならむうゐのおくやまけふこえてあさきゆめみしゑひもせす")

var katakanaAiueoSymbols = []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン")

var katakanaIrohaSymbols = []rune("イロハニホヘトチリヌルヲワカヨタレソツネナラムウヰノオクヤマケフコエテアサキユメミシヱヒモセス")

var koreanJamoSymbols = []rune("ㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎ")

var koreanSyllableSymbols = []rune("가나다라마바사아자차카타파하")

var bengaliLetterSymbols = []rune("কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহ")

var noteSymbols = []rune{'*', '†', '‡', '§', '¶', '‖'}

var circledSymbols = []rune("⓪①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳㉑㉒㉓㉔㉕㉖㉗㉘㉙㉚㉛㉜㉝㉞㉟㊱㊲㊳㊴㊵㊶㊷㊸㊹㊺㊻㊼㊽㊾㊿")

var doubleCircledSymbols = []rune("0⓵⓶⓷⓸⓹⓺⓻⓼⓽⓾")
