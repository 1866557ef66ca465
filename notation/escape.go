package notation

import (
	"strings"
	"unicode/utf8"
)

// DecodeValue decodes a raw variant-value token into the value string,
// expanding '\u{HEX}' code-point escapes, '\vs{…}' variation-selector
// escapes and '\c{…}' combining-character escapes. Literal text and
// escapes may be mixed freely.
//
// Decoding is a pure function; on malformed input the returned error is a
// *ParseError without location information (the scanner attributes it to
// its line).
func DecodeValue(text string) (string, error) {
	decoded, perr := decodeValue(text)
	if perr != nil {
		return "", perr
	}
	return decoded, nil
}

func decodeValue(text string) (string, *ParseError) {
	var b strings.Builder
	for len(text) > 0 {
		i := strings.IndexByte(text, '\\')
		if i < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:i])
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, `\u{`):
			code, tail, closed := splitBraced(rest[len(`\u{`):])
			if !closed {
				return "", errAt("", 0, UnterminatedEscape, `unclosed Unicode escape: \u{%s`, code)
			}
			r, ok := scalarValue(code)
			if !ok {
				return "", errAt("", 0, InvalidCodepoint, `invalid Unicode escape \u{%s}`, code)
			}
			b.WriteRune(r)
			text = tail
		case strings.HasPrefix(rest, `\vs{`):
			tag, tail, closed := splitBraced(rest[len(`\vs{`):])
			if !closed {
				return "", errAt("", 0, UnterminatedEscape, `unclosed VS escape: \vs{%s`, tag)
			}
			vs, ok := variationSelector(tag)
			if !ok {
				return "", errAt("", 0, InvalidEscape, `invalid VS escape: \vs{%s}`, tag)
			}
			b.WriteRune(vs)
			text = tail
		case strings.HasPrefix(rest, `\c{`):
			tag, tail, closed := splitBraced(rest[len(`\c{`):])
			if !closed {
				return "", errAt("", 0, UnterminatedEscape, `unclosed combining escape: \c{%s`, tag)
			}
			cc, ok := combiningChar(tag)
			if !ok {
				return "", errAt("", 0, InvalidEscape, `invalid combining escape: \c{%s}`, tag)
			}
			b.WriteRune(cc)
			text = tail
		default:
			return "", errAt("", 0, InvalidEscape, "invalid escape sequence: %s", rest)
		}
	}
	return b.String(), nil
}

// splitBraced splits "inner}tail" into inner and tail. closed is false if
// no closing brace is present.
func splitBraced(s string) (inner, tail string, closed bool) {
	i := strings.IndexByte(s, '}')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// scalarValue parses a hexadecimal Unicode scalar value. Surrogates and
// out-of-range values are rejected.
func scalarValue(hex string) (rune, bool) {
	if hex == "" {
		return 0, false
	}
	var n uint32
	for _, c := range hex {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		if n > (utf8.MaxRune >> 4) {
			return 0, false // would exceed U+10FFFF
		}
		n = n<<4 | d
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

// variationSelector maps an escape tag to one of the 16 variation
// selectors U+FE00…U+FE0F. Tags "text" and "emoji" are aliases for the
// standardized presentation selectors 15 and 16.
func variationSelector(tag string) (rune, bool) {
	switch tag {
	case "1":
		return '\uFE00', true
	case "2":
		return '\uFE01', true
	case "3":
		return '\uFE02', true
	case "4":
		return '\uFE03', true
	case "5":
		return '\uFE04', true
	case "6":
		return '\uFE05', true
	case "7":
		return '\uFE06', true
	case "8":
		return '\uFE07', true
	case "9":
		return '\uFE08', true
	case "10":
		return '\uFE09', true
	case "11":
		return '\uFE0A', true
	case "12":
		return '\uFE0B', true
	case "13":
		return '\uFE0C', true
	case "14":
		return '\uFE0D', true
	case "15", "text":
		return '\uFE0E', true
	case "16", "emoji":
		return '\uFE0F', true
	}
	return 0, false
}

// combiningChar maps an escape tag to a combining character.
func combiningChar(tag string) (rune, bool) {
	switch tag {
	case "not":
		return '\u0338', true // combining long solidus overlay
	}
	return 0, false
}
