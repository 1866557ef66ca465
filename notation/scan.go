package notation

import (
	"strings"

	"github.com/npillmayer/usym/modifier"
)

// lineType classifies a source line.
type lineType int8

const (
	lineBlank lineType = iota
	lineDeprecation
	lineModuleStart
	lineModuleEnd
	lineSymbol
	lineVariant
	lineAlias
)

// line is the lexer's output for one source line.
type line struct {
	typ       lineType
	no        int          // 1-based line number
	name      string       // symbol, module or alias name
	value     string       // decoded value for symbols and variants
	hasValue  bool         // false for a symbol without a default value
	modifiers modifier.Set // variant modifier path
	target    string       // alias target symbol name
	path      []string     // alias target modifier components
	deep      bool         // alias declared with a trailing '.*'
	annotated string       // deprecation modifier name, empty if unqualified
	message   string       // deprecation message
}

// classifyLine lexes a single source line, with comments after '//'
// stripped and surrounding whitespace trimmed. Classification follows a
// fixed decision order; the first matching rule wins.
func classifyLine(file string, lineno int, raw string) (line, *ParseError) {
	text := raw
	if i := strings.Index(text, "//"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	ln := line{no: lineno}
	switch {
	case text == "":
		ln.typ = lineBlank
		return ln, nil
	case strings.HasPrefix(text, "@deprecated"):
		return scanDeprecation(file, lineno, text)
	}
	head, rest := splitHead(text)
	switch {
	case rest == "{":
		if !isIdentifier(head) {
			return ln, errAt(file, lineno, InvalidIdentifier, "invalid module name: %q", head)
		}
		ln.typ = lineModuleStart
		ln.name = head
		return ln, nil
	case head == "}":
		if rest != "" {
			return ln, errAt(file, lineno, UnexpectedDeclaration, "unexpected text after '}': %q", rest)
		}
		ln.typ = lineModuleEnd
		return ln, nil
	case strings.HasPrefix(head, "."):
		set, perr := scanModifierPath(file, lineno, head[1:])
		if perr != nil {
			return ln, perr
		}
		if rest == "" {
			return ln, errAt(file, lineno, MissingValue, "variant .%s has no value", head[1:])
		}
		value, perr := decodeValue(rest)
		if perr != nil {
			return ln, locate(perr, file, lineno)
		}
		ln.typ = lineVariant
		ln.modifiers = set
		ln.value = value
		ln.hasValue = true
		return ln, nil
	case strings.Contains(text, "@="):
		return scanAlias(file, lineno, text)
	default:
		if !isIdentifier(head) {
			return ln, errAt(file, lineno, InvalidIdentifier, "invalid symbol name: %q", head)
		}
		ln.typ = lineSymbol
		ln.name = head
		if rest != "" {
			value, perr := decodeValue(rest)
			if perr != nil {
				return ln, locate(perr, file, lineno)
			}
			ln.value = value
			ln.hasValue = true
		}
		return ln, nil
	}
}

// scanDeprecation lexes '@deprecated: message' and
// '@deprecated(modifier): message' lines.
func scanDeprecation(file string, lineno int, text string) (line, *ParseError) {
	ln := line{typ: lineDeprecation, no: lineno}
	rest := text[len("@deprecated"):]
	if strings.HasPrefix(rest, "(") {
		i := strings.IndexByte(rest, ')')
		if i < 0 {
			return ln, errAt(file, lineno, MalformedModifierAnnotation,
				"unclosed modifier annotation: %s", text)
		}
		name := rest[1:i]
		if !isIdentifier(name) {
			return ln, errAt(file, lineno, MalformedModifierAnnotation,
				"invalid modifier annotation: %q", name)
		}
		ln.annotated = name
		rest = rest[i+1:]
	}
	if !strings.HasPrefix(rest, ":") {
		return ln, errAt(file, lineno, MalformedModifierAnnotation,
			"expected ':' after @deprecated")
	}
	ln.message = strings.TrimSpace(rest[1:])
	if ln.message == "" {
		return ln, errAt(file, lineno, MissingDeprecationMessage,
			"@deprecated without a message")
	}
	return ln, nil
}

// scanAlias lexes 'alias @= target.path' lines, with an optional trailing
// '.*' marking the alias as deep.
func scanAlias(file string, lineno int, text string) (line, *ParseError) {
	ln := line{typ: lineAlias, no: lineno}
	parts := strings.SplitN(text, "@=", 2)
	name := strings.TrimSpace(parts[0])
	if !isIdentifier(name) {
		return ln, errAt(file, lineno, InvalidIdentifier, "invalid alias name: %q", name)
	}
	ln.name = name
	target := strings.TrimSpace(parts[1])
	if strings.HasSuffix(target, ".*") {
		ln.deep = true
		target = target[:len(target)-len(".*")]
	}
	segments := strings.Split(target, ".")
	for _, seg := range segments {
		if !isIdentifier(seg) {
			return ln, errAt(file, lineno, InvalidIdentifier,
				"invalid alias target segment: %q", seg)
		}
	}
	ln.target = segments[0]
	ln.path = segments[1:]
	return ln, nil
}

// scanModifierPath validates a dotted modifier path and wraps it as a
// modifier set, rejecting empty segments, malformed tokens and duplicate
// modifier names.
func scanModifierPath(file string, lineno int, path string) (modifier.Set, *ParseError) {
	tokens := strings.Split(path, ".")
	seen := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		name := strings.TrimSuffix(tok, "?")
		if !isIdentifier(name) {
			return modifier.Set{}, errAt(file, lineno, InvalidIdentifier,
				"invalid modifier: %q", tok)
		}
		for _, prev := range seen {
			if prev == name {
				return modifier.Set{}, errAt(file, lineno, InvalidIdentifier,
					"duplicate modifier: %q", name)
			}
		}
		seen = append(seen, name)
	}
	return modifier.FromRawDotted(path), nil
}

// splitHead splits a trimmed line into its head token and the trimmed
// remainder.
func splitHead(text string) (head, rest string) {
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}

// isIdentifier is true for a non-empty string of ASCII letters.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// locate attributes a location-free error to a source line.
func locate(perr *ParseError, file string, lineno int) *ParseError {
	perr.File = file
	perr.Line = lineno
	return perr
}
