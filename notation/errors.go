package notation

import "fmt"

// ErrorKind classifies compilation errors. All of them are fatal to the
// compilation of a corpus; the compiler never produces partial output.
type ErrorKind int8

const (
	NoError ErrorKind = iota
	InvalidIdentifier
	InvalidEscape
	UnterminatedEscape
	InvalidCodepoint
	MissingValue
	MissingDeprecationMessage
	DanglingDeprecation
	DuplicateDeprecation
	MalformedModifierAnnotation
	UnexpectedDeclaration
	AliasToNonexistentSymbol
	AliasToNonexistentVariant
	AliasToAlias
)

var errorKindNames = []string{
	"NoError",
	"InvalidIdentifier",
	"InvalidEscape",
	"UnterminatedEscape",
	"InvalidCodepoint",
	"MissingValue",
	"MissingDeprecationMessage",
	"DanglingDeprecation",
	"DuplicateDeprecation",
	"MalformedModifierAnnotation",
	"UnexpectedDeclaration",
	"AliasToNonexistentSymbol",
	"AliasToNonexistentVariant",
	"AliasToAlias",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int8(k))
	}
	return errorKindNames[k]
}

// ParseError is the error type for all compilation failures. Line numbers
// are 1-based; a zero line number means the location is not attributable
// to a single input line.
type ParseError struct {
	File   string
	Line   int
	Kind   ErrorKind
	Reason string
}

func (e *ParseError) Error() string {
	if e.File == "" && e.Line == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// errAt creates a ParseError for a source location.
func errAt(file string, line int, kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{
		File:   file,
		Line:   line,
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
	}
}
