package notation

import (
	"strings"

	"github.com/npillmayer/usym"
)

// Compile compiles the notation text of one corpus into a frozen module
// tree. filename is used for error messages only; text is the complete
// corpus source. Compilation either succeeds as a whole or fails with a
// *ParseError; no partial output is produced.
//
// Compile is a pure function of its inputs. Different corpora may be
// compiled concurrently.
func Compile(filename, text string) (*usym.Module, error) {
	tracer().Debugf("compiling corpus %q", filename)
	p := borrowParser(filename)
	defer p.releaseIntoPool()
	for no, raw := range strings.Split(text, "\n") {
		ln, perr := classifyLine(filename, no+1, raw)
		if perr != nil {
			return nil, perr
		}
		if ln.typ == lineBlank {
			continue
		}
		p.lines = append(p.lines, ln)
	}
	entries, perr := p.parseScope(0)
	if perr != nil {
		return nil, perr
	}
	tracer().Debugf("corpus %q compiled, %d top level bindings", filename, len(entries))
	return usym.NewModule(entries), nil
}

// parser holds the cursor into the lexed line stream. Scopes are parsed
// by ordinary recursion; the cursor advances monotonically.
type parser struct {
	file  string
	lines []line
	pos   int
}

func (p *parser) peek() (line, bool) {
	if p.pos >= len(p.lines) {
		return line{}, false
	}
	return p.lines[p.pos], true
}

func (p *parser) next() line {
	ln := p.lines[p.pos]
	p.pos++
	return ln
}

// variantAnnotation is a '@deprecated(modifier): message' annotation
// waiting for a variant to attach to. from is the variant index it may
// attach from, i.e. annotations never reach back to earlier variants.
type variantAnnotation struct {
	modifier string
	message  string
	at       int // line number, for error reporting
	from     int
}

// parseScope parses the declarations of one module scope up to the
// matching closing brace (or, at depth 0, the end of input) and returns
// the scope's bindings. Alias declarations are collected and resolved
// after all direct definitions of the scope are known, since an alias may
// reference a sibling defined later.
func (p *parser) parseScope(depth int) ([]usym.Entry, *ParseError) {
	var entries []usym.Entry
	var aliases []aliasDecl
	var annotations []variantAnnotation
	pendingMsg := ""
	pendingAt := 0
	for {
		ln, more := p.peek()
		if !more {
			if depth > 0 {
				return nil, errAt(p.file, p.lines[len(p.lines)-1].no, UnexpectedDeclaration,
					"unexpected end of input: %d unclosed module(s)", depth)
			}
			if perr := danglingCheck(p.file, pendingMsg, pendingAt, annotations); perr != nil {
				return nil, perr
			}
			break
		}
		p.next()
		switch ln.typ {
		case lineDeprecation:
			if ln.annotated == "" {
				if pendingMsg != "" {
					return nil, errAt(p.file, ln.no, DuplicateDeprecation,
						"declaration already has a pending deprecation")
				}
				pendingMsg, pendingAt = ln.message, ln.no
				continue
			}
			for _, a := range annotations {
				if a.modifier == ln.annotated {
					return nil, errAt(p.file, ln.no, DuplicateDeprecation,
						"duplicate deprecation for modifier %q", ln.annotated)
				}
			}
			annotations = append(annotations, variantAnnotation{
				modifier: ln.annotated,
				message:  ln.message,
				at:       ln.no,
			})
		case lineModuleStart:
			if perr := danglingAnnotations(p.file, annotations); perr != nil {
				return nil, perr
			}
			inner, perr := p.parseScope(depth + 1)
			if perr != nil {
				return nil, perr
			}
			entries = append(entries, usym.Entry{
				Name: ln.name,
				Binding: usym.Binding{
					Def:         usym.NewModule(inner),
					Deprecation: pendingMsg,
				},
			})
			pendingMsg = ""
		case lineModuleEnd:
			if depth == 0 {
				return nil, errAt(p.file, ln.no, UnexpectedDeclaration, "unbalanced '}'")
			}
			if perr := danglingCheck(p.file, pendingMsg, pendingAt, annotations); perr != nil {
				return nil, perr
			}
			return p.freezeScope(entries, aliases)
		case lineSymbol:
			sym, perr := p.parseSymbol(ln, &annotations)
			if perr != nil {
				return nil, perr
			}
			entries = append(entries, usym.Entry{
				Name: ln.name,
				Binding: usym.Binding{
					Def:         sym,
					Deprecation: pendingMsg,
				},
			})
			pendingMsg = ""
		case lineVariant:
			return nil, errAt(p.file, ln.no, UnexpectedDeclaration,
				"variant without a preceding symbol")
		case lineAlias:
			if perr := danglingAnnotations(p.file, annotations); perr != nil {
				return nil, perr
			}
			aliases = append(aliases, aliasDecl{
				name:        ln.name,
				target:      ln.target,
				path:        ln.path,
				deep:        ln.deep,
				deprecation: pendingMsg,
				at:          ln.no,
			})
			pendingMsg = ""
		}
	}
	return p.freezeScope(entries, aliases)
}

// parseSymbol assembles a symbol from its declaration line, greedily
// absorbing immediately following variant lines. A default value becomes
// the variant for the empty modifier set, at position 0. Pending variant
// annotations attach to the first variant declared after them whose
// modifier set contains the annotated modifier.
func (p *parser) parseSymbol(head line, annotations *[]variantAnnotation) (*usym.Symbol, *ParseError) {
	var variants []usym.Variant
	if head.hasValue {
		variants = append(variants, usym.Variant{Value: head.value})
	}
	for {
		ln, more := p.peek()
		if !more {
			break
		}
		if ln.typ == lineDeprecation && ln.annotated != "" {
			p.next()
			for _, a := range *annotations {
				if a.modifier == ln.annotated {
					return nil, errAt(p.file, ln.no, DuplicateDeprecation,
						"duplicate deprecation for modifier %q", ln.annotated)
				}
			}
			*annotations = append(*annotations, variantAnnotation{
				modifier: ln.annotated,
				message:  ln.message,
				at:       ln.no,
				from:     len(variants),
			})
			continue
		}
		if ln.typ != lineVariant {
			break
		}
		p.next()
		variants = append(variants, usym.Variant{
			Modifiers: ln.modifiers,
			Value:     ln.value,
		})
	}
	if len(variants) == 0 {
		return nil, errAt(p.file, head.no, MissingValue,
			"symbol %q has neither a value nor variants", head.name)
	}
	for _, a := range *annotations {
		attached := false
		for i := a.from; i < len(variants); i++ {
			if !variants[i].Modifiers.Contains(a.modifier) {
				continue
			}
			if variants[i].Deprecation != "" {
				return nil, errAt(p.file, a.at, DuplicateDeprecation,
					"variant already deprecated")
			}
			variants[i].Deprecation = a.message
			attached = true
			break
		}
		if !attached {
			return nil, errAt(p.file, a.at, DanglingDeprecation,
				"no variant carries modifier %q", a.modifier)
		}
	}
	*annotations = nil
	if head.hasValue && len(variants) == 1 {
		return usym.NewSingleSymbol(head.value), nil
	}
	return usym.NewSymbol(variants), nil
}

// freezeScope resolves the scope's aliases against its direct bindings,
// checks name uniqueness and hands the completed binding list to the
// caller. Sorting happens in usym.NewModule.
func (p *parser) freezeScope(entries []usym.Entry, aliases []aliasDecl) ([]usym.Entry, *ParseError) {
	entries, perr := resolveAliases(p.file, entries, aliases)
	if perr != nil {
		return nil, perr
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if names[e.Name] {
			return nil, errAt(p.file, 0, UnexpectedDeclaration,
				"duplicate name %q in module scope", e.Name)
		}
		names[e.Name] = true
	}
	return entries, nil
}

func danglingCheck(file, pendingMsg string, pendingAt int, annotations []variantAnnotation) *ParseError {
	if pendingMsg != "" {
		return errAt(file, pendingAt, DanglingDeprecation,
			"deprecation does not precede a declaration")
	}
	return danglingAnnotations(file, annotations)
}

func danglingAnnotations(file string, annotations []variantAnnotation) *ParseError {
	if len(annotations) > 0 {
		return errAt(file, annotations[0].at, DanglingDeprecation,
			"deprecation for modifier %q does not precede a symbol", annotations[0].modifier)
	}
	return nil
}
