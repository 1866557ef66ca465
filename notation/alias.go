package notation

import (
	"github.com/npillmayer/usym"
	"github.com/npillmayer/usym/modifier"
)

// aliasDecl is a pending alias declaration of one module scope. Aliases
// are compile time only; resolution rewrites them into full symbol
// definitions and the declaration itself is discarded.
type aliasDecl struct {
	name        string
	target      string
	path        []string // target modifier components
	deep        bool
	deprecation string
	at          int // line number
}

// resolveAliases rewrites a scope's alias declarations into symbol
// bindings, appending them to the scope's direct bindings. Targets are
// looked up among the direct symbol bindings only: nested modules are
// not descended into and aliasing an alias is an error.
func resolveAliases(file string, entries []usym.Entry, aliases []aliasDecl) ([]usym.Entry, *ParseError) {
	direct := entries // aliases resolved earlier must not serve as targets
	for _, a := range aliases {
		target, perr := findTarget(file, direct, aliases, a)
		if perr != nil {
			return nil, perr
		}
		sym, perr := deriveAlias(file, a, target)
		if perr != nil {
			return nil, perr
		}
		entries = append(entries, usym.Entry{
			Name: a.name,
			Binding: usym.Binding{
				Def:         sym,
				Deprecation: a.deprecation,
			},
		})
	}
	return entries, nil
}

func findTarget(file string, entries []usym.Entry, aliases []aliasDecl, a aliasDecl) (*usym.Symbol, *ParseError) {
	for _, e := range entries {
		if e.Name != a.target {
			continue
		}
		sym, ok := e.Binding.Def.(*usym.Symbol)
		if !ok {
			return nil, errAt(file, a.at, AliasToNonexistentSymbol,
				"alias target %q is a module, not a symbol", a.target)
		}
		return sym, nil
	}
	for _, other := range aliases {
		if other.name == a.target {
			return nil, errAt(file, a.at, AliasToAlias,
				"alias %q refers to alias %q", a.name, a.target)
		}
	}
	return nil, errAt(file, a.at, AliasToNonexistentSymbol,
		"alias target %q does not exist in this scope", a.target)
}

// deriveAlias re-derives a symbol from the target's variants by modifier
// subtraction: each target variant whose modifiers satisfy the alias path
// is copied with the path's tokens removed. A non-deep alias keeps only
// variants without leftover modifiers; a deep alias keeps the leftover as
// the copied variant's modifier set.
func deriveAlias(file string, a aliasDecl, target *usym.Symbol) (*usym.Symbol, *ParseError) {
	if target.IsSingle() {
		if len(a.path) > 0 {
			return nil, errAt(file, a.at, AliasToNonexistentVariant,
				"alias target %q has no variants", a.target)
		}
		value, _, _ := target.Get(modifier.Set{})
		return usym.NewSingleSymbol(value), nil
	}
	var variants []usym.Variant
	for _, v := range target.Variants() {
		leftover, ok := stripModifiers(v.Modifiers, a.path)
		if !ok {
			continue
		}
		if !leftover.IsEmpty() && !a.deep {
			continue
		}
		variants = append(variants, usym.Variant{
			Modifiers:   leftover,
			Value:       v.Value,
			Deprecation: v.Deprecation,
		})
	}
	if len(variants) == 0 {
		return nil, errAt(file, a.at, AliasToNonexistentVariant,
			"no variant of %q matches path %v", a.target, a.path)
	}
	// a deprecated variant must not collapse, Get still has to report it
	if len(variants) == 1 && variants[0].Modifiers.IsEmpty() && variants[0].Deprecation == "" {
		return usym.NewSingleSymbol(variants[0].Value), nil
	}
	return usym.NewSymbol(variants), nil
}

// stripModifiers subtracts an alias path from a variant's modifier set.
// Each variant token is matched, by bare name, against the first of the
// path's components not yet consumed; tokens without a match are
// leftover and keep their encounter order and optional markers. This
// token-multiset reconciliation subsumes the straightforward prefix
// strip and also covers variants declared with their modifiers in a
// different order than the alias path specifies. ok is false unless
// every path component was consumed. When more than one assignment of
// tokens to components is possible, the first structurally consistent
// one wins.
func stripModifiers(set modifier.Set, path []string) (leftover modifier.Set, ok bool) {
	remaining := make([]string, len(path))
	copy(remaining, path)
	for _, m := range set.All() {
		consumed := false
		for j, comp := range remaining {
			if comp == m.Name() {
				remaining = append(remaining[:j], remaining[j+1:]...)
				consumed = true
				break
			}
		}
		if !consumed {
			leftover = leftover.Add(m.String())
		}
	}
	if len(remaining) > 0 {
		return modifier.Set{}, false
	}
	return leftover, true
}
