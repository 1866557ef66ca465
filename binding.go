package usym

import (
	"sort"

	"github.com/npillmayer/usym/modifier"
)

// Module is a set of named definitions, ordered by name. Modules are
// read-only data structures: they are frozen by the compiler and never
// mutated afterwards, which makes them safe for unsynchronized concurrent
// readers.
type Module struct {
	entries []Entry
}

// Entry is one (name, binding) pair of a module.
type Entry struct {
	Name    string
	Binding Binding
}

// Binding is a definition bound in a module, together with metadata.
type Binding struct {
	Def         Def
	Deprecation string // deprecation message; empty if not deprecated
}

// Def is a definition in a module: either a *Symbol or a nested *Module.
// The interface is sealed; clients branch with a type switch.
type Def interface {
	isDef()
}

func (m *Module) isDef() {}
func (s *Symbol) isDef() {}

// NewModule freezes a list of bindings into a module. The list is copied
// and sorted by name (byte order). Names are expected to be unique within
// the list; the compiler enforces this.
func NewModule(entries []Entry) *Module {
	list := make([]Entry, len(entries))
	copy(list, entries)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return &Module{entries: list}
}

// Get looks up a bound definition by exact name. Lookup is O(log n).
func (m *Module) Get(name string) (Binding, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Name >= name
	})
	if i < len(m.entries) && m.entries[i].Name == name {
		return m.entries[i].Binding, true
	}
	return Binding{}, false
}

// Len returns the number of bindings in the module, not counting the
// bindings of nested modules.
func (m *Module) Len() int {
	return len(m.entries)
}

// Bindings enumerates the module's bindings in name order. The returned
// slice is the module's backing storage and must not be modified.
func (m *Module) Bindings() []Entry {
	return m.entries
}

// === Symbols ===============================================================

// Variant is one concrete rendering of a symbol, identified by a set of
// modifiers.
type Variant struct {
	Modifiers   modifier.Set
	Value       string
	Deprecation string // deprecation message; empty if not deprecated
}

// Symbol is a leaf definition: either a single value, implicitly under
// the empty modifier set, or a list of modifier-qualified variants.
// Like modules, symbols are frozen after compilation.
type Symbol struct {
	single   bool
	variants []Variant
	sets     []modifier.Set // candidate sets for Get, parallel to variants
}

// NewSingleSymbol creates a symbol with exactly one value and no
// modifiers.
func NewSingleSymbol(value string) *Symbol {
	return &Symbol{
		single:   true,
		variants: []Variant{{Value: value}},
		sets:     []modifier.Set{{}},
	}
}

// NewSymbol creates a symbol from a list of variants, preserving their
// order. The list is copied.
func NewSymbol(variants []Variant) *Symbol {
	list := make([]Variant, len(variants))
	copy(list, variants)
	sets := make([]modifier.Set, len(list))
	for i, v := range list {
		sets[i] = v.Modifiers
	}
	return &Symbol{variants: list, sets: sets}
}

// IsSingle is true for symbols declared without modifiers.
func (s *Symbol) IsSingle() bool {
	return s.single
}

// Variants enumerates all variants of the symbol in declaration order.
// The returned slice is the symbol's backing storage and must not be
// modified.
func (s *Symbol) Variants() []Variant {
	return s.variants
}

// Get resolves the symbol's value for a set of request modifiers,
// together with a deprecation message for the selected variant (empty if
// the variant is not deprecated). ok is false if no variant matches the
// request; this is a normal outcome which callers have to handle.
func (s *Symbol) Get(query modifier.Set) (value string, deprecation string, ok bool) {
	i := modifier.BestMatch(query, s.sets)
	if i < 0 {
		return "", "", false
	}
	return s.variants[i].Value, s.variants[i].Deprecation, true
}
