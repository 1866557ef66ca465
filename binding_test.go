package usym

import (
	"testing"

	"github.com/npillmayer/usym/modifier"
	"github.com/stretchr/testify/assert"
)

func TestModuleSortsAndFinds(t *testing.T) {
	m := NewModule([]Entry{
		{Name: "gamma", Binding: Binding{Def: NewSingleSymbol("γ")}},
		{Name: "alpha", Binding: Binding{Def: NewSingleSymbol("α")}},
		{Name: "beta", Binding: Binding{Def: NewSingleSymbol("β")}},
	})
	entries := m.Bindings()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name >= entries[i].Name {
			t.Errorf("module bindings not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}
	b, ok := m.Get("beta")
	if !ok {
		t.Fatalf("expected to find 'beta'")
	}
	sym, ok := b.Def.(*Symbol)
	if !ok {
		t.Fatalf("expected 'beta' to be a symbol")
	}
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "β", value)
	_, ok = m.Get("delta")
	assert.False(t, ok)
}

func TestNestedModuleLookup(t *testing.T) {
	inner := NewModule([]Entry{
		{Name: "r", Binding: Binding{Def: NewSingleSymbol("→")}},
	})
	outer := NewModule([]Entry{
		{Name: "arrows", Binding: Binding{Def: inner}},
	})
	b, ok := outer.Get("arrows")
	if !ok {
		t.Fatalf("expected to find nested module")
	}
	mod, ok := b.Def.(*Module)
	if !ok {
		t.Fatalf("expected a module binding")
	}
	if mod.Len() != 1 {
		t.Errorf("expected nested module of size 1, have %d", mod.Len())
	}
}

func TestSymbolGetRanksVariants(t *testing.T) {
	sym := NewSymbol([]Variant{
		{Modifiers: modifier.Set{}, Value: "→"},
		{Modifiers: modifier.FromRawDotted("double"), Value: "⇒"},
		{Modifiers: modifier.FromRawDotted("double.crossed"), Value: "⤇"},
	})
	value, _, ok := sym.Get(modifier.FromRawDotted("double"))
	assert.True(t, ok)
	assert.Equal(t, "⇒", value)
	value, _, ok = sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "→", value)
	_, _, ok = sym.Get(modifier.FromRawDotted("crossed.wavy"))
	assert.False(t, ok)
}

func TestSymbolGetReportsDeprecation(t *testing.T) {
	sym := NewSymbol([]Variant{
		{Modifiers: modifier.Set{}, Value: "→"},
		{Modifiers: modifier.FromRawDotted("old"), Value: "⇢", Deprecation: "use plain arrow"},
	})
	_, deprecation, ok := sym.Get(modifier.FromRawDotted("old"))
	assert.True(t, ok)
	assert.Equal(t, "use plain arrow", deprecation)
}

func TestSingleSymbol(t *testing.T) {
	sym := NewSingleSymbol("∞")
	if !sym.IsSingle() {
		t.Errorf("expected a single symbol")
	}
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "∞", value)
	_, _, ok = sym.Get(modifier.FromRawDotted("bold"))
	assert.False(t, ok)
}
