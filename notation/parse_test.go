package notation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/usym"
	"github.com/npillmayer/usym/internal/testdata"
	"github.com/npillmayer/usym/modifier"
	"github.com/npillmayer/usym/notation"
	"github.com/stretchr/testify/assert"
)

func TestCompileDefaultPlusVariants(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	module := compile(t, `
arrow →
.double ⇒
.double.crossed ⤇
`)
	sym := symbolOf(t, module, "arrow")
	if sym.IsSingle() {
		t.Fatalf("expected 'arrow' to have variants")
	}
	variants := sym.Variants()
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants of 'arrow', have %d", len(variants))
	}
	if !variants[0].Modifiers.IsEmpty() || variants[0].Value != "→" {
		t.Errorf("expected the default value first, have %v", variants[0])
	}
	value, _, ok := sym.Get(modifier.FromRawDotted("double"))
	assert.True(t, ok)
	assert.Equal(t, "⇒", value)
}

func TestCompileNestedModules(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	module := compile(t, `
greek {
    alpha α
    beta β
}
infinity ∞
`)
	b, ok := module.Get("greek")
	if !ok {
		t.Fatalf("expected to find module 'greek'")
	}
	greek, ok := b.Def.(*usym.Module)
	if !ok {
		t.Fatalf("expected 'greek' to be a module")
	}
	sym := symbolOf(t, greek, "beta")
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "β", value)
	entries := module.Bindings()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name >= entries[i].Name {
			t.Errorf("bindings not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}
}

func TestCompileComments(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	module := compile(t, `
// a corpus of one symbol
sun ☀ // with a trailing comment
`)
	sym := symbolOf(t, module, "sun")
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "☀", value)
}

func TestAliasSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	module := compile(t, `
dir →
.r →
.l ←
right @= dir.r
`)
	sym := symbolOf(t, module, "right")
	if !sym.IsSingle() {
		t.Errorf("expected alias 'right' to collapse to a single value")
	}
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "→", value)
}

func TestAliasDeepWithLeftover(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	module := compile(t, `
arrow
.r →
.r.double ⇒
.r.double.crossed ⤇
x @= arrow.r.*
`)
	sym := symbolOf(t, module, "x")
	if sym.IsSingle() {
		t.Fatalf("expected deep alias 'x' to keep variants")
	}
	variants := sym.Variants()
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants of 'x', have %d", len(variants))
	}
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "→", value)
	value, _, ok = sym.Get(modifier.FromRawDotted("double"))
	assert.True(t, ok)
	assert.Equal(t, "⇒", value)
	value, _, ok = sym.Get(modifier.FromRawDotted("double.crossed"))
	assert.True(t, ok)
	assert.Equal(t, "⤇", value)
}

func TestAliasReorderedModifiers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// the variant declares 'double' before 'r'; the alias path still has
	// to consume 'r' and leave 'double' over
	module := compile(t, `
arrow
.double.r ⇒
r @= arrow.r.*
`)
	sym := symbolOf(t, module, "r")
	value, _, ok := sym.Get(modifier.FromRawDotted("double"))
	assert.True(t, ok)
	assert.Equal(t, "⇒", value)
}

func TestAliasForwardReference(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// an alias may reference a sibling defined later in the same scope
	module := compile(t, `
right @= dir.r
dir →
.r →
.l ←
`)
	sym := symbolOf(t, module, "right")
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "→", value)
}

func TestDeprecationAttachesToBinding(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	module := compile(t, `
@deprecated: use infinity instead
lemniscate ∞
infinity ∞
`)
	b, ok := module.Get("lemniscate")
	if !ok {
		t.Fatalf("expected to find 'lemniscate'")
	}
	assert.Equal(t, "use infinity instead", b.Deprecation)
	b, _ = module.Get("infinity")
	assert.Equal(t, "", b.Deprecation)
}

func TestDeprecationAttachesToVariant(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	module := compile(t, `
arrow →
@deprecated(wiggly): use squiggly instead
.wiggly ⇜
.squiggly ⬳
`)
	sym := symbolOf(t, module, "arrow")
	_, deprecation, ok := sym.Get(modifier.FromRawDotted("wiggly"))
	assert.True(t, ok)
	assert.Equal(t, "use squiggly instead", deprecation)
	_, deprecation, ok = sym.Get(modifier.FromRawDotted("squiggly"))
	assert.True(t, ok)
	assert.Equal(t, "", deprecation)
}

func TestCompileErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []struct {
		name string
		src  string
		kind notation.ErrorKind
	}{
		{"dangling deprecation at end of input", "@deprecated: gone", notation.DanglingDeprecation},
		{"dangling deprecation at module end", "m {\n@deprecated: gone\n}", notation.DanglingDeprecation},
		{"dangling variant deprecation", "a x\n@deprecated(b): gone\n.c y", notation.DanglingDeprecation},
		{"duplicate deprecation", "@deprecated: one\n@deprecated: two\na x", notation.DuplicateDeprecation},
		{"missing deprecation message", "@deprecated:\na x", notation.MissingDeprecationMessage},
		{"malformed modifier annotation", "@deprecated(two words): gone\na x", notation.MalformedModifierAnnotation},
		{"symbol without value or variants", "empty", notation.MissingValue},
		{"variant without value", "a x\n.b", notation.MissingValue},
		{"invalid identifier", "bad4name x", notation.InvalidIdentifier},
		{"invalid modifier", "a x\n.b4d y", notation.InvalidIdentifier},
		{"duplicate modifier", "a x\n.b.b y", notation.InvalidIdentifier},
		{"variant without symbol", ".b x", notation.UnexpectedDeclaration},
		{"unbalanced close", "}", notation.UnexpectedDeclaration},
		{"unclosed module", "m {\na x", notation.UnexpectedDeclaration},
		{"duplicate name", "a x\na y", notation.UnexpectedDeclaration},
		{"alias to nonexistent symbol", "a x\nb @= c", notation.AliasToNonexistentSymbol},
		{"alias to module", "m {\na x\n}\nb @= m", notation.AliasToNonexistentSymbol},
		{"alias to nonexistent variant", "a x\n.b y\nc @= a.d", notation.AliasToNonexistentVariant},
		{"alias to alias", "a x\nb @= a\nc @= b", notation.AliasToAlias},
		{"unterminated escape in value", `a \u{2060`, notation.UnterminatedEscape},
	}
	for _, input := range inputs {
		_, err := notation.Compile("test.txt", input.src)
		if err == nil {
			t.Errorf("%s: expected %s, have no error", input.name, input.kind)
			continue
		}
		var perr *notation.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%s: error is not a ParseError: %v", input.name, err)
		}
		if perr.Kind != input.kind {
			t.Errorf("%s: expected %s, have %s (%s)", input.name, input.kind, perr.Kind, perr)
		}
		if perr.File != "test.txt" {
			t.Errorf("%s: error not attributed to the input file: %s", input.name, perr)
		}
	}
}

func TestCompileFixtureFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	file, src, err := testdata.Fixture("smoke.txt")
	if err != nil {
		t.Fatalf("cannot read fixture: %s", err)
	}
	module, err := notation.Compile(file, src)
	if err != nil {
		t.Fatalf("compilation failed: %s", err)
	}
	assert.Equal(t, 6, module.Len())
	sym := symbolOf(t, module, "wj")
	value, _, ok := sym.Get(modifier.Set{})
	assert.True(t, ok)
	assert.Equal(t, "\u2060", value)
	to := symbolOf(t, module, "to")
	assert.True(t, to.IsSingle())
	any := symbolOf(t, module, "any")
	assert.Equal(t, 4, len(any.Variants()))
	b, ok := module.Get("arr")
	assert.True(t, ok)
	assert.Equal(t, "superseded by arrow", b.Deprecation)
	b, ok = module.Get("punct")
	assert.True(t, ok)
	punct, ok := b.Def.(*usym.Module)
	assert.True(t, ok)
	assert.Equal(t, 3, punct.Len())
}

func TestErrorFormat(t *testing.T) {
	_, err := notation.Compile("sym.txt", "ok x\nbad4name y\n")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	assert.Equal(t, `sym.txt:2: invalid symbol name: "bad4name"`, err.Error())
}

func ExampleCompile() {
	module, err := notation.Compile("sym.txt", `
arrow →
.double ⇒
`)
	if err != nil {
		fmt.Println(err)
		return
	}
	b, _ := module.Get("arrow")
	sym := b.Def.(*usym.Symbol)
	value, _, _ := sym.Get(modifier.FromRawDotted("double"))
	fmt.Println(value)
	// Output: ⇒
}

// --- Helpers ---------------------------------------------------------------

func compile(t *testing.T, src string) *usym.Module {
	module, err := notation.Compile("test.txt", src)
	if err != nil {
		t.Fatalf("compilation failed: %s", err)
	}
	return module
}

func symbolOf(t *testing.T, module *usym.Module, name string) *usym.Symbol {
	b, ok := module.Get(name)
	if !ok {
		t.Fatalf("expected to find %q", name)
	}
	sym, ok := b.Def.(*usym.Symbol)
	if !ok {
		t.Fatalf("expected %q to be a symbol", name)
	}
	return sym
}
