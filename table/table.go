/*
Package table provides the built-in symbol corpora.

Content

Two corpora ship with this module: general text and math symbols
("sym") and emoji ("emoji"). Both are authored in the notation of
package notation, embedded into the binary as text and compiled on
first use. The compiled module trees are frozen and shared; readers
need no synchronization.

   sym := table.Sym()
   if binding, ok := sym.Get("arrow"); ok { … }

Root() aggregates both corpora into one module, with the corpora bound
under their fixed corpus names.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package table

import (
	_ "embed"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/usym"
	"github.com/npillmayer/usym/notation"
)

// tracer traces to usym.table .
func tracer() tracing.Trace {
	return tracing.Select("usym.table")
}

//go:embed modules/sym.txt
var symSrc string

//go:embed modules/emoji.txt
var emojiSrc string

var setupOnce sync.Once

var rootModule, symModule, emojiModule *usym.Module

// The corpora are data of this module; failing to compile them is a
// defect of the module itself, not of client input.
func setup() {
	var err error
	symModule, err = notation.Compile("sym.txt", symSrc)
	if err != nil {
		tracer().Errorf("built-in corpus broken: %s", err)
		panic(err)
	}
	emojiModule, err = notation.Compile("emoji.txt", emojiSrc)
	if err != nil {
		tracer().Errorf("built-in corpus broken: %s", err)
		panic(err)
	}
	rootModule = usym.NewModule([]usym.Entry{
		{Name: "emoji", Binding: usym.Binding{Def: emojiModule}},
		{Name: "sym", Binding: usym.Binding{Def: symModule}},
	})
}

// Root returns the root module, aggregating all built-in corpora under
// their corpus names "sym" and "emoji". The first call compiles the
// corpora; subsequent calls return the shared frozen tree.
func Root() *usym.Module {
	setupOnce.Do(setup)
	return rootModule
}

// Sym returns the corpus of general text and math symbols.
func Sym() *usym.Module {
	setupOnce.Do(setup)
	return symModule
}

// Emoji returns the emoji corpus.
func Emoji() *usym.Module {
	setupOnce.Do(setup)
	return emojiModule
}
