/*
Package generator is a generator for baked-in symbol corpora.

The generator compiles a corpus notation file and emits a Go source
file holding the frozen module tree as a literal, so that applications
can link a corpus in at compile time instead of compiling the notation
text at first use.

Usage

   generator [-v] -in sym.txt -out symtable.go -pkg table -var symModule

The -in file is compiled with the notation compiler; the result is
written to the -out file as Go source declaring a variable -var of type
*usym.Module in package -pkg.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/usym"
	"github.com/npillmayer/usym/modifier"
	"github.com/npillmayer/usym/notation"
)

var logger = log.New(os.Stderr, "usym generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Load and compile a corpus notation file.
func loadCorpusFile(path string) (*usym.Module, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "compiling "+path)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("ERROR loading " + path + "\n")
		return nil, err
	}
	return notation.Compile(path, string(data))
}

// --- Templates --------------------------------------------------------

var header = `package {{.Pkg}}

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
    "github.com/npillmayer/usym"
    "github.com/npillmayer/usym/modifier"
)

// {{.Var}} is the corpus compiled from {{.In}}.
var {{.Var}} = `

type headerData struct {
	Pkg string
	Var string
	In  string
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	return template.Must(template.New(name).Parse(templString))
}

// --- Emitting ---------------------------------------------------------

func emitModule(w *bufio.Writer, mod *usym.Module, indent int) {
	in := strings.Repeat("    ", indent)
	w.WriteString("usym.NewModule([]usym.Entry{\n")
	for _, e := range mod.Bindings() {
		w.WriteString(fmt.Sprintf("%s    {Name: %q, Binding: usym.Binding{Def: ", in, e.Name))
		switch def := e.Binding.Def.(type) {
		case *usym.Module:
			emitModule(w, def, indent+1)
		case *usym.Symbol:
			emitSymbol(w, def)
		}
		if e.Binding.Deprecation != "" {
			w.WriteString(fmt.Sprintf(", Deprecation: %q", e.Binding.Deprecation))
		}
		w.WriteString("}},\n")
	}
	w.WriteString(in + "})")
}

func emitSymbol(w *bufio.Writer, sym *usym.Symbol) {
	if sym.IsSingle() {
		value, _, _ := sym.Get(modifier.Set{})
		w.WriteString(fmt.Sprintf("usym.NewSingleSymbol(%q)", value))
		return
	}
	variants := arraylist.New()
	for _, v := range sym.Variants() {
		literal := fmt.Sprintf("{Modifiers: modifier.FromRawDotted(%q), Value: %q", v.Modifiers, v.Value)
		if v.Deprecation != "" {
			literal += fmt.Sprintf(", Deprecation: %q", v.Deprecation)
		}
		literal += "}"
		variants.Add(literal)
	}
	w.WriteString("usym.NewSymbol([]usym.Variant{")
	it := variants.Iterator()
	for it.Next() {
		if it.Index() > 0 {
			w.WriteString(", ")
		}
		w.WriteString(it.Value().(string))
	}
	w.WriteString("})")
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	inName := flag.String("in", "", "corpus notation file to compile")
	outName := flag.String("out", "symtable.go", "output file")
	pkgName := flag.String("pkg", "table", "package name of the output file")
	varName := flag.String("var", "symModule", "variable name of the module tree")
	flag.Parse()
	verbose = *doVerbose
	if *inName == "" {
		logger.Fatalln("no corpus file given, use -in")
	}
	module, err := loadCorpusFile(*inName)
	checkFatal(err)
	if verbose {
		logger.Printf("compiled %d top level bindings\n", module.Len())
	}
	f, ioerr := os.Create(*outName)
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	t := makeTemplate("corpus header", header)
	checkFatal(t.Execute(w, headerData{Pkg: *pkgName, Var: *varName, In: *inName}))
	emitModule(w, module, 0)
	w.WriteString("\n")
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
