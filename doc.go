/*
Package usym provides human-friendly, named access to Unicode symbols.

Description

Unicode code-points for symbols are hard to remember and hard to type.
usym maps human-authored names, optionally qualified by modifiers, to one
or more character values:

   arrow            →
   arrow.l          ←
   arrow.r.double   ⇒

Names are organized into a nested namespace of modules. The whole
namespace is compiled (at build time, or lazily at first use) from a
compact, line-oriented notation (see sub-package notation) into a frozen,
name-sorted tree of modules and symbols. At run time the tree is strictly
read-only and safe for concurrent readers.

Base package usym holds the runtime data model: Module, Binding, Def,
Symbol. Resolving "the symbol named X with modifiers M" is delegated to
the best-match ranking of sub-package modifier. Sub-package table carries
the two standard corpora (general symbols and emoji) as embedded notation
text and publishes them as a lazily-initialized singleton.

Sub-packages styling and numerals are independent helpers operating on
the character values the tree produces: mathematical-style character
remapping and numeral-system formatting.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package usym

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
