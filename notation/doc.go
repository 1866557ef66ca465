/*
Package notation implements the compiler for the usym symbol notation.

Content

Symbol corpora are authored in a compact, line-oriented notation
('//' starts a comment):

   name {                        // open a nested module
   }                             // close it
   name value                    // symbol with a default value
   .modifier.modifier value      // variant of the preceding symbol
   alias @= name.modifier        // alias; a trailing '.*' makes it deep
   @deprecated: message          // attaches to the next declaration
   @deprecated(modifier): message

Values are literal text, possibly containing escapes: '\u{1F600}' for a
code-point given in hex, '\vs{1}'…'\vs{16}' (or '\vs{text}', '\vs{emoji}')
for a variation selector, and '\c{not}' for a combining negation overlay.
Identifiers consist of ASCII letters only; modifiers may carry a trailing
'?' to mark them optional.

The compiler is a one-shot batch transform: scanning classifies each line,
the tree builder recursively assembles nested module scopes, and a
post-pass per scope rewrites alias declarations into full symbol
definitions. The result is a frozen, name-sorted usym.Module. Any
malformed line aborts compilation with an error of the form
"file:line: reason"; no partial output is produced.

Typical Usage

   module, err := notation.Compile("sym.txt", text)
   if err != nil { … }
   binding, ok := module.Get("arrow")

Corpora are independent of each other and may be compiled concurrently;
compiler instances are pooled.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to usym.notation .
func tracer() tracing.Trace {
	return tracing.Select("usym.notation")
}
