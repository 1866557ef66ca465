/*
Package modifier implements modifier sets for symbol variants.

Content

Symbols frequently come in several renderings: an arrow may point right or
left, be doubled, crossed out, and so on. Each such variant is identified by
a set of modifiers. Modifier sets are immutable value types with a canonical
textual encoding: modifier tokens joined by '.', with optional modifiers
carrying a trailing '?' marker, e.g. "r.double" or "straight?.filled".

Modifier sets are unordered. Clients must not rely on enumeration order for
anything but display purposes.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package modifier

import "strings"

// A Modifier is a single named qualifier within a modifier set. Its name is
// a non-empty string of ASCII letters; a trailing '?' in the encoded form
// marks the modifier as optional.
type Modifier struct {
	token string
}

// Name returns the modifier's name, without the optional marker.
func (m Modifier) Name() string {
	return strings.TrimSuffix(m.token, "?")
}

// Optional is true if the modifier carries the '?' marker.
func (m Modifier) Optional() bool {
	return strings.HasSuffix(m.token, "?")
}

func (m Modifier) String() string {
	return m.token
}

// === Modifier sets =========================================================

// A Set is an immutable set of modifiers, encoded as a dotted string.
//
// The zero value is the empty set and ready to use.
type Set struct {
	raw string
}

// FromRawDotted wraps a pre-encoded dotted string as a modifier set.
//
// Callers are responsible for the string being well formed: no empty
// token, no duplicate token name, token names of ASCII letters only,
// optionally suffixed by '?'. The notation scanner validates this during
// compilation; sets constructed from untrusted input should be validated
// by the caller.
func FromRawDotted(raw string) Set {
	return Set{raw: raw}
}

// Add returns a new set with the given raw token inserted. The same
// preconditions as for FromRawDotted apply, i.e. token must not duplicate
// a member of s.
func (s Set) Add(token string) Set {
	if s.raw == "" {
		return Set{raw: token}
	}
	return Set{raw: s.raw + "." + token}
}

// IsEmpty is true for the set without any modifiers.
func (s Set) IsEmpty() bool {
	return s.raw == ""
}

// Len returns the number of modifiers in the set.
func (s Set) Len() int {
	if s.raw == "" {
		return 0
	}
	return strings.Count(s.raw, ".") + 1
}

// String returns the canonical dotted encoding of the set.
func (s Set) String() string {
	return s.raw
}

// All enumerates the modifiers of the set. Enumeration order is
// unspecified.
func (s Set) All() []Modifier {
	if s.raw == "" {
		return nil
	}
	tokens := strings.Split(s.raw, ".")
	mods := make([]Modifier, len(tokens))
	for i, tok := range tokens {
		mods[i] = Modifier{token: tok}
	}
	return mods
}

// Contains checks membership of a modifier by name, ignoring optional
// markers on both sides.
func (s Set) Contains(name string) bool {
	if s.raw == "" || name == "" {
		return false
	}
	for _, tok := range strings.Split(s.raw, ".") {
		if strings.TrimSuffix(tok, "?") == name {
			return true
		}
	}
	return false
}

// IsSubset is true iff every modifier of s is contained in other,
// comparing by name and ignoring optional markers.
func (s Set) IsSubset(other Set) bool {
	for _, m := range s.All() {
		if !other.Contains(m.Name()) {
			return false
		}
	}
	return true
}

// RequiredIsSubset is true iff every non-optional modifier of s is
// contained in other.
func (s Set) RequiredIsSubset(other Set) bool {
	for _, m := range s.All() {
		if !m.Optional() && !other.Contains(m.Name()) {
			return false
		}
	}
	return true
}

// --- Best-match ranking ----------------------------------------------------

// BestMatch finds the best candidate set for a query, returning its index
// within candidates, or -1 if no candidate is eligible.
//
// A candidate is eligible iff all of its required modifiers occur in the
// query and all modifiers of the query occur in the candidate. Among
// eligible candidates the one with the most modifiers in common with the
// query wins; for equal commonality the candidate with fewer modifiers in
// total wins. Remaining ties are resolved by candidate order.
//
// This is the single ranking rule used for symbol lookup; returning -1 is
// the normal "no such variant" outcome, not an error.
func BestMatch(query Set, candidates []Set) int {
	best := -1
	bestCommon := -1
	bestTotal := 0
	for i, cand := range candidates {
		if !cand.RequiredIsSubset(query) || !query.IsSubset(cand) {
			continue
		}
		common, total := 0, 0
		for _, m := range cand.All() {
			total++
			if query.Contains(m.Name()) {
				common++
			}
		}
		if best < 0 || common > bestCommon || (common == bestCommon && total < bestTotal) {
			best, bestCommon, bestTotal = i, common, total
		}
	}
	return best
}
