// Package ident provides identifier normalisation for BASIC variable,
// array and label names. BASIC is case-insensitive on names, canonicalised
// here to upper case so that X and x share the same storage key. A
// trailing `$` sigil is kept as part of the name, so X and X$ stay
// distinct.
//
// Grounded on the teacher's pkg/ident contract (Normalize/Equal), adapted
// to BASIC's upper-case convention instead of DWScript's lower-case one.
package ident

import "strings"

// Normalize canonicalises a BASIC identifier to upper case.
func Normalize(name string) string {
	return strings.ToUpper(name)
}

// Equal reports whether two identifiers are the same name under BASIC's
// case-insensitive rules.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// HasSigil reports whether name ends with the string type sigil `$`.
func HasSigil(name string) bool {
	return strings.HasSuffix(name, "$")
}

// BaseLetter returns the first letter of a normalized name, used to look
// up DEFtype default-type ranges. Returns 0 if name is empty or does not
// start with a letter.
func BaseLetter(name string) byte {
	n := Normalize(name)
	if len(n) == 0 {
		return 0
	}
	c := n[0]
	if c < 'A' || c > 'Z' {
		return 0
	}
	return c
}
