package automaton

import (
	"fmt"
	"unicode"
)

// Symbols are single characters from 0-9 and a-z. Upper case letters are
// folded to lower case; everything else is rejected.

// NormalizeSymbol returns the canonical form of r, or ErrInvalidSymbol.
func NormalizeSymbol(r rune) (rune, error) {
	if r >= 'A' && r <= 'Z' {
		r = unicode.ToLower(r)
	}
	if !IsSymbol(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return r, nil
}

// IsSymbol reports whether r is a canonical symbol.
func IsSymbol(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')
}

// maxSymbol bounds the symbol bitsets.
const maxSymbol = 'z' + 1
