// Package strength scores passwords with a fixed additive 0-100 heuristic.
// The score reflects length and character-class presence, not true entropy.
package strength

import (
	"strings"
	"unicode/utf8"

	"github.com/passforge/passforge-go/internal/crypto"
)

// Band labels for qualitative display.
const (
	BandStrong = "Strong"
	BandMedium = "Medium"
	BandWeak   = "Weak"
)

// Report describes a scored password. Derived purely from the input string.
type Report struct {
	Length       int
	HasLowercase bool
	HasUppercase bool
	HasDigits    bool
	HasSymbols   bool
	Score        int
}

// Score evaluates a password. It never fails: an empty string scores zero
// with all presence flags false. Characters outside the four classes (e.g.
// whitespace or non-ASCII) count toward length but set no flag.
func Score(password string) Report {
	r := Report{Length: utf8.RuneCountInString(password)}

	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			r.HasLowercase = true
		case c >= 'A' && c <= 'Z':
			r.HasUppercase = true
		case c >= '0' && c <= '9':
			r.HasDigits = true
		case strings.ContainsRune(crypto.SymbolChars, c):
			r.HasSymbols = true
		}
	}

	if r.Length >= 8 {
		r.Score += 25
	}
	if r.Length >= 12 {
		r.Score += 10
	}
	if r.Length >= 16 {
		r.Score += 5
	}

	if r.HasLowercase {
		r.Score += 15
	}
	if r.HasUppercase {
		r.Score += 15
	}
	if r.HasDigits {
		r.Score += 15
	}
	if r.HasSymbols {
		r.Score += 15
	}

	return r
}

// Band maps a score to its qualitative label. The 80/60 thresholds are fixed
// compatibility constants.
func Band(score int) string {
	switch {
	case score >= 80:
		return BandStrong
	case score >= 60:
		return BandMedium
	default:
		return BandWeak
	}
}
