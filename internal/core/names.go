package core

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims surrounding whitespace and title-cases every word, so
// "  ana SILVA " becomes "Ana Silva". Every name-accepting entry point goes
// through it.
func NormalizeName(name string) string {
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}
