// Package mathfmt turns the light math notation used in question banks into
// display markup.
//
// The grammar is applied in a fixed order on already-escaped text:
//
//	\\            set difference, rewritten to ∖ before escaping
//	\overline{x}  overline
//	c_{x}         subscript, any non-space base
//	c_x           subscript, letter or digit base and run
//	c^{x}         superscript, base is a letter, digit, ')' or ']'
//	c^123         superscript of a digit run, same bases
//	newline       line break
//
// Rules first produce private marker runes; a back end then turns markers
// into HTML tags or into terminal text.
package mathfmt

import (
	"regexp"
	"strings"
)

// Formatter converts bank text to display text.
type Formatter func(string) string

const (
	supOpen   = '\uE000'
	supClose  = '\uE001'
	subOpen   = '\uE002'
	subClose  = '\uE003'
	overOpen  = '\uE004'
	overClose = '\uE005'
	lineBreak = '\uE006'
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	{regexp.MustCompile(`\\overline\{([^}]+)\}`), string(overOpen) + "${1}" + string(overClose)},
	{regexp.MustCompile(`([\p{L}\p{N}])_\{([^}]+)\}`), "${1}" + string(subOpen) + "${2}" + string(subClose)},
	{regexp.MustCompile(`([^\s\p{Z}])_\{([^}]+)\}`), "${1}" + string(subOpen) + "${2}" + string(subClose)},
	{regexp.MustCompile(`([\p{L}\p{N}])_([\p{L}\p{N}]+)`), "${1}" + string(subOpen) + "${2}" + string(subClose)},
	{regexp.MustCompile(`([\p{L}\p{N}\)\]])\^\{([^}]+)\}`), "${1}" + string(supOpen) + "${2}" + string(supClose)},
	{regexp.MustCompile(`([\p{L}\p{N}\)\]])\^(\d+)`), "${1}" + string(supOpen) + "${2}" + string(supClose)},
}

// normalize rewrites doubled backslashes to the set-difference sign.
func normalize(text string) string {
	return strings.ReplaceAll(text, `\\`, "∖")
}

// stripMarkers drops marker runes that arrive in the source text.
func stripMarkers(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= supOpen && r <= lineBreak {
			return -1
		}
		return r
	}, text)
}

// mark applies the notation rules to escaped text.
func mark(escaped string) string {
	out := escaped
	for _, r := range rules {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	return strings.ReplaceAll(out, "\n", string(lineBreak))
}
