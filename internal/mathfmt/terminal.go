package mathfmt

import (
	"strings"
	"unicode"
)

const combiningOverline = '\u0305'

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ', 'f': 'ᶠ', 'g': 'ᵍ',
	'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ', 'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ',
	'o': 'ᵒ', 'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ', 'v': 'ᵛ',
	'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',
	'A': 'ᴬ', 'B': 'ᴮ', 'D': 'ᴰ', 'E': 'ᴱ', 'G': 'ᴳ', 'H': 'ᴴ', 'I': 'ᴵ',
	'J': 'ᴶ', 'K': 'ᴷ', 'L': 'ᴸ', 'M': 'ᴹ', 'N': 'ᴺ', 'O': 'ᴼ', 'P': 'ᴾ',
	'R': 'ᴿ', 'T': 'ᵀ', 'U': 'ᵁ', 'V': 'ⱽ', 'W': 'ᵂ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ', 'k': 'ₖ', 'l': 'ₗ',
	'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ', 'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ',
	'u': 'ᵤ', 'v': 'ᵥ', 'x': 'ₓ',
}

// sanitize removes control characters other than newline, which would
// otherwise reach the terminal as escape sequences. Tabs become spaces.
func sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, text)
}

// Terminal renders the notation with Unicode super- and subscripts.
// Runs that have no Unicode form fall back to ^(x) and _(x).
func Terminal(text string) string {
	marked := mark(sanitize(stripMarkers(normalize(text))))

	var (
		out     strings.Builder
		run     strings.Builder
		sup     int
		sub     int
		over    int
		current byte
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch current {
		case '^':
			out.WriteString(script(run.String(), superscripts, "^"))
		case '_':
			out.WriteString(script(run.String(), subscripts, "_"))
		default:
			out.WriteString(run.String())
		}
		run.Reset()
	}

	mode := func() byte {
		switch {
		case sup > 0:
			return '^'
		case sub > 0:
			return '_'
		}
		return 0
	}

	for _, r := range marked {
		switch r {
		case supOpen:
			flush()
			sup++
		case supClose:
			flush()
			if sup > 0 {
				sup--
			}
		case subOpen:
			flush()
			sub++
		case subClose:
			flush()
			if sub > 0 {
				sub--
			}
		case overOpen:
			over++
		case overClose:
			if over > 0 {
				over--
			}
		case lineBreak:
			flush()
			out.WriteByte('\n')
		default:
			current = mode()
			run.WriteRune(r)
			if over > 0 {
				run.WriteRune(combiningOverline)
			}
		}
	}
	flush()
	return out.String()
}

// script maps every rune of s through table, or wraps s with prefix when any
// rune has no mapping.
func script(s string, table map[rune]rune, prefix string) string {
	var b strings.Builder
	for _, r := range s {
		if r == combiningOverline {
			b.WriteRune(r)
			continue
		}
		m, ok := table[r]
		if !ok {
			if len([]rune(s)) == 1 {
				return prefix + s
			}
			return prefix + "(" + s + ")"
		}
		b.WriteRune(m)
	}
	return b.String()
}
