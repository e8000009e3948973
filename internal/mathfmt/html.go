package mathfmt

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var htmlTags = strings.NewReplacer(
	string(supOpen), "<sup>",
	string(supClose), "</sup>",
	string(subOpen), "<sub>",
	string(subClose), "</sub>",
	string(overOpen), `<span class="overline">`,
	string(overClose), "</span>",
	string(lineBreak), "<br>",
)

// HTML escapes text and renders the notation as HTML tags. It is the
// reference output for the notation; the terminal UI uses Terminal, and HTML
// is kept for callers that render questions on a web page.
func HTML(text string) string {
	escaped := htmlEscaper.Replace(stripMarkers(normalize(text)))
	return htmlTags.Replace(mark(escaped))
}
