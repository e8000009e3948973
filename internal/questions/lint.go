package questions

import "strings"

// placeholderExplanation is what the PDF extractor writes when it has no
// explanation for a question yet.
const placeholderExplanation = "Magyarázat hamarosan."

// Warning is a non-fatal problem found in a bank.
type Warning struct {
	ID      ID
	Message string
}

// Lint reports questions that load fine but will behave oddly in a session.
func Lint(b *Bank) []Warning {
	var warnings []Warning
	for _, q := range b.Questions() {
		if strings.TrimSpace(q.Question) == "" {
			warnings = append(warnings, Warning{ID: q.ID, Message: "empty question text"})
		}
		if len(q.Options) < 2 {
			warnings = append(warnings, Warning{ID: q.ID, Message: "fewer than two options"})
		}
		if len(q.CorrectIndexes()) == 0 {
			warnings = append(warnings, Warning{ID: q.ID, Message: "no option marked correct; it can never be answered correctly"})
		}
		if strings.TrimSpace(q.Explanation) == placeholderExplanation {
			warnings = append(warnings, Warning{ID: q.ID, Message: "placeholder explanation"})
		}
	}
	return warnings
}
