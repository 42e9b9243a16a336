package validation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Reason describes why the record was rejected, e.g.
// "missing required fields: Name, Email". It is empty for a valid result.
func (r Result) Reason() string {
	if r.Valid {
		return ""
	}
	labels := make([]string, len(r.Missing))
	for i, name := range r.Missing {
		labels[i] = humanizeText(name)
	}
	return "missing required fields: " + strings.Join(labels, ", ")
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
