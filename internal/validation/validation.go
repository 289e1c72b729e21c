package validation

import (
	"regexp"
	"strings"
)

// Same pattern the site applies before submitting: one local part, one @, one
// dot in the domain, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Labels used in error messages. Fields without an entry fall back to the raw
// field name.
var fieldLabels = map[string]string{
	"name":           "Name",
	"email":          "Email",
	"company":        "Company",
	"message":        "Message",
	"projectDetails": "Project details",
	"budget":         "Budget",
	"timeline":       "Timeline",
	"companySize":    "Company size",
	"timeSpent":      "Time spent",
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Check validates fields against a required-field schema and returns one error
// message per failing field. An empty map means the input is valid. Fields are
// blank when empty after trimming; the email field additionally has to match
// the address pattern.
func Check(fields map[string]string, required []string) map[string]string {
	errors := make(map[string]string)

	for _, field := range required {
		value := strings.TrimSpace(fields[field])
		if value == "" {
			errors[field] = label(field) + " is required"
			continue
		}
		if field == "email" && !ValidEmail(value) {
			errors[field] = "Invalid email format"
		}
	}

	return errors
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}
