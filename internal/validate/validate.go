// Package validate provides small input validators shared by handlers and
// services: required fields, simple formats (email, Thai phone numbers), the
// report id pattern, and the scenario/status enumerations. These helpers are
// independent of transport and persistence.
package validate

import (
	"regexp"
	"strings"
)

var (
	// emailRE is a pragmatic email shape check, not a full RFC 5322 parser.
	emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// reportIDRE matches generated report identifiers:
	// "RPT" + 8-digit date + uppercase hex suffix.
	reportIDRE = regexp.MustCompile(`^RPT[0-9]{8}[A-F0-9]+$`)

	nonDigitRE = regexp.MustCompile(`[^0-9]`)
)

// scenarioTypes is the closed set of incident categories.
var scenarioTypes = map[string]struct{}{
	"theft":    {},
	"accident": {},
	"assault":  {},
	"fire":     {},
	"missing":  {},
}

// reportStatuses is the closed set of report workflow states.
var reportStatuses = map[string]struct{}{
	"draft":      {},
	"submitted":  {},
	"reviewed":   {},
	"processing": {},
}

// Required reports whether every named field in data is present and non-blank.
func Required(data map[string]any, fields ...string) bool {
	for _, f := range fields {
		v, ok := data[f]
		if !ok || v == nil {
			return false
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// Email reports whether s looks like a valid email address.
func Email(s string) bool {
	return emailRE.MatchString(s)
}

// Phone reports whether s is a valid Thai phone number: 9 or 10 digits after
// stripping any non-digit characters (spaces, dashes, parentheses).
func Phone(s string) bool {
	digits := nonDigitRE.ReplaceAllString(s, "")
	return len(digits) >= 9 && len(digits) <= 10
}

// ReportID reports whether s matches the generated report id format.
func ReportID(s string) bool {
	return reportIDRE.MatchString(s)
}

// ScenarioType reports whether s is one of the known incident categories.
func ScenarioType(s string) bool {
	_, ok := scenarioTypes[s]
	return ok
}

// ReportStatus reports whether s is a valid report workflow state.
func ReportStatus(s string) bool {
	_, ok := reportStatuses[s]
	return ok
}
