package constants

import "strings"

// Severity is the canonical damage severity scale used in assessments.
type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

var allSeverities = []Severity{SeverityMinor, SeverityModerate, SeveritySevere}

func SeveritiesAsStrings() []string {
	out := make([]string, len(allSeverities))
	for i, s := range allSeverities {
		out[i] = string(s)
	}
	return out
}

// CanonicalizeSeverity maps free-form model output onto the severity enum.
// Unrecognized values fall back to Moderate, the middle of the scale.
func CanonicalizeSeverity(input string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "minor", "light", "low", "slight":
		return SeverityMinor, true
	case "moderate", "medium":
		return SeverityModerate, true
	case "severe", "major", "high", "heavy", "critical":
		return SeveritySevere, true
	}
	return SeverityModerate, false
}
