package model

import (
	"encoding/json"
	"strings"
)

// Severity represents the risk level of a privacy finding.
// This allows categorizing risks by their potential impact on the user.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The mildest level sits at the
// zero value so that a risk whose JSON omits the severity field degrades to
// low instead of silently becoming critical; display order comes from Rank,
// not from the declaration order.
type Severity int

const (
	// SeverityLow indicates minor issues with limited impact.
	// This is the zero value: absent and unrecognized upstream severities
	// both land here so malformed data degrades to the mildest category.
	SeverityLow Severity = iota

	// SeverityMedium indicates moderate issues that warrant attention.
	// Examples: vague purpose statements, opt-out-only tracking.
	SeverityMedium

	// SeverityHigh indicates serious issues that significantly affect user privacy.
	// Examples: broad third-party sharing, indefinite data retention.
	SeverityHigh

	// SeverityCritical indicates severe issues that likely compromise user privacy.
	// Examples: unrestricted data resale, waiver of legal recourse.
	SeverityCritical
)

// ParseSeverity maps an upstream severity string to a Severity.
// Matching is case-insensitive; unrecognized values map to SeverityLow.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Rank returns the sort rank of the severity.
// Critical is 0 and sorts first; low (and unrecognized) is 3 and sorts last.
// The mapping is explicit because the constant values are ordered for safe
// zero-value defaulting, not for display.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// String returns the canonical lower-case name of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Label returns the display label for the severity level.
// Critical and high share the "Higher Risk" label because the report groups
// them visually; the distinction still matters for sort order.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical, SeverityHigh:
		return "Higher Risk"
	case SeverityMedium:
		return "Medium Risk"
	default:
		return "Lower Risk"
	}
}

// UnmarshalJSON parses a severity from its upstream JSON string form.
// Unknown strings are accepted and mapped to SeverityLow so a single
// malformed risk never aborts ingestion of the whole analysis.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseSeverity(raw)
	return nil
}

// MarshalJSON renders the severity as its canonical string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
