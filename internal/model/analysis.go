package model

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Fallback strings substituted for missing scalar fields.
// The renderer degrades gracefully instead of aborting on missing data,
// so every optional scalar has a fixed fallback.
const (
	// UnknownSource replaces a missing document source.
	UnknownSource = "Unknown source"

	// UnknownDate replaces an absent or malformed analysis timestamp.
	UnknownDate = "Unknown date"

	// UntitledRisk replaces a missing risk title.
	UntitledRisk = "Untitled Risk"

	// UnknownTerm replaces a missing glossary term.
	UnknownTerm = "Unknown Term"

	// NoDefinition replaces a missing glossary definition.
	NoDefinition = "No definition available."

	// NoSummary replaces an analysis with no narrative summary at any tier.
	NoSummary = "No summary available."
)

// AnalysisResult is the structured privacy-policy analysis produced by the
// upstream analyzer. It is the single input to the export pipeline.
//
// All fields are optional: the pipeline tolerates a value missing every
// optional field. Normalize resolves defaults once at the ingestion boundary;
// the renderer never mutates the result afterwards.
type AnalysisResult struct {
	// Source is the analyzed document's origin: a URL or a filename.
	Source string `json:"source,omitempty"`

	// AnalyzedAt is the upstream analysis timestamp, normally RFC 3339.
	// Malformed values render as the UnknownDate fallback.
	AnalyzedAt string `json:"analyzed_at,omitempty"`

	// Summary holds the three-tier narrative summary. Each tier may contain
	// lightweight inline and block markup.
	Summary Summary `json:"summary"`

	// Scorecard is the optional weighted category rating.
	Scorecard *Scorecard `json:"scorecard,omitempty"`

	// Risks is the ordered list of identified privacy risks.
	Risks []Risk `json:"risks,omitempty"`

	// KeyTerms is the ordered glossary of policy terms.
	KeyTerms []KeyTerm `json:"key_terms,omitempty"`

	// Rights is the optional actionable privacy-rights information.
	Rights *PrivacyRightsInfo `json:"rights,omitempty"`
}

// Summary is the three-tier narrative summary of the policy.
type Summary struct {
	// Brief is a few sentences.
	Brief string `json:"brief,omitempty"`

	// Detailed is several paragraphs.
	Detailed string `json:"detailed,omitempty"`

	// Full is the complete narrative, possibly with headings and lists.
	Full string `json:"full,omitempty"`
}

// Best returns the richest available tier: full, else detailed, else brief,
// else the NoSummary placeholder.
func (s Summary) Best() string {
	switch {
	case strings.TrimSpace(s.Full) != "":
		return s.Full
	case strings.TrimSpace(s.Detailed) != "":
		return s.Detailed
	case strings.TrimSpace(s.Brief) != "":
		return s.Brief
	default:
		return NoSummary
	}
}

// Risk is a single privacy risk identified in the policy.
type Risk struct {
	// Title is a short name for the risk.
	Title string `json:"title,omitempty"`

	// Severity is the risk level. Unrecognized upstream values map to low.
	Severity Severity `json:"severity"`

	// Description explains the risk.
	Description string `json:"description,omitempty"`

	// Explanation optionally expands on why the risk matters.
	Explanation string `json:"explanation,omitempty"`

	// Recommendation optionally suggests what the user can do.
	Recommendation string `json:"recommendation,omitempty"`

	// Sections lists policy sections the risk relates to.
	Sections []string `json:"sections,omitempty"`
}

// KeyTerm is one glossary entry.
type KeyTerm struct {
	// Term is the policy term being defined.
	Term string `json:"term,omitempty"`

	// Definition is the plain-language definition.
	Definition string `json:"definition,omitempty"`

	// Location optionally names where the term appears in the policy.
	Location string `json:"location,omitempty"`

	// Category optionally classifies the term.
	Category string `json:"category,omitempty"`
}

// PrivacyRightsInfo holds actionable information about exercising privacy
// rights. Every sub-list is independently optional.
type PrivacyRightsInfo struct {
	// Links lists labeled URLs (privacy portals, opt-out pages).
	Links []RightsLink `json:"links,omitempty"`

	// Contacts lists typed contact points (email, dpo, postal).
	Contacts []RightsContact `json:"contacts,omitempty"`

	// Procedures lists step-by-step instructions for exercising rights.
	Procedures []RightsProcedure `json:"procedures,omitempty"`

	// Timeframes lists response-time commitments from the policy.
	Timeframes []Timeframe `json:"timeframes,omitempty"`
}

// HasActionable reports whether any sub-list contains content.
// The report omits the rights section entirely when this is false.
func (p *PrivacyRightsInfo) HasActionable() bool {
	if p == nil {
		return false
	}
	return len(p.Links) > 0 || len(p.Contacts) > 0 ||
		len(p.Procedures) > 0 || len(p.Timeframes) > 0
}

// RightsLink is a labeled URL.
type RightsLink struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url,omitempty"`
}

// RightsContact is a typed contact point.
type RightsContact struct {
	// Type classifies the contact, e.g. "email", "dpo", "postal".
	Type string `json:"type,omitempty"`

	// Value is the contact address itself.
	Value string `json:"value,omitempty"`
}

// RightsProcedure is a step-by-step procedure for exercising a right.
type RightsProcedure struct {
	// Title names the right or procedure.
	Title string `json:"title,omitempty"`

	// Steps lists the steps in order.
	Steps []string `json:"steps,omitempty"`

	// Requirements optionally lists what the user must provide.
	Requirements []string `json:"requirements,omitempty"`
}

// Timeframe is one response-time commitment.
type Timeframe struct {
	// Action names the request type, e.g. "Data deletion".
	Action string `json:"action,omitempty"`

	// Window is the committed response window, e.g. "30 days".
	Window string `json:"window,omitempty"`
}

// Normalize resolves optional scalar fields to their concrete defaults.
// It is called exactly once at the ingestion boundary so that the rendering
// pipeline operates on fully-defaulted values and never needs fallbacks of
// its own. Collections are left as-is: empty collections simply omit their
// report section.
func (a *AnalysisResult) Normalize() {
	a.Source = strings.TrimSpace(a.Source)
	if a.Source == "" {
		a.Source = UnknownSource
	}
	for i := range a.Risks {
		if strings.TrimSpace(a.Risks[i].Title) == "" {
			a.Risks[i].Title = UntitledRisk
		}
	}
	for i := range a.KeyTerms {
		if strings.TrimSpace(a.KeyTerms[i].Term) == "" {
			a.KeyTerms[i].Term = UnknownTerm
		}
		if strings.TrimSpace(a.KeyTerms[i].Definition) == "" {
			a.KeyTerms[i].Definition = NoDefinition
		}
	}
}

// AnalyzedTime parses the analysis timestamp.
// It accepts RFC 3339 and a few common date layouts; ok is false for absent
// or malformed timestamps, in which case the report shows UnknownDate.
func (a *AnalysisResult) AnalyzedTime() (t time.Time, ok bool) {
	raw := strings.TrimSpace(a.AnalyzedAt)
	if raw == "" {
		return time.Time{}, false
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortedRisks returns the risks stable-sorted by severity rank, critical
// first. Risks of equal severity keep their relative input order.
func (a *AnalysisResult) SortedRisks() []Risk {
	sorted := make([]Risk, len(a.Risks))
	copy(sorted, a.Risks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
	})
	return sorted
}

// CountBySeverity returns the number of risks at the given severity.
func (a *AnalysisResult) CountBySeverity(s Severity) int {
	var n int
	for _, r := range a.Risks {
		if r.Severity == s {
			n++
		}
	}
	return n
}

// LoadAnalysis reads and normalizes an analysis result from a JSON file.
// This is the single ingestion boundary: results returned from here are
// fully defaulted.
func LoadAnalysis(path string) (*AnalysisResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("read analysis file: %w", err)
	}
	var result AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse analysis file %s: %w", path, err)
	}
	result.Normalize()
	return &result, nil
}
