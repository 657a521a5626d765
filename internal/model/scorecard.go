package model

import "math"

// CategoryDef describes one fixed scorecard category.
// The seven categories and their weights are constants of the rating scheme,
// never derived from data.
type CategoryDef struct {
	// Key is the canonical map key used in upstream JSON.
	Key string

	// Label is the human-readable category name for report output.
	Label string

	// Weight is the category's contribution to the overall score.
	// All seven weights sum to 100.
	Weight int
}

// Categories lists the fixed scorecard categories in weight-descending
// display order. Ties (user rights and data collection, both 18) keep this
// declaration order.
var Categories = [7]CategoryDef{
	{Key: "third_party_sharing", Label: "Third-Party Sharing", Weight: 20},
	{Key: "user_rights", Label: "User Rights", Weight: 18},
	{Key: "data_collection", Label: "Data Collection", Weight: 18},
	{Key: "data_retention", Label: "Data Retention", Weight: 14},
	{Key: "purpose_clarity", Label: "Purpose Clarity", Weight: 12},
	{Key: "security", Label: "Security", Weight: 10},
	{Key: "transparency", Label: "Transparency", Weight: 8},
}

// defaultCategoryScore substitutes for categories the upstream analyzer
// omitted or left unscored.
const defaultCategoryScore = 5

// CategoryScore is the upstream rating for a single category.
type CategoryScore struct {
	// Score is the 1-10 rating. Zero means the analyzer did not score
	// this category; derivation substitutes the default of 5.
	Score int `json:"score,omitempty"`

	// Summary is optional free-text justification for the score.
	Summary string `json:"summary,omitempty"`
}

// Scorecard is a weighted multi-category privacy rating.
//
// Design decision: Categories is a map keyed by canonical category key rather
// than a fixed struct so that upstream analyzers can omit categories freely.
// Display order and weights come from the Categories table, never from the map.
type Scorecard struct {
	// Categories maps canonical category keys to their scores.
	Categories map[string]CategoryScore `json:"categories,omitempty"`

	// OverallScore is the analyzer's precomputed overall score (0-100).
	// Zero means absent; Overall derives the score from categories instead.
	OverallScore int `json:"overall_score,omitempty"`

	// Grade is the analyzer's precomputed letter grade.
	// Empty means absent; LetterGrade derives it from the overall score.
	Grade string `json:"grade,omitempty"`

	// TopConcerns lists the most significant negative findings.
	// The report renders at most three.
	TopConcerns []string `json:"top_concerns,omitempty"`

	// PositiveAspects lists notable positive findings.
	// The report renders at most three.
	PositiveAspects []string `json:"positive_aspects,omitempty"`
}

// CategoryValue returns the effective 1-10 score for a category key,
// substituting the default for missing or unscored categories.
func (s *Scorecard) CategoryValue(key string) int {
	if cs, ok := s.Categories[key]; ok && cs.Score > 0 {
		return cs.Score
	}
	return defaultCategoryScore
}

// Overall returns the overall score: the analyzer's precomputed value when
// present, otherwise round(sum over all categories of score/10 x weight) with
// missing category scores defaulting to 5.
func (s *Scorecard) Overall() int {
	if s.OverallScore > 0 {
		return s.OverallScore
	}
	var total float64
	for _, def := range Categories {
		total += float64(s.CategoryValue(def.Key)) / 10.0 * float64(def.Weight)
	}
	return int(math.Round(total))
}

// gradeThresholds maps minimum overall scores to letter grades.
// The table is ordered; the first threshold at or below the score wins.
var gradeThresholds = []struct {
	min   int
	grade string
}{
	{97, "A+"},
	{93, "A"},
	{90, "A-"},
	{87, "B+"},
	{83, "B"},
	{80, "B-"},
	{77, "C+"},
	{73, "C"},
	{70, "C-"},
	{67, "D+"},
	{63, "D"},
	{60, "D-"},
}

// GradeForScore maps an overall score to its letter grade.
func GradeForScore(score int) string {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return "F"
}

// LetterGrade returns the letter grade: the analyzer's precomputed grade when
// present, otherwise the overall score mapped through the threshold table.
func (s *Scorecard) LetterGrade() string {
	if s.Grade != "" {
		return s.Grade
	}
	return GradeForScore(s.Overall())
}

// ScoreLevel classifies a category score for visual emphasis only.
// It never affects the score arithmetic.
type ScoreLevel int

const (
	// LevelDanger marks scores below 4.
	LevelDanger ScoreLevel = iota

	// LevelWarning marks scores from 4 to 6.
	LevelWarning

	// LevelSuccess marks scores of 7 and above.
	LevelSuccess
)

// LevelForScore classifies a 1-10 category score.
func LevelForScore(score int) ScoreLevel {
	switch {
	case score >= 7:
		return LevelSuccess
	case score >= 4:
		return LevelWarning
	default:
		return LevelDanger
	}
}
