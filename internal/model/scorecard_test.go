package model

import "testing"

// TestCategoryWeightsSumTo100 guards the fixed weight table.
func TestCategoryWeightsSumTo100(t *testing.T) {
	t.Parallel()

	var sum int
	for _, def := range Categories {
		sum += def.Weight
	}
	if sum != 100 {
		t.Errorf("category weights sum to %d, want 100", sum)
	}
}

// TestScorecardOverall tests overall score derivation.
func TestScorecardOverall(t *testing.T) {
	t.Parallel()

	t.Run("explicit score wins", func(t *testing.T) {
		t.Parallel()

		sc := &Scorecard{OverallScore: 42}
		if got := sc.Overall(); got != 42 {
			t.Errorf("Overall() = %d, want 42", got)
		}
	})

	t.Run("all categories default to 5", func(t *testing.T) {
		t.Parallel()

		// Every category missing: sum of 5/10 x weight over weights summing
		// to 100 is exactly 50.
		sc := &Scorecard{}
		if got := sc.Overall(); got != 50 {
			t.Errorf("Overall() = %d, want 50", got)
		}
	})

	t.Run("present categories contribute their score", func(t *testing.T) {
		t.Parallel()

		// third_party_sharing 8/10 x 20 = 16 instead of the default 10,
		// so the overall rises from 50 to 56.
		sc := &Scorecard{
			Categories: map[string]CategoryScore{
				"third_party_sharing": {Score: 8},
			},
		}
		if got := sc.Overall(); got != 56 {
			t.Errorf("Overall() = %d, want 56", got)
		}
	})

	t.Run("zero score treated as missing", func(t *testing.T) {
		t.Parallel()

		sc := &Scorecard{
			Categories: map[string]CategoryScore{
				"security": {Score: 0, Summary: "unscored"},
			},
		}
		if got := sc.Overall(); got != 50 {
			t.Errorf("Overall() = %d, want 50", got)
		}
	})
}

// TestGradeForScore tests the grade threshold boundaries.
func TestGradeForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{100, "A+"},
		{97, "A+"},
		{96, "A"},
		{93, "A"},
		{92, "A-"},
		{90, "A-"},
		{89, "B+"},
		{87, "B+"},
		{83, "B"},
		{80, "B-"},
		{77, "C+"},
		{73, "C"},
		{70, "C-"},
		{67, "D+"},
		{63, "D"},
		{60, "D-"},
		{59, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := GradeForScore(tt.score); got != tt.want {
			t.Errorf("GradeForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// TestScorecardLetterGrade tests grade selection.
func TestScorecardLetterGrade(t *testing.T) {
	t.Parallel()

	t.Run("explicit grade wins", func(t *testing.T) {
		t.Parallel()

		sc := &Scorecard{OverallScore: 95, Grade: "B"}
		if got := sc.LetterGrade(); got != "B" {
			t.Errorf("LetterGrade() = %q, want B", got)
		}
	})

	t.Run("derived from explicit score", func(t *testing.T) {
		t.Parallel()

		sc := &Scorecard{OverallScore: 95}
		if got := sc.LetterGrade(); got != "A" {
			t.Errorf("LetterGrade() = %q, want A", got)
		}
	})

	t.Run("derived from derived score", func(t *testing.T) {
		t.Parallel()

		// All defaults give 50, which is an F.
		sc := &Scorecard{}
		if got := sc.LetterGrade(); got != "F" {
			t.Errorf("LetterGrade() = %q, want F", got)
		}
	})
}

// TestLevelForScore tests category score classification.
func TestLevelForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  ScoreLevel
	}{
		{10, LevelSuccess},
		{7, LevelSuccess},
		{6, LevelWarning},
		{4, LevelWarning},
		{3, LevelDanger},
		{1, LevelDanger},
	}

	for _, tt := range tests {
		if got := LevelForScore(tt.score); got != tt.want {
			t.Errorf("LevelForScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
