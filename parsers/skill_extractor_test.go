package parsers

import (
	"sort"
	"testing"
)

func TestSkillExtractor_WordBoundaries(t *testing.T) {
	extractor := NewSkillExtractor()

	// "digit" must not count as "git", and prose containing "c" as a
	// word should match the C language pattern only at word boundaries.
	skills := extractor.Extract("I checked every digit in the ledger")
	for _, skill := range skills.Technical {
		if skill == "Git" {
			t.Error("'digit' should not match the git skill")
		}
	}

	skills = extractor.Extract("Proficient in git and docker")
	found := map[string]bool{}
	for _, skill := range skills.Technical {
		found[skill] = true
	}
	if !found["Git"] || !found["Docker"] {
		t.Errorf("Expected Git and Docker, got %v", skills.Technical)
	}
}

func TestSkillExtractor_GolangAlias(t *testing.T) {
	extractor := NewSkillExtractor()

	skills := extractor.Extract("Backend services written in golang")
	found := false
	for _, skill := range skills.Technical {
		if skill == "Go" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected 'golang' to map to Go, got %v", skills.Technical)
	}
}

func TestSkillExtractor_CaseInsensitive(t *testing.T) {
	extractor := NewSkillExtractor()

	upper := extractor.Extract("PYTHON JAVASCRIPT LEADERSHIP")
	lower := extractor.Extract("python javascript leadership")

	if upper.TotalCount != lower.TotalCount {
		t.Errorf("Case should not affect matching: %d vs %d", upper.TotalCount, lower.TotalCount)
	}
}

func TestSkillExtractor_SortedAndCounted(t *testing.T) {
	extractor := NewSkillExtractor()

	skills := extractor.Extract("docker kubernetes python communication teamwork")

	if !sort.StringsAreSorted(skills.Technical) {
		t.Errorf("Technical skills not sorted: %v", skills.Technical)
	}
	if !sort.StringsAreSorted(skills.Soft) {
		t.Errorf("Soft skills not sorted: %v", skills.Soft)
	}
	if skills.TotalCount != len(skills.Technical)+len(skills.Soft) {
		t.Errorf("TotalCount %d != %d technical + %d soft",
			skills.TotalCount, len(skills.Technical), len(skills.Soft))
	}
}

func TestSkillExtractor_NoDuplicates(t *testing.T) {
	extractor := NewSkillExtractor()

	skills := extractor.Extract("python python python")

	count := 0
	for _, skill := range skills.Technical {
		if skill == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected Python exactly once, got %d times", count)
	}
}

func TestSkillExtractor_Empty(t *testing.T) {
	extractor := NewSkillExtractor()

	skills := extractor.Extract("")
	if skills.TotalCount != 0 || len(skills.Technical) != 0 || len(skills.Soft) != 0 {
		t.Errorf("Expected empty skill set, got %+v", skills)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"python", "Python"},
		{"node.js", "Node.Js"},
		{"machine learning", "Machine Learning"},
		{"ci/cd", "Ci/Cd"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
