package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobMatcher_IdenticalTexts(t *testing.T) {
	matcher := NewJobMatcher()

	text := "golang developer with docker and kubernetes experience"
	assert.InDelta(t, 100.0, matcher.MatchPercent(text, text), 0.01)
}

func TestJobMatcher_DisjointTexts(t *testing.T) {
	matcher := NewJobMatcher()

	score := matcher.MatchPercent("apples bananas cherries", "rust compilers linkers")
	assert.Equal(t, 0.0, score)
}

func TestJobMatcher_DegenerateInputs(t *testing.T) {
	matcher := NewJobMatcher()

	assert.Equal(t, 0.0, matcher.MatchPercent("", "golang developer"))
	assert.Equal(t, 0.0, matcher.MatchPercent("golang developer", ""))
	assert.Equal(t, 0.0, matcher.MatchPercent("", ""))
	// Single-char tokens are below the tokenizer's two-char minimum.
	assert.Equal(t, 0.0, matcher.MatchPercent("a b c", "d e f"))
}

func TestJobMatcher_PartialOverlapOrdering(t *testing.T) {
	matcher := NewJobMatcher()

	job := "golang developer with kubernetes experience"
	closer := matcher.MatchPercent("golang developer with kubernetes", job)
	further := matcher.MatchPercent("golang developer", job)

	assert.Greater(t, closer, further)
	assert.Greater(t, further, 0.0)
	assert.LessOrEqual(t, closer, 100.0)
}

func TestJobMatcher_Symmetric(t *testing.T) {
	matcher := NewJobMatcher()

	a := "python data science pandas"
	b := "python machine learning"
	assert.Equal(t, matcher.MatchPercent(a, b), matcher.MatchPercent(b, a))
}

func TestJobMatcher_MissingKeywords(t *testing.T) {
	matcher := NewJobMatcher()

	missing := matcher.MissingKeywords(
		"experienced golang developer",
		"golang developer with kubernetes and terraform experience",
	)

	assert.Contains(t, missing, "kubernetes")
	assert.Contains(t, missing, "terraform")
	assert.NotContains(t, missing, "golang")
	assert.NotContains(t, missing, "developer")
	// "with" is short, "and" is short; "experience" shares the resume's
	// "experienced"? It does not: vocabulary comparison is exact.
	assert.Contains(t, missing, "experience")
}

func TestJobMatcher_MissingKeywordsCap(t *testing.T) {
	matcher := NewJobMatcher()

	job := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima mike november"
	missing := matcher.MissingKeywords("nothing relevant here", job)

	assert.LessOrEqual(t, len(missing), 10)
}

func TestJobMatcher_MissingKeywordsSkipsStopWords(t *testing.T) {
	matcher := NewJobMatcher()

	missing := matcher.MissingKeywords("short resume", "candidates that have been with their teams")
	assert.NotContains(t, missing, "that")
	assert.NotContains(t, missing, "have")
	assert.NotContains(t, missing, "been")
	assert.NotContains(t, missing, "with")
	assert.NotContains(t, missing, "their")
}

func TestJobMatcher_Match(t *testing.T) {
	matcher := NewJobMatcher()

	result := matcher.Match("golang developer", "golang developer with kubernetes")
	assert.Greater(t, result.MatchPercent, 0.0)
	assert.Contains(t, result.MissingKeywords, "kubernetes")
}
