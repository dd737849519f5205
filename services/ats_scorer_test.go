package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

func strongResume() string {
	var sb strings.Builder
	sb.WriteString("John Doe\njohn.doe@email.com\n(555) 123-4567\n\n")
	sb.WriteString("EDUCATION\nB.Tech in Computer Science, 2020\n\n")
	sb.WriteString("EXPERIENCE\nSoftware Engineer at Acme\n")
	sb.WriteString("• Developed microservices improving throughput by 40%\n")
	sb.WriteString("• Created CI pipelines used by 50 users\n\n")
	sb.WriteString("PROJECTS\n• Built a search engine\n\n")
	sb.WriteString("SKILLS\nGo, Python, Docker\n")
	// Pad into the 300-800 word sweet spot.
	for i := 0; i < 30; i++ {
		sb.WriteString("• Designed and implemented reliable backend systems serving production traffic daily\n")
	}
	return sb.String()
}

func TestATSScorer_EmptyResume(t *testing.T) {
	scorer := NewATSScorer()

	result := scorer.Score("", "")

	// Only the no-job-description partial credit is awarded.
	assert.Equal(t, 10.0, result.Score)
	assert.NotEmpty(t, result.Feedback)
	assert.Equal(t, models.RatingPoor, result.Rating)
}

func TestATSScorer_StrongResume(t *testing.T) {
	scorer := NewATSScorer()

	result := scorer.Score(strongResume(), "")

	// Every category except job match passes; the missing description
	// yields half the match budget.
	assert.Equal(t, 90.0, result.Score)
	assert.Equal(t, models.RatingExcellent, result.Rating)
	assert.Equal(t, []string{models.MarkerSuccess + " Resume looks good!"}, result.Feedback)
}

func TestATSScorer_ScoreBounds(t *testing.T) {
	scorer := NewATSScorer()

	inputs := []string{
		"",
		"short",
		strongResume(),
		strings.Repeat("word ", 2000),
	}
	for _, input := range inputs {
		result := scorer.Score(input, "")
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 100.0)
	}
}

func TestATSScorer_QuantifiedAchievements(t *testing.T) {
	scorer := NewATSScorer()

	base := "developed plain text resume"
	with := scorer.Score(base+" Improved performance by 30%", "")
	without := scorer.Score(base, "")

	assert.Equal(t, DefaultScoreWeights().Achievement, with.Score-without.Score)
}

func TestATSScorer_MissingContactFeedback(t *testing.T) {
	scorer := NewATSScorer()

	result := scorer.Score("resume with no contact details", "")

	assert.Contains(t, result.Feedback, models.MarkerError+" Add email address")
	assert.Contains(t, result.Feedback, models.MarkerError+" Add phone number")
}

func TestATSScorer_JobMatchBlending(t *testing.T) {
	scorer := NewATSScorer()

	resume := strongResume()
	matched := scorer.Score(resume, resume)
	unmatched := scorer.Score(resume, "completely unrelated gardening role pruning hedges")

	assert.Greater(t, matched.Score, unmatched.Score)

	// A low match adds a keyword warning.
	found := false
	for _, line := range unmatched.Feedback {
		if strings.Contains(line, "keyword match") {
			found = true
		}
	}
	assert.True(t, found, "expected low-match feedback, got %v", unmatched.Feedback)
}

func TestATSScorer_CustomWeights(t *testing.T) {
	scorer := NewATSScorer()

	weights := DefaultScoreWeights()
	weights.Contact = 40

	boosted := scorer.ScoreWithWeights("john.doe@email.com 9876543210", "", weights)
	standard := scorer.ScoreWithWeights("john.doe@email.com 9876543210", "", DefaultScoreWeights())

	assert.Equal(t, 20.0, boosted.Score-standard.Score)
}

func TestScoreWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultScoreWeights().Validate())

	bad := DefaultScoreWeights()
	bad.Formatting = -1
	assert.Error(t, bad.Validate())
}

func TestRatingForScore(t *testing.T) {
	tests := []struct {
		score  float64
		rating models.Rating
	}{
		{95, models.RatingExcellent},
		{90, models.RatingExcellent},
		{80, models.RatingGood},
		{75, models.RatingGood},
		{65, models.RatingAverage},
		{60, models.RatingAverage},
		{50, models.RatingNeedsImprovement},
		{40, models.RatingNeedsImprovement},
		{39, models.RatingPoor},
		{0, models.RatingPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.rating, models.RatingForScore(tt.score), "score %.0f", tt.score)
	}
}
