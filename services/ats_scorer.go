package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
)

// ScoreWeights makes the per-category point budget an explicit input, so
// scoring stays a pure function of (text, job description, config).
// Defaults reproduce the standard 100-point split.
type ScoreWeights struct {
	Contact     float64 `json:"contact_info"`
	Sections    float64 `json:"section_structure"`
	Formatting  float64 `json:"formatting"`
	Length      float64 `json:"content_length"`
	Achievement float64 `json:"achievements"`
	JobMatch    float64 `json:"job_match"`
}

// DefaultScoreWeights returns the standard 100-point category split.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Contact:     20,
		Sections:    20,
		Formatting:  15,
		Length:      10,
		Achievement: 15,
		JobMatch:    20,
	}
}

// Validate rejects negative category budgets.
func (w ScoreWeights) Validate() error {
	for name, value := range map[string]float64{
		"contact_info":      w.Contact,
		"section_structure": w.Sections,
		"formatting":        w.Formatting,
		"content_length":    w.Length,
		"achievements":      w.Achievement,
		"job_match":         w.JobMatch,
	} {
		if value < 0 {
			return fmt.Errorf("scoring weight %s must not be negative", name)
		}
	}
	return nil
}

// Action verbs that signal achievement-oriented writing.
var actionVerbs = []string{
	"developed", "created", "managed", "led", "designed",
	"implemented", "improved", "achieved",
}

// Section keywords counted toward the structure score.
var requiredSections = []string{"education", "experience", "skills", "projects"}

// ATSScorer applies the rule-based ATS heuristics to raw resume text,
// optionally blending in a TF-IDF job-description match.
type ATSScorer struct {
	contacts   *parsers.ContactExtractor
	matcher    *JobMatcher
	quantRegex *regexp.Regexp
}

func NewATSScorer() *ATSScorer {
	return &ATSScorer{
		contacts:   parsers.NewContactExtractor(nil),
		matcher:    NewJobMatcher(),
		quantRegex: regexp.MustCompile(`(?i)\d+%|\d+ users|\d+ projects`),
	}
}

// Score computes the additive ATS score with the default weights.
func (s *ATSScorer) Score(resumeText, jobDescription string) models.ATSResult {
	return s.ScoreWithWeights(resumeText, jobDescription, DefaultScoreWeights())
}

// ScoreWithWeights computes the additive ATS score. Every category is
// independently capped; the total is clamped to [0,100]. One feedback line
// is accumulated per failed or partial category, with a single affirmative
// line when everything passes.
func (s *ATSScorer) ScoreWithWeights(resumeText, jobDescription string, weights ScoreWeights) models.ATSResult {
	score := 0.0
	var feedback []string
	lower := strings.ToLower(resumeText)

	// Contact info: email and phone each take half the contact budget.
	if s.contacts.ExtractEmail(resumeText) != "" {
		score += weights.Contact / 2
	} else {
		feedback = append(feedback, models.MarkerError+" Add email address")
	}
	if s.contacts.ExtractPhone(resumeText) != "" {
		score += weights.Contact / 2
	} else {
		feedback = append(feedback, models.MarkerError+" Add phone number")
	}

	// Section coverage, proportional to how many expected headers appear.
	found := 0
	var missing []string
	for _, section := range requiredSections {
		if strings.Contains(lower, section) {
			found++
		} else {
			missing = append(missing, section)
		}
	}
	score += weights.Sections * float64(found) / float64(len(requiredSections))
	if len(missing) > 0 {
		feedback = append(feedback, fmt.Sprintf("%s Add sections: %s", models.MarkerError, strings.Join(missing, ", ")))
	}

	// Formatting: reasonable line count, bullet usage, action verbs.
	formatUnit := weights.Formatting / 3
	if len(strings.Split(resumeText, "\n")) > 10 {
		score += formatUnit
	} else {
		feedback = append(feedback, models.MarkerWarning+" Resume looks short - use one line per detail")
	}
	if strings.Contains(resumeText, "•") || strings.Contains(resumeText, "-") {
		score += formatUnit
	} else {
		feedback = append(feedback, models.MarkerError+" Use bullet points for better readability")
	}
	hasVerb := false
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			hasVerb = true
			break
		}
	}
	if hasVerb {
		score += formatUnit
	} else {
		feedback = append(feedback, models.MarkerError+" Use action verbs (developed, created, managed, etc.)")
	}

	// Length.
	wordCount := len(strings.Fields(resumeText))
	switch {
	case wordCount >= 300 && wordCount <= 800:
		score += weights.Length
	case wordCount < 300:
		feedback = append(feedback, models.MarkerError+" Resume too short - add more details")
	default:
		feedback = append(feedback, models.MarkerWarning+" Resume too long - keep it concise")
	}

	// Quantified achievements.
	if s.quantRegex.MatchString(resumeText) {
		score += weights.Achievement
	} else {
		feedback = append(feedback, models.MarkerError+" Add quantifiable achievements (numbers, percentages)")
	}

	// Job description match; half credit when no description is supplied.
	if jobDescription != "" {
		matchScore := s.matcher.MatchPercent(resumeText, jobDescription)
		score += matchScore * weights.JobMatch / 100
		if matchScore < 50 {
			feedback = append(feedback, models.MarkerError+" Low keyword match with job description")
		}
	} else {
		score += weights.JobMatch / 2
	}

	if len(feedback) == 0 {
		feedback = append(feedback, models.MarkerSuccess+" Resume looks good!")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return models.ATSResult{
		Score:    score,
		Feedback: feedback,
		Rating:   models.RatingForScore(score),
	}
}

// JobMatch exposes the similarity percentage and keyword gap for callers
// that requested a job-description comparison.
func (s *ATSScorer) JobMatch(resumeText, jobDescription string) models.JobMatchResult {
	return s.matcher.Match(resumeText, jobDescription)
}
