package models

// Rating buckets an ATS score into a coarse quality label. Thresholds are
// inclusive lower bounds: >=90 Excellent, >=75 Good, >=60 Average,
// >=40 NeedsImprovement, else Poor.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingGood             Rating = "Good"
	RatingAverage          Rating = "Average"
	RatingNeedsImprovement Rating = "Needs Improvement"
	RatingPoor             Rating = "Poor"
)

// RatingForScore maps a 0-100 score to its rating bucket.
func RatingForScore(score float64) Rating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingGood
	case score >= 60:
		return RatingAverage
	case score >= 40:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}

// Feedback severity markers. Every feedback line starts with one of these
// so the presentation layer can color-code entries.
const (
	MarkerError   = "[!]"
	MarkerWarning = "[~]"
	MarkerSuccess = "[+]"
)

// ATSResult is the outcome of scoring a resume against the ATS heuristics
// and an optional job description.
type ATSResult struct {
	Score    float64  `json:"score"`
	Feedback []string `json:"feedback"`
	Rating   Rating   `json:"rating"`
}

// JobMatchResult reports how well a resume matches a job description.
type JobMatchResult struct {
	MatchPercent    float64  `json:"match_percent"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Suggestion is one actionable improvement recommendation.
type Suggestion struct {
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example"`
}

// SuggestionSet groups suggestions into fixed priority buckets. Within a
// bucket the order is the fixed check order of the advisor.
type SuggestionSet struct {
	Critical   []Suggestion `json:"critical"`
	Important  []Suggestion `json:"important"`
	NiceToHave []Suggestion `json:"nice_to_have"`
}

// Total returns the number of suggestions across all buckets.
func (s SuggestionSet) Total() int {
	return len(s.Critical) + len(s.Important) + len(s.NiceToHave)
}

// RolePrediction is one candidate role with its confidence percentage.
type RolePrediction struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// ComparisonEntry is one resume's row in a multi-resume ranking.
type ComparisonEntry struct {
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	Skills       int     `json:"skills"`
	Experience   int     `json:"experience"`
	Education    int     `json:"education"`
	Completeness float64 `json:"completeness"`
}
