package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

func completeResume() (models.ParsedResume, string) {
	parsed := models.ParsedResume{
		ContactInfo: models.ContactInfo{
			Name:  "John Doe",
			Email: "john@email.com",
			Phone: "9876543210",
			Links: models.Links{
				LinkedIn: "linkedin.com/in/johndoe",
				GitHub:   "github.com/johndoe",
			},
		},
		Education: []models.EducationEntry{{Degree: "B.Tech", Year: "2020", Institution: "XYZ University"}},
		Skills: models.SkillSet{
			Technical:  []string{"Go", "Python", "Docker", "Kubernetes"},
			Soft:       []string{"Leadership"},
			TotalCount: 5,
		},
		Experience: models.Experience{
			Details: []models.ExperienceEntry{{Title: "Engineer", Company: "Acme", Duration: "2020 - Present"}},
		},
	}
	text := "Developed systems improving throughput by 40% " + strings.Repeat("detail word padding filler ", 50)
	return parsed, text
}

func TestResumeImprover_CompleteResume(t *testing.T) {
	improver := NewResumeImprover()
	parsed, text := completeResume()

	suggestions := improver.AnalyzeAndSuggest(parsed, text)

	assert.Empty(t, suggestions.Critical)
	assert.Empty(t, suggestions.Important)
	assert.Empty(t, suggestions.NiceToHave)
	assert.Equal(t, 0, suggestions.Total())
}

func TestResumeImprover_MissingEverything(t *testing.T) {
	improver := NewResumeImprover()

	suggestions := improver.AnalyzeAndSuggest(models.ParsedResume{}, "")

	// Missing email, phone and skills.
	assert.Len(t, suggestions.Critical, 3)
	// Missing LinkedIn, GitHub, action verbs and metrics.
	assert.Len(t, suggestions.Important, 4)
	// Missing education, experience and too short.
	assert.Len(t, suggestions.NiceToHave, 3)

	assert.Equal(t, "Missing Email", suggestions.Critical[0].Issue)
	assert.Equal(t, "Missing Phone Number", suggestions.Critical[1].Issue)
}

func TestResumeImprover_WordCountBuckets(t *testing.T) {
	improver := NewResumeImprover()
	parsed, _ := completeResume()

	short := improver.AnalyzeAndSuggest(parsed, "Developed 40% impact")
	hasIssue := func(set []models.Suggestion, issue string) bool {
		for _, s := range set {
			if s.Issue == issue {
				return true
			}
		}
		return false
	}
	assert.True(t, hasIssue(short.NiceToHave, "Resume Too Short"))

	long := improver.AnalyzeAndSuggest(parsed, "Developed 40% impact "+strings.Repeat("word ", 1100))
	assert.True(t, hasIssue(long.NiceToHave, "Resume Too Long"))
}

func TestResumeImprover_DollarAmountsCountAsMetrics(t *testing.T) {
	improver := NewResumeImprover()
	parsed, _ := completeResume()

	text := "Developed savings of $10K " + strings.Repeat("filler ", 300)
	suggestions := improver.AnalyzeAndSuggest(parsed, text)

	for _, s := range suggestions.Important {
		assert.NotEqual(t, "Lack of Quantifiable Achievements", s.Issue)
	}
}

func TestResumeImprover_GenerateImprovementPlan(t *testing.T) {
	improver := NewResumeImprover()

	suggestions := improver.AnalyzeAndSuggest(models.ParsedResume{}, "")
	plan := improver.GenerateImprovementPlan(suggestions)

	assert.Contains(t, plan, "RESUME IMPROVEMENT PLAN")
	assert.Contains(t, plan, "CRITICAL (Fix Immediately):")
	assert.Contains(t, plan, "Missing Email")
	assert.Contains(t, plan, "NICE TO HAVE (When Time Permits):")
}
