package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

func reportFixture() (models.ParsedResume, models.ATSResult) {
	parsed := models.ParsedResume{}
	parsed.ContactInfo.Name = "Jane Smith"
	parsed.ContactInfo.Email = "jane.smith@email.com"
	parsed.ContactInfo.Links.LinkedIn = "linkedin.com/in/janesmith"
	parsed.Skills.Technical = []string{"Go", "Python", "Docker"}
	parsed.Skills.Soft = []string{"Leadership"}
	parsed.Skills.TotalCount = 4
	parsed.Experience.TotalYears = 6

	ats := models.ATSResult{
		Score:    82.5,
		Rating:   models.RatingGood,
		Feedback: []string{models.MarkerWarning + " Add a GitHub profile"},
	}
	return parsed, ats
}

func frozenReportService() *ReportService {
	svc := NewReportService()
	svc.now = func() time.Time {
		return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestReportService_AnalysisReport(t *testing.T) {
	svc := frozenReportService()
	parsed, ats := reportFixture()
	jobMatch := &models.JobMatchResult{
		MatchPercent:    64.29,
		MissingKeywords: []string{"kubernetes", "terraform"},
	}

	report := svc.GenerateAnalysisReport(parsed, ats, jobMatch)

	assert.Contains(t, report, "RESUME ANALYSIS REPORT")
	assert.Contains(t, report, "Candidate: Jane Smith")
	assert.Contains(t, report, "ATS Score: 82.5/100 (Good)")
	assert.Contains(t, report, "Job Match: 64.29%")
	assert.Contains(t, report, "Experience: 6 years")
	assert.Contains(t, report, "Phone: Not found")
	assert.Contains(t, report, "GitHub: Not added")
	assert.Contains(t, report, "kubernetes, terraform")
	assert.Contains(t, report, "Generated on: 2025-03-15 10:30:00")
}

func TestReportService_AnalysisReport_NoJobMatch(t *testing.T) {
	svc := frozenReportService()
	parsed, ats := reportFixture()

	report := svc.GenerateAnalysisReport(parsed, ats, nil)

	assert.NotContains(t, report, "Job Match")
	assert.NotContains(t, report, "MISSING KEYWORDS")
}

func TestReportService_EmailReport(t *testing.T) {
	svc := frozenReportService()
	parsed, ats := reportFixture()

	report := svc.GenerateEmailReport(parsed, ats, nil)

	assert.True(t, strings.HasPrefix(report, "Subject: Your Resume Analysis Report\n"))
	assert.Contains(t, report, "Dear Jane Smith,")
	assert.Contains(t, report, "ATS Compatibility Score: 82.5/100")
	assert.Contains(t, report, "Technical Skills (3): Go, Python, Docker")
	assert.Contains(t, report, "Soft Skills (1): Leadership")
	assert.Contains(t, report, "NEXT STEPS")
	assert.Contains(t, report, "This is an automated report.")
}

func TestReportService_EmailReport_CapsTechnicalSkills(t *testing.T) {
	svc := frozenReportService()
	parsed, ats := reportFixture()
	parsed.Skills.Technical = []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R",
	}

	report := svc.GenerateEmailReport(parsed, ats, nil)

	assert.Contains(t, report, "Technical Skills (18):")
	assert.NotContains(t, report, ", P,")
	assert.Contains(t, report, ", O\n")
}
