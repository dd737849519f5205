package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// ResumeComparator ranks multiple parsed resumes against each other
// using a quick heuristic score independent of any job description.
type ResumeComparator struct{}

func NewResumeComparator() *ResumeComparator {
	return &ResumeComparator{}
}

// quickScore is a rough quality number in [0, 100].
func (c *ResumeComparator) quickScore(parsed models.ParsedResume) float64 {
	score := 0.0
	score += float64(parsed.Skills.TotalCount) * 2
	score += float64(parsed.Experience.TotalYears) * 5
	if parsed.ContactInfo.Email != "" {
		score += 5
	}
	if parsed.ContactInfo.Phone != "" {
		score += 5
	}
	if parsed.ContactInfo.Links.LinkedIn != "" {
		score += 5
	}
	if parsed.ContactInfo.Links.GitHub != "" {
		score += 5
	}
	score += float64(len(parsed.Education)) * 10
	score += float64(len(parsed.Experience.Details)) * 5
	if score > 100 {
		score = 100
	}
	return score
}

// completeness counts how many of the four contact fields are present,
// as a percentage.
func (c *ResumeComparator) completeness(parsed models.ParsedResume) float64 {
	present := 0
	if parsed.ContactInfo.Email != "" {
		present++
	}
	if parsed.ContactInfo.Phone != "" {
		present++
	}
	if parsed.ContactInfo.Links.LinkedIn != "" {
		present++
	}
	if parsed.ContactInfo.Links.GitHub != "" {
		present++
	}
	return float64(present) * 25
}

// Compare builds one entry per resume and sorts them best first. Ties
// keep their input order.
func (c *ResumeComparator) Compare(names []string, resumes []models.ParsedResume) []models.ComparisonEntry {
	entries := make([]models.ComparisonEntry, 0, len(resumes))
	for i, parsed := range resumes {
		name := parsed.ContactInfo.Name
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		entries = append(entries, models.ComparisonEntry{
			Name:         name,
			Score:        c.quickScore(parsed),
			Skills:       parsed.Skills.TotalCount,
			Experience:   parsed.Experience.TotalYears,
			Education:    len(parsed.Education),
			Completeness: c.completeness(parsed),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// GenerateReport renders a ranked plain-text comparison table.
func (c *ResumeComparator) GenerateReport(entries []models.ComparisonEntry) string {
	var sb strings.Builder
	sb.WriteString("RESUME COMPARISON REPORT\n")
	sb.WriteString(strings.Repeat("=", 70) + "\n\n")
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("#%d %s\n", i+1, entry.Name))
		sb.WriteString(fmt.Sprintf("   Score: %.1f/100\n", entry.Score))
		sb.WriteString(fmt.Sprintf("   Skills: %d | Experience: %d yrs | Education: %d\n",
			entry.Skills, entry.Experience, entry.Education))
		sb.WriteString(fmt.Sprintf("   Contact completeness: %.0f%%\n\n", entry.Completeness))
	}
	if len(entries) > 0 {
		sb.WriteString(fmt.Sprintf("Best candidate: %s (%.1f/100)\n", entries[0].Name, entries[0].Score))
	}
	return sb.String()
}
