package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

const reportDivider = "------------------------------------------------"

// ReportService renders analysis results as shareable plain-text
// documents.
type ReportService struct {
	now func() time.Time
}

func NewReportService() *ReportService {
	return &ReportService{now: time.Now}
}

func orNotFound(value string) string {
	if value == "" {
		return "Not found"
	}
	return value
}

func orNotAdded(value string) string {
	if value == "" {
		return "Not added"
	}
	return value
}

// GenerateAnalysisReport is the compact summary used by the text
// export endpoint.
func (r *ReportService) GenerateAnalysisReport(parsed models.ParsedResume, ats models.ATSResult, jobMatch *models.JobMatchResult) string {
	var sb strings.Builder

	sb.WriteString("RESUME ANALYSIS REPORT\n")
	sb.WriteString(reportDivider + "\n\n")
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", parsed.ContactInfo.Name))
	sb.WriteString(fmt.Sprintf("ATS Score: %.1f/100 (%s)\n", ats.Score, ats.Rating))
	if jobMatch != nil {
		sb.WriteString(fmt.Sprintf("Job Match: %.2f%%\n", jobMatch.MatchPercent))
	}
	sb.WriteString(fmt.Sprintf("Skills Found: %d\n", parsed.Skills.TotalCount))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", parsed.Experience.TotalYears))

	sb.WriteString("\nCONTACT\n" + reportDivider + "\n")
	sb.WriteString(fmt.Sprintf("Email: %s\n", orNotFound(parsed.ContactInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone: %s\n", orNotFound(parsed.ContactInfo.Phone)))
	sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", orNotAdded(parsed.ContactInfo.Links.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub: %s\n", orNotAdded(parsed.ContactInfo.Links.GitHub)))

	if len(ats.Feedback) > 0 {
		sb.WriteString("\nFEEDBACK\n" + reportDivider + "\n")
		for i, item := range ats.Feedback {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
		}
	}

	if jobMatch != nil && len(jobMatch.MissingKeywords) > 0 {
		sb.WriteString("\nMISSING KEYWORDS\n" + reportDivider + "\n")
		sb.WriteString(strings.Join(jobMatch.MissingKeywords, ", ") + "\n")
	}

	sb.WriteString(fmt.Sprintf("\nGenerated on: %s\n", r.now().Format("2006-01-02 15:04:05")))
	return sb.String()
}

// GenerateEmailReport produces the longer letter-style report with a
// subject line, suitable for mailing to the candidate.
func (r *ReportService) GenerateEmailReport(parsed models.ParsedResume, ats models.ATSResult, jobMatch *models.JobMatchResult) string {
	var sb strings.Builder

	sb.WriteString("Subject: Your Resume Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("Dear %s,\n\n", parsed.ContactInfo.Name))
	sb.WriteString("Thank you for using AI Resume Analyzer! Here is your analysis:\n\n")

	sb.WriteString("ANALYSIS SUMMARY\n" + reportDivider + "\n")
	sb.WriteString(fmt.Sprintf("ATS Compatibility Score: %.1f/100\n", ats.Score))
	sb.WriteString(fmt.Sprintf("Rating: %s\n", ats.Rating))
	if jobMatch != nil {
		sb.WriteString(fmt.Sprintf("Job Match: %.2f%%\n", jobMatch.MatchPercent))
	}
	sb.WriteString(fmt.Sprintf("Total Skills Found: %d\n", parsed.Skills.TotalCount))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n\n", parsed.Experience.TotalYears))

	sb.WriteString("CONTACT INFORMATION\n" + reportDivider + "\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", parsed.ContactInfo.Name))
	sb.WriteString(fmt.Sprintf("Email: %s\n", orNotFound(parsed.ContactInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone: %s\n", orNotFound(parsed.ContactInfo.Phone)))
	sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", orNotAdded(parsed.ContactInfo.Links.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub: %s\n\n", orNotAdded(parsed.ContactInfo.Links.GitHub)))

	sb.WriteString("IMPROVEMENT SUGGESTIONS\n" + reportDivider + "\n")
	for i, item := range ats.Feedback {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
	sb.WriteString("\n")

	sb.WriteString("YOUR SKILLS\n" + reportDivider + "\n")
	technical := parsed.Skills.Technical
	if len(technical) > 15 {
		technical = technical[:15]
	}
	sb.WriteString(fmt.Sprintf("Technical Skills (%d): %s\n", len(parsed.Skills.Technical), strings.Join(technical, ", ")))
	sb.WriteString(fmt.Sprintf("Soft Skills (%d): %s\n\n", len(parsed.Skills.Soft), strings.Join(parsed.Skills.Soft, ", ")))

	sb.WriteString("NEXT STEPS\n" + reportDivider + "\n")
	sb.WriteString("1. Review and implement the suggestions above\n")
	sb.WriteString("2. Update your resume and re-analyze\n")
	sb.WriteString("3. Track your progress over time\n\n")

	sb.WriteString("Best regards,\nAI Resume Analyzer Team\n\n")
	sb.WriteString("---\n")
	sb.WriteString("This is an automated report. Please do not reply to this email.\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n", r.now().Format("2006-01-02 15:04:05")))
	return sb.String()
}
