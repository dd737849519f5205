package utils

import (
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

var titleCaser = cases.Title(language.English)

func addHeading(doc *document.Document, text string) {
	run := doc.AddParagraph().AddRun()
	run.Properties().SetBold(true)
	run.AddText(text)
}

func addLine(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}

// GenerateDocxReport writes the analysis as a Word document.
func GenerateDocxReport(parsed models.ParsedResume, ats models.ATSResult, jobMatch *models.JobMatchResult, filepath string) error {
	doc := document.New()

	addHeading(doc, "Resume Analysis Report")
	addLine(doc, fmt.Sprintf("Candidate: %s", titleCaser.String(parsed.ContactInfo.Name)))
	addLine(doc, fmt.Sprintf("ATS Score: %.1f/100 (%s)", ats.Score, ats.Rating))
	if jobMatch != nil {
		addLine(doc, fmt.Sprintf("Job Match: %.2f%%", jobMatch.MatchPercent))
	}
	addLine(doc, "")

	addHeading(doc, "Contact Information")
	addLine(doc, fmt.Sprintf("Email: %s", parsed.ContactInfo.Email))
	addLine(doc, fmt.Sprintf("Phone: %s", parsed.ContactInfo.Phone))
	if parsed.ContactInfo.Links.LinkedIn != "" {
		addLine(doc, fmt.Sprintf("LinkedIn: %s", parsed.ContactInfo.Links.LinkedIn))
	}
	if parsed.ContactInfo.Links.GitHub != "" {
		addLine(doc, fmt.Sprintf("GitHub: %s", parsed.ContactInfo.Links.GitHub))
	}
	addLine(doc, "")

	addHeading(doc, fmt.Sprintf("Skills (%d)", parsed.Skills.TotalCount))
	if len(parsed.Skills.Technical) > 0 {
		addLine(doc, "Technical: "+strings.Join(parsed.Skills.Technical, ", "))
	}
	if len(parsed.Skills.Soft) > 0 {
		addLine(doc, "Soft: "+strings.Join(parsed.Skills.Soft, ", "))
	}
	addLine(doc, "")

	addHeading(doc, "Feedback")
	for _, item := range ats.Feedback {
		addLine(doc, "- "+item)
	}
	if jobMatch != nil && len(jobMatch.MissingKeywords) > 0 {
		addLine(doc, "")
		addHeading(doc, "Missing Keywords")
		addLine(doc, strings.Join(jobMatch.MissingKeywords, ", "))
	}

	return doc.SaveToFile(filepath)
}
