package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// Strong action verbs recommended for bullet points.
var suggestedActionVerbs = []string{
	"Developed", "Created", "Implemented", "Managed", "Led",
	"Designed", "Built", "Improved", "Achieved", "Increased",
	"Reduced", "Optimized", "Delivered", "Launched", "Established",
}

// ResumeImprover maps gaps in a parsed resume and its raw text onto
// categorized, prioritized suggestions. The rule table is fixed; output
// preserves bucket order and the check order within each bucket.
type ResumeImprover struct {
	numberRegex *regexp.Regexp
}

func NewResumeImprover() *ResumeImprover {
	return &ResumeImprover{
		numberRegex: regexp.MustCompile(`\d+%|\d+ users|\d+ projects|\$\d+`),
	}
}

// AnalyzeAndSuggest runs the full rule table.
func (r *ResumeImprover) AnalyzeAndSuggest(parsed models.ParsedResume, resumeText string) models.SuggestionSet {
	var suggestions models.SuggestionSet

	// Critical checks.
	if parsed.ContactInfo.Email == "" {
		suggestions.Critical = append(suggestions.Critical, models.Suggestion{
			Issue:      "Missing Email",
			Suggestion: "Add a professional email address at the top of your resume",
			Example:    "john.doe@email.com",
		})
	}
	if parsed.ContactInfo.Phone == "" {
		suggestions.Critical = append(suggestions.Critical, models.Suggestion{
			Issue:      "Missing Phone Number",
			Suggestion: "Include your phone number for recruiters to contact you",
			Example:    "+91-9876543210",
		})
	}
	if parsed.Skills.TotalCount < 5 {
		suggestions.Critical = append(suggestions.Critical, models.Suggestion{
			Issue:      "Too Few Skills Listed",
			Suggestion: "Add more relevant skills. Aim for at least 10-15 skills",
			Example:    "Add technical skills like programming languages, tools, frameworks",
		})
	}

	// Important checks.
	if parsed.ContactInfo.Links.LinkedIn == "" {
		suggestions.Important = append(suggestions.Important, models.Suggestion{
			Issue:      "Missing LinkedIn Profile",
			Suggestion: "Add your LinkedIn profile URL to increase credibility",
			Example:    "linkedin.com/in/yourname",
		})
	}
	if parsed.ContactInfo.Links.GitHub == "" {
		suggestions.Important = append(suggestions.Important, models.Suggestion{
			Issue:      "Missing GitHub Profile",
			Suggestion: "For tech roles, include your GitHub profile to showcase projects",
			Example:    "github.com/yourusername",
		})
	}
	lower := strings.ToLower(resumeText)
	hasActionVerb := false
	for _, verb := range suggestedActionVerbs {
		if strings.Contains(lower, strings.ToLower(verb)) {
			hasActionVerb = true
			break
		}
	}
	if !hasActionVerb {
		suggestions.Important = append(suggestions.Important, models.Suggestion{
			Issue:      "Weak Action Verbs",
			Suggestion: "Start bullet points with strong action verbs",
			Example:    `Use: "Developed", "Implemented", "Led" instead of "Responsible for"`,
		})
	}
	if !r.numberRegex.MatchString(resumeText) {
		suggestions.Important = append(suggestions.Important, models.Suggestion{
			Issue:      "Lack of Quantifiable Achievements",
			Suggestion: "Add numbers and metrics to demonstrate impact",
			Example:    `"Improved performance by 30%", "Managed team of 5", "Reduced costs by $10K"`,
		})
	}

	// Nice to have checks.
	if len(parsed.Education) == 0 {
		suggestions.NiceToHave = append(suggestions.NiceToHave, models.Suggestion{
			Issue:      "Education Section Missing",
			Suggestion: "Add your educational qualifications",
			Example:    "B.Tech in Computer Science, XYZ University (2019-2023)",
		})
	}
	if len(parsed.Experience.Details) == 0 {
		suggestions.NiceToHave = append(suggestions.NiceToHave, models.Suggestion{
			Issue:      "No Work Experience Listed",
			Suggestion: "Include internships, projects, or freelance work",
			Example:    "Software Developer Intern at ABC Company (June 2022 - Aug 2022)",
		})
	}
	wordCount := len(strings.Fields(resumeText))
	if wordCount < 200 {
		suggestions.NiceToHave = append(suggestions.NiceToHave, models.Suggestion{
			Issue:      "Resume Too Short",
			Suggestion: fmt.Sprintf("Your resume has only %d words. Aim for 300-800 words", wordCount),
			Example:    "Add more details about your projects, responsibilities, and achievements",
		})
	} else if wordCount > 1000 {
		suggestions.NiceToHave = append(suggestions.NiceToHave, models.Suggestion{
			Issue:      "Resume Too Long",
			Suggestion: fmt.Sprintf("Your resume has %d words. Keep it concise (300-800 words)", wordCount),
			Example:    "Remove redundant information and focus on relevant achievements",
		})
	}

	return suggestions
}

// GenerateImprovementPlan serializes the buckets into a numbered
// plain-text plan.
func (r *ResumeImprover) GenerateImprovementPlan(suggestions models.SuggestionSet) string {
	var sb strings.Builder
	sb.WriteString("RESUME IMPROVEMENT PLAN\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	writeBucket := func(header string, bucket []models.Suggestion) {
		if len(bucket) == 0 {
			return
		}
		sb.WriteString(header + "\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for i, sug := range bucket {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, sug.Issue))
			sb.WriteString(fmt.Sprintf("   -> %s\n", sug.Suggestion))
			sb.WriteString(fmt.Sprintf("   Example: %s\n\n", sug.Example))
		}
	}

	writeBucket("CRITICAL (Fix Immediately):", suggestions.Critical)
	writeBucket("IMPORTANT (High Priority):", suggestions.Important)
	writeBucket("NICE TO HAVE (When Time Permits):", suggestions.NiceToHave)

	return sb.String()
}
