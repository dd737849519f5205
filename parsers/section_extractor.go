package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

const notAvailable = "N/A"

// Degree patterns are scanned in this fixed order; every match produces an
// education entry.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)B\.?Tech|Bachelor of Technology|BTech`),
	regexp.MustCompile(`(?i)B\.?E\.?|Bachelor of Engineering`),
	regexp.MustCompile(`(?i)M\.?Tech|Master of Technology|MTech`),
	regexp.MustCompile(`(?i)MBA|Master of Business Administration`),
	regexp.MustCompile(`(?i)B\.?Sc|Bachelor of Science|BSc`),
	regexp.MustCompile(`(?i)M\.?Sc|Master of Science|MSc`),
	regexp.MustCompile(`(?i)BCA|Bachelor of Computer Applications`),
	regexp.MustCompile(`(?i)MCA|Master of Computer Applications`),
	regexp.MustCompile(`(?i)Ph\.?D|Doctorate|PhD`),
	regexp.MustCompile(`(?i)B\.?A\.?|Bachelor of Arts`),
	regexp.MustCompile(`(?i)M\.?A\.?|Master of Arts`),
}

// Job titles are recognized by their trailing keyword.
var titleKeywords = []string{
	"engineer", "developer", "analyst", "manager", "consultant",
	"intern", "associate", "specialist", "architect", "lead",
	"designer", "scientist", "administrator", "coordinator",
}

// SectionExtractor locates education and experience information inside
// heuristically isolated resume sections.
type SectionExtractor struct {
	yearRegex        *regexp.Regexp
	nextSectionRegex *regexp.Regexp
	institutionRegex *regexp.Regexp
	companyRegex     *regexp.Regexp
	durationRegex    *regexp.Regexp
	titleRegexes     []*regexp.Regexp
}

func NewSectionExtractor() *SectionExtractor {
	titleRegexes := make([]*regexp.Regexp, 0, len(titleKeywords))
	for _, keyword := range titleKeywords {
		titleRegexes = append(titleRegexes,
			regexp.MustCompile(`([A-Z][A-Za-z\s]+?(?i:`+keyword+`)[A-Za-z\s]*?)(?:\s+at\s+|\n|,)`))
	}

	return &SectionExtractor{
		yearRegex:        regexp.MustCompile(`20\d{2}|19\d{2}`),
		nextSectionRegex: regexp.MustCompile(`\n[A-Z][A-Z\s]{3,}:?\s*\n`),
		institutionRegex: regexp.MustCompile(`(?:at|from)?\s*([A-Z][A-Za-z\s&,.]+(?:University|College|Institute|School))`),
		companyRegex:     regexp.MustCompile(`at\s+([A-Z][A-Za-z\s&,.]+?)(?:\n|,|\s{2,})`),
		durationRegex:    regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})\s*[-–to]+\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}|Present)`),
		titleRegexes:     titleRegexes,
	}
}

// IsolateSection returns the body of the first section whose header line is
// one of the given keywords (optionally colon-terminated). The body runs to
// the next ALL-CAPS header line or end of document. An empty result means
// no keyword matched; callers fall back to the whole document.
func (e *SectionExtractor) IsolateSection(text string, keywords []string) string {
	lowerText := strings.ToLower(text)

	for _, keyword := range keywords {
		patterns := []*regexp.Regexp{
			regexp.MustCompile(`\n\s*` + keyword + `\s*:?\s*\n`),
			regexp.MustCompile(`(?m)\n\s*` + keyword + `\s*$`),
			regexp.MustCompile(`^` + keyword + `\s*:?\s*\n`),
		}

		for _, pattern := range patterns {
			loc := pattern.FindStringIndex(lowerText)
			if loc == nil {
				continue
			}
			start := loc[1]
			end := len(text)
			if next := e.nextSectionRegex.FindStringIndex(text[start:]); next != nil {
				end = start + next[0]
			}
			return strings.TrimSpace(text[start:end])
		}
	}
	return ""
}

// ExtractEducation scans the education section (or the whole text when no
// section header is present) for degree patterns. Each match yields an
// entry with the last year and the institution found in a ±150 character
// window. Entries are not deduplicated.
func (e *SectionExtractor) ExtractEducation(text string) []models.EducationEntry {
	section := e.IsolateSection(text, []string{"education", "academic", "qualification", "academics"})
	if section == "" {
		section = text
	}

	var education []models.EducationEntry
	for _, pattern := range degreePatterns {
		for _, loc := range pattern.FindAllStringIndex(section, -1) {
			start := loc[0] - 150
			if start < 0 {
				start = 0
			}
			end := loc[1] + 150
			if end > len(section) {
				end = len(section)
			}
			context := section[start:end]

			entry := models.EducationEntry{
				Degree:      section[loc[0]:loc[1]],
				Year:        notAvailable,
				Institution: notAvailable,
			}
			if years := e.yearRegex.FindAllString(context, -1); len(years) > 0 {
				entry.Year = years[len(years)-1]
			}
			if inst := e.institutionRegex.FindStringSubmatch(context); inst != nil {
				entry.Institution = strings.TrimSpace(inst[1])
			}
			education = append(education, entry)
		}
	}
	return education
}

// ExtractExperience scans the experience section for job-title keyword
// matches and inspects a 200 character forward window for company and
// duration. Results are deduplicated by lower-cased (title, company),
// preserving first-seen order.
func (e *SectionExtractor) ExtractExperience(text string) []models.ExperienceEntry {
	section := e.IsolateSection(text, []string{
		"experience", "work history", "employment", "professional experience", "work experience",
	})
	if section == "" {
		section = text
	}

	var entries []models.ExperienceEntry
	for _, pattern := range e.titleRegexes {
		matches := pattern.FindAllStringSubmatchIndex(section, -1)
		for _, m := range matches {
			title := strings.TrimSpace(section[m[2]:m[3]])

			end := m[1] + 200
			if end > len(section) {
				end = len(section)
			}
			context := section[m[0]:end]

			entry := models.ExperienceEntry{
				Title:    title,
				Company:  notAvailable,
				Duration: notAvailable,
			}
			if company := e.companyRegex.FindStringSubmatch(context); company != nil {
				entry.Company = strings.TrimSpace(company[1])
			}
			if duration := e.durationRegex.FindString(context); duration != "" {
				entry.Duration = duration
			}
			entries = append(entries, entry)
		}
	}

	seen := make(map[string]bool)
	unique := entries[:0]
	for _, entry := range entries {
		key := strings.ToLower(entry.Title) + "\x00" + strings.ToLower(entry.Company)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, entry)
	}
	return unique
}

// CalculateExperienceYears estimates total experience as the spread between
// the earliest and latest 4-digit year found anywhere in the text, capped
// at 40. This is a coarse proxy: unrelated numbers (course years, parts of
// phone numbers) can widen the range.
func (e *SectionExtractor) CalculateExperienceYears(text string) int {
	matches := e.yearRegex.FindAllString(text, -1)
	if len(matches) < 2 {
		return 0
	}

	minYear, maxYear := 0, 0
	for _, m := range matches {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if minYear == 0 || year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}

	total := maxYear - minYear
	if total > 40 {
		total = 40
	}
	return total
}
