package parsers

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// ContactExtractor pulls name, email, phone and profile links out of resume
// text. Every extractor is total: absence comes back as an empty string,
// never as an error.
type ContactExtractor struct {
	emailRegex    *regexp.Regexp
	phoneRegexes  []*regexp.Regexp
	nonDigitRegex *regexp.Regexp
	linkedinRegex *regexp.Regexp
	githubRegex   *regexp.Regexp
	urlRegex      *regexp.Regexp
	tagger        PersonTagger
}

// NewContactExtractor builds an extractor using the given tagger for name
// recognition. A nil tagger disables the NER pass and leaves only the
// line-heuristic fallback.
func NewContactExtractor(tagger PersonTagger) *ContactExtractor {
	return &ContactExtractor{
		emailRegex: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		// Tried in priority order; the first match with 10-15 digits wins.
		phoneRegexes: []*regexp.Regexp{
			regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
			regexp.MustCompile(`\+?\d{2}[-.\s]?\d{10}`),
			regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
			regexp.MustCompile(`\d{10}`),
		},
		nonDigitRegex: regexp.MustCompile(`\D`),
		linkedinRegex: regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`),
		githubRegex:   regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`),
		urlRegex:      regexp.MustCompile(`https?://(?:www\.)?[\w\-.]+\.\w{2,}(?:/[\w\-./?%&=]*)?`),
		tagger:        tagger,
	}
}

// Extract runs all contact extractors over the full text.
func (e *ContactExtractor) Extract(text string) models.ContactInfo {
	return models.ContactInfo{
		Name:  e.ExtractName(text),
		Email: e.ExtractEmail(text),
		Phone: e.ExtractPhone(text),
		Links: e.ExtractLinks(text),
	}
}

// ExtractEmail returns the first email-looking match, or "".
func (e *ContactExtractor) ExtractEmail(text string) string {
	return e.emailRegex.FindString(text)
}

// ExtractPhone returns the first phone match whose digit count falls in
// [10,15], trying the patterns in fixed priority order.
func (e *ContactExtractor) ExtractPhone(text string) string {
	for _, re := range e.phoneRegexes {
		for _, match := range re.FindAllString(text, -1) {
			digits := e.nonDigitRegex.ReplaceAllString(match, "")
			if len(digits) >= 10 && len(digits) <= 15 {
				return strings.TrimSpace(match)
			}
		}
	}
	return ""
}

// ExtractLinks probes independently for LinkedIn, GitHub and a portfolio
// URL. The first generic URL that is neither LinkedIn nor GitHub is kept
// as the portfolio.
func (e *ContactExtractor) ExtractLinks(text string) models.Links {
	links := models.Links{
		LinkedIn: e.linkedinRegex.FindString(text),
		GitHub:   e.githubRegex.FindString(text),
	}

	for _, url := range e.urlRegex.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			continue
		}
		links.Portfolio = url
		break
	}
	return links
}

// ExtractName examines only the first 5 lines: first a NER pass over each
// line, then the line-heuristic fallback, then the sentinel.
func (e *ContactExtractor) ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	if e.tagger != nil {
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if spans := e.tagger.TagPersonEntities(line); len(spans) > 0 {
				return spans[0]
			}
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 1 && len(words) <= 4 &&
			unicode.IsUpper([]rune(line)[0]) &&
			!strings.ContainsAny(line, "0123456789") {
			return line
		}
	}

	return models.NameNotFound
}
