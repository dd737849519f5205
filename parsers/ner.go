package parsers

import (
	"regexp"
	"strings"
)

// PersonTagger identifies person-name spans in a line of text. Any backend
// satisfies it: a statistical model, a rule-based tagger, or none at all --
// the name extractor always keeps its line-heuristic fallback available.
type PersonTagger interface {
	// TagPersonEntities returns the person-name spans found in line,
	// in order of appearance. An empty slice means no entity was found.
	TagPersonEntities(line string) []string
}

// RuleBasedTagger tags runs of title-cased words as person names. It is the
// default backend when no statistical model is wired in.
type RuleBasedTagger struct {
	spanRegex *regexp.Regexp
}

// Words that look like names to the span regex but head resume boilerplate.
var nonNameWords = map[string]bool{
	"resume":       true,
	"curriculum":   true,
	"vitae":        true,
	"profile":      true,
	"summary":      true,
	"objective":    true,
	"education":    true,
	"experience":   true,
	"skills":       true,
	"projects":     true,
	"contact":      true,
	"professional": true,
}

func NewRuleBasedTagger() *RuleBasedTagger {
	return &RuleBasedTagger{
		// Two to four consecutive capitalized words, letters only plus
		// common name punctuation.
		spanRegex: regexp.MustCompile(`\b[A-Z][a-z'.-]+(?: [A-Z][a-z'.-]+){1,3}\b`),
	}
}

func (t *RuleBasedTagger) TagPersonEntities(line string) []string {
	var spans []string
	for _, span := range t.spanRegex.FindAllString(line, -1) {
		if t.looksLikeName(span) {
			spans = append(spans, span)
		}
	}
	return spans
}

// looksLikeName rejects spans touching address-like characters and spans
// built from resume boilerplate words. The rejection is per span, not per
// line: normalized text arrives as one long line where digits and emails
// sit next to the actual name.
func (t *RuleBasedTagger) looksLikeName(span string) bool {
	if strings.Contains(span, "@") || strings.ContainsAny(span, "0123456789") {
		return false
	}
	for _, word := range strings.Fields(span) {
		if nonNameWords[strings.ToLower(strings.Trim(word, ".'-"))] {
			return false
		}
	}
	return true
}
