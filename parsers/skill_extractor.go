package parsers

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// SkillExtractor classifies resume vocabulary against the technical and
// soft taxonomies. Membership is a classification: a skill is found when
// any of its surface forms matches anywhere, occurrence count is
// irrelevant.
type SkillExtractor struct {
	technical map[string][]*regexp.Regexp
	soft      map[string][]*regexp.Regexp
}

// NewSkillExtractor compiles the default taxonomies.
func NewSkillExtractor() *SkillExtractor {
	return NewSkillExtractorWithTaxonomies(DefaultTechnicalSkills(), DefaultSoftSkills())
}

// NewSkillExtractorWithTaxonomies compiles custom taxonomies, keeping the
// matching logic decoupled from the vocabulary tables.
func NewSkillExtractorWithTaxonomies(technical, soft SkillTaxonomy) *SkillExtractor {
	return &SkillExtractor{
		technical: compileTaxonomy(technical),
		soft:      compileTaxonomy(soft),
	}
}

func compileTaxonomy(taxonomy SkillTaxonomy) map[string][]*regexp.Regexp {
	compiled := make(map[string][]*regexp.Regexp, len(taxonomy))
	for name, patterns := range taxonomy {
		regexes := make([]*regexp.Regexp, 0, len(patterns))
		for _, pattern := range patterns {
			if strings.Contains(pattern, `\b`) {
				// Already carries explicit boundaries.
				regexes = append(regexes, regexp.MustCompile(pattern))
			} else {
				regexes = append(regexes, regexp.MustCompile(`\b`+regexp.QuoteMeta(pattern)+`\b`))
			}
		}
		compiled[name] = regexes
	}
	return compiled
}

// Extract returns the matched skills as title-cased, alphabetically sorted
// sets plus their combined cardinality.
func (e *SkillExtractor) Extract(text string) models.SkillSet {
	lower := strings.ToLower(text)

	technical := matchTaxonomy(e.technical, lower)
	soft := matchTaxonomy(e.soft, lower)

	return models.SkillSet{
		Technical:  technical,
		Soft:       soft,
		TotalCount: len(technical) + len(soft),
	}
}

func matchTaxonomy(taxonomy map[string][]*regexp.Regexp, lowerText string) []string {
	found := make(map[string]bool)
	for name, regexes := range taxonomy {
		for _, re := range regexes {
			if re.MatchString(lowerText) {
				found[name] = true
				break
			}
		}
	}

	skills := make([]string, 0, len(found))
	for name := range found {
		skills = append(skills, titleCase(name))
	}
	sort.Strings(skills)
	return skills
}

// titleCase uppercases every letter that follows a non-letter, so
// "node.js" becomes "Node.Js" and "machine learning" becomes
// "Machine Learning".
func titleCase(s string) string {
	runes := []rune(s)
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if prevLetter {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}
