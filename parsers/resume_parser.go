package parsers

import (
	"errors"
	"sync"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// ErrNoText is returned when a supported file yields no extractable text
// (corrupt document, image-only PDF). It is terminal for that request;
// retrying will not help.
var ErrNoText = errors.New("could not extract text from file")

// rawTextPreviewLen caps the preview retained on the parsed record.
const rawTextPreviewLen = 500

// ResumeParser composes the individual extractors into the full parsing
// pipeline. Parsing is a pure function of the input text: the same text
// always yields the same ParsedResume.
type ResumeParser struct {
	textExtractor    *TextExtractor
	contactExtractor *ContactExtractor
	sectionExtractor *SectionExtractor
	skillExtractor   *SkillExtractor
}

// NewResumeParser wires the default extractor set, with the rule-based
// tagger as the NER backend.
func NewResumeParser() *ResumeParser {
	return NewResumeParserWithTagger(NewRuleBasedTagger())
}

// NewResumeParserWithTagger lets callers swap the person-name backend.
func NewResumeParserWithTagger(tagger PersonTagger) *ResumeParser {
	return &ResumeParser{
		textExtractor:    NewTextExtractor(),
		contactExtractor: NewContactExtractor(tagger),
		sectionExtractor: NewSectionExtractor(),
		skillExtractor:   NewSkillExtractor(),
	}
}

// NewResumeParserWithSkills lets callers supply a custom skill
// extractor, typically built from a taxonomy file.
func NewResumeParserWithSkills(skills *SkillExtractor) *ResumeParser {
	p := NewResumeParser()
	p.skillExtractor = skills
	return p
}

// Parse extracts the structured record from resume text. The extractors
// only read the shared immutable text and write disjoint output fields, so
// they run concurrently.
func (p *ResumeParser) Parse(text string) models.ParsedResume {
	var (
		wg         sync.WaitGroup
		contact    models.ContactInfo
		education  []models.EducationEntry
		skills     models.SkillSet
		experience []models.ExperienceEntry
		totalYears int
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		contact = p.contactExtractor.Extract(text)
	}()
	go func() {
		defer wg.Done()
		education = p.sectionExtractor.ExtractEducation(text)
	}()
	go func() {
		defer wg.Done()
		skills = p.skillExtractor.Extract(text)
	}()
	go func() {
		defer wg.Done()
		experience = p.sectionExtractor.ExtractExperience(text)
		totalYears = p.sectionExtractor.CalculateExperienceYears(text)
	}()
	wg.Wait()

	preview := text
	if len(preview) > rawTextPreviewLen {
		preview = preview[:rawTextPreviewLen] + "..."
	}

	return models.ParsedResume{
		ContactInfo: contact,
		Education:   education,
		Skills:      skills,
		Experience: models.Experience{
			Details:    experience,
			TotalYears: totalYears,
		},
		RawText: preview,
	}
}

// ParseFile extracts text from a file on disk and parses it, returning the
// parsed record alongside the full normalized text for scoring. An
// unsupported extension surfaces as ErrUnsupportedFormat; a supported file
// with nothing to extract surfaces as ErrNoText.
func (p *ResumeParser) ParseFile(path string) (models.ParsedResume, string, error) {
	text, err := p.textExtractor.ExtractFromFile(path)
	if err != nil {
		return models.ParsedResume{}, "", err
	}
	if text == "" {
		return models.ParsedResume{}, "", ErrNoText
	}
	return p.Parse(text), text, nil
}

// ParseUpload extracts text from an in-memory upload and parses it.
func (p *ResumeParser) ParseUpload(filename string, data []byte) (models.ParsedResume, string, error) {
	text, err := p.textExtractor.ExtractFromUpload(filename, data)
	if err != nil {
		return models.ParsedResume{}, "", err
	}
	if text == "" {
		return models.ParsedResume{}, "", ErrNoText
	}
	return p.Parse(text), text, nil
}
