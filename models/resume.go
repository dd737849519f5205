package models

// ContactInfo holds contact details extracted from a resume. Every field
// except Name may be empty when no match was found; Name always carries a
// value, falling back to the "Name not found" sentinel.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Links Links  `json:"links"`
}

// NameNotFound is the sentinel used when no candidate name could be located.
const NameNotFound = "Name not found"

// Links holds profile and portfolio URLs found anywhere in the resume text.
type Links struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// EducationEntry represents one degree found in the resume. Year and
// Institution fall back to "N/A" when the surrounding context yields nothing.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Institution string `json:"institution"`
}

// ExperienceEntry represents one job title match. Company and Duration fall
// back to "N/A".
type ExperienceEntry struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// Experience aggregates the extracted positions and the coarse
// max-year-minus-min-year estimate of total experience.
type Experience struct {
	Details    []ExperienceEntry `json:"details"`
	TotalYears int               `json:"total_years"`
}

// SkillSet classifies recognized vocabulary into technical and soft skills.
// Both slices are title-cased, alphabetically sorted and duplicate-free;
// TotalCount is always len(Technical)+len(Soft).
type SkillSet struct {
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
	TotalCount int      `json:"total_count"`
}

// ParsedResume is the structured record produced by the parsing pipeline.
// It is immutable once constructed and is the sole artifact handed to the
// scorer, comparator and advisor. RawText keeps only the first 500
// characters of the normalized text as a preview.
type ParsedResume struct {
	ContactInfo ContactInfo      `json:"contact_info"`
	Education   []EducationEntry `json:"education"`
	Skills      SkillSet         `json:"skills"`
	Experience  Experience       `json:"experience"`
	RawText     string           `json:"raw_text"`
}
