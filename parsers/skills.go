package parsers

import (
	"encoding/json"
	"fmt"
	"os"
)

// SkillTaxonomy maps a canonical skill name to the surface forms that count
// as a mention of it. Surface forms are matched case-insensitively with
// word boundaries; forms that already carry explicit \b markers are used as
// regular expressions verbatim, which lets short collision-prone names
// (c, r, go, git, ai) demand standalone tokens.
type SkillTaxonomy map[string][]string

// DefaultTechnicalSkills returns the built-in technical skill vocabulary.
func DefaultTechnicalSkills() SkillTaxonomy {
	return SkillTaxonomy{
		// Programming languages
		"python":     {"python"},
		"java":       {"java", "javase", "javaee"},
		"javascript": {"javascript", "js"},
		"c++":        {"c++", "cpp"},
		"c#":         {"c#", "csharp"},
		"c":          {`\bc\b`},
		"ruby":       {"ruby"},
		"php":        {"php"},
		"swift":      {"swift"},
		"kotlin":     {"kotlin"},
		"go":         {`\bgolang\b`, `\bgo\b`},
		"rust":       {"rust"},
		"typescript": {"typescript", "ts"},
		"r":          {`\br\b`},
		"matlab":     {"matlab"},
		"scala":      {"scala"},

		// Web technologies
		"html":      {"html", "html5"},
		"css":       {"css", "css3"},
		"react":     {"react", "reactjs", "react.js"},
		"angular":   {"angular", "angularjs"},
		"vue":       {"vue", "vuejs", "vue.js"},
		"node.js":   {"node.js", "nodejs", "node"},
		"express":   {"express", "expressjs", "express.js"},
		"django":    {"django"},
		"flask":     {"flask"},
		"spring":    {"spring", "spring boot", "springboot"},
		"asp.net":   {"asp.net", "aspnet"},
		"jquery":    {"jquery"},
		"bootstrap": {"bootstrap"},
		"tailwind":  {"tailwind", "tailwindcss"},

		// Databases
		"sql":        {"sql"},
		"mysql":      {"mysql"},
		"postgresql": {"postgresql", "postgres"},
		"mongodb":    {"mongodb", "mongo"},
		"oracle":     {"oracle db", "oracle"},
		"redis":      {"redis"},
		"cassandra":  {"cassandra"},
		"dynamodb":   {"dynamodb"},
		"sqlite":     {"sqlite"},
		"firebase":   {"firebase"},
		"nosql":      {"nosql"},

		// ML / AI
		"machine learning": {"machine learning", "ml"},
		"deep learning":    {"deep learning", "dl"},
		"tensorflow":       {"tensorflow"},
		"pytorch":          {"pytorch"},
		"keras":            {"keras"},
		"scikit-learn":     {"scikit-learn", "sklearn", "scikit learn"},
		"pandas":           {"pandas"},
		"numpy":            {"numpy"},
		"opencv":           {"opencv"},
		"nlp":              {"nlp", "natural language processing"},
		"computer vision":  {"computer vision", "cv"},
		"neural networks":  {"neural networks", "neural network", "nn"},
		"ai":               {"artificial intelligence", `\bai\b`},

		// Cloud & DevOps
		"aws":          {"aws", "amazon web services"},
		"azure":        {"azure", "microsoft azure"},
		"gcp":          {"gcp", "google cloud"},
		"google cloud": {"google cloud platform", "google cloud"},
		"docker":       {"docker"},
		"kubernetes":   {"kubernetes", "k8s"},
		"jenkins":      {"jenkins"},
		"git":          {`\bgit\b`},
		"github":       {"github"},
		"gitlab":       {"gitlab"},
		"ci/cd":        {"ci/cd", "ci cd", "cicd"},
		"terraform":    {"terraform"},
		"ansible":      {"ansible"},

		// Other
		"rest api":        {"rest api", "restful", "rest"},
		"graphql":         {"graphql"},
		"microservices":   {"microservices", "micro services"},
		"agile":           {"agile"},
		"scrum":           {"scrum"},
		"linux":           {"linux"},
		"unix":            {"unix"},
		"bash":            {"bash"},
		"power bi":        {"power bi", "powerbi"},
		"tableau":         {"tableau"},
		"excel":           {"excel", "ms excel"},
		"data structures": {"data structures", "dsa"},
		"algorithms":      {"algorithms", "algo"},
		"oop":             {"oop", "object oriented"},
		"testing":         {"testing", "unit testing"},
	}
}

// DefaultSoftSkills returns the built-in soft skill vocabulary.
func DefaultSoftSkills() SkillTaxonomy {
	return SkillTaxonomy{
		"leadership":          {"leadership", "leader", "leading"},
		"communication":       {"communication", "communicate"},
		"teamwork":            {"teamwork", "team work", "team player"},
		"problem solving":     {"problem solving", "problem-solving"},
		"critical thinking":   {"critical thinking"},
		"time management":     {"time management"},
		"adaptability":        {"adaptability", "adaptable"},
		"collaboration":       {"collaboration", "collaborate"},
		"creativity":          {"creativity", "creative"},
		"analytical":          {"analytical", "analysis"},
		"presentation":        {"presentation"},
		"negotiation":         {"negotiation"},
		"conflict resolution": {"conflict resolution"},
		"decision making":     {"decision making", "decision-making"},
	}
}

// LoadTaxonomy reads a {canonical name -> surface forms} table from a JSON
// file, so the vocabulary can be extended without touching extractor code.
func LoadTaxonomy(path string) (SkillTaxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	var taxonomy SkillTaxonomy
	if err := json.Unmarshal(data, &taxonomy); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}
	return taxonomy, nil
}
