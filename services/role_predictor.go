package services

import (
	"sort"
	"strings"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// RolePredictor guesses the most likely job roles for a resume.
// Implementations may be rule based or model backed.
type RolePredictor interface {
	Predict(resumeText string) []models.RolePrediction
}

// roleProfiles maps each role to the keywords that characterize it.
var roleProfiles = map[string][]string{
	"Software Developer":   {"python", "java", "javascript", "react", "node.js", "backend", "frontend", "api"},
	"Data Scientist":       {"machine learning", "deep learning", "tensorflow", "pytorch", "pandas", "numpy", "statistics", "data analysis"},
	"Web Developer":        {"html", "css", "javascript", "react", "angular", "vue", "responsive", "ui/ux"},
	"DevOps Engineer":      {"docker", "kubernetes", "jenkins", "aws", "azure", "ci/cd", "terraform", "linux"},
	"Mobile Developer":     {"android", "ios", "swift", "kotlin", "react native", "flutter", "mobile app"},
	"Data Analyst":         {"excel", "sql", "tableau", "power bi", "data visualization", "analytics", "reporting"},
	"ML Engineer":          {"machine learning", "tensorflow", "pytorch", "neural networks", "nlp", "computer vision", "deep learning"},
	"Full Stack Developer": {"frontend", "backend", "full stack", "react", "node.js", "mongodb", "sql", "api"},
}

// KeywordRolePredictor scores each known role by how many of its
// profile keywords appear in the resume, then normalizes the counts
// into confidence percentages.
type KeywordRolePredictor struct {
	profiles map[string][]string
	topN     int
}

func NewKeywordRolePredictor() *KeywordRolePredictor {
	return &KeywordRolePredictor{profiles: roleProfiles, topN: 3}
}

func (p *KeywordRolePredictor) Predict(resumeText string) []models.RolePrediction {
	lower := strings.ToLower(resumeText)

	scores := make(map[string]int, len(p.profiles))
	total := 0
	for role, keywords := range p.profiles {
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		scores[role] = hits
		total += hits
	}

	predictions := make([]models.RolePrediction, 0, len(scores))
	for role, hits := range scores {
		confidence := 0.0
		if total > 0 {
			confidence = float64(hits) / float64(total) * 100
		}
		predictions = append(predictions, models.RolePrediction{
			Role:       role,
			Confidence: confidence,
		})
	}

	// Sort by confidence, breaking ties alphabetically so output is
	// stable across runs.
	sort.Slice(predictions, func(i, j int) bool {
		if predictions[i].Confidence != predictions[j].Confidence {
			return predictions[i].Confidence > predictions[j].Confidence
		}
		return predictions[i].Role < predictions[j].Role
	})

	if len(predictions) > p.topN {
		predictions = predictions[:p.topN]
	}
	return predictions
}
