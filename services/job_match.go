package services

import (
	"math"
	"regexp"
	"strings"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// Common words ignored when reporting missing job-description keywords.
var keywordStopWords = map[string]bool{
	"that": true, "with": true, "from": true, "have": true, "this": true,
	"will": true, "your": true, "about": true, "their": true, "which": true,
	"they": true, "been": true, "were": true, "what": true,
}

// JobMatcher measures resume/job-description similarity with TF-IDF cosine
// similarity and reports job-description keywords the resume is missing.
type JobMatcher struct {
	tokenRegex   *regexp.Regexp
	keywordRegex *regexp.Regexp
}

func NewJobMatcher() *JobMatcher {
	return &JobMatcher{
		tokenRegex:   regexp.MustCompile(`\b\w\w+\b`),
		keywordRegex: regexp.MustCompile(`\b[a-z]{4,}\b`),
	}
}

// MatchPercent returns the cosine similarity between the TF-IDF vectors of
// the lower-cased resume and job description, scaled to 0-100 and rounded
// to 2 decimals. Degenerate inputs (empty vocabulary, zero vectors) yield
// 0 rather than an error.
func (m *JobMatcher) MatchPercent(resumeText, jobDescription string) float64 {
	resumeTokens := m.tokenRegex.FindAllString(strings.ToLower(resumeText), -1)
	jobTokens := m.tokenRegex.FindAllString(strings.ToLower(jobDescription), -1)
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	vocab := make(map[string]int)
	for _, token := range resumeTokens {
		if _, ok := vocab[token]; !ok {
			vocab[token] = len(vocab)
		}
	}
	for _, token := range jobTokens {
		if _, ok := vocab[token]; !ok {
			vocab[token] = len(vocab)
		}
	}

	resumeVec := m.tfidfVector(resumeTokens, jobTokens, vocab)
	jobVec := m.tfidfVector(jobTokens, resumeTokens, vocab)

	similarity := cosineSimilarity(resumeVec, jobVec)
	return math.Round(similarity*100*100) / 100
}

// tfidfVector builds the smoothed TF-IDF vector for doc against a
// two-document corpus (doc and other).
func (m *JobMatcher) tfidfVector(doc, other []string, vocab map[string]int) []float64 {
	counts := make(map[string]int, len(doc))
	for _, token := range doc {
		counts[token]++
	}
	otherSet := make(map[string]bool, len(other))
	for _, token := range other {
		otherSet[token] = true
	}

	vec := make([]float64, len(vocab))
	for token, count := range counts {
		df := 1
		if otherSet[token] {
			df = 2
		}
		// Smooth IDF over the two-document corpus.
		idf := math.Log(float64(1+2)/float64(1+df)) + 1
		vec[vocab[token]] = float64(count) * idf
	}
	return vec
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MissingKeywords returns up to 10 job-description terms (alphabetic,
// >=4 chars) absent from the resume vocabulary and the stop-word set. The
// order is map-iteration order; callers must not assume any ranking.
func (m *JobMatcher) MissingKeywords(resumeText, jobDescription string) []string {
	jobWords := make(map[string]bool)
	for _, word := range m.keywordRegex.FindAllString(strings.ToLower(jobDescription), -1) {
		jobWords[word] = true
	}
	resumeWords := make(map[string]bool)
	for _, word := range m.keywordRegex.FindAllString(strings.ToLower(resumeText), -1) {
		resumeWords[word] = true
	}

	var missing []string
	for word := range jobWords {
		if resumeWords[word] || keywordStopWords[word] {
			continue
		}
		missing = append(missing, word)
		if len(missing) == 10 {
			break
		}
	}
	return missing
}

// Match bundles the similarity percentage and keyword gap into one result.
func (m *JobMatcher) Match(resumeText, jobDescription string) models.JobMatchResult {
	return models.JobMatchResult{
		MatchPercent:    m.MatchPercent(resumeText, jobDescription),
		MissingKeywords: m.MissingKeywords(resumeText, jobDescription),
	}
}
