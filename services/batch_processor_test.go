package services

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
)

func writeBatchFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const batchStrong = `John Doe
john.doe@email.com
(555) 123-4567
linkedin.com/in/johndoe

SKILLS
Python, Java, Docker, Kubernetes, SQL

EXPERIENCE
Software Engineer at Google
2018 - 2023
- Developed services handling millions of requests
- Improved latency by 40%
`

const batchWeak = `Resume

worked at a company for a while
`

func TestBatchProcessor_ProcessFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeBatchFile(t, dir, "strong.txt", batchStrong)
	weak := writeBatchFile(t, dir, "weak.txt", batchWeak)
	bad := writeBatchFile(t, dir, "program.exe", "binary junk")

	processor := NewBatchProcessor(parsers.NewResumeParser(), NewATSScorer())
	summary, err := processor.ProcessFiles([]string{weak, good, bad})

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Rows, 3)

	// Successful rows first, best score first; failures trail.
	assert.Equal(t, good, summary.Rows[0].Filename)
	assert.True(t, summary.Rows[0].Success)
	assert.GreaterOrEqual(t, summary.Rows[0].ATSScore, summary.Rows[1].ATSScore)
	assert.False(t, summary.Rows[2].Success)
	assert.Equal(t, bad, summary.Rows[2].Filename)
	assert.NotEmpty(t, summary.Rows[2].Error)

	assert.True(t, summary.Rows[0].HasEmail)
	assert.True(t, summary.Rows[0].HasPhone)
	assert.Greater(t, summary.AvgScore, 0.0)
}

func TestBatchProcessor_RejectsOversizedBatch(t *testing.T) {
	processor := NewBatchProcessor(parsers.NewResumeParser(), NewATSScorer())

	paths := make([]string, MaxBatchSize+1)
	for i := range paths {
		paths[i] = "resume.txt"
	}

	_, err := processor.ProcessFiles(paths)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch too large")
}

func TestBatchProcessor_WriteCSV(t *testing.T) {
	processor := NewBatchProcessor(parsers.NewResumeParser(), NewATSScorer())
	summary := BatchSummary{
		Total:      2,
		Successful: 1,
		Failed:     1,
		Rows: []BatchRow{
			{Filename: "a.txt", Success: true, ATSScore: 72.5, Rating: "Good", SkillsCount: 5, ExperienceYears: 3, HasEmail: true},
			{Filename: "b.exe", Error: "unsupported file format"},
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, processor.WriteCSV(&buf, summary))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2) // header plus the one successful row
	assert.Equal(t, "filename,ats_score,rating,skills_count,experience_years,has_email,has_phone,has_linkedin", lines[0])
	assert.Equal(t, "a.txt,72.5,Good,5,3,Yes,No,No", lines[1])
}

func TestBatchProcessor_WriteJSON(t *testing.T) {
	processor := NewBatchProcessor(parsers.NewResumeParser(), NewATSScorer())
	summary := BatchSummary{
		Total:      1,
		Successful: 1,
		AvgScore:   80,
		Rows:       []BatchRow{{Filename: "a.txt", Success: true, ATSScore: 80, Rating: "Good"}},
	}

	var buf bytes.Buffer
	assert.NoError(t, processor.WriteJSON(&buf, summary))

	var decoded BatchSummary
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, summary.Total, decoded.Total)
	assert.Equal(t, summary.Rows[0].Filename, decoded.Rows[0].Filename)
}

func TestBatchProcessor_WriteXLSX(t *testing.T) {
	processor := NewBatchProcessor(parsers.NewResumeParser(), NewATSScorer())
	summary := BatchSummary{
		Total:      1,
		Successful: 1,
		Rows:       []BatchRow{{Filename: "a.txt", Success: true, ATSScore: 65, Rating: "Average"}},
	}

	var buf bytes.Buffer
	assert.NoError(t, processor.WriteXLSX(&buf, summary))
	assert.NotZero(t, buf.Len())
}
