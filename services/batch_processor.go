package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

// MaxBatchSize limits how many resumes one batch can hold.
const MaxBatchSize = 20

// BatchRow is one resume's outcome within a batch run. Failed rows
// carry only Filename and Error.
type BatchRow struct {
	Filename        string  `json:"filename"`
	Success         bool    `json:"success"`
	Error           string  `json:"error,omitempty"`
	ATSScore        float64 `json:"ats_score"`
	Rating          string  `json:"rating"`
	SkillsCount     int     `json:"skills_count"`
	ExperienceYears int     `json:"experience_years"`
	HasEmail        bool    `json:"has_email"`
	HasPhone        bool    `json:"has_phone"`
	HasLinkedIn     bool    `json:"has_linkedin"`
}

// BatchSummary aggregates a whole run.
type BatchSummary struct {
	Total      int        `json:"total"`
	Successful int        `json:"successful"`
	Failed     int        `json:"failed"`
	AvgScore   float64    `json:"avg_score"`
	Rows       []BatchRow `json:"rows"`
}

// BatchProcessor runs the parse and score pipeline over many files,
// isolating failures so one bad file never sinks the batch.
type BatchProcessor struct {
	parser *parsers.ResumeParser
	scorer *ATSScorer
}

func NewBatchProcessor(parser *parsers.ResumeParser, scorer *ATSScorer) *BatchProcessor {
	return &BatchProcessor{parser: parser, scorer: scorer}
}

// ProcessFiles analyzes each path in order. Successful rows are sorted
// by score descending; failed rows follow in input order.
func (b *BatchProcessor) ProcessFiles(paths []string) (BatchSummary, error) {
	if len(paths) > MaxBatchSize {
		return BatchSummary{}, fmt.Errorf("batch too large: %d files exceeds limit of %d", len(paths), MaxBatchSize)
	}

	var successful, failed []BatchRow
	for _, path := range paths {
		row := b.processOne(path)
		if row.Success {
			successful = append(successful, row)
		} else {
			failed = append(failed, row)
			utils.LogWarn("batch file failed", map[string]interface{}{
				"filename": row.Filename,
				"error":    row.Error,
			})
		}
	}

	sort.SliceStable(successful, func(i, j int) bool {
		return successful[i].ATSScore > successful[j].ATSScore
	})

	summary := BatchSummary{
		Total:      len(paths),
		Successful: len(successful),
		Failed:     len(failed),
		Rows:       append(successful, failed...),
	}
	if len(successful) > 0 {
		var sum float64
		for _, row := range successful {
			sum += row.ATSScore
		}
		summary.AvgScore = sum / float64(len(successful))
	}
	return summary, nil
}

func (b *BatchProcessor) processOne(path string) BatchRow {
	row := BatchRow{Filename: path}

	parsed, text, err := b.parser.ParseFile(path)
	if err != nil {
		row.Error = err.Error()
		return row
	}

	result := b.scorer.Score(text, "")
	row.Success = true
	row.ATSScore = result.Score
	row.Rating = string(result.Rating)
	row.SkillsCount = parsed.Skills.TotalCount
	row.ExperienceYears = parsed.Experience.TotalYears
	row.HasEmail = parsed.ContactInfo.Email != ""
	row.HasPhone = parsed.ContactInfo.Phone != ""
	row.HasLinkedIn = parsed.ContactInfo.Links.LinkedIn != ""
	return row
}

var batchHeader = []string{
	"filename", "ats_score", "rating", "skills_count",
	"experience_years", "has_email", "has_phone", "has_linkedin",
}

func (r BatchRow) record() []string {
	return []string{
		r.Filename,
		strconv.FormatFloat(r.ATSScore, 'f', 1, 64),
		r.Rating,
		strconv.Itoa(r.SkillsCount),
		strconv.Itoa(r.ExperienceYears),
		yesNo(r.HasEmail),
		yesNo(r.HasPhone),
		yesNo(r.HasLinkedIn),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// WriteCSV emits the successful rows as a CSV report.
func (b *BatchProcessor) WriteCSV(w io.Writer, summary BatchSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(batchHeader); err != nil {
		return err
	}
	for _, row := range summary.Rows {
		if !row.Success {
			continue
		}
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON emits the whole summary as indented JSON.
func (b *BatchProcessor) WriteJSON(w io.Writer, summary BatchSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

// WriteXLSX emits the successful rows as an Excel workbook with one
// "Results" sheet.
func (b *BatchProcessor) WriteXLSX(w io.Writer, summary BatchSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, name := range batchHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	rowIdx := 2
	for _, row := range summary.Rows {
		if !row.Success {
			continue
		}
		for col, value := range row.record() {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		rowIdx++
	}

	return f.Write(w)
}
