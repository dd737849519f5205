package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/services"
	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

// ExportHandler turns analysis results into downloadable documents.
type ExportHandler struct {
	parser   *parsers.ResumeParser
	scorer   *services.ATSScorer
	matcher  *services.JobMatcher
	improver *services.ResumeImprover
	reports  *services.ReportService
}

func NewExportHandler(parser *parsers.ResumeParser, scorer *services.ATSScorer) *ExportHandler {
	return &ExportHandler{
		parser:   parser,
		scorer:   scorer,
		matcher:  services.NewJobMatcher(),
		improver: services.NewResumeImprover(),
		reports:  services.NewReportService(),
	}
}

func (h *ExportHandler) runAnalysis(c *gin.Context) (models.ParsedResume, string, models.ATSResult, *models.JobMatchResult, bool) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "Could not get resume file", err)
		return models.ParsedResume{}, "", models.ATSResult{}, nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Failed to read upload", err)
		return models.ParsedResume{}, "", models.ATSResult{}, nil, false
	}

	parsed, text, err := h.parser.ParseUpload(header.Filename, data)
	if err != nil {
		utils.BadRequestError(c, "Could not extract text from file", err)
		return models.ParsedResume{}, "", models.ATSResult{}, nil, false
	}

	jobDescription := c.PostForm("job_description")
	ats := h.scorer.Score(text, jobDescription)

	var jobMatch *models.JobMatchResult
	if jobDescription != "" {
		match := h.matcher.Match(text, jobDescription)
		jobMatch = &match
	}
	return parsed, text, ats, jobMatch, true
}

// Report handles POST /api/export/report. The format query parameter
// picks text (default), email, plan, json or docx output.
func (h *ExportHandler) Report(c *gin.Context) {
	parsed, text, ats, jobMatch, ok := h.runAnalysis(c)
	if !ok {
		return
	}

	switch c.DefaultQuery("format", "text") {
	case "text":
		report := h.reports.GenerateAnalysisReport(parsed, ats, jobMatch)
		c.Header("Content-Disposition", `attachment; filename="resume_analysis.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))

	case "email":
		report := h.reports.GenerateEmailReport(parsed, ats, jobMatch)
		c.Header("Content-Disposition", `attachment; filename="resume_analysis_email.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))

	case "plan":
		suggestions := h.improver.AnalyzeAndSuggest(parsed, text)
		plan := h.improver.GenerateImprovementPlan(suggestions)
		c.Header("Content-Disposition", `attachment; filename="resume_improvement_plan.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(plan))

	case "json":
		utils.SuccessResponse(c, http.StatusOK, "Analysis", gin.H{
			"parsed":    parsed,
			"ats":       ats,
			"job_match": jobMatch,
		})

	case "docx":
		tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("report-%s.docx", uuid.NewString()))
		if err := utils.GenerateDocxReport(parsed, ats, jobMatch, tmpPath); err != nil {
			utils.InternalServerError(c, "Failed to generate document", err)
			return
		}
		defer os.Remove(tmpPath)
		c.FileAttachment(tmpPath, "resume_analysis.docx")

	default:
		utils.BadRequestError(c, "Unknown format, expected text, email, plan, json or docx", nil)
	}
}
