package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/services"
	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

// AnalyzeHandler runs the full analysis pipeline for uploaded resumes.
type AnalyzeHandler struct {
	parser    *parsers.ResumeParser
	scorer    *services.ATSScorer
	matcher   *services.JobMatcher
	improver  *services.ResumeImprover
	predictor services.RolePredictor
	weights   services.ScoreWeights
}

func NewAnalyzeHandler(parser *parsers.ResumeParser, scorer *services.ATSScorer, weights services.ScoreWeights) *AnalyzeHandler {
	return &AnalyzeHandler{
		parser:    parser,
		scorer:    scorer,
		matcher:   services.NewJobMatcher(),
		improver:  services.NewResumeImprover(),
		predictor: services.NewKeywordRolePredictor(),
		weights:   weights,
	}
}

// AnalysisResponse bundles everything the analyze endpoint returns.
type AnalysisResponse struct {
	Parsed      models.ParsedResume     `json:"parsed"`
	ATS         models.ATSResult        `json:"ats"`
	JobMatch    *models.JobMatchResult  `json:"job_match,omitempty"`
	Suggestions models.SuggestionSet    `json:"suggestions"`
	TopRoles    []models.RolePrediction `json:"top_roles"`
}

// Analyze handles POST /api/analyze. The resume arrives as a
// multipart file; an optional job_description form field enables the
// match scoring.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "Could not get resume file", err)
		return
	}
	defer file.Close()

	jobDescription := c.PostForm("job_description")

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Failed to read upload", err)
		return
	}

	parsed, text, err := h.parser.ParseUpload(header.Filename, data)
	if err != nil {
		if errors.Is(err, parsers.ErrUnsupportedFormat) {
			utils.UnsupportedMediaError(c, err)
		} else {
			utils.BadRequestError(c, "Could not extract text from file", err)
		}
		return
	}

	resp := h.analyze(parsed, text, jobDescription)

	utils.LogInfo("resume analyzed", map[string]interface{}{
		"filename": header.Filename,
		"score":    resp.ATS.Score,
	})
	utils.SuccessResponse(c, http.StatusOK, "Resume analyzed", resp)
}

// AnalyzeText handles POST /api/analyze/text for clients that already
// hold plain text.
func (h *AnalyzeHandler) AnalyzeText(c *gin.Context) {
	var req struct {
		ResumeText     string `json:"resume_text" binding:"required"`
		JobDescription string `json:"job_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	parsed := h.parser.Parse(req.ResumeText)
	resp := h.analyze(parsed, req.ResumeText, req.JobDescription)
	utils.SuccessResponse(c, http.StatusOK, "Resume analyzed", resp)
}

func (h *AnalyzeHandler) analyze(parsed models.ParsedResume, text, jobDescription string) AnalysisResponse {
	resp := AnalysisResponse{
		Parsed:      parsed,
		ATS:         h.scorer.ScoreWithWeights(text, jobDescription, h.weights),
		Suggestions: h.improver.AnalyzeAndSuggest(parsed, text),
		TopRoles:    h.predictor.Predict(text),
	}
	if jobDescription != "" {
		match := h.matcher.Match(text, jobDescription)
		resp.JobMatch = &match
	}
	return resp
}

// Match handles POST /api/match with resume and job description text.
func (h *AnalyzeHandler) Match(c *gin.Context) {
	var req struct {
		ResumeText     string `json:"resume_text" binding:"required"`
		JobDescription string `json:"job_description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	match := h.matcher.Match(req.ResumeText, req.JobDescription)
	utils.SuccessResponse(c, http.StatusOK, "Match computed", match)
}

// PredictRole handles POST /api/predict-role.
func (h *AnalyzeHandler) PredictRole(c *gin.Context) {
	var req struct {
		ResumeText string `json:"resume_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Roles predicted", h.predictor.Predict(req.ResumeText))
}

// Compare handles POST /api/compare with multiple resume files.
func (h *AnalyzeHandler) Compare(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestError(c, "Could not read multipart form", err)
		return
	}

	files := form.File["resumes"]
	if len(files) < 2 {
		utils.BadRequestError(c, "At least two resumes are required", nil)
		return
	}

	comparator := services.NewResumeComparator()
	var names []string
	var resumes []models.ParsedResume
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			utils.BadRequestError(c, "Could not open "+header.Filename, err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			utils.InternalServerError(c, "Failed to read "+header.Filename, err)
			return
		}
		parsed, _, err := h.parser.ParseUpload(header.Filename, data)
		if err != nil {
			utils.BadRequestError(c, "Could not parse "+header.Filename, err)
			return
		}
		names = append(names, header.Filename)
		resumes = append(resumes, parsed)
	}

	entries := comparator.Compare(names, resumes)
	utils.SuccessResponse(c, http.StatusOK, "Resumes compared", gin.H{
		"ranking": entries,
		"report":  comparator.GenerateReport(entries),
	})
}
