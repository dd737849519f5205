package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/services"
	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

// HistoryHandler exposes the per-user analysis timeline.
type HistoryHandler struct {
	history *services.HistoryService
	parser  *parsers.ResumeParser
	scorer  *services.ATSScorer
}

func NewHistoryHandler(history *services.HistoryService, parser *parsers.ResumeParser, scorer *services.ATSScorer) *HistoryHandler {
	return &HistoryHandler{history: history, parser: parser, scorer: scorer}
}

// Record handles POST /api/history. It analyzes the uploaded resume and
// appends a snapshot to the user's timeline.
func (h *HistoryHandler) Record(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "Could not get resume file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Failed to read upload", err)
		return
	}

	parsed, text, err := h.parser.ParseUpload(header.Filename, data)
	if err != nil {
		utils.BadRequestError(c, "Could not extract text from file", err)
		return
	}

	versionName := c.PostForm("version_name")
	if versionName == "" {
		versionName = header.Filename
	}

	ats := h.scorer.Score(text, c.PostForm("job_description"))
	snapshot, err := h.history.Record(userID, versionName, header.Filename, parsed, ats)
	if err != nil {
		utils.InternalServerError(c, "Failed to save snapshot", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Snapshot saved", snapshot)
}

func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(int)
	return id, ok
}

// List handles GET /api/history.
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	snapshots, err := h.history.Timeline(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load history", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "History", snapshots)
}

// Progress handles GET /api/history/progress.
func (h *HistoryHandler) Progress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	first, latest, delta, err := h.history.Progress(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to compute progress", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Progress", gin.H{
		"first_score":  first,
		"latest_score": latest,
		"improvement":  delta,
	})
}

// Clear handles DELETE /api/history.
func (h *HistoryHandler) Clear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	if err := h.history.Clear(userID); err != nil {
		utils.InternalServerError(c, "Failed to clear history", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "History cleared", nil)
}
