package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/services"
	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

// StorageHandler keeps uploaded resumes in S3 so they can be
// re-analyzed later without re-uploading.
type StorageHandler struct {
	storage *services.S3Service
	parser  *parsers.ResumeParser
	scorer  *services.ATSScorer
}

func NewStorageHandler(storage *services.S3Service, parser *parsers.ResumeParser, scorer *services.ATSScorer) *StorageHandler {
	return &StorageHandler{storage: storage, parser: parser, scorer: scorer}
}

// Upload handles POST /api/storage/resumes.
func (h *StorageHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "Could not get resume file", err)
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.InternalServerError(c, "Failed to save upload", err)
		return
	}
	defer os.Remove(tmpPath)

	key, err := h.storage.UploadResume(tmpPath, file.Filename)
	if err != nil {
		utils.InternalServerError(c, "Failed to store resume", err)
		return
	}

	url, err := h.storage.GeneratePresignedURL(key)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate download link", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume stored", gin.H{
		"key":          key,
		"download_url": url,
	})
}

// AnalyzeStored handles POST /api/storage/analyze with a stored object
// key.
func (h *StorageHandler) AnalyzeStored(c *gin.Context) {
	var req struct {
		Key            string `json:"key" binding:"required"`
		JobDescription string `json:"job_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	tmpPath, err := h.storage.DownloadForAnalysis(req.Key)
	if err != nil {
		utils.NotFoundError(c, "Stored resume not found")
		return
	}
	defer os.Remove(tmpPath)

	parsed, text, err := h.parser.ParseFile(tmpPath)
	if err != nil {
		utils.BadRequestError(c, "Could not extract text from stored resume", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume analyzed", gin.H{
		"parsed": parsed,
		"ats":    h.scorer.Score(text, req.JobDescription),
	})
}

// Delete handles DELETE /api/storage/resumes.
func (h *StorageHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		utils.BadRequestError(c, "Missing key parameter", nil)
		return
	}

	if err := h.storage.DeleteResume(key); err != nil {
		utils.InternalServerError(c, "Failed to delete resume", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Resume deleted", nil)
}
