package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/services"
)

const testResume = `John Doe
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

EDUCATION
B.Tech in Computer Science
XYZ University, 2018
`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAnalyzeHandler(parsers.NewResumeParser(), services.NewATSScorer(), services.DefaultScoreWeights())

	router := gin.New()
	api := router.Group("/api")
	api.POST("/analyze", handler.Analyze)
	api.POST("/analyze/text", handler.AnalyzeText)
	api.POST("/match", handler.Match)
	api.POST("/predict-role", handler.PredictRole)
	api.POST("/compare", handler.Compare)
	return router
}

func multipartUpload(t *testing.T, field string, files map[string]string, extraFields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	for key, value := range extraFields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, writer.FormDataContentType()
}

func TestAnalyzeEndpoint_TxtUpload(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartUpload(t, "resume", map[string]string{"resume.txt": testResume}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    AnalysisResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "john.doe@email.com", resp.Data.Parsed.ContactInfo.Email)
	assert.Greater(t, resp.Data.ATS.Score, 0.0)
	assert.Nil(t, resp.Data.JobMatch)
	assert.NotEmpty(t, resp.Data.TopRoles)
}

func TestAnalyzeEndpoint_WithJobDescription(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartUpload(t, "resume",
		map[string]string{"resume.txt": testResume},
		map[string]string{"job_description": "Looking for a python engineer with docker and kubernetes experience"})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data AnalysisResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Data.JobMatch)
	assert.Greater(t, resp.Data.JobMatch.MatchPercent, 0.0)
}

func TestAnalyzeEndpoint_UnsupportedFormat(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartUpload(t, "resume", map[string]string{"resume.exe": "junk"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported file format")
}

func TestAnalyzeEndpoint_MissingFile(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeTextEndpoint(t *testing.T) {
	router := newTestRouter()

	payload, _ := json.Marshal(gin.H{"resume_text": testResume})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data AnalysisResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "John Doe", resp.Data.Parsed.ContactInfo.Name)
}

func TestAnalyzeTextEndpoint_MissingBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchEndpoint(t *testing.T) {
	router := newTestRouter()

	payload, _ := json.Marshal(gin.H{
		"resume_text":     "python developer with docker experience",
		"job_description": "python developer with docker experience",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/match", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "match_percent")
}

func TestCompareEndpoint(t *testing.T) {
	router := newTestRouter()

	second := strings.Replace(testResume, "John Doe", "Jane Roe", 1)
	body, contentType := multipartUpload(t, "resumes", map[string]string{
		"john.txt": testResume,
		"jane.txt": second,
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ranking")
	assert.Contains(t, w.Body.String(), "RESUME COMPARISON REPORT")
}

func TestCompareEndpoint_RequiresTwoFiles(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartUpload(t, "resumes", map[string]string{"only.txt": testResume}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At least two resumes are required")
}
