package parsers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

// ErrUnsupportedFormat is returned for file extensions outside txt/pdf/docx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var (
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	punctuationRegex = regexp.MustCompile(`[^\w\s@.,:()/-]`)
)

// TextExtractor converts resume documents into a single normalized text blob.
// Extraction failures inside a supported format degrade to an empty result;
// only an unsupported extension is reported as an error.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractFromFile reads a resume file and returns its normalized text.
// Empty text with a nil error means the file was supported but nothing
// could be extracted; callers must treat that as "nothing to analyze".
func (e *TextExtractor) ExtractFromFile(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			utils.LogError("failed to read text file", err, path)
			return "", nil
		}
		return CleanText(string(content)), nil
	case ".pdf":
		return e.extractPDF(path), nil
	case ".docx":
		return e.extractDocx(path), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ExtractFromUpload handles an in-memory upload. Binary formats are
// round-tripped through a uniquely named temp file that is removed on
// every exit path.
func (e *TextExtractor) ExtractFromUpload(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".txt" {
		return CleanText(string(data)), nil
	}
	if ext != ".pdf" && ext != ".docx" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("resume-%s%s", uuid.NewString(), ext))
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		utils.LogError("failed to write temp upload", err, tempPath)
		return "", nil
	}
	defer os.Remove(tempPath)

	return e.ExtractFromFile(tempPath)
}

// extractPDF pulls text page by page in page order. Pages that yield no
// extractable text (scanned images) contribute nothing.
func (e *TextExtractor) extractPDF(path string) string {
	f, reader, err := pdf.Open(path)
	if err != nil {
		utils.LogError("failed to open pdf", err, path)
		return ""
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return CleanText(sb.String())
}

// extractDocx pulls text paragraph by paragraph in document order.
func (e *TextExtractor) extractDocx(path string) string {
	doc, err := document.Open(path)
	if err != nil {
		utils.LogError("failed to open docx", err, path)
		return ""
	}

	var paragraphs []string
	for _, para := range doc.Paragraphs() {
		var sb strings.Builder
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		paragraphs = append(paragraphs, sb.String())
	}
	return CleanText(strings.Join(paragraphs, "\n"))
}

// CleanText normalizes extracted text: whitespace runs collapse to a single
// space, characters outside word chars, whitespace and @.,:()-/ are
// stripped, and the result is trimmed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRegex.ReplaceAllString(text, " ")
	text = punctuationRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
