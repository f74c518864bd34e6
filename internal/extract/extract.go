package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lu4p/cat"
	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/pkg/logger_i"
)

// ErrNoText means the binary held no extractable text (scanned image pdf,
// docx with no text layer). The upload must be rejected before a document
// record exists, otherwise the client would poll a job that can never run.
var ErrNoText = errors.New("could not extract text from document")

var logger = logger_i.NewLogger("Extractor")

// FileTypeForName maps an uploaded filename to a supported file type.
func FileTypeForName(name string) (docModel.FileType, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return docModel.FileTypePDF, true
	case ".docx":
		return docModel.FileTypeDOCX, true
	default:
		return "", false
	}
}

// FromFile pulls plain text out of a stored binary and truncates it to the
// generation input budget. Returns ErrNoText on empty or whitespace-only
// output.
func FromFile(path string, fileType docModel.FileType) (string, error) {
	var text string
	var err error

	switch fileType {
	case docModel.FileTypePDF:
		text, err = extractPDF(path)
	case docModel.FileTypeDOCX:
		text, err = extractDocx(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return Truncate(text), nil
}

// Truncate bounds generator input cost. The marker tells downstream
// consumers (and the model) that content was cut.
func Truncate(text string) string {
	if len(text) <= config.MaxExtractedChars {
		return text
	}
	return text[:config.MaxExtractedChars] + config.TruncationMarker
}

// extractDocx reads a .docx (cat also handles .odt, .rtf and plaintext)
// and returns the content as a single string.
func extractDocx(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc", "error", err)
		return "", fmt.Errorf("failed to extract docx: %w", err)
	}
	return text, nil
}
