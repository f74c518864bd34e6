package extract

import (
	"strings"
	"testing"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/domain/docModel"
)

func TestFileTypeForName(t *testing.T) {
	tests := []struct {
		name      string
		expected  docModel.FileType
		supported bool
	}{
		{"lecture.pdf", docModel.FileTypePDF, true},
		{"NOTES.PDF", docModel.FileTypePDF, true},
		{"essay.docx", docModel.FileTypeDOCX, true},
		{"ESSAY.DOCX", docModel.FileTypeDOCX, true},
		{"image.png", "", false},
		{"archive.zip", "", false},
		{"noextension", "", false},
	}

	for _, tt := range tests {
		got, ok := FileTypeForName(tt.name)
		if got != tt.expected || ok != tt.supported {
			t.Errorf("FileTypeForName(%s) = (%v, %v); want (%v, %v)",
				tt.name, got, ok, tt.expected, tt.supported)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Run("Short text untouched", func(t *testing.T) {
		if got := Truncate("short"); got != "short" {
			t.Errorf("Short text was modified: %q", got)
		}
	})

	t.Run("Exactly at the limit untouched", func(t *testing.T) {
		text := strings.Repeat("a", config.MaxExtractedChars)
		if got := Truncate(text); got != text {
			t.Error("Text at the limit must not be truncated")
		}
	})

	t.Run("Over the limit gets cut with marker", func(t *testing.T) {
		text := strings.Repeat("a", config.MaxExtractedChars+500)
		got := Truncate(text)

		if !strings.HasSuffix(got, config.TruncationMarker) {
			t.Error("Truncated text missing marker")
		}
		if len(got) != config.MaxExtractedChars+len(config.TruncationMarker) {
			t.Errorf("Truncated length %d, want %d",
				len(got), config.MaxExtractedChars+len(config.TruncationMarker))
		}
	})
}

func TestFromFile_UnsupportedType(t *testing.T) {
	if _, err := FromFile("anywhere", docModel.FileTypeYouTube); err == nil {
		t.Error("Expected error for unsupported file type")
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	if _, err := FromFile("/nonexistent/file.pdf", docModel.FileTypePDF); err == nil {
		t.Error("Expected error for missing file")
	}
}
