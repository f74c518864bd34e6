package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/data/store"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/handlers"
	"github.com/studykit/studykit/internal/job"
)

func initHandlers(t *testing.T) {
	t.Helper()
	jobService := job.InitJobService(job.ServiceConfig{
		JobChannel:        make(chan docModel.PipelineJob, 4),
		DispatcherChannel: make(chan bool, 4),
		DocStore:          store.InitInMemoryDocStore(),
		ArtifactStore:     store.InitInMemoryArtifactStore(),
	})
	handlers.InitDocHandler(handlers.HandlerConfig{JobService: jobService})
}

func multipartUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing part failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/documents", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, "test-trace")
	return req.WithContext(ctx)
}

func TestUploadDocumentHandler_RejectsOversizedFile(t *testing.T) {
	initHandlers(t)

	oversized := bytes.Repeat([]byte("a"), config.MaxUploadSize+1024)
	req := multipartUpload(t, "lecture.pdf", oversized)
	recorder := httptest.NewRecorder()

	handlers.UploadDocumentHandler(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized upload, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "too large") {
		t.Errorf("expected size rejection message, got %q", recorder.Body.String())
	}
}

func TestUploadDocumentHandler_RejectsUnsupportedType(t *testing.T) {
	initHandlers(t)

	req := multipartUpload(t, "lecture.zip", []byte("not a study document"))
	recorder := httptest.NewRecorder()

	handlers.UploadDocumentHandler(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported type, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Unsupported file type") {
		t.Errorf("expected unsupported-type message, got %q", recorder.Body.String())
	}
}
