package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/studykit/studykit/internal/adapter"
	"github.com/studykit/studykit/internal/adapter/utils"
	"github.com/studykit/studykit/internal/api"
	"github.com/studykit/studykit/internal/chat"
	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/extract"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// UploadDocumentHandler godoc
// @Summary      Upload a document or YouTube link
// @Description  Accepts a PDF/DOCX file via multipart/form-data or a YouTube URL as JSON. Validates and extracts text synchronously, then queues study-aid generation and returns the document id for polling.
// @Tags         Documents
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        document     formData  file  false  "The PDF or DOCX file to upload (max 10MB)"
// @Param        request      body      api.UploadYouTubeRequest  false  "YouTube URL (JSON body alternative)"
// @Success      202  {object}  api.UploadResponse    "Accepted - generation queued"
// @Failure      400  {object}  api.DocumentResponse  "Unsupported type, empty text, or file too large"
// @Router       /documents [post]
func UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		uploadYouTube(w, r)
		return
	}
	uploadFile(w, r)
}

func uploadYouTube(w http.ResponseWriter, r *http.Request) {
	var requestData api.UploadYouTubeRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || !isYouTubeURL(requestData.YouTubeURL) {
		logRH.Warn("Bad YouTube upload: ", "error:", err, "url:", requestData.YouTubeURL)
		WriteErrorResponse(w, http.StatusBadRequest, "", "a valid youtube_url is required")
		return
	}

	traceId := r.Context().Value(config.TRACE_ID_KEY).(string)
	doc := docModel.Document{
		Id:         utils.GetNewUUID(),
		FileName:   requestData.YouTubeURL,
		FileType:   docModel.FileTypeYouTube,
		Status:     docModel.StatusProcessing,
		SourceURL:  requestData.YouTubeURL,
		UploadedAt: time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := handlerInstance.service.DocStore.SaveDocument(r.Context(), doc); err != nil {
		logRH.Error("Failed to save document", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Storage error")
		return
	}

	EnqueuePipelineJob(docModel.PipelineJob{
		DocId:    doc.Id,
		FileName: doc.FileName,
		TraceId:  traceId,
		FileType: docModel.FileTypeYouTube,
		MediaURL: requestData.YouTubeURL,
	})
	writeJsonResponse(w, http.StatusAccepted, adapter.ToUploadResponse(doc.Id))
}

func uploadFile(w http.ResponseWriter, r *http.Request) {
	// ParseMultipartForm alone only caps in-memory buffering; the reader
	// cap is what actually rejects oversized bodies.
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	fileType, supported := extract.FileTypeForName(fileMetadata.Filename)
	if !supported {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Unsupported file type, expected pdf or docx")
		return
	}

	blobKey, err := handlerInstance.blobs.Put(fileMetadata.Filename, fileReader)
	if err != nil {
		logRH.Error("Failed to store upload", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Storage error")
		return
	}

	// Extraction is synchronous: a document whose text cannot be read is
	// rejected here, before any document record exists.
	text, err := extract.FromFile(handlerInstance.blobs.Path(blobKey), fileType)
	if err != nil {
		if delErr := handlerInstance.blobs.Delete(blobKey); delErr != nil {
			logRH.Error("Failed to clean up rejected upload", "error", delErr)
		}
		if errors.Is(err, extract.ErrNoText) {
			WriteErrorResponse(w, http.StatusBadRequest, "", "could not extract text")
			return
		}
		logRH.Error("Extraction failed", "file", fileMetadata.Filename, "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "could not extract text")
		return
	}

	traceId := r.Context().Value(config.TRACE_ID_KEY).(string)
	doc := docModel.Document{
		Id:         utils.GetNewUUID(),
		FileName:   fileMetadata.Filename,
		FileType:   fileType,
		Status:     docModel.StatusProcessing,
		BlobKey:    blobKey,
		UploadedAt: time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := handlerInstance.service.DocStore.SaveDocument(r.Context(), doc); err != nil {
		logRH.Error("Failed to save document", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Storage error")
		return
	}
	if err := handlerInstance.service.ArtifactStore.SaveText(r.Context(), doc.Id, text); err != nil {
		logRH.Error("Failed to save extracted text", "docId", doc.Id, "error", err)
	}

	EnqueuePipelineJob(docModel.PipelineJob{
		DocId:    doc.Id,
		FileName: doc.FileName,
		TraceId:  traceId,
		FileType: fileType,
		Text:     text,
	})
	writeJsonResponse(w, http.StatusAccepted, adapter.ToUploadResponse(doc.Id))
}

// GetStatusHandler godoc
// @Summary      Get document status and study aids
// @Description  Returns the document's processing status plus whatever study aids have been generated so far.
// @Tags         Documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  api.DocumentResponse  "Current status and artifacts"
// @Failure      404  {object}  api.DocumentResponse  "Document not found"
// @Router       /documents/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")
	logRH.Debug("Get Status Request:", "URL path", r.URL.Path)

	doc, artifacts, found := GetDocument(idString, r.Context().Value(config.TRACE_ID_KEY).(string))
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Document not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentResponse(doc, artifacts))
}

// RegenerateQuizHandler godoc
// @Summary      Regenerate the quiz
// @Description  Replaces the document's quiz with freshly generated questions, using prior questions as an anti-duplication hint.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true   "Document ID"
// @Param        request  body      api.RegenerateQuizRequest  false  "Optional question count"
// @Success      200  {object}  api.QuizResponse      "The new quiz"
// @Failure      404  {object}  api.DocumentResponse  "Document not found"
// @Failure      500  {object}  api.DocumentResponse  "Generation failed, prior quiz kept"
// @Router       /documents/{id}/quiz [post]
func RegenerateQuizHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")

	var requestData api.RegenerateQuizRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil && !errors.Is(err, io.EOF) {
		WriteErrorResponse(w, http.StatusBadRequest, idString, "Bad Request")
		return
	}

	questions, err := handlerInstance.pipeline.RegenerateQuiz(r.Context(), idString, requestData.Count)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Document not found")
			return
		}
		logRH.Error("Quiz regeneration failed", "docId", idString, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, idString, "Quiz regeneration failed")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.QuizResponse{
		DocumentId: idString,
		Quiz:       adapter.ToQuizPayloads(questions),
	})
}

// ChatHandler godoc
// @Summary      Ask a question about a document
// @Description  Answers a question using only the document's indexed content.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "Document ID"
// @Param        request  body      api.ChatRequest  true  "The question"
// @Success      200  {object}  api.ChatResponse      "The answer"
// @Failure      404  {object}  api.DocumentResponse  "Document not found or not indexed"
// @Failure      503  {object}  api.DocumentResponse  "Chat stack offline"
// @Router       /documents/{id}/chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")

	if handlerInstance.chat == nil {
		WriteErrorResponse(w, http.StatusServiceUnavailable, idString, "Chat is not available")
		return
	}

	var requestData api.ChatRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || strings.TrimSpace(requestData.Question) == "" {
		logRH.Warn("Bad Chat Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, idString, "question is required")
		return
	}

	if _, _, found := GetDocument(idString, r.Context().Value(config.TRACE_ID_KEY).(string)); !found {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Document not found")
		return
	}

	answer, err := handlerInstance.chat.Ask(r.Context(), idString, requestData.Question)
	if err != nil {
		if errors.Is(err, chat.ErrNoContext) {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Document has no indexed content")
			return
		}
		logRH.Error("Chat failed", "docId", idString, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, idString, "Could not answer the question")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.ChatResponse{
		DocumentId: idString,
		Question:   requestData.Question,
		Answer:     answer,
	})
}

// DeleteDocumentHandler godoc
// @Summary      Delete a document
// @Description  Removes the document record, its study aids, the stored file, and its chat index.
// @Tags         Documents
// @Produce      json
// @Param        id   path  string  true  "Document ID"
// @Success      204  "Deleted"
// @Failure      404  {object}  api.DocumentResponse  "Document not found"
// @Router       /documents/{id} [delete]
func DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")

	doc, found := handlerInstance.service.DocStore.GetDocument(r.Context(), idString)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Document not found")
		return
	}

	handlerInstance.service.DocStore.DeleteDocument(r.Context(), idString)
	if err := handlerInstance.service.ArtifactStore.DeleteAll(r.Context(), idString); err != nil {
		logRH.Error("Failed to delete artifacts", "docId", idString, "error", err)
	}
	if doc.BlobKey != "" {
		if err := handlerInstance.blobs.Delete(doc.BlobKey); err != nil {
			logRH.Error("Failed to delete blob", "docId", idString, "error", err)
		}
	}
	if handlerInstance.chat != nil {
		if err := handlerInstance.chat.RemoveDocument(r.Context(), idString); err != nil {
			logRH.Error("Failed to delete chat index", "docId", idString, "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body :", err)
	}
}
