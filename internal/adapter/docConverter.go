package adapter

import (
	"fmt"
	"time"

	"github.com/studykit/studykit/internal/api"
	"github.com/studykit/studykit/internal/domain/docModel"
)

func ToUploadResponse(id string) api.UploadResponse {
	return api.UploadResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("documents/%s", id),
	}
}

func ToDocumentResponse(doc docModel.Document, artifacts docModel.Artifacts) api.DocumentResponse {
	var errorPtr *api.OutgoingError
	if doc.Error != nil {
		errorPtr = &api.OutgoingError{
			Code:    doc.Error.Code,
			Message: doc.Error.Message,
			Retry:   doc.Error.Retry,
		}
	}

	return api.DocumentResponse{
		Id:         doc.Id,
		FileName:   doc.FileName,
		FileType:   string(doc.FileType),
		Status:     string(doc.Status),
		Artifacts:  toArtifactsPayload(artifacts),
		Error:      errorPtr,
		UploadedAt: doc.UploadedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func toArtifactsPayload(artifacts docModel.Artifacts) *api.ArtifactsPayload {
	if artifacts.Summary == nil && artifacts.Notes == nil &&
		len(artifacts.Flashcards) == 0 && len(artifacts.Quiz) == 0 {
		return nil
	}

	payload := &api.ArtifactsPayload{
		Flashcards: toFlashcardPayloads(artifacts.Flashcards),
		Quiz:       ToQuizPayloads(artifacts.Quiz),
	}
	if artifacts.Summary != nil {
		payload.Summary = artifacts.Summary.Content
	}
	if artifacts.Notes != nil {
		payload.Notes = &api.NotesPayload{
			Title:   artifacts.Notes.Title,
			Content: artifacts.Notes.Content,
		}
	}
	return payload
}

func toFlashcardPayloads(cards []docModel.Flashcard) []api.FlashcardPayload {
	if len(cards) == 0 {
		return nil
	}
	out := make([]api.FlashcardPayload, len(cards))
	for i, c := range cards {
		out[i] = api.FlashcardPayload{Question: c.Question, Answer: c.Answer}
	}
	return out
}

func ToQuizPayloads(questions []docModel.QuizQuestion) []api.QuizQuestionPayload {
	if len(questions) == 0 {
		return nil
	}
	out := make([]api.QuizQuestionPayload, len(questions))
	for i, q := range questions {
		out[i] = api.QuizQuestionPayload{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	return out
}

func BadRequest(id string, message string, code int) api.DocumentResponse {
	return api.DocumentResponse{
		Id:         id,
		Status:     "error",
		UploadedAt: time.Time{},
		Error: &api.OutgoingError{
			Code:    code,
			Message: message,
			Retry:   false,
		},
	}
}
