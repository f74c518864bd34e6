package api

import "time"

type UploadResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"could not extract text"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type NotesPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type FlashcardPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuizQuestionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type ArtifactsPayload struct {
	Summary    string                `json:"summary,omitempty"`
	Notes      *NotesPayload         `json:"notes,omitempty"`
	Flashcards []FlashcardPayload    `json:"flashcards,omitempty"`
	Quiz       []QuizQuestionPayload `json:"quiz,omitempty"`
}

type DocumentResponse struct {
	Id         string            `json:"id" example:"doc_cz109"`
	FileName   string            `json:"file_name,omitempty"`
	FileType   string            `json:"file_type"`
	Status     string            `json:"status" example:"processing"`
	Artifacts  *ArtifactsPayload `json:"artifacts,omitempty"`
	Error      *OutgoingError    `json:"error,omitempty"`
	UploadedAt time.Time         `json:"uploaded_at"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
}

type QuizResponse struct {
	DocumentId string                `json:"document_id"`
	Quiz       []QuizQuestionPayload `json:"quiz"`
}

// requests---------------------

type UploadYouTubeRequest struct {
	YouTubeURL string `json:"youtube_url" validate:"required"`
}

type RegenerateQuizRequest struct {
	Count int `json:"count,omitempty"`
}

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
}

type ChatResponse struct {
	DocumentId string `json:"document_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}
