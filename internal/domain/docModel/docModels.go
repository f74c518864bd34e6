package docModel

import (
	"context"
	"time"
)

type DocStatus string
type FileType string

const (
	StatusProcessing DocStatus = "processing"
	StatusCompleted  DocStatus = "completed"
	StatusFailed     DocStatus = "failed"

	FileTypePDF     FileType = "pdf"
	FileTypeDOCX    FileType = "docx"
	FileTypeYouTube FileType = "youtube"
)

// IsTerminal reports whether a status ends the current upload attempt.
// Terminal statuses are never overwritten by the pipeline.
func (s DocStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type Document struct {
	Id         string    `json:"id"`
	OwnerId    string    `json:"owner_id"`
	FileName   string    `json:"file_name"`
	FileType   FileType  `json:"file_type"`
	Status     DocStatus `json:"status"`
	BlobKey    string    `json:"blob_key,omitempty"`   //pdf/docx binary in the blob store
	SourceURL  string    `json:"source_url,omitempty"` //youtube
	Error      *DocError `json:"error,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DocError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

// PipelineJob is what the upload handler pushes onto the job channel.
// Text is already extracted and truncated by the time the job exists;
// youtube jobs carry the source URL instead and no text.
type PipelineJob struct {
	DocId    string   `json:"doc_id"`
	FileName string   `json:"file_name"`
	TraceId  string   `json:"trace_id"`
	FileType FileType `json:"file_type"`
	Text     string   `json:"text,omitempty"`
	MediaURL string   `json:"media_url,omitempty"`
}

type DocumentStore interface {
	GetDocument(ctx context.Context, docId string) (Document, bool)
	SaveDocument(ctx context.Context, doc Document) error
	DeleteDocument(ctx context.Context, docId string)
}
