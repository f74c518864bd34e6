package docModel

import "context"

// The four artifact kinds the pipeline produces. Each is owned by exactly
// one document and written at most once per generation attempt.

type Summary struct {
	Content string `json:"content"`
}

type Notes struct {
	Title   string `json:"title"`
	Content string `json:"content"` //markdown
}

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"` //always 4
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type Artifacts struct {
	Summary    *Summary       `json:"summary,omitempty"`
	Notes      *Notes         `json:"notes,omitempty"`
	Flashcards []Flashcard    `json:"flashcards,omitempty"`
	Quiz       []QuizQuestion `json:"quiz,omitempty"`
}

type ArtifactStore interface {
	SaveSummary(ctx context.Context, docId string, s Summary) error
	SaveNotes(ctx context.Context, docId string, n Notes) error
	SaveFlashcards(ctx context.Context, docId string, cards []Flashcard) error
	SaveQuiz(ctx context.Context, docId string, questions []QuizQuestion) error

	GetArtifacts(ctx context.Context, docId string) (Artifacts, error)
	GetNotes(ctx context.Context, docId string) (Notes, bool)
	GetQuiz(ctx context.Context, docId string) ([]QuizQuestion, error)
	DeleteQuiz(ctx context.Context, docId string) error

	// SaveText keeps the extracted (already truncated) source text so
	// regeneration does not re-extract the binary.
	SaveText(ctx context.Context, docId string, text string) error
	GetText(ctx context.Context, docId string) (string, bool)

	// DeleteAll is the cascade used when a document is deleted.
	DeleteAll(ctx context.Context, docId string) error
}
