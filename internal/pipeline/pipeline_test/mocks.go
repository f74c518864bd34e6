package pipeline_test

import (
	"context"
	"strings"
	"sync"

	"github.com/studykit/studykit/internal/pipeline/llm"
)

// MockProvider routes canned responses by recognizing which generator's
// prompt it received.
type MockProvider struct {
	Responses map[string]string
	Errs      map[string]error
	// Block lists operations that should hang until the context expires.
	Block map[string]bool

	mu      sync.Mutex
	Prompts []string
}

func (m *MockProvider) recordPrompt(prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
}

func (m *MockProvider) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}

const (
	opSummary    = "summary"
	opNotes      = "notes"
	opFlashcards = "flashcards"
	opQuiz       = "quiz"
)

var goodResponses = map[string]string{
	opSummary:    "A solid summary of the material.",
	opNotes:      `{"title": "Chapter Notes", "content": "# Key ideas\n- one\n- two"}`,
	opFlashcards: `[{"question": "q1", "answer": "a1"}, {"question": "q2", "answer": "a2"}]`,
	opQuiz:       `[{"question": "mcq1", "options": ["a", "b", "c", "d"], "correctAnswer": 0}, {"question": "mcq2", "options": ["a", "b", "c", "d"], "correctAnswer": 2, "explanation": "because"}]`,
}

func opForPrompt(prompt string) string {
	switch {
	case strings.Contains(prompt, "multiple-choice quiz"):
		return opQuiz
	case strings.Contains(prompt, "flashcards"):
		return opFlashcards
	case strings.Contains(prompt, "revision notes"):
		return opNotes
	default:
		return opSummary
	}
}

func (m *MockProvider) Generate(ctx context.Context, prompt string, mediaURL string) (string, llm.Usage, error) {
	m.recordPrompt(prompt)
	op := opForPrompt(prompt)

	if m.Block[op] {
		<-ctx.Done()
		return "", llm.Usage{}, ctx.Err()
	}
	if err, ok := m.Errs[op]; ok {
		return "", llm.Usage{}, err
	}
	if resp, ok := m.Responses[op]; ok {
		return resp, llm.Usage{}, nil
	}
	return goodResponses[op], llm.Usage{}, nil
}
