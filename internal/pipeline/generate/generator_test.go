package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/studykit/studykit/internal/pipeline/llm"
)

type mockProvider struct {
	response string
	err      error
	prompts  []string
}

func (m *mockProvider) Generate(ctx context.Context, prompt string, mediaURL string) (string, llm.Usage, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, llm.Usage{InputTokens: 10, OutputTokens: 20}, m.err
}

const flashcardJSON = `[
	{"question": "What is a goroutine?", "answer": "A lightweight thread managed by the Go runtime."},
	{"question": "What does chan do?", "answer": "It is a typed conduit for communication between goroutines."}
]`

const quizJSON = `[
	{"question": "Which keyword starts a goroutine?", "options": ["go", "run", "async", "spawn"], "correctAnswer": 0, "explanation": "The go statement."},
	{"question": "What closes a channel?", "options": ["end", "close", "stop", "done"], "correctAnswer": 1}
]`

func TestFlashcards_ParsesDirectJSON(t *testing.T) {
	g := New(&mockProvider{response: flashcardJSON})

	cards, err := g.Flashcards(context.Background(), Source{Text: "some material"}, 2)
	if err != nil {
		t.Fatalf("Flashcards failed: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards))
	}
	if cards[0].Question != "What is a goroutine?" {
		t.Errorf("Unexpected first question: %s", cards[0].Question)
	}
}

func TestFlashcards_StripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + flashcardJSON + "\n```"
	g := New(&mockProvider{response: fenced})

	cards, err := g.Flashcards(context.Background(), Source{Text: "material"}, 2)
	if err != nil {
		t.Fatalf("Flashcards failed on fenced payload: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("Expected 2 cards from fenced payload, got %d", len(cards))
	}
}

func TestFlashcards_ExtractsArrayFromProse(t *testing.T) {
	wrapped := "Sure! Here are your flashcards:\n" + flashcardJSON + "\nLet me know if you need more."
	g := New(&mockProvider{response: wrapped})

	cards, err := g.Flashcards(context.Background(), Source{Text: "material"}, 2)
	if err != nil {
		t.Fatalf("Flashcards failed on prose-wrapped payload: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards))
	}
}

func TestFlashcards_MalformedDegradesToEmpty(t *testing.T) {
	g := New(&mockProvider{response: "this is { not [ json at all"})

	cards, err := g.Flashcards(context.Background(), Source{Text: "material"}, 5)
	if err != nil {
		t.Fatalf("Malformed payload must not error for flashcards, got: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("Expected empty result, got %d cards", len(cards))
	}
}

func TestFlashcards_ProviderErrorPropagates(t *testing.T) {
	g := New(&mockProvider{err: errors.New("backend down")})

	if _, err := g.Flashcards(context.Background(), Source{Text: "material"}, 5); err == nil {
		t.Error("Expected provider error to propagate")
	}
}

func TestQuiz_ValidatesEntries(t *testing.T) {
	// second entry has 3 options, third an out-of-range answer index
	payload := `[
		{"question": "ok?", "options": ["a", "b", "c", "d"], "correctAnswer": 3},
		{"question": "short options", "options": ["a", "b", "c"], "correctAnswer": 0},
		{"question": "bad index", "options": ["a", "b", "c", "d"], "correctAnswer": 4}
	]`
	g := New(&mockProvider{response: payload})

	questions, err := g.Quiz(context.Background(), Source{Text: "material"}, 3, nil)
	if err != nil {
		t.Fatalf("Quiz failed: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("Expected 1 valid question after filtering, got %d", len(questions))
	}
}

func TestQuiz_MalformedDegradesToEmpty(t *testing.T) {
	g := New(&mockProvider{response: "no json here"})

	questions, err := g.Quiz(context.Background(), Source{Text: "material"}, 10, nil)
	if err != nil {
		t.Fatalf("Malformed payload must not error for quiz, got: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("Expected empty result, got %d", len(questions))
	}
}

func TestQuiz_PreviousQuestionsReachThePrompt(t *testing.T) {
	m := &mockProvider{response: quizJSON}
	g := New(m)

	_, err := g.Quiz(context.Background(), Source{Text: "material"}, 2, []string{"What closes a channel?"})
	if err != nil {
		t.Fatalf("Quiz failed: %v", err)
	}
	if len(m.prompts) != 1 || !strings.Contains(m.prompts[0], "What closes a channel?") {
		t.Error("Anti-duplication hint missing from prompt")
	}
}

func TestSummary_EmptyResponseIsAnError(t *testing.T) {
	g := New(&mockProvider{response: "   \n  "})

	if _, err := g.Summary(context.Background(), Source{Text: "material"}); err == nil {
		t.Error("Expected error for empty summary")
	}
}

func TestSummary_TrimsFences(t *testing.T) {
	g := New(&mockProvider{response: "```\nA tidy summary.\n```"})

	sum, err := g.Summary(context.Background(), Source{Text: "material"})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if sum.Content != "A tidy summary." {
		t.Errorf("Got %q", sum.Content)
	}
}

func TestNotes_MalformedPropagatesError(t *testing.T) {
	g := New(&mockProvider{response: "not an object"})

	if _, err := g.Notes(context.Background(), Source{Text: "material"}); err == nil {
		t.Error("Expected parse error to propagate for notes")
	}
}

func TestNotes_ParsesFencedObject(t *testing.T) {
	g := New(&mockProvider{response: "```json\n{\"title\": \"Ch 3\", \"content\": \"# Heading\\n- point\"}\n```"})

	notes, err := g.Notes(context.Background(), Source{Text: "material"})
	if err != nil {
		t.Fatalf("Notes failed: %v", err)
	}
	if notes.Title != "Ch 3" || !strings.HasPrefix(notes.Content, "# Heading") {
		t.Errorf("Unexpected notes: %+v", notes)
	}
}

func TestNotes_DefaultsMissingTitle(t *testing.T) {
	g := New(&mockProvider{response: `{"content": "markdown body"}`})

	notes, err := g.Notes(context.Background(), Source{Text: "material"})
	if err != nil {
		t.Fatalf("Notes failed: %v", err)
	}
	if notes.Title != "Study Notes" {
		t.Errorf("Expected default title, got %q", notes.Title)
	}
}
