package generate

import (
	"context"
	"errors"
	"strings"

	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/pipeline/llm"
	"github.com/studykit/studykit/pkg/logger_i"
)

// Source is what a generator reads from: extracted text for pdf/docx, a
// media URL for youtube (the model consumes the video directly).
type Source struct {
	Text     string
	MediaURL string
}

type Generator struct {
	provider llm.Provider
	logger   *logger_i.Logger
}

func New(provider llm.Provider) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger_i.NewLogger("Generator"),
	}
}

// Summary has no meaningful empty fallback - a blank summary is
// indistinguishable from failure, so failures propagate.
func (g *Generator) Summary(ctx context.Context, src Source) (docModel.Summary, error) {
	raw, usage, err := g.provider.Generate(ctx, summaryPrompt(src), src.MediaURL)
	g.logUsage("summary", usage)
	if err != nil {
		return docModel.Summary{}, err
	}

	content := strings.TrimSpace(stripCodeFences(raw))
	if content == "" {
		return docModel.Summary{}, errors.New("model returned an empty summary")
	}
	return docModel.Summary{Content: content}, nil
}

// Notes propagate parse failures for the same reason as Summary.
func (g *Generator) Notes(ctx context.Context, src Source) (docModel.Notes, error) {
	raw, usage, err := g.provider.Generate(ctx, notesPrompt(src), src.MediaURL)
	g.logUsage("notes", usage)
	if err != nil {
		return docModel.Notes{}, err
	}

	var notes docModel.Notes
	if err := unmarshalObject(raw, &notes); err != nil {
		return docModel.Notes{}, err
	}
	if strings.TrimSpace(notes.Content) == "" {
		return docModel.Notes{}, errors.New("model returned empty notes content")
	}
	if notes.Title == "" {
		notes.Title = "Study Notes"
	}
	return notes, nil
}

// Flashcards degrade to an empty slice on unparseable output: one malformed
// response must not fail the whole document. Transport/backend errors still
// propagate.
func (g *Generator) Flashcards(ctx context.Context, src Source, count int) ([]docModel.Flashcard, error) {
	raw, usage, err := g.provider.Generate(ctx, flashcardsPrompt(src, count), src.MediaURL)
	g.logUsage("flashcards", usage)
	if err != nil {
		return nil, err
	}

	var cards []docModel.Flashcard
	if err := unmarshalArray(raw, &cards); err != nil {
		g.logger.Warn("Flashcard response unparseable, degrading to empty", "error", err)
		return []docModel.Flashcard{}, nil
	}

	valid := cards[:0]
	for _, c := range cards {
		if strings.TrimSpace(c.Question) == "" || strings.TrimSpace(c.Answer) == "" {
			continue
		}
		valid = append(valid, c)
	}
	return valid, nil
}

// Quiz mirrors Flashcards. previous carries the text of deleted questions on
// regeneration, purely to steer the model away from duplicates.
func (g *Generator) Quiz(ctx context.Context, src Source, count int, previous []string) ([]docModel.QuizQuestion, error) {
	raw, usage, err := g.provider.Generate(ctx, quizPrompt(src, count, previous), src.MediaURL)
	g.logUsage("quiz", usage)
	if err != nil {
		return nil, err
	}

	var questions []docModel.QuizQuestion
	if err := unmarshalArray(raw, &questions); err != nil {
		g.logger.Warn("Quiz response unparseable, degrading to empty", "error", err)
		return []docModel.QuizQuestion{}, nil
	}

	valid := questions[:0]
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if len(q.Options) != 4 || q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			g.logger.Warn("Dropping malformed quiz entry", "question", q.Question)
			continue
		}
		valid = append(valid, q)
	}
	return valid, nil
}

func (g *Generator) logUsage(operation string, usage llm.Usage) {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return
	}
	g.logger.Debug("Token usage", "operation", operation,
		"input_tokens", usage.InputTokens, "output_tokens", usage.OutputTokens)
}
