package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/metrics"
	"github.com/studykit/studykit/internal/pipeline/generate"
	"github.com/studykit/studykit/internal/pipeline/llm"
	"github.com/studykit/studykit/pkg/logger_i"
)

// Service is all the worker needs - it doesn't know about providers,
// parsing or the vector index behind the chat feature.
type Service interface {
	ProcessDocument(ctx context.Context, job docModel.PipelineJob) docModel.DocStatus
	RegenerateQuiz(ctx context.Context, docId string, count int) ([]docModel.QuizQuestion, error)
}

// Indexer feeds the Q&A chat index. Indexing is best-effort: it runs after
// the generators settle and can never change the document's status.
type Indexer interface {
	IndexDocument(ctx context.Context, docId string, docName string, text string) error
}

type service struct {
	generator *generate.Generator
	docs      docModel.DocumentStore
	artifacts docModel.ArtifactStore
	indexer   Indexer //nil when the chat stack is offline
	logger    *logger_i.Logger
}

func NewService(provider llm.Provider, docs docModel.DocumentStore, artifacts docModel.ArtifactStore, indexer Indexer) Service {
	return &service{
		generator: generate.New(provider),
		docs:      docs,
		artifacts: artifacts,
		indexer:   indexer,
		logger:    logger_i.NewLogger("Pipeline"),
	}
}

// ProcessDocument runs the four generators and reduces their outcomes to a
// terminal status: one success is enough for completed, zero means failed.
func (s *service) ProcessDocument(ctx context.Context, job docModel.PipelineJob) docModel.DocStatus {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "docId", job.DocId)

	src := generate.Source{Text: job.Text, MediaURL: job.MediaURL}
	successes := s.runGenerators(ctx, log, job.DocId, src)

	log.Info("Generation settled", "successes", successes)

	if successes == 0 {
		return docModel.StatusFailed
	}

	if s.indexer != nil && job.Text != "" {
		start := time.Now()
		if err := s.indexer.IndexDocument(ctx, job.DocId, job.FileName, job.Text); err != nil {
			log.Error("Chat indexing failed", "error", err)
		}
		metrics.CaptureExecutionMetrics("chat_indexing", time.Since(start))
	}

	return docModel.StatusCompleted
}

// RegenerateQuiz re-runs only the quiz generator. It deliberately does not
// touch document-level status: a regeneration failure reports through its
// own response and leaves the document as it was.
func (s *service) RegenerateQuiz(ctx context.Context, docId string, count int) ([]docModel.QuizQuestion, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "docId", docId)

	doc, found := s.docs.GetDocument(ctx, docId)
	if !found {
		return nil, errors.New("document not found")
	}
	if count <= 0 {
		count = config.DefaultQuizCount
	}

	src, err := s.regenerationSource(ctx, doc)
	if err != nil {
		return nil, err
	}

	prior, err := s.artifacts.GetQuiz(ctx, docId)
	if err != nil {
		log.Error("Could not read prior quiz, regenerating without hint", "error", err)
	}
	previous := make([]string, 0, len(prior))
	for _, q := range prior {
		previous = append(previous, q.Question)
	}

	genCtx, cancel := context.WithTimeout(ctx, config.GeneratorTimeout)
	defer cancel()

	start := time.Now()
	questions, err := s.generator.Quiz(genCtx, src, count, previous)
	metrics.CaptureExecutionMetrics("regenerate_quiz", time.Since(start))
	if err != nil {
		metrics.CaptureGeneratorOutcome("quiz_regen", false)
		return nil, err
	}
	metrics.CaptureGeneratorOutcome("quiz_regen", true)

	// Old questions go only after new ones exist - a failed regeneration
	// must not leave the document quizless.
	if err := s.artifacts.DeleteQuiz(ctx, docId); err != nil {
		return nil, err
	}
	if err := s.artifacts.SaveQuiz(ctx, docId, questions); err != nil {
		return nil, err
	}

	log.Info("Quiz regenerated", "previous", len(prior), "new", len(questions))
	return questions, nil
}

// regenerationSource picks the cheapest text source: stored extracted text
// for pdf/docx, previously generated notes as a proxy for youtube (falling
// back to re-analyzing the video only when no notes exist).
func (s *service) regenerationSource(ctx context.Context, doc docModel.Document) (generate.Source, error) {
	if doc.FileType == docModel.FileTypeYouTube {
		if notes, ok := s.artifacts.GetNotes(ctx, doc.Id); ok {
			return generate.Source{Text: extractTruncated(notes.Content)}, nil
		}
		return generate.Source{MediaURL: doc.SourceURL}, nil
	}

	text, ok := s.artifacts.GetText(ctx, doc.Id)
	if !ok {
		return generate.Source{}, errors.New("source text unavailable for regeneration")
	}
	return generate.Source{Text: text}, nil
}

func extractTruncated(text string) string {
	if len(text) <= config.MaxExtractedChars {
		return text
	}
	return text[:config.MaxExtractedChars] + config.TruncationMarker
}
