package pipeline

import (
	"context"
	"time"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/metrics"
	"github.com/studykit/studykit/internal/pipeline/generate"
	"github.com/studykit/studykit/pkg/logger_i"
)

const branchCount = 4

type branchOutcome struct {
	name string
	err  error
}

// runGenerators fans the four generators out concurrently and waits for
// every branch to settle - never short-circuits on the first failure. Each
// branch carries its own timeout so a hung inference call fails that branch
// without stalling its siblings, and each branch persists its artifact the
// moment it succeeds (visibility is intentionally not atomic with the final
// status flip).
func (s *service) runGenerators(ctx context.Context, log *logger_i.Logger, docId string, src generate.Source) int {
	results := make(chan branchOutcome, branchCount)

	run := func(name string, fn func(ctx context.Context) error) {
		go func() {
			branchCtx, cancel := context.WithTimeout(ctx, config.GeneratorTimeout)
			defer cancel()

			start := time.Now()
			err := fn(branchCtx)
			metrics.CaptureExecutionMetrics("generate_"+name, time.Since(start))
			metrics.CaptureGeneratorOutcome(name, err == nil)
			results <- branchOutcome{name: name, err: err}
		}()
	}

	run("summary", func(ctx context.Context) error {
		sum, err := s.generator.Summary(ctx, src)
		if err != nil {
			return err
		}
		return s.artifacts.SaveSummary(ctx, docId, sum)
	})

	run("notes", func(ctx context.Context) error {
		notes, err := s.generator.Notes(ctx, src)
		if err != nil {
			return err
		}
		return s.artifacts.SaveNotes(ctx, docId, notes)
	})

	run("flashcards", func(ctx context.Context) error {
		cards, err := s.generator.Flashcards(ctx, src, config.DefaultFlashcardCount)
		if err != nil {
			return err
		}
		return s.artifacts.SaveFlashcards(ctx, docId, cards)
	})

	run("quiz", func(ctx context.Context) error {
		questions, err := s.generator.Quiz(ctx, src, config.DefaultQuizCount, nil)
		if err != nil {
			return err
		}
		return s.artifacts.SaveQuiz(ctx, docId, questions)
	})

	successes := 0
	for i := 0; i < branchCount; i++ {
		outcome := <-results
		if outcome.err != nil {
			log.Error("Generator failed", "operation", outcome.name, "error", outcome.err)
			continue
		}
		log.Info("Generator succeeded", "operation", outcome.name)
		successes++
	}
	return successes
}
