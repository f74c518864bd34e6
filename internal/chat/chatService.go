package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studykit/studykit/internal/adapter/utils"
	"github.com/studykit/studykit/internal/chat/embedding"
	"github.com/studykit/studykit/internal/chat/vectorDB"
	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/metrics"
	"github.com/studykit/studykit/internal/pipeline/llm"
	"github.com/studykit/studykit/pkg/logger_i"
)

var ErrNoContext = errors.New("no indexed content for document")

// Service answers questions about a single uploaded document. Handlers only
// see this contract; the vector store, embedder and LLM stay private.
type Service interface {
	Ask(ctx context.Context, docId string, question string) (string, error)
	IndexDocument(ctx context.Context, docId string, docName string, text string) error
	RemoveDocument(ctx context.Context, docId string) error
}

type service struct {
	vectorDB vectorDB.DataProcessor
	provider llm.Provider
	embedder embedding.Embedder
	logger   *logger_i.Logger
}

func NewService(vector vectorDB.DataProcessor, provider llm.Provider, em embedding.Embedder) Service {
	return &service{
		vectorDB: vector,
		provider: provider,
		embedder: em,
		logger:   logger_i.NewLogger("Chat Service"),
	}
}

// Ask runs the question through embed -> cache check -> filtered vector
// search -> LLM, then caches the answer in the background.
func (s *service) Ask(ctx context.Context, docId string, question string) (string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "docId", docId)

	askContext, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	queryVector, err := s.executeEmbeddingStep(askContext, question)
	if err != nil {
		log.Error("Question embedding failed", "error", err)
		return "", err
	}

	if answer, found := s.executeCacheCheckStep(ctx, docId, queryVector); found {
		return answer, nil
	}

	matches, err := s.executeVectorSearchStep(askContext, docId, queryVector)
	if err != nil {
		log.Error("Vector search failed", "error", err)
		return "", err
	}
	if len(matches) == 0 {
		return "", ErrNoContext
	}

	answer, err := s.executeLLMStep(askContext, question, matches)
	if err != nil {
		log.Error("Answer generation failed", "error", err)
		return "", err
	}

	go func() {
		if err := s.vectorDB.SaveToCache(context.WithoutCancel(ctx), utils.GetNewUUID(), docId, queryVector, answer); err != nil {
			s.logger.Error("Failed to save answer to cache", "error", err)
		}
	}()

	return answer, nil
}

// IndexDocument chunks the extracted text, embeds each batch and upserts the
// vectors. Satisfies the pipeline's indexer hook.
func (s *service) IndexDocument(ctx context.Context, docId string, docName string, text string) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_indexing", time.Since(start)) }()

	if strings.TrimSpace(text) == "" {
		return nil
	}

	if err := s.vectorDB.CreateCollection(ctx, config.ChunkCollectionName); err != nil {
		return fmt.Errorf("chunk collection: %w", err)
	}

	chunks := prepareChunks(docId, docName, text)
	s.logger.Debug("Indexing document", "docId", docId, "chunks", len(chunks))

	return s.batchIndex(ctx, chunks)
}

func (s *service) RemoveDocument(ctx context.Context, docId string) error {
	return s.vectorDB.DeleteDocument(ctx, docId)
}

func (s *service) executeEmbeddingStep(ctx context.Context, question string) ([]float32, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.GetEmbedding(ctx, question)
}

func (s *service) executeCacheCheckStep(ctx context.Context, docId string, emb []float32) (string, bool) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	ans, found, _ := s.vectorDB.GetCachedAnswer(ctx, docId, emb)
	return ans, found
}

func (s *service) executeVectorSearchStep(ctx context.Context, docId string, emb []float32) ([]string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	return s.vectorDB.Search(ctx, docId, emb)
}

func (s *service) executeLLMStep(ctx context.Context, question string, matches []string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("chat_generation", time.Since(start)) }()

	answer, _, err := s.provider.Generate(ctx, answerPrompt(question, matches), "")
	return answer, err
}

func answerPrompt(question string, matches []string) string {
	var sb strings.Builder
	sb.WriteString("Answer the question using only the excerpts below. If the excerpts do not contain the answer, say so.\n\nExcerpts:\n")
	for _, m := range matches {
		sb.WriteString("- ")
		sb.WriteString(m)
		sb.WriteString("\n")
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}
