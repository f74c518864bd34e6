package store

import (
	"context"
	"encoding/json"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/data/redisStore"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/pkg/logger_i"
)

// Artifacts are keyed per document: summary/notes/text as plain JSON
// values, flashcards/quiz as lists of JSON entries. The disjoint keys are
// what lets the four generators persist concurrently without coordination.
type RedisArtifactStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisArtifactStore(ctx context.Context) *RedisArtifactStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisArtifactStore)
	if inner == nil {
		return nil
	}
	return &RedisArtifactStore{
		store:  inner,
		logger: logger_i.NewLogger("ArtifactStore"),
	}
}

func summaryKey(docId string) string    { return "doc:" + docId + ":summary" }
func notesKey(docId string) string      { return "doc:" + docId + ":notes" }
func flashcardsKey(docId string) string { return "doc:" + docId + ":flashcards" }
func quizKey(docId string) string       { return "doc:" + docId + ":quiz" }
func textKey(docId string) string       { return "doc:" + docId + ":text" }

func (s *RedisArtifactStore) SaveSummary(ctx context.Context, docId string, sum docModel.Summary) error {
	data, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, summaryKey(docId), data, config.RedisArtifactStoreTTL)
}

func (s *RedisArtifactStore) SaveNotes(ctx context.Context, docId string, n docModel.Notes) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, notesKey(docId), data, config.RedisArtifactStoreTTL)
}

func (s *RedisArtifactStore) SaveFlashcards(ctx context.Context, docId string, cards []docModel.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(cards))
	for _, c := range cards {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		values = append(values, data)
	}
	return s.store.ListPush(ctx, flashcardsKey(docId), values...)
}

func (s *RedisArtifactStore) SaveQuiz(ctx context.Context, docId string, questions []docModel.QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		data, err := json.Marshal(q)
		if err != nil {
			return err
		}
		values = append(values, data)
	}
	return s.store.ListPush(ctx, quizKey(docId), values...)
}

func (s *RedisArtifactStore) SaveText(ctx context.Context, docId string, text string) error {
	return s.store.Set(ctx, textKey(docId), text, config.RedisArtifactStoreTTL)
}

func (s *RedisArtifactStore) GetText(ctx context.Context, docId string) (string, bool) {
	val, err := s.store.Get(ctx, textKey(docId))
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *RedisArtifactStore) GetNotes(ctx context.Context, docId string) (docModel.Notes, bool) {
	var n docModel.Notes
	val, err := s.store.Get(ctx, notesKey(docId))
	if err != nil {
		return n, false
	}
	if err := json.Unmarshal([]byte(val), &n); err != nil {
		return n, false
	}
	return n, true
}

func (s *RedisArtifactStore) GetQuiz(ctx context.Context, docId string) ([]docModel.QuizQuestion, error) {
	raw, err := s.store.ListGetAll(ctx, quizKey(docId))
	if err != nil {
		return nil, err
	}
	questions := make([]docModel.QuizQuestion, 0, len(raw))
	for _, entry := range raw {
		var q docModel.QuizQuestion
		if err := json.Unmarshal([]byte(entry), &q); err != nil {
			s.logger.Error("Skipping corrupt quiz entry", "docId", docId, "error", err)
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (s *RedisArtifactStore) DeleteQuiz(ctx context.Context, docId string) error {
	return s.store.Del(ctx, quizKey(docId))
}

func (s *RedisArtifactStore) GetArtifacts(ctx context.Context, docId string) (docModel.Artifacts, error) {
	var artifacts docModel.Artifacts

	if val, err := s.store.Get(ctx, summaryKey(docId)); err == nil {
		var sum docModel.Summary
		if err := json.Unmarshal([]byte(val), &sum); err == nil {
			artifacts.Summary = &sum
		}
	}

	if n, ok := s.GetNotes(ctx, docId); ok {
		artifacts.Notes = &n
	}

	rawCards, err := s.store.ListGetAll(ctx, flashcardsKey(docId))
	if err != nil && !s.store.IsNil(err) {
		return artifacts, err
	}
	for _, entry := range rawCards {
		var c docModel.Flashcard
		if err := json.Unmarshal([]byte(entry), &c); err != nil {
			s.logger.Error("Skipping corrupt flashcard entry", "docId", docId, "error", err)
			continue
		}
		artifacts.Flashcards = append(artifacts.Flashcards, c)
	}

	quiz, err := s.GetQuiz(ctx, docId)
	if err != nil {
		return artifacts, err
	}
	artifacts.Quiz = quiz

	return artifacts, nil
}

func (s *RedisArtifactStore) DeleteAll(ctx context.Context, docId string) error {
	err := s.store.Del(ctx,
		summaryKey(docId),
		notesKey(docId),
		flashcardsKey(docId),
		quizKey(docId),
		textKey(docId),
	)
	if err != nil {
		s.logger.Error("Error cascading artifact delete", "docId", docId, "error", err)
	}
	return err
}

func TestArtifactStore(store *redisStore.Store) *RedisArtifactStore {
	return &RedisArtifactStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
