package store

import (
	"context"
	"sync"

	"github.com/studykit/studykit/internal/domain/docModel"
)

type InMemoryArtifactStore struct {
	mu         *sync.RWMutex
	summaries  map[string]docModel.Summary
	notes      map[string]docModel.Notes
	flashcards map[string][]docModel.Flashcard
	quizzes    map[string][]docModel.QuizQuestion
	texts      map[string]string
}

func InitInMemoryArtifactStore() *InMemoryArtifactStore {
	return &InMemoryArtifactStore{
		mu:         new(sync.RWMutex),
		summaries:  make(map[string]docModel.Summary),
		notes:      make(map[string]docModel.Notes),
		flashcards: make(map[string][]docModel.Flashcard),
		quizzes:    make(map[string][]docModel.QuizQuestion),
		texts:      make(map[string]string),
	}
}

func (s *InMemoryArtifactStore) SaveSummary(ctx context.Context, docId string, sum docModel.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[docId] = sum
	return nil
}

func (s *InMemoryArtifactStore) SaveNotes(ctx context.Context, docId string, n docModel.Notes) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[docId] = n
	return nil
}

func (s *InMemoryArtifactStore) SaveFlashcards(ctx context.Context, docId string, cards []docModel.Flashcard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashcards[docId] = append(s.flashcards[docId], cards...)
	return nil
}

func (s *InMemoryArtifactStore) SaveQuiz(ctx context.Context, docId string, questions []docModel.QuizQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes[docId] = append(s.quizzes[docId], questions...)
	return nil
}

func (s *InMemoryArtifactStore) SaveText(ctx context.Context, docId string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[docId] = text
	return nil
}

func (s *InMemoryArtifactStore) GetText(ctx context.Context, docId string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.texts[docId]
	return text, ok
}

func (s *InMemoryArtifactStore) GetNotes(ctx context.Context, docId string) (docModel.Notes, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notes[docId]
	return n, ok
}

func (s *InMemoryArtifactStore) GetQuiz(ctx context.Context, docId string) ([]docModel.QuizQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]docModel.QuizQuestion(nil), s.quizzes[docId]...), nil
}

func (s *InMemoryArtifactStore) DeleteQuiz(ctx context.Context, docId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, docId)
	return nil
}

func (s *InMemoryArtifactStore) GetArtifacts(ctx context.Context, docId string) (docModel.Artifacts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var artifacts docModel.Artifacts
	if sum, ok := s.summaries[docId]; ok {
		artifacts.Summary = &sum
	}
	if n, ok := s.notes[docId]; ok {
		artifacts.Notes = &n
	}
	artifacts.Flashcards = append([]docModel.Flashcard(nil), s.flashcards[docId]...)
	artifacts.Quiz = append([]docModel.QuizQuestion(nil), s.quizzes[docId]...)
	return artifacts, nil
}

func (s *InMemoryArtifactStore) DeleteAll(ctx context.Context, docId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.summaries, docId)
	delete(s.notes, docId)
	delete(s.flashcards, docId)
	delete(s.quizzes, docId)
	delete(s.texts, docId)
	return nil
}
