package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/data/store"
	"github.com/studykit/studykit/internal/domain/docModel"
	"github.com/studykit/studykit/internal/pipeline"
)

func newFixture(provider *MockProvider) (pipeline.Service, *store.InMemoryDocStore, *store.InMemoryArtifactStore) {
	docs := store.InitInMemoryDocStore()
	artifacts := store.InitInMemoryArtifactStore()
	return pipeline.NewService(provider, docs, artifacts, nil), docs, artifacts
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestProcessDocument_JoinProperty(t *testing.T) {
	allOps := []string{opSummary, opNotes, opFlashcards, opQuiz}

	tests := []struct {
		name     string
		failing  []string
		expected docModel.DocStatus
	}{
		{"All_Succeed", nil, docModel.StatusCompleted},
		{"One_Fails", []string{opNotes}, docModel.StatusCompleted},
		{"Three_Fail", []string{opSummary, opFlashcards, opQuiz}, docModel.StatusCompleted},
		{"All_Fail", allOps, docModel.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &MockProvider{Errs: map[string]error{}}
			for _, op := range tt.failing {
				provider.Errs[op] = errors.New("backend down")
			}
			svc, _, artifacts := newFixture(provider)

			status := svc.ProcessDocument(testCtx(), docModel.PipelineJob{
				DocId:    "doc-1",
				FileType: docModel.FileTypePDF,
				Text:     "material",
			})

			if status != tt.expected {
				t.Errorf("Status got %v, want %v", status, tt.expected)
			}

			// succeeded branches persist their artifact, failed ones leave none
			got, err := artifacts.GetArtifacts(testCtx(), "doc-1")
			if err != nil {
				t.Fatalf("GetArtifacts failed: %v", err)
			}
			failed := map[string]bool{}
			for _, op := range tt.failing {
				failed[op] = true
			}
			if (got.Summary != nil) == failed[opSummary] {
				t.Error("Summary presence disagrees with its branch outcome")
			}
			if (got.Notes != nil) == failed[opNotes] {
				t.Error("Notes presence disagrees with its branch outcome")
			}
			if (len(got.Flashcards) > 0) == failed[opFlashcards] {
				t.Error("Flashcard presence disagrees with its branch outcome")
			}
			if (len(got.Quiz) > 0) == failed[opQuiz] {
				t.Error("Quiz presence disagrees with its branch outcome")
			}
		})
	}
}

func TestProcessDocument_StuckBranchDoesNotBlockSiblings(t *testing.T) {
	provider := &MockProvider{Block: map[string]bool{opSummary: true}}
	svc, _, artifacts := newFixture(provider)

	ctx, cancel := context.WithTimeout(testCtx(), 300*time.Millisecond)
	defer cancel()

	done := make(chan docModel.DocStatus, 1)
	go func() {
		done <- svc.ProcessDocument(ctx, docModel.PipelineJob{
			DocId:    "doc-stuck",
			FileType: docModel.FileTypePDF,
			Text:     "material",
		})
	}()

	select {
	case status := <-done:
		if status != docModel.StatusCompleted {
			t.Errorf("Expected completed despite stuck branch, got %v", status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Join blocked on the stuck branch")
	}

	got, _ := artifacts.GetArtifacts(testCtx(), "doc-stuck")
	if got.Summary != nil {
		t.Error("Stuck summary branch must not have persisted an artifact")
	}
	if got.Notes == nil || len(got.Flashcards) == 0 || len(got.Quiz) == 0 {
		t.Error("Sibling branches should have completed")
	}
}

func TestRegenerateQuiz_ReplacesPriorQuestions(t *testing.T) {
	provider := &MockProvider{}
	svc, docs, artifacts := newFixture(provider)

	doc := docModel.Document{Id: "doc-2", FileType: docModel.FileTypePDF, Status: docModel.StatusCompleted}
	_ = docs.SaveDocument(testCtx(), doc)
	_ = artifacts.SaveText(testCtx(), doc.Id, "stored extracted text")
	_ = artifacts.SaveQuiz(testCtx(), doc.Id, []docModel.QuizQuestion{
		{Question: "old question", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
	})

	questions, err := svc.RegenerateQuiz(testCtx(), doc.Id, 2)
	if err != nil {
		t.Fatalf("RegenerateQuiz failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Expected 2 new questions, got %d", len(questions))
	}

	stored, _ := artifacts.GetQuiz(testCtx(), doc.Id)
	if len(stored) != 2 {
		t.Errorf("Expected exactly the new questions in the store, got %d", len(stored))
	}
	for _, q := range stored {
		if q.Question == "old question" {
			t.Error("Deleted question survived regeneration")
		}
	}

	// the prior question text must reach the prompt as an anti-dup hint
	last := provider.lastPrompt()
	if !strings.Contains(last, "old question") {
		t.Error("Prompt missing previous-questions hint")
	}
}

func TestRegenerateQuiz_FailureKeepsPriorQuiz(t *testing.T) {
	provider := &MockProvider{Errs: map[string]error{opQuiz: errors.New("provider down")}}
	svc, docs, artifacts := newFixture(provider)

	doc := docModel.Document{Id: "doc-3", FileType: docModel.FileTypePDF, Status: docModel.StatusCompleted}
	_ = docs.SaveDocument(testCtx(), doc)
	_ = artifacts.SaveText(testCtx(), doc.Id, "stored text")
	_ = artifacts.SaveQuiz(testCtx(), doc.Id, []docModel.QuizQuestion{
		{Question: "kept", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
	})

	if _, err := svc.RegenerateQuiz(testCtx(), doc.Id, 5); err == nil {
		t.Fatal("Expected regeneration error")
	}

	stored, _ := artifacts.GetQuiz(testCtx(), doc.Id)
	if len(stored) != 1 || stored[0].Question != "kept" {
		t.Error("Prior quiz must survive a failed regeneration")
	}

	// document status is untouched by regeneration failures
	got, _ := docs.GetDocument(testCtx(), doc.Id)
	if got.Status != docModel.StatusCompleted {
		t.Errorf("Document status changed to %v", got.Status)
	}
}

func TestRegenerateQuiz_YouTubeUsesNotesProxy(t *testing.T) {
	provider := &MockProvider{}
	svc, docs, artifacts := newFixture(provider)

	doc := docModel.Document{
		Id:        "doc-yt",
		FileType:  docModel.FileTypeYouTube,
		SourceURL: "https://youtube.com/watch?v=abc",
		Status:    docModel.StatusCompleted,
	}
	_ = docs.SaveDocument(testCtx(), doc)
	_ = artifacts.SaveNotes(testCtx(), doc.Id, docModel.Notes{Title: "T", Content: "notes body used as proxy"})

	if _, err := svc.RegenerateQuiz(testCtx(), doc.Id, 2); err != nil {
		t.Fatalf("RegenerateQuiz failed: %v", err)
	}

	last := provider.lastPrompt()
	if !strings.Contains(last, "notes body used as proxy") {
		t.Error("Expected notes content as the quiz source for a youtube document")
	}
}

func TestRegenerateQuiz_UnknownDocument(t *testing.T) {
	svc, _, _ := newFixture(&MockProvider{})

	if _, err := svc.RegenerateQuiz(testCtx(), "ghost", 5); err == nil {
		t.Error("Expected error for unknown document")
	}
}
