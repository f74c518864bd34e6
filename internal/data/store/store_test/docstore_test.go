package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/data/redisStore"
	"github.com/studykit/studykit/internal/data/store"
	"github.com/studykit/studykit/internal/domain/docModel"
)

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func newRedisStore(t *testing.T) (*miniredis.Miniredis, *redisStore.Store) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, redisStore.NewTestStore(client)
}

func TestRedisDocStore_Lifecycle(t *testing.T) {
	mr, internalStore := newRedisStore(t)
	docStore := store.TestDocStore(internalStore)

	ctx := testCtx()
	docID := "doc_abc_123"

	testDoc := docModel.Document{
		Id:       docID,
		FileName: "lecture.pdf",
		FileType: docModel.FileTypePDF,
		Status:   docModel.StatusProcessing,
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := docStore.SaveDocument(ctx, testDoc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		retrieved, found := docStore.GetDocument(ctx, docID)
		if !found {
			t.Fatal("Document was saved but not found in Redis")
		}
		if retrieved.FileName != testDoc.FileName || retrieved.Status != testDoc.Status {
			t.Errorf("Data mismatch! Got %+v, want %+v", retrieved, testDoc)
		}
	})

	t.Run("Status transitions survive a save", func(t *testing.T) {
		testDoc.Status = docModel.StatusCompleted
		if err := docStore.SaveDocument(ctx, testDoc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		retrieved, _ := docStore.GetDocument(ctx, docID)
		if retrieved.Status != docModel.StatusCompleted {
			t.Errorf("Status got %v, want completed", retrieved.Status)
		}
	})

	t.Run("Get Non-Existent Document", func(t *testing.T) {
		_, found := docStore.GetDocument(ctx, "ghost-id")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Document", func(t *testing.T) {
		docStore.DeleteDocument(ctx, docID)

		if mr.Exists(docID) {
			t.Error("Document still exists in Redis after DeleteDocument call")
		}
	})
}

func TestRedisArtifactStore_Roundtrip(t *testing.T) {
	_, internalStore := newRedisStore(t)
	artifactStore := store.TestArtifactStore(internalStore)

	ctx := testCtx()
	docID := "doc-1"

	t.Run("Summary and Notes", func(t *testing.T) {
		if err := artifactStore.SaveSummary(ctx, docID, docModel.Summary{Content: "a summary"}); err != nil {
			t.Fatalf("SaveSummary failed: %v", err)
		}
		if err := artifactStore.SaveNotes(ctx, docID, docModel.Notes{Title: "T", Content: "body"}); err != nil {
			t.Fatalf("SaveNotes failed: %v", err)
		}

		artifacts, err := artifactStore.GetArtifacts(ctx, docID)
		if err != nil {
			t.Fatalf("GetArtifacts failed: %v", err)
		}
		if artifacts.Summary == nil || artifacts.Summary.Content != "a summary" {
			t.Errorf("Summary mismatch: %+v", artifacts.Summary)
		}
		if artifacts.Notes == nil || artifacts.Notes.Title != "T" {
			t.Errorf("Notes mismatch: %+v", artifacts.Notes)
		}
	})

	t.Run("Flashcards and Quiz lists", func(t *testing.T) {
		cards := []docModel.Flashcard{{Question: "q1", Answer: "a1"}, {Question: "q2", Answer: "a2"}}
		if err := artifactStore.SaveFlashcards(ctx, docID, cards); err != nil {
			t.Fatalf("SaveFlashcards failed: %v", err)
		}

		quiz := []docModel.QuizQuestion{{Question: "mcq", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2}}
		if err := artifactStore.SaveQuiz(ctx, docID, quiz); err != nil {
			t.Fatalf("SaveQuiz failed: %v", err)
		}

		artifacts, err := artifactStore.GetArtifacts(ctx, docID)
		if err != nil {
			t.Fatalf("GetArtifacts failed: %v", err)
		}
		if len(artifacts.Flashcards) != 2 {
			t.Errorf("Expected 2 flashcards, got %d", len(artifacts.Flashcards))
		}
		if len(artifacts.Quiz) != 1 || artifacts.Quiz[0].CorrectAnswer != 2 {
			t.Errorf("Quiz mismatch: %+v", artifacts.Quiz)
		}
	})

	t.Run("DeleteQuiz clears only the quiz", func(t *testing.T) {
		if err := artifactStore.DeleteQuiz(ctx, docID); err != nil {
			t.Fatalf("DeleteQuiz failed: %v", err)
		}

		artifacts, _ := artifactStore.GetArtifacts(ctx, docID)
		if len(artifacts.Quiz) != 0 {
			t.Error("Quiz survived DeleteQuiz")
		}
		if len(artifacts.Flashcards) != 2 || artifacts.Summary == nil {
			t.Error("DeleteQuiz must not touch other artifacts")
		}
	})

	t.Run("Extracted text roundtrip", func(t *testing.T) {
		if err := artifactStore.SaveText(ctx, docID, "extracted text"); err != nil {
			t.Fatalf("SaveText failed: %v", err)
		}
		text, found := artifactStore.GetText(ctx, docID)
		if !found || text != "extracted text" {
			t.Errorf("Text roundtrip failed: found=%v text=%q", found, text)
		}
	})

	t.Run("DeleteAll clears everything", func(t *testing.T) {
		if err := artifactStore.DeleteAll(ctx, docID); err != nil {
			t.Fatalf("DeleteAll failed: %v", err)
		}

		artifacts, _ := artifactStore.GetArtifacts(ctx, docID)
		if artifacts.Summary != nil || artifacts.Notes != nil ||
			len(artifacts.Flashcards) != 0 || len(artifacts.Quiz) != 0 {
			t.Errorf("Artifacts survived DeleteAll: %+v", artifacts)
		}
		if _, found := artifactStore.GetText(ctx, docID); found {
			t.Error("Text survived DeleteAll")
		}
	})
}

func TestRedisDocStore_Race(t *testing.T) {
	_, internalStore := newRedisStore(t)
	docStore := store.TestDocStore(internalStore)

	ctx := testCtx()
	doc := docModel.Document{Id: "race-doc"}

	const workers = 50
	for i := 0; i < workers; i++ {
		go func() {
			_ = docStore.SaveDocument(ctx, doc)
			_, _ = docStore.GetDocument(ctx, "race-doc")
		}()
	}
}
