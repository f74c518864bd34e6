package poller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func jsonStatus(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"id": "doc-1", "file_type": "pdf", "status": "` + status + `", "uploaded_at": "2025-01-01T00:00:00Z"}`))
}

func TestPoll_StopsOnCompleted(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		if n < 3 {
			jsonStatus(w, "processing")
			return
		}
		jsonStatus(w, "completed")
	}))
	defer srv.Close()

	p := New(srv.URL, WithInterval(10*time.Millisecond))

	result, err := p.Poll(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if result.Status != "completed" {
		t.Errorf("Status got %s, want completed", result.Status)
	}
	if got := atomic.LoadInt32(&requests); got != 3 {
		t.Errorf("Expected exactly 3 requests, got %d", got)
	}
}

func TestPoll_StopsOnFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonStatus(w, "failed")
	}))
	defer srv.Close()

	p := New(srv.URL, WithInterval(10*time.Millisecond))

	result, err := p.Poll(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if result.Status != "failed" {
		t.Errorf("Status got %s, want failed", result.Status)
	}
}

func TestPoll_FirstRequestIsImmediate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonStatus(w, "completed")
	}))
	defer srv.Close()

	// long interval: only an immediate first request can finish in time
	p := New(srv.URL, WithInterval(time.Hour))

	start := time.Now()
	if _, err := p.Poll(context.Background(), "doc-1"); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("First poll was not immediate")
	}
}

func TestPoll_ContinuesThroughTransportErrors(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		if n == 1 {
			// garbage body, poller should log and retry
			w.Write([]byte("not json {"))
			return
		}
		jsonStatus(w, "completed")
	}))
	defer srv.Close()

	p := New(srv.URL, WithInterval(10*time.Millisecond))

	result, err := p.Poll(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if result.Status != "completed" {
		t.Errorf("Status got %s, want completed", result.Status)
	}
}

func TestPoll_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonStatus(w, "processing")
	}))
	defer srv.Close()

	p := New(srv.URL, WithInterval(10*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := p.Poll(ctx, "doc-1")
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Expected context error, got nil")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Poll did not stop on context cancellation")
	}
}
