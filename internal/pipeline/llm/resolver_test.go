package llm

import (
	"context"
	"errors"
	"testing"
)

type scriptedProber struct {
	failing map[string]bool
	calls   []string
}

func (p *scriptedProber) Probe(ctx context.Context, model string) error {
	p.calls = append(p.calls, model)
	if p.failing[model] {
		return errors.New("model not found")
	}
	return nil
}

func TestResolver_PrefersFirstWorkingCandidate(t *testing.T) {
	prober := &scriptedProber{failing: map[string]bool{"model-a": true}}
	r := NewResolver([]string{"model-a", "model-b", "model-c"}, prober)

	model, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if model != "model-b" {
		t.Errorf("Resolved %s, want model-b", model)
	}
}

func TestResolver_MemoizesAcrossCalls(t *testing.T) {
	prober := &scriptedProber{failing: map[string]bool{}}
	r := NewResolver([]string{"model-a"}, prober)

	for i := 0; i < 3; i++ {
		if _, err := r.Resolve(context.Background()); err != nil {
			t.Fatalf("Resolve #%d failed: %v", i, err)
		}
	}

	if len(prober.calls) != 1 {
		t.Errorf("Expected exactly 1 probe, got %d", len(prober.calls))
	}
}

func TestResolver_AllCandidatesExhausted(t *testing.T) {
	prober := &scriptedProber{failing: map[string]bool{"model-a": true, "model-b": true}}
	r := NewResolver([]string{"model-a", "model-b"}, prober)

	_, err := r.Resolve(context.Background())
	if !errors.Is(err, ErrNoModelAvailable) {
		t.Errorf("Expected ErrNoModelAvailable, got %v", err)
	}

	// A later call retries the probes rather than memoizing the failure;
	// availability can come back.
	prober.failing["model-b"] = false
	model, err := r.Resolve(context.Background())
	if err != nil || model != "model-b" {
		t.Errorf("Expected recovery to model-b, got %s / %v", model, err)
	}
}
