package llm

import (
	"context"
	"errors"
	"sync"

	"github.com/studykit/studykit/pkg/logger_i"
)

// ErrNoModelAvailable means every candidate model failed its probe.
var ErrNoModelAvailable = errors.New("no candidate model available")

// Prober validates a single model id with a trivial call.
type Prober interface {
	Probe(ctx context.Context, model string) error
}

// Resolver walks a fixed preference order of model ids, probes each, and
// memoizes the first that answers for the rest of the process lifetime.
// It is owned by the provider client that constructs it - no package-level
// state, so tests can build as many as they want.
type Resolver struct {
	mu         sync.Mutex
	resolved   string
	candidates []string
	prober     Prober
	logger     *logger_i.Logger
}

func NewResolver(candidates []string, prober Prober) *Resolver {
	return &Resolver{
		candidates: candidates,
		prober:     prober,
		logger:     logger_i.NewLogger("ModelResolver"),
	}
}

func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.resolved != "" {
		return r.resolved, nil
	}

	for _, candidate := range r.candidates {
		if err := r.prober.Probe(ctx, candidate); err != nil {
			r.logger.Warn("Model probe failed", "model", candidate, "error", err)
			continue
		}
		r.logger.Info("Resolved working model", "model", candidate)
		r.resolved = candidate
		return candidate, nil
	}
	return "", ErrNoModelAvailable
}
