package llm

import "context"

// Usage is per-call token accounting, attached where the backend reports it.
// Observability only, never affects outcomes.
type Usage struct {
	InputTokens  int32 `json:"input_tokens"`
	OutputTokens int32 `json:"output_tokens"`
}

// Provider is a single inference backend. mediaURL, when non-empty, points
// at remote media (a video) the backend should analyze alongside the prompt;
// backends without multimodal support return an error for it.
type Provider interface {
	Generate(ctx context.Context, prompt string, mediaURL string) (string, Usage, error)
}
