// Package poller polls a document's status endpoint until generation
// settles. It is the client-side counterpart of the async upload flow.
package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/studykit/studykit/internal/api"
	"github.com/studykit/studykit/pkg/logger_i"
)

const defaultInterval = 5 * time.Second

type Option func(*Poller)

// WithInterval overrides the fixed delay between polls.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

func WithHTTPClient(c *http.Client) Option {
	return func(p *Poller) { p.client = c }
}

type Poller struct {
	baseURL  string
	interval time.Duration
	client   *http.Client
	logger   *logger_i.Logger
}

func New(baseURL string, opts ...Option) *Poller {
	p := &Poller{
		baseURL:  baseURL,
		interval: defaultInterval,
		client:   http.DefaultClient,
		logger:   logger_i.NewLogger("Poller"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Poll requests the document status immediately and then on a fixed
// interval until the status is terminal or ctx is cancelled. Transport
// errors are logged and the loop continues - the server may just be
// restarting.
func (p *Poller) Poll(ctx context.Context, docId string) (api.DocumentResponse, error) {
	if result, done := p.fetch(ctx, docId); done {
		return result, nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return api.DocumentResponse{}, ctx.Err()

		case <-ticker.C:
			if result, done := p.fetch(ctx, docId); done {
				return result, nil
			}
		}
	}
}

func (p *Poller) fetch(ctx context.Context, docId string) (api.DocumentResponse, bool) {
	url := fmt.Sprintf("%s/documents/%s", p.baseURL, docId)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		p.logger.Error("Building poll request failed", "error", err)
		return api.DocumentResponse{}, false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Poll request failed, will retry", "error", err)
		return api.DocumentResponse{}, false
	}
	defer resp.Body.Close()

	var result api.DocumentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		p.logger.Warn("Poll response unreadable, will retry", "error", err)
		return api.DocumentResponse{}, false
	}

	if result.Status == "completed" || result.Status == "failed" {
		return result, true
	}
	p.logger.Debug("Document still processing", "docId", docId)
	return api.DocumentResponse{}, false
}
