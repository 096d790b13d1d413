package ports

import (
	"context"

	"github.com/bnema/coda-cli/internal/domain"
)

// CompletionRequest is one model call. System carries the instructions,
// Messages the transcript in order. JSONObject asks the provider to constrain
// the reply to a JSON object when it supports that.
type CompletionRequest struct {
	Model      string
	System     string
	Messages   []domain.Message
	JSONObject bool
}

// Completion returns the assistant message content for a request. Adapters
// report failures as *domain.TransportError, and replies they cannot read as
// domain.ErrParse.
type Completion interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
