package ports

import (
	"context"

	"github.com/bnema/coda-cli/internal/domain"
)

// Console renders agent progress and collects user input.
type Console interface {
	Thought(text string)
	Output(text string)
	Notice(text string)
	ActionStarted(kind domain.ActionKind, summary string)
	ActionFinished(result domain.ActionResult)
	Progress(ctx context.Context, label string, fn func(context.Context) error) error
	ReadLine(ctx context.Context, prompt string) (string, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}
