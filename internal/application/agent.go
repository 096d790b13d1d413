package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/logging"
	"github.com/bnema/coda-cli/internal/ports"
	"github.com/cenkalti/backoff/v5"
)

const (
	defaultMaxTransportAttempts = 5
	defaultMaxParseRetries      = 3
	defaultMaxSteps             = 50
	defaultBackoffInitial       = 500 * time.Millisecond
	defaultBackoffMax           = 10 * time.Second
	maxRetryAfter               = 60 * time.Second
)

type AgentConfig struct {
	Model string
	// MaxTransportAttempts bounds completion attempts per model turn.
	MaxTransportAttempts uint
	// MaxParseRetries is how many consecutive malformed replies are fed back
	// to the model before the run ends with MaxRetries.
	MaxParseRetries int
	MaxSteps        int
	BackoffInitial  time.Duration
	BackoffMax      time.Duration
}

func (c *AgentConfig) applyDefaults() {
	if c.MaxTransportAttempts == 0 {
		c.MaxTransportAttempts = defaultMaxTransportAttempts
	}
	if c.MaxParseRetries < 0 {
		c.MaxParseRetries = defaultMaxParseRetries
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = defaultMaxSteps
	}
	if c.BackoffInitial <= 0 {
		c.BackoffInitial = defaultBackoffInitial
	}
	if c.BackoffMax < c.BackoffInitial {
		c.BackoffMax = max(defaultBackoffMax, c.BackoffInitial)
	}
}

type AgentOption func(*Agent)

func WithClock(clock ports.Clock) AgentOption {
	return func(a *Agent) {
		if clock != nil {
			a.clock = clock
		}
	}
}

func WithLogger(logger *slog.Logger) AgentOption {
	return func(a *Agent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Agent drives one session through the awaiting-model, dispatching and
// appending states until the model is done, the run fails or ctx ends.
type Agent struct {
	completion ports.Completion
	workspace  ports.Workspace
	dispatcher *Dispatcher
	console    ports.Console
	clock      ports.Clock
	logger     *slog.Logger
	cfg        AgentConfig
}

func NewAgent(completion ports.Completion, workspace ports.Workspace, dispatcher *Dispatcher, console ports.Console, cfg AgentConfig, opts ...AgentOption) *Agent {
	cfg.applyDefaults()
	a := &Agent{
		completion: completion,
		workspace:  workspace,
		dispatcher: dispatcher,
		console:    console,
		clock:      ports.SystemClock{},
		logger:     logging.Nop(),
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run appends instruction to the session and loops until termination. The
// transcript in session reflects every turn taken, including on failure.
func (a *Agent) Run(ctx context.Context, session *domain.Session, instruction string) domain.Outcome {
	logger := a.logger.With("session_id", session.ID)

	if err := a.seed(ctx, session, instruction); err != nil {
		if ctx.Err() != nil {
			return a.finish(logger, domain.Outcome{Reason: domain.TerminatedCancelled, Err: cancelled(ctx)})
		}
		return a.finish(logger, domain.Outcome{Reason: domain.TerminatedError, Err: err})
	}

	var (
		state         = domain.StateAwaitingModel
		intent        domain.Intent
		result        domain.ActionResult
		parseFailures int
		steps         int
	)

	for {
		logger.Debug("agent state", "state", state, "step", steps)

		switch state {
		case domain.StateAwaitingModel:
			if ctx.Err() != nil {
				return a.finish(logger, domain.Outcome{Reason: domain.TerminatedCancelled, Err: cancelled(ctx), Steps: steps})
			}
			if steps >= a.cfg.MaxSteps {
				err := fmt.Errorf("%w: stopped after %d model turns", domain.ErrMaxRetries, steps)
				return a.finish(logger, domain.Outcome{Reason: domain.TerminatedMaxRetries, Err: err, Steps: steps})
			}
			steps++

			content, err := a.awaitModel(ctx, session, logger)
			if err != nil && !errors.Is(err, domain.ErrParse) {
				if ctx.Err() != nil {
					return a.finish(logger, domain.Outcome{Reason: domain.TerminatedCancelled, Err: cancelled(ctx), Steps: steps})
				}
				return a.finish(logger, domain.Outcome{Reason: domain.TerminatedError, Err: err, Steps: steps})
			}
			if err == nil {
				session.Append(domain.RoleAssistant, content, a.clock.Now())
				intent, err = ParseIntent(content)
			}
			if err != nil {
				parseFailures++
				logger.Warn("malformed model reply", "attempt", parseFailures, "error", err)
				if parseFailures > a.cfg.MaxParseRetries {
					err = fmt.Errorf("%w: %d consecutive malformed replies: %w", domain.ErrMaxRetries, parseFailures, err)
					return a.finish(logger, domain.Outcome{Reason: domain.TerminatedMaxRetries, Err: err, Steps: steps})
				}
				session.Append(domain.RoleToolResult, parseFeedback(err), a.clock.Now())
				a.console.Notice("The model sent an unreadable reply, asking it to try again")
				continue
			}
			parseFailures = 0

			a.console.Thought(intent.Thought)
			switch {
			case intent.HasAction():
				if intent.Output != "" && !intent.Done {
					a.console.Output(intent.Output)
				}
				state = domain.StateDispatching
			case intent.Done:
				return a.finish(logger, domain.Outcome{Reason: domain.TerminatedDone, Output: intent.Output, Steps: steps})
			default:
				outcome, asked := a.clarify(ctx, session, intent.Output)
				if !asked {
					outcome.Steps = steps
					return a.finish(logger, outcome)
				}
			}

		case domain.StateDispatching:
			a.console.ActionStarted(intent.Action, summarize(intent))
			result = a.dispatcher.Dispatch(ctx, session, intent)
			a.console.ActionFinished(result)
			state = domain.StateAppending

		case domain.StateAppending:
			session.Append(domain.RoleToolResult, result.TranscriptText(), a.clock.Now())
			if ctx.Err() != nil {
				return a.finish(logger, domain.Outcome{Reason: domain.TerminatedCancelled, Err: cancelled(ctx), Steps: steps})
			}
			if intent.Done {
				return a.finish(logger, domain.Outcome{Reason: domain.TerminatedDone, Output: intent.Output, Steps: steps})
			}
			state = domain.StateAwaitingModel
		}
	}
}

// seed appends the user's instruction. A fresh session also gets the
// workspace layout so the model does not start blind.
func (a *Agent) seed(ctx context.Context, session *domain.Session, instruction string) error {
	if session.Transcript.Len() > 0 {
		session.Append(domain.RoleUser, strings.TrimSpace(instruction), a.clock.Now())
		return nil
	}

	snapshot, err := a.workspace.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("snapshot workspace: %w", err)
	}
	session.Append(domain.RoleUser, InitialRequest(session.Root, instruction, snapshot), a.clock.Now())
	return nil
}

// clarify shows the model's question and reads the answer. asked is false
// when the run should end instead, with outcome describing why.
func (a *Agent) clarify(ctx context.Context, session *domain.Session, question string) (domain.Outcome, bool) {
	a.console.Output(question)
	reply, err := a.console.ReadLine(ctx, "> ")
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return domain.Outcome{Reason: domain.TerminatedCancelled, Err: cancelled(ctx)}, false
	case errors.Is(err, io.EOF):
		return domain.Outcome{Reason: domain.TerminatedDone}, false
	default:
		return domain.Outcome{Reason: domain.TerminatedError, Err: fmt.Errorf("read reply: %w", err)}, false
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return domain.Outcome{Reason: domain.TerminatedDone}, false
	}
	session.Append(domain.RoleUser, reply, a.clock.Now())
	return domain.Outcome{}, true
}

// awaitModel requests the next assistant message, retrying transport
// failures with exponential backoff. Retry-After hints from the provider
// replace the computed delay.
func (a *Agent) awaitModel(ctx context.Context, session *domain.Session, logger *slog.Logger) (string, error) {
	req := ports.CompletionRequest{
		Model:      a.cfg.Model,
		System:     session.SystemPrompt,
		Messages:   session.Transcript.Messages(),
		JSONObject: true,
	}

	var content string
	err := a.console.Progress(ctx, "Thinking", func(ctx context.Context) error {
		policy := newHintedBackOff(a.cfg.BackoffInitial, a.cfg.BackoffMax)
		attempts := 0
		operation := func() (string, error) {
			attempts++
			reply, err := a.completion.Complete(ctx, req)
			if err == nil {
				return reply, nil
			}
			if ctx.Err() != nil {
				return "", backoff.Permanent(err)
			}
			var transportErr *domain.TransportError
			if !errors.As(err, &transportErr) || !transportErr.Retryable() {
				return "", backoff.Permanent(err)
			}
			policy.hint(transportErr.RetryAfter)
			return "", err
		}

		var err error
		content, err = backoff.Retry(ctx, operation,
			backoff.WithBackOff(policy),
			backoff.WithMaxTries(a.cfg.MaxTransportAttempts),
			backoff.WithMaxElapsedTime(0),
			backoff.WithNotify(func(err error, wait time.Duration) {
				logger.Warn("completion failed, retrying", "attempt", attempts, "wait", wait, "error", err)
				a.console.Notice(fmt.Sprintf("Model request failed (%v), retrying in %s", err, wait.Round(time.Millisecond)))
			}),
		)
		if err != nil && !errors.Is(err, domain.ErrParse) && ctx.Err() == nil {
			return fmt.Errorf("completion failed after %d attempt(s): %w", attempts, err)
		}
		return err
	})
	return content, err
}

func (a *Agent) finish(logger *slog.Logger, outcome domain.Outcome) domain.Outcome {
	if outcome.Err != nil {
		logger.Info("agent terminated", "reason", outcome.Reason, "steps", outcome.Steps, "error", outcome.Err)
	} else {
		logger.Info("agent terminated", "reason", outcome.Reason, "steps", outcome.Steps)
	}
	return outcome
}

func parseFeedback(err error) string {
	return fmt.Sprintf("[%s] error (%s): %v. Reply with exactly one JSON object matching the response format.",
		domain.ActionNone, domain.FailureParse, err)
}

func cancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", domain.ErrCancelled, context.Cause(ctx))
}

// hintedBackOff is an exponential backoff whose next delay can be replaced
// by a provider Retry-After value.
type hintedBackOff struct {
	base *backoff.ExponentialBackOff
	next time.Duration
}

func newHintedBackOff(initial, maxInterval time.Duration) *hintedBackOff {
	base := backoff.NewExponentialBackOff()
	base.InitialInterval = initial
	base.MaxInterval = maxInterval
	base.Multiplier = 2
	return &hintedBackOff{base: base}
}

func (b *hintedBackOff) hint(wait time.Duration) {
	b.next = min(wait, maxRetryAfter)
}

func (b *hintedBackOff) NextBackOff() time.Duration {
	if b.next > 0 {
		wait := b.next
		b.next = 0
		return wait
	}
	return b.base.NextBackOff()
}

func (b *hintedBackOff) Reset() {
	b.next = 0
	b.base.Reset()
}
