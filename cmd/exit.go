package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/coda-cli/internal/domain"
)

const (
	codeDone       = 0
	codeError      = 1
	codeMaxRetries = 2
	codeCancelled  = 130
)

var errCancelledByUser = errors.New("cancelled by user")

// exitError carries the process exit status for a run that did not finish
// normally.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return codeDone
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return codeError
}

// outcomeError turns an abnormal termination into the final message the
// user sees.
func outcomeError(outcome domain.Outcome) error {
	switch outcome.Reason {
	case domain.TerminatedDone:
		return nil
	case domain.TerminatedCancelled:
		return &exitError{code: codeCancelled, err: errCancelledByUser}
	case domain.TerminatedMaxRetries:
		if errors.Is(outcome.Err, domain.ErrParse) {
			return &exitError{code: codeMaxRetries, err: fmt.Errorf("the assistant gave up after repeated invalid responses: %w", outcome.Err)}
		}
		return &exitError{code: codeMaxRetries, err: fmt.Errorf("the assistant reached its step limit: %w", outcome.Err)}
	default:
		var transportErr *domain.TransportError
		if errors.As(outcome.Err, &transportErr) {
			return &exitError{code: codeError, err: fmt.Errorf("the model service failed: %w", outcome.Err)}
		}
		return &exitError{code: codeError, err: fmt.Errorf("the run failed: %w", outcome.Err)}
	}
}
