package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPathEscape      = errors.New("path escapes workspace root")
	ErrNotFound        = errors.New("not found")
	ErrNotAFile        = errors.New("not a file")
	ErrNotADirectory   = errors.New("not a directory")
	ErrAlreadyExists   = errors.New("already exists")
	ErrPatternNotFound = errors.New("search pattern not found")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrRejected        = errors.New("action rejected")
	ErrParse           = errors.New("malformed intent")
	ErrTransport       = errors.New("completion transport failure")
	ErrTimeout         = errors.New("command timed out")
	ErrCancelled       = errors.New("cancelled")
	ErrMaxRetries      = errors.New("retry ceiling exceeded")

	ErrSessionNotFound = errors.New("session not found")
	ErrSecretNotFound  = errors.New("secret not found")
)

// FailureKind is the taxonomy tag carried by a failed ActionResult and by
// session terminations.
type FailureKind string

const (
	FailurePathEscape      FailureKind = "PathEscape"
	FailureNotFound        FailureKind = "NotFound"
	FailureNotAFile        FailureKind = "NotAFile"
	FailureNotADirectory   FailureKind = "NotADirectory"
	FailureAlreadyExists   FailureKind = "AlreadyExists"
	FailurePatternNotFound FailureKind = "PatternNotFound"
	FailureUnknownTemplate FailureKind = "UnknownTemplate"
	FailureRejected        FailureKind = "Rejected"
	FailureParse           FailureKind = "ParseError"
	FailureTransport       FailureKind = "TransportError"
	FailureTimeout         FailureKind = "Timeout"
	FailureCancelled       FailureKind = "Cancelled"
	FailureMaxRetries      FailureKind = "MaxRetries"
	FailureInternal        FailureKind = "Internal"
)

var failureKinds = []struct {
	sentinel error
	kind     FailureKind
}{
	{ErrPathEscape, FailurePathEscape},
	{ErrNotFound, FailureNotFound},
	{ErrNotAFile, FailureNotAFile},
	{ErrNotADirectory, FailureNotADirectory},
	{ErrAlreadyExists, FailureAlreadyExists},
	{ErrPatternNotFound, FailurePatternNotFound},
	{ErrUnknownTemplate, FailureUnknownTemplate},
	{ErrRejected, FailureRejected},
	{ErrParse, FailureParse},
	{ErrTransport, FailureTransport},
	{ErrTimeout, FailureTimeout},
	{ErrCancelled, FailureCancelled},
	{ErrMaxRetries, FailureMaxRetries},
}

// KindOf maps an error onto the failure taxonomy. Unclassified errors are
// reported as Internal.
func KindOf(err error) FailureKind {
	if err == nil {
		return ""
	}
	for _, entry := range failureKinds {
		if errors.Is(err, entry.sentinel) {
			return entry.kind
		}
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return FailureTransport
	}
	return FailureInternal
}

// ActionError is a workspace or validation failure tied to a path.
type ActionError struct {
	Kind   error
	Path   string
	Detail string
	Err    error
}

func NewActionError(kind error, path string, detail string) *ActionError {
	return &ActionError{Kind: kind, Path: path, Detail: detail}
}

func (e *ActionError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ActionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// TransportError is returned by completion adapters when the request did not
// produce an assistant message.
type TransportError struct {
	StatusCode  int
	RateLimited bool
	RetryAfter  time.Duration
	Err         error
}

func (e *TransportError) Error() string {
	switch {
	case e.RateLimited:
		return fmt.Sprintf("rate limited (status %d): %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("completion request failed with status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("completion request failed: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// Retryable reports whether another attempt may succeed.
func (e *TransportError) Retryable() bool {
	if e.RateLimited {
		return true
	}
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == 408, e.StatusCode == 409:
		return true
	case e.StatusCode >= 500:
		return true
	default:
		return false
	}
}
