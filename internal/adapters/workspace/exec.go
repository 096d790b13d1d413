package workspace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/bnema/coda-cli/internal/domain"
)

const waitDelay = 2 * time.Second

// ExecuteCommand runs command through the shell in the workspace root. A
// non-zero exit is reported in the result, not as an error. Exceeding the
// timeout kills the whole process group and fails with ErrTimeout.
func (w *Workspace) ExecuteCommand(ctx context.Context, command string) (domain.CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.CommandResult{}, err
	}

	result := domain.CommandResult{Command: command}

	runCtx, cancel := context.WithTimeout(ctx, w.opts.CommandTimeout)
	defer cancel()

	stdout := &cappedBuffer{max: w.opts.MaxOutputBytes}
	stderr := &cappedBuffer{max: w.opts.MaxOutputBytes}

	args := append(append([]string{}, w.opts.Shell[1:]...), command)
	cmd := exec.CommandContext(runCtx, w.opts.Shell[0], args...)
	cmd.Dir = w.root
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay
	configureProcessGroup(cmd)

	started := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(started)
	result.Stdout, result.StdoutTruncated = stdout.String(), stdout.truncated
	result.Stderr, result.StderrTruncated = stderr.String(), stderr.truncated

	if ctx.Err() != nil {
		return result, fmt.Errorf("%w: %w", domain.ErrCancelled, ctx.Err())
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return result, domain.NewActionError(domain.ErrTimeout, "", fmt.Sprintf("%q did not finish within %s", command, w.opts.CommandTimeout))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("run command: %w", err)
	}

	return result, nil
}

// cappedBuffer keeps the first max bytes written and discards the rest.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

// Write never splits a UTF-8 sequence at the cap. Once anything is dropped,
// later writes are dropped too so the kept output stays a prefix.
func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.truncated {
		return len(p), nil
	}
	remaining := b.max - b.buf.Len()
	if len(p) <= remaining {
		return b.buf.Write(p)
	}

	b.buf.Write(p[:max(remaining, 0)])
	b.truncated = true
	b.trimPartialRune()
	return len(p), nil
}

// trimPartialRune drops an incomplete multi-byte sequence left at the end of
// the buffer by the cap.
func (b *cappedBuffer) trimPartialRune() {
	data := b.buf.Bytes()
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(data[i]) {
			continue
		}
		if !utf8.FullRune(data[i:]) {
			b.buf.Truncate(i)
		}
		return
	}
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
