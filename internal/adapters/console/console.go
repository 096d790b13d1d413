// Package console renders the agent loop for a terminal and reads answers
// from the user.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ ports.Console = (*Console)(nil)

type Options struct {
	In  io.Reader
	Out io.Writer
	// Fancy enables spinners and markdown rendering. Callers set it when Out
	// is a terminal.
	Fancy bool
	Width int
}

type Console struct {
	out    io.Writer
	fancy  bool
	width  int
	styles styles

	mu sync.Mutex
	// active is the running spinner; lines printed meanwhile go above it.
	active *tea.Program

	lines chan lineResult
	in    *bufio.Reader
	once  sync.Once
}

type lineResult struct {
	text string
	err  error
}

func New(opts Options) *Console {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	var in *bufio.Reader
	if opts.In != nil {
		in = bufio.NewReader(opts.In)
	}

	return &Console{
		out:    out,
		fancy:  opts.Fancy,
		width:  opts.Width,
		styles: newStyles(lipgloss.NewRenderer(out)),
		in:     in,
	}
}

func (c *Console) Thought(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	c.println(c.styles.renderThought(text))
}

func (c *Console) Output(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if c.fancy {
		text = renderMarkdown(text, c.width)
	}
	c.println(text)
}

func (c *Console) Notice(text string) {
	c.println(c.styles.renderNotice(text))
}

func (c *Console) ActionStarted(kind domain.ActionKind, summary string) {
	c.println(c.styles.renderAction(kind, summary))
}

func (c *Console) ActionFinished(result domain.ActionResult) {
	c.println(c.styles.renderResult(result))
}

// Progress runs fn behind a spinner when the console is fancy and plainly
// otherwise. It returns only after fn has returned.
func (c *Console) Progress(ctx context.Context, label string, fn func(context.Context) error) error {
	if !c.fancy {
		return fn(ctx)
	}

	p := newSpinnerProgram(ctx, c.out, label, c.styles.spinner)
	c.mu.Lock()
	c.active = p
	c.mu.Unlock()

	return runSpinner(ctx, p, fn, func() {
		c.mu.Lock()
		c.active = nil
		c.mu.Unlock()
	})
}

// ReadLine prints prompt and waits for one line of input. Reading happens on
// a background goroutine so cancellation does not wait for the user.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", context.Cause(ctx)
	}
	if c.in == nil {
		return "", io.EOF
	}

	c.once.Do(func() {
		c.lines = make(chan lineResult)
		go c.readLoop()
	})

	c.print(c.styles.prompt.Render(prompt))

	select {
	case <-ctx.Done():
		c.println("")
		return "", context.Cause(ctx)
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

func (c *Console) readLoop() {
	defer close(c.lines)
	for {
		text, err := c.in.ReadString('\n')
		text = strings.TrimRight(text, "\r\n")
		if err != nil {
			if text != "" {
				c.lines <- lineResult{text: text}
			}
			if !errors.Is(err, io.EOF) {
				c.lines <- lineResult{err: fmt.Errorf("read input: %w", err)}
			}
			return
		}
		c.lines <- lineResult{text: text}
	}
}

// Confirm asks a yes/no question. Anything but y or yes declines, including
// end of input.
func (c *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := c.ReadLine(ctx, prompt+" [y/N] ")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (c *Console) print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprint(c.out, text)
}

// println goes through the running spinner program, if any, so the line
// lands above the spinner. Send gives up once the program has exited.
func (c *Console) println(text string) {
	c.mu.Lock()
	active := c.active
	if active == nil {
		_, _ = fmt.Fprintln(c.out, text)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	active.Send(progressPrintMsg{text: text})
}
