package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type progressDoneMsg struct{}

// progressPrintMsg prints a line above the spinner.
type progressPrintMsg struct {
	text string
}

type progressModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newProgressModel(label string, style lipgloss.Style) progressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(style),
	)

	return progressModel{
		spinner: s,
		label:   label,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressPrintMsg:
		return m, tea.Println(msg.text)
	case progressDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s...", m.spinner.View(), m.label)
}

func newSpinnerProgram(ctx context.Context, output io.Writer, label string, style lipgloss.Style) *tea.Program {
	return tea.NewProgram(
		newProgressModel(label, style),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)
}

// runSpinner shows the spinner until work returns and reports work's error.
// stopped is called once the program has exited, which may be before work
// returns when ctx is cancelled. runSpinner itself never returns while work is
// still running.
func runSpinner(ctx context.Context, p *tea.Program, work func(context.Context) error, stopped func()) error {
	workDone := make(chan error, 1)
	go func() {
		err := work(ctx)
		workDone <- err
		p.Send(progressDoneMsg{})
	}()

	_, _ = p.Run()
	stopped()
	return <-workDone
}
