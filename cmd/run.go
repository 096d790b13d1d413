package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	consoleadapter "github.com/bnema/coda-cli/internal/adapters/console"
	"github.com/bnema/coda-cli/internal/adapters/workspace"
	"github.com/bnema/coda-cli/internal/application"
	"github.com/bnema/coda-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type runOptions struct {
	interactive bool
	resume      bool
	yes         bool
	workDir     string
	model       string
}

func runAgent(cmd *cobra.Command, app *app, opts runOptions, args []string) error {
	ctx := cmd.Context()
	cfg := app.cfg

	root, err := resolveRoot(opts.workDir)
	if err != nil {
		return err
	}

	logger := app.logger

	ws, err := workspace.New(afero.NewOsFs(), root, workspace.Options{
		CommandTimeout: cfg.Workspace.CommandTimeout,
		MaxOutputBytes: cfg.Workspace.MaxOutputBytes,
		Ignore:         cfg.Workspace.Ignore,
		SnapshotDepth:  cfg.Workspace.SnapshotDepth,
	})
	if err != nil {
		return fmt.Errorf("open workspace: %w", err)
	}

	out := cmd.OutOrStdout()
	console := consoleadapter.New(consoleadapter.Options{
		In:    cmd.InOrStdin(),
		Out:   out,
		Fancy: app.isTerminal(out),
		Width: terminalWidth(out),
	})

	instruction := strings.TrimSpace(strings.Join(args, " "))
	if instruction == "" {
		instruction, err = readInstruction(ctx, console, "What should I do? ")
		if err != nil {
			return err
		}
		if instruction == "" {
			return errors.New("no instruction given")
		}
	}

	apiKey, source, err := app.credentials.ResolveAPIKey(ctx, cfg.Model.APIKeyEnv, cfg.Model.APIKeySecret)
	if err != nil {
		return err
	}
	completion, err := app.newCompletion(cfg.Model, apiKey)
	if err != nil {
		return fmt.Errorf("wire completion client: %w", err)
	}

	systemPrompt, err := application.SystemPrompt(ws.Templates())
	if err != nil {
		return fmt.Errorf("build system prompt: %w", err)
	}

	session, resumed, err := app.sessions.Start(ctx, ws.Root(), systemPrompt, opts.resume)
	if err != nil {
		return err
	}
	switch {
	case resumed:
		console.Notice(fmt.Sprintf("Resuming session with %d messages", session.Transcript.Len()))
	case opts.resume:
		console.Notice("No saved session for this directory, starting fresh")
	}

	model := cfg.Model.Name
	if strings.TrimSpace(opts.model) != "" {
		model = strings.TrimSpace(opts.model)
	}
	logger.Info("run started",
		"session_id", session.ID,
		"root", ws.Root(),
		"provider", cfg.Model.Provider,
		"model", model,
		"key_source", source,
		"resumed", resumed,
	)

	dispatcher := application.NewDispatcher(ws, console, logger, application.DispatcherOptions{
		AssumeYes:               opts.yes,
		RequireReadBeforeUpdate: cfg.Agent.RequireReadBeforeUpdate,
	})
	agent := application.NewAgent(completion, ws, dispatcher, console, application.AgentConfig{
		Model:                model,
		MaxTransportAttempts: cfg.Agent.MaxTransportAttempts,
		MaxParseRetries:      cfg.Agent.MaxParseRetries,
		MaxSteps:             cfg.Agent.MaxSteps,
		BackoffInitial:       cfg.Agent.BackoffInitial,
		BackoffMax:           cfg.Agent.BackoffMax,
	}, application.WithLogger(logger))

	for {
		outcome := agent.Run(ctx, session, instruction)

		if cfg.Session.Persist {
			// A cancelled run still keeps its transcript.
			if err := app.sessions.Save(context.WithoutCancel(ctx), session); err != nil {
				logger.Warn("save session failed", "session_id", session.ID, "error", err)
				console.Notice(fmt.Sprintf("Could not save the session: %v", err))
			}
		}

		if err := outcomeError(outcome); err != nil {
			return err
		}
		console.Output(outcome.Output)

		if !opts.interactive {
			return nil
		}
		instruction, err = readInstruction(ctx, console, "> ")
		if err != nil {
			return err
		}
		if instruction == "" {
			return nil
		}
	}
}

// readInstruction returns "" when the user ends input.
func readInstruction(ctx context.Context, console *consoleadapter.Console, prompt string) (string, error) {
	line, err := console.ReadLine(ctx, prompt)
	switch {
	case err == nil:
		return strings.TrimSpace(line), nil
	case ctx.Err() != nil:
		return "", outcomeError(domain.Outcome{Reason: domain.TerminatedCancelled, Err: ctx.Err()})
	case errors.Is(err, io.EOF):
		return "", nil
	default:
		return "", err
	}
}

func resolveRoot(workDir string) (string, error) {
	if strings.TrimSpace(workDir) == "" {
		workDir = "."
	}
	root, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve workspace root: %w", err)
	}
	return filepath.Clean(root), nil
}
