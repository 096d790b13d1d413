package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/logging"
	"github.com/bnema/coda-cli/internal/ports"
	humanize "github.com/dustin/go-humanize"
)

// Confirmer asks the user to approve a destructive command.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type DispatcherOptions struct {
	// AssumeYes approves destructive commands without asking.
	AssumeYes               bool
	RequireReadBeforeUpdate bool
}

// Dispatcher routes validated intents to the workspace. Each Dispatch makes
// at most one workspace call and never returns an error: every failure is
// folded into the ActionResult so the loop can report it to the model.
type Dispatcher struct {
	workspace ports.Workspace
	confirmer Confirmer
	logger    *slog.Logger
	opts      DispatcherOptions
}

func NewDispatcher(workspace ports.Workspace, confirmer Confirmer, logger *slog.Logger, opts DispatcherOptions) *Dispatcher {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Dispatcher{workspace: workspace, confirmer: confirmer, logger: logger, opts: opts}
}

func (d *Dispatcher) Dispatch(ctx context.Context, session *domain.Session, intent domain.Intent) domain.ActionResult {
	if !intent.HasAction() {
		return domain.Succeeded(domain.ActionNone, intent.Output)
	}

	policy := Policy{
		Confirmed:               d.opts.AssumeYes,
		RequireReadBeforeUpdate: d.opts.RequireReadBeforeUpdate,
		Known:                   session.Knows,
	}
	verdict := Validate(intent.Action, intent.Input, d.workspace.Root(), policy)
	if verdict.NeedsConfirmation && d.confirmer != nil {
		if d.confirm(ctx, verdict) {
			policy.Confirmed = true
			verdict = Validate(intent.Action, intent.Input, d.workspace.Root(), policy)
		}
	}
	if !verdict.Approved() {
		d.logger.Info("action rejected", "action", intent.Action, "reason", verdict.Reason)
		return domain.Failed(intent.Action, domain.FailureRejected, verdict.Reason)
	}

	result := d.execute(ctx, session, verdict)
	if result.OK() {
		d.logger.Debug("action succeeded", "action", result.Action, "path", verdict.Path)
	} else {
		d.logger.Info("action failed", "action", result.Action, "kind", result.Failure.Kind, "error", result.Failure.Message)
	}
	return result
}

func (d *Dispatcher) confirm(ctx context.Context, verdict Verdict) bool {
	in, ok := verdict.Input.(domain.ExecuteCommandInput)
	if !ok {
		return false
	}
	approved, err := d.confirmer.Confirm(ctx, fmt.Sprintf("Run %q? It looks destructive", in.Command))
	if err != nil {
		d.logger.Warn("confirmation failed", "error", err)
		return false
	}
	return approved
}

func (d *Dispatcher) execute(ctx context.Context, session *domain.Session, verdict Verdict) domain.ActionResult {
	kind := verdict.Input.Kind()

	switch in := verdict.Input.(type) {
	case domain.CreateFileInput:
		size, err := d.workspace.CreateFile(ctx, in.Path, in.Content, in.Overwrite)
		if err != nil {
			return domain.FailedWith(kind, err)
		}
		session.MarkKnown(verdict.Path)
		return domain.Succeeded(kind, fmt.Sprintf("wrote %s (%s)", verdict.Path, humanize.Bytes(uint64(size))))

	case domain.CreateFolderInput:
		created, err := d.workspace.CreateFolder(ctx, in.Path)
		if err != nil {
			return domain.FailedWith(kind, err)
		}
		if !created {
			return domain.Succeeded(kind, fmt.Sprintf("%s/ already exists", verdict.Path))
		}
		return domain.Succeeded(kind, fmt.Sprintf("created %s/", verdict.Path))

	case domain.ReadFileInput:
		content, err := d.workspace.ReadFile(ctx, in.Path)
		if err != nil {
			return domain.FailedWith(kind, err)
		}
		session.MarkKnown(verdict.Path)
		return domain.Succeeded(kind, formatRead(verdict.Path, content))

	case domain.ListDirectoryInput:
		entries, err := d.workspace.ListDirectory(ctx, in.Path)
		if err != nil {
			return domain.FailedWith(kind, err)
		}
		return domain.Succeeded(kind, formatListing(verdict.Path, entries))

	case domain.UpdateFileInput:
		edit, err := d.workspace.UpdateFile(ctx, in.Path, in.Search, in.Replace)
		if err != nil {
			return domain.FailedWith(kind, err)
		}
		return domain.Succeeded(kind, formatEdit(edit))

	case domain.DeleteFileInput:
		if err := d.workspace.DeleteFile(ctx, in.Path); err != nil {
			return domain.FailedWith(kind, err)
		}
		session.Forget(verdict.Path)
		return domain.Succeeded(kind, fmt.Sprintf("deleted %s", verdict.Path))

	case domain.ExecuteCommandInput:
		result, err := d.workspace.ExecuteCommand(ctx, in.Command)
		if err != nil {
			failed := domain.FailedWith(kind, err)
			if errors.Is(err, domain.ErrTimeout) {
				failed.Failure.Message += "\n" + formatCommand(result)
			}
			return failed
		}
		return domain.Succeeded(kind, formatCommand(result))

	case domain.ScaffoldProjectInput:
		result, err := d.workspace.ScaffoldProject(ctx, in.Template, in.Name)
		if err != nil {
			return domain.FailedWith(kind, err)
		}
		for _, file := range result.Files {
			session.MarkKnown(file)
		}
		return domain.Succeeded(kind, formatScaffold(result))
	}

	return domain.Failed(kind, domain.FailureInternal, fmt.Sprintf("no handler for %T", verdict.Input))
}
