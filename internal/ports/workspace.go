package ports

import (
	"context"

	"github.com/bnema/coda-cli/internal/domain"
)

// Workspace is the sandboxed filesystem and process accessor. Paths are
// relative to Root; anything resolving outside it fails with
// domain.ErrPathEscape before touching the filesystem.
type Workspace interface {
	Root() string
	CreateFile(ctx context.Context, path, content string, overwrite bool) (int64, error)
	CreateFolder(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) (string, error)
	ListDirectory(ctx context.Context, path string) ([]domain.DirEntry, error)
	UpdateFile(ctx context.Context, path, search, replace string) (domain.FileEdit, error)
	DeleteFile(ctx context.Context, path string) error
	ExecuteCommand(ctx context.Context, command string) (domain.CommandResult, error)
	ScaffoldProject(ctx context.Context, template, name string) (domain.ScaffoldResult, error)
	Templates() []domain.Template
	Snapshot(ctx context.Context) (string, error)
}
