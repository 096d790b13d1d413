package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports"
	"github.com/spf13/afero"
)

const (
	defaultCommandTimeout = 2 * time.Minute
	defaultMaxOutputBytes = 64 * 1024
	defaultSnapshotDepth  = 3
	defaultSnapshotLimit  = 200
	defaultFileMode       = 0o644
	defaultDirMode        = 0o755
	tempFilePattern       = ".coda-*.tmp"
)

var DefaultIgnore = []string{"node_modules", "vendor", "dist", "build", "target", "__pycache__", "*.log"}

type Options struct {
	CommandTimeout time.Duration
	MaxOutputBytes int
	Ignore         []string
	SnapshotDepth  int
	SnapshotLimit  int
	// Shell is the argv prefix the command string is appended to.
	Shell []string
}

func (o *Options) applyDefaults() {
	if o.CommandTimeout <= 0 {
		o.CommandTimeout = defaultCommandTimeout
	}
	if o.MaxOutputBytes <= 0 {
		o.MaxOutputBytes = defaultMaxOutputBytes
	}
	if o.Ignore == nil {
		o.Ignore = DefaultIgnore
	}
	if o.SnapshotDepth <= 0 {
		o.SnapshotDepth = defaultSnapshotDepth
	}
	if o.SnapshotLimit <= 0 {
		o.SnapshotLimit = defaultSnapshotLimit
	}
	if len(o.Shell) == 0 {
		o.Shell = defaultShell()
	}
}

// Workspace confines every file and process operation to root. It keeps no
// state besides the filesystem it wraps.
type Workspace struct {
	fs       afero.Fs
	root     string
	realRoot string
	opts     Options
	ignore   IgnoreSet
	catalog  catalog
	// realpath resolves symlinks; nil for filesystems without them.
	realpath func(string) (string, error)
}

var _ ports.Workspace = (*Workspace)(nil)

func New(fs afero.Fs, root string, opts Options) (*Workspace, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	opts.applyDefaults()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	absRoot = filepath.Clean(absRoot)

	info, err := fs.Stat(absRoot)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewActionError(domain.ErrNotFound, absRoot, "workspace root")
		}
		return nil, fmt.Errorf("stat workspace root: %w", err)
	}
	if !info.IsDir() {
		return nil, domain.NewActionError(domain.ErrNotADirectory, absRoot, "workspace root")
	}

	ignore, err := NewIgnoreSet(opts.Ignore)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	w := &Workspace{
		fs:       fs,
		root:     absRoot,
		realRoot: absRoot,
		opts:     opts,
		ignore:   ignore,
		catalog:  cat,
	}

	if _, ok := fs.(*afero.OsFs); ok {
		w.realpath = filepath.EvalSymlinks
		realRoot, err := filepath.EvalSymlinks(absRoot)
		if err != nil {
			return nil, fmt.Errorf("resolve workspace root symlinks: %w", err)
		}
		w.realRoot = realRoot
	}

	return w, nil
}

func (w *Workspace) Root() string {
	return w.root
}

func (w *Workspace) Templates() []domain.Template {
	return w.catalog.list()
}

// resolve maps path onto the filesystem. Symlinks along the existing part of
// the path must not lead outside the root either.
func (w *Workspace) resolve(path string) (string, string, error) {
	abs, rel, ok := domain.ResolveWithin(w.root, path)
	if !ok {
		return "", "", domain.NewActionError(domain.ErrPathEscape, path, "")
	}
	if w.realpath == nil {
		return abs, rel, nil
	}

	existing := abs
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		existing = parent
	}

	real, err := w.realpath(existing)
	if err != nil {
		return "", "", fmt.Errorf("resolve symlinks for %s: %w", rel, err)
	}
	if !domain.Within(w.realRoot, real) {
		return "", "", domain.NewActionError(domain.ErrPathEscape, path, "symlink leads outside the workspace")
	}

	return abs, rel, nil
}

func (w *Workspace) relative(abs string) string {
	rel, err := filepath.Rel(w.root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}
