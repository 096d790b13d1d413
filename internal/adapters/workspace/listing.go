package workspace

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/spf13/afero"
)

// ListDirectory returns directories first, then files, each sorted by name.
// Dotfiles and ignored entries are left out.
func (w *Workspace) ListDirectory(ctx context.Context, dirPath string) ([]domain.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, rel, err := w.resolve(dirPath)
	if err != nil {
		return nil, err
	}

	info, err := w.fs.Stat(abs)
	if err != nil {
		if missing(err) {
			return nil, domain.NewActionError(domain.ErrNotFound, rel, "")
		}
		return nil, fmt.Errorf("stat %s: %w", rel, err)
	}
	if !info.IsDir() {
		return nil, domain.NewActionError(domain.ErrNotADirectory, rel, "")
	}

	return w.visibleEntries(abs, rel)
}

func (w *Workspace) visibleEntries(abs, rel string) ([]domain.DirEntry, error) {
	infos, err := afero.ReadDir(w.fs, abs)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", rel, err)
	}

	entries := make([]domain.DirEntry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if w.ignore.Match(path.Join(rel, name)) {
			continue
		}

		entry := domain.DirEntry{Name: name, Type: domain.EntryFile, Size: info.Size()}
		if info.IsDir() {
			entry.Type = domain.EntryDirectory
			entry.Size = 0
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type == domain.EntryDirectory
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Snapshot renders the visible tree under root as an indented listing,
// bounded in depth and entry count.
func (w *Workspace) Snapshot(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	remaining := w.opts.SnapshotLimit
	truncated, err := w.snapshotDir(ctx, w.root, ".", 0, &remaining, &b)
	if err != nil {
		return "", err
	}
	if b.Len() == 0 {
		return "(empty workspace)", nil
	}
	if truncated {
		fmt.Fprintf(&b, "... (listing truncated after %d entries)\n", w.opts.SnapshotLimit)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func (w *Workspace) snapshotDir(ctx context.Context, abs, rel string, depth int, remaining *int, b *strings.Builder) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	entries, err := w.visibleEntries(abs, rel)
	if err != nil {
		return false, err
	}

	indent := strings.Repeat("  ", depth)
	for _, entry := range entries {
		if *remaining <= 0 {
			return true, nil
		}
		*remaining--

		if entry.Type == domain.EntryFile {
			fmt.Fprintf(b, "%s%s\n", indent, entry.Name)
			continue
		}

		fmt.Fprintf(b, "%s%s/\n", indent, entry.Name)
		if depth+1 >= w.opts.SnapshotDepth {
			continue
		}
		truncated, err := w.snapshotDir(ctx, filepath.Join(abs, entry.Name), path.Join(rel, entry.Name), depth+1, remaining, b)
		if err != nil || truncated {
			return truncated, err
		}
	}

	return false, nil
}
