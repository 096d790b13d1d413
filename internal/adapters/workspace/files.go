package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/spf13/afero"
)

func (w *Workspace) CreateFile(ctx context.Context, path, content string, overwrite bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	abs, rel, err := w.resolve(path)
	if err != nil {
		return 0, err
	}
	if rel == "." {
		return 0, domain.NewActionError(domain.ErrNotAFile, path, "the workspace root is a directory")
	}

	mode := os.FileMode(defaultFileMode)
	info, err := w.fs.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return 0, domain.NewActionError(domain.ErrNotAFile, rel, "a directory occupies this path")
	case err == nil && !overwrite:
		return 0, domain.NewActionError(domain.ErrAlreadyExists, rel, "set overwrite to replace it")
	case err == nil:
		mode = info.Mode().Perm()
	case !missing(err):
		return 0, fmt.Errorf("stat %s: %w", rel, err)
	}

	if err := w.ensureDir(filepath.Dir(abs)); err != nil {
		return 0, err
	}
	if err := w.writeAtomic(abs, []byte(content), mode); err != nil {
		return 0, fmt.Errorf("write %s: %w", rel, err)
	}

	return int64(len(content)), nil
}

// CreateFolder reports whether the directory was created; an existing
// directory is not an error.
func (w *Workspace) CreateFolder(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	abs, rel, err := w.resolve(path)
	if err != nil {
		return false, err
	}

	info, err := w.fs.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, domain.NewActionError(domain.ErrNotADirectory, rel, "a file occupies this path")
	case !missing(err):
		return false, fmt.Errorf("stat %s: %w", rel, err)
	}

	if err := w.ensureDir(abs); err != nil {
		return false, err
	}

	return true, nil
}

func (w *Workspace) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, rel, err := w.resolve(path)
	if err != nil {
		return "", err
	}
	if err := w.requireFile(abs, rel); err != nil {
		return "", err
	}

	data, err := afero.ReadFile(w.fs, abs)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}

	return string(data), nil
}

// UpdateFile replaces the first verbatim occurrence of search. The file is
// left untouched when search does not occur.
func (w *Workspace) UpdateFile(ctx context.Context, path, search, replace string) (domain.FileEdit, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileEdit{}, err
	}

	abs, rel, err := w.resolve(path)
	if err != nil {
		return domain.FileEdit{}, err
	}
	if err := w.requireFile(abs, rel); err != nil {
		return domain.FileEdit{}, err
	}

	info, err := w.fs.Stat(abs)
	if err != nil {
		return domain.FileEdit{}, fmt.Errorf("stat %s: %w", rel, err)
	}

	data, err := afero.ReadFile(w.fs, abs)
	if err != nil {
		return domain.FileEdit{}, fmt.Errorf("read %s: %w", rel, err)
	}
	before := string(data)

	index := strings.Index(before, search)
	if search == "" || index < 0 {
		return domain.FileEdit{}, domain.NewActionError(domain.ErrPatternNotFound, rel, "search text must match the file verbatim; read the file again")
	}

	after := before[:index] + replace + before[index+len(search):]

	if err := ctx.Err(); err != nil {
		return domain.FileEdit{}, err
	}
	if err := w.writeAtomic(abs, []byte(after), info.Mode().Perm()); err != nil {
		return domain.FileEdit{}, fmt.Errorf("write %s: %w", rel, err)
	}

	return domain.FileEdit{
		Path:    rel,
		Matches: strings.Count(before, search),
		Diff:    lineDiff(before, after),
	}, nil
}

func (w *Workspace) DeleteFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, rel, err := w.resolve(path)
	if err != nil {
		return err
	}
	if err := w.requireFile(abs, rel); err != nil {
		return err
	}

	if err := w.fs.Remove(abs); err != nil {
		return fmt.Errorf("delete %s: %w", rel, err)
	}

	return nil
}

func (w *Workspace) requireFile(abs, rel string) error {
	info, err := w.fs.Stat(abs)
	if err != nil {
		if missing(err) {
			return domain.NewActionError(domain.ErrNotFound, rel, "")
		}
		return fmt.Errorf("stat %s: %w", rel, err)
	}
	if info.IsDir() {
		return domain.NewActionError(domain.ErrNotAFile, rel, "it is a directory")
	}
	return nil
}

// ensureDir creates dir and its missing parents. A file anywhere along the
// way fails with NotADirectory instead of an OS-specific error.
func (w *Workspace) ensureDir(dir string) error {
	info, err := w.fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return domain.NewActionError(domain.ErrNotADirectory, w.relative(dir), "a file occupies this path")
		}
		return nil
	}
	if !missing(err) {
		return fmt.Errorf("stat %s: %w", w.relative(dir), err)
	}

	parent := filepath.Dir(dir)
	if parent != dir {
		if err := w.ensureDir(parent); err != nil {
			return err
		}
	}

	if err := w.fs.Mkdir(dir, defaultDirMode); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create directory %s: %w", w.relative(dir), err)
	}

	return nil
}

// writeAtomic writes to a temp file next to path and renames it into place,
// so readers see either the old or the new content.
func (w *Workspace) writeAtomic(path string, data []byte, mode os.FileMode) error {
	tempFile, err := afero.TempFile(w.fs, filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = w.fs.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := w.fs.Chmod(tempName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := w.fs.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	cleanup = false
	return nil
}

// missing reports stat errors meaning "nothing there", including a file
// standing in for one of the parent directories.
func missing(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
