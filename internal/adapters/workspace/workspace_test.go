package workspace

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memRoot = "/work"

func newMemWorkspace(t *testing.T, opts Options) (*Workspace, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(memRoot, 0o755))

	ws, err := New(fs, memRoot, opts)
	require.NoError(t, err)
	return ws, fs
}

func writeMemFile(t *testing.T, fs afero.Fs, rel, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(memRoot, rel), []byte(content), 0o644))
}

func fsTree(t *testing.T, fs afero.Fs) map[string]string {
	t.Helper()

	tree := map[string]string{}
	err := afero.Walk(fs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			tree[path] = "<dir>"
			return nil
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		tree[path] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestNewRejectsMissingOrFileRoot(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := New(fs, "/missing", Options{})
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, afero.WriteFile(fs, "/file", []byte("x"), 0o644))
	_, err = New(fs, "/file", Options{})
	require.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestOperationsOutsideRootFailWithPathEscapeAndMutateNothing(t *testing.T) {
	t.Parallel()

	escapes := []string{"../outside.txt", "/etc/passwd", "a/../../outside", "..", "/work-sibling/file"}

	for _, target := range escapes {
		target := target
		t.Run(target, func(t *testing.T) {
			t.Parallel()

			ws, fs := newMemWorkspace(t, Options{})
			writeMemFile(t, fs, "keep.txt", "keep")
			require.NoError(t, afero.WriteFile(fs, "/etc/passwd", []byte("root"), 0o644))
			before := fsTree(t, fs)
			ctx := context.Background()

			_, err := ws.CreateFile(ctx, target, "x", true)
			assert.ErrorIs(t, err, domain.ErrPathEscape)
			_, err = ws.CreateFolder(ctx, target)
			assert.ErrorIs(t, err, domain.ErrPathEscape)
			_, err = ws.ReadFile(ctx, target)
			assert.ErrorIs(t, err, domain.ErrPathEscape)
			_, err = ws.ListDirectory(ctx, target)
			assert.ErrorIs(t, err, domain.ErrPathEscape)
			_, err = ws.UpdateFile(ctx, target, "root", "pwned")
			assert.ErrorIs(t, err, domain.ErrPathEscape)
			err = ws.DeleteFile(ctx, target)
			assert.ErrorIs(t, err, domain.ErrPathEscape)
			_, err = ws.ScaffoldProject(ctx, "html", target)
			assert.ErrorIs(t, err, domain.ErrPathEscape)

			if diff := cmp.Diff(before, fsTree(t, fs)); diff != "" {
				t.Fatalf("filesystem mutated (-before +after):\n%s", diff)
			}
		})
	}
}

func TestCreateFileThenReadFileRoundTrip(t *testing.T) {
	t.Parallel()

	ws, _ := newMemWorkspace(t, Options{})
	ctx := context.Background()

	contents := map[string]string{
		"main.js":                 "console.log(1)",
		"src/components/Todo.jsx": "export default function Todo() {}\n",
		"empty.txt":               "",
		"unicode.md":              "héllo wörld ✓\n",
	}

	for path, content := range contents {
		size, err := ws.CreateFile(ctx, path, content, false)
		require.NoError(t, err, path)
		assert.Equal(t, int64(len(content)), size)

		got, err := ws.ReadFile(ctx, path)
		require.NoError(t, err, path)
		assert.Equal(t, content, got)
	}
}

func TestCreateFileExistingPath(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	writeMemFile(t, fs, "main.js", "old")
	require.NoError(t, fs.Mkdir(filepath.Join(memRoot, "src"), 0o755))
	ctx := context.Background()

	_, err := ws.CreateFile(ctx, "main.js", "new", false)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	got, _ := ws.ReadFile(ctx, "main.js")
	assert.Equal(t, "old", got)

	_, err = ws.CreateFile(ctx, "main.js", "new", true)
	require.NoError(t, err)
	got, _ = ws.ReadFile(ctx, "main.js")
	assert.Equal(t, "new", got)

	_, err = ws.CreateFile(ctx, "src", "x", true)
	require.ErrorIs(t, err, domain.ErrNotAFile)

	_, err = ws.CreateFile(ctx, "main.js/inner.js", "x", false)
	require.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestCreateFolder(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	writeMemFile(t, fs, "taken", "file")
	ctx := context.Background()

	created, err := ws.CreateFolder(ctx, "src/components")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = ws.CreateFolder(ctx, "src/components")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = ws.CreateFolder(ctx, "taken")
	require.ErrorIs(t, err, domain.ErrNotADirectory)

	_, err = ws.CreateFolder(ctx, "taken/sub")
	require.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestReadFileFailures(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	require.NoError(t, fs.Mkdir(filepath.Join(memRoot, "src"), 0o755))
	ctx := context.Background()

	_, err := ws.ReadFile(ctx, "missing.txt")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = ws.ReadFile(ctx, "src")
	require.ErrorIs(t, err, domain.ErrNotAFile)
}

func TestListDirectory(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{Ignore: []string{"node_modules", "*.log", "src/generated"}})
	writeMemFile(t, fs, "package.json", "{}")
	writeMemFile(t, fs, "app.js", "x")
	writeMemFile(t, fs, ".env", "SECRET=1")
	writeMemFile(t, fs, "debug.log", "noise")
	writeMemFile(t, fs, "node_modules/react/index.js", "x")
	writeMemFile(t, fs, "src/index.js", "x")
	writeMemFile(t, fs, "src/generated/api.js", "x")
	require.NoError(t, fs.Mkdir(filepath.Join(memRoot, ".git"), 0o755))
	ctx := context.Background()

	entries, err := ws.ListDirectory(ctx, ".")
	require.NoError(t, err)
	want := []domain.DirEntry{
		{Name: "src", Type: domain.EntryDirectory},
		{Name: "app.js", Type: domain.EntryFile, Size: 1},
		{Name: "package.json", Type: domain.EntryFile, Size: 2},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("unexpected root listing (-want +got):\n%s", diff)
	}

	entries, err = ws.ListDirectory(ctx, "src")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.js", entries[0].Name)

	_, err = ws.ListDirectory(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = ws.ListDirectory(ctx, "app.js")
	require.ErrorIs(t, err, domain.ErrNotADirectory)

	entries, err = ws.ListDirectory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestUpdateFileReplacesFirstOccurrence(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	writeMemFile(t, fs, "server.js", "const a = 1\nlisten()\nlisten()\n")
	ctx := context.Background()

	edit, err := ws.UpdateFile(ctx, "server.js", "listen()", "app.listen(3000)")
	require.NoError(t, err)
	assert.Equal(t, "server.js", edit.Path)
	assert.Equal(t, 2, edit.Matches)
	assert.Contains(t, edit.Diff, domain.DiffLine{Op: domain.DiffRemoved, Text: "listen()"})
	assert.Contains(t, edit.Diff, domain.DiffLine{Op: domain.DiffAdded, Text: "app.listen(3000)"})

	got, err := ws.ReadFile(ctx, "server.js")
	require.NoError(t, err)
	assert.Equal(t, "const a = 1\napp.listen(3000)\nlisten()\n", got)
}

func TestUpdateFileMissingPatternLeavesFileUnchanged(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	original := "line one\r\nline two\n\x00binary-ish"
	writeMemFile(t, fs, "App.jsx", original)
	ctx := context.Background()

	for _, search := range []string{"line three", "LINE ONE", ""} {
		_, err := ws.UpdateFile(ctx, "App.jsx", search, "changed")
		require.ErrorIs(t, err, domain.ErrPatternNotFound, "search %q", search)

		data, err := afero.ReadFile(fs, filepath.Join(memRoot, "App.jsx"))
		require.NoError(t, err)
		assert.Equal(t, []byte(original), data)
	}

	_, err := ws.UpdateFile(ctx, "missing.jsx", "a", "b")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteFile(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	writeMemFile(t, fs, "old-file.js", "x")
	writeMemFile(t, fs, "src/index.js", "x")
	ctx := context.Background()

	require.NoError(t, ws.DeleteFile(ctx, "old-file.js"))
	exists, err := afero.Exists(fs, filepath.Join(memRoot, "old-file.js"))
	require.NoError(t, err)
	assert.False(t, exists)

	require.ErrorIs(t, ws.DeleteFile(ctx, "old-file.js"), domain.ErrNotFound)
	require.ErrorIs(t, ws.DeleteFile(ctx, "src"), domain.ErrNotAFile)
	require.ErrorIs(t, ws.DeleteFile(ctx, "."), domain.ErrNotAFile)

	exists, err = afero.DirExists(fs, filepath.Join(memRoot, "src"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOperationsHonourCancelledContext(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ws.CreateFile(ctx, "main.js", "x", false)
	require.ErrorIs(t, err, context.Canceled)

	exists, err := afero.Exists(fs, filepath.Join(memRoot, "main.js"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{SnapshotDepth: 2})
	writeMemFile(t, fs, "package.json", "{}")
	writeMemFile(t, fs, "src/App.jsx", "x")
	writeMemFile(t, fs, "src/components/deep/Button.jsx", "x")
	writeMemFile(t, fs, "node_modules/react/index.js", "x")

	snapshot, err := ws.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "src/\n  components/\n  App.jsx\npackage.json", snapshot)

	empty, _ := newMemWorkspace(t, Options{})
	snapshot, err = empty.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "(empty workspace)", snapshot)
}

func TestSnapshotTruncates(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{SnapshotLimit: 2})
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		writeMemFile(t, fs, name, "x")
	}

	snapshot, err := ws.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a.txt\nb.txt\n... (listing truncated after 2 entries)", snapshot)
}

func TestWritesLeaveNoTempFiles(t *testing.T) {
	t.Parallel()

	ws, fs := newMemWorkspace(t, Options{})
	ctx := context.Background()

	_, err := ws.CreateFile(ctx, "a.txt", "one", false)
	require.NoError(t, err)
	_, err = ws.UpdateFile(ctx, "a.txt", "one", "two")
	require.NoError(t, err)

	infos, err := afero.ReadDir(fs, memRoot)
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.txt"}, names)
}
