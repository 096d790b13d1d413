package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSession() *domain.Session {
	return domain.NewSession("key", "id", testRoot, "system", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
}

func intentFor(kind domain.ActionKind, input string) domain.Intent {
	return domain.Intent{Action: kind, Input: json.RawMessage(input)}
}

func TestDispatchNoActionMakesNoWorkspaceCall(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{})

	result := dispatcher.Dispatch(context.Background(), newTestSession(), domain.Intent{Output: "All done", Done: true})

	assert.True(t, result.OK())
	assert.Equal(t, domain.ActionNone, result.Action)
	assert.Equal(t, "All done", result.Output)
}

func TestDispatchCreateFileMarksPathKnown(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	workspace.EXPECT().Root().Return(testRoot)
	workspace.EXPECT().CreateFile(mockAnyContext(), "main.js", "", false).Return(0, nil).Once()

	session := newTestSession()
	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{RequireReadBeforeUpdate: true})

	result := dispatcher.Dispatch(context.Background(), session, intentFor(domain.ActionCreateFile, `{"path":"main.js","content":""}`))

	require.True(t, result.OK(), result.TranscriptText())
	assert.Equal(t, "wrote main.js (0 B)", result.Output)
	assert.True(t, session.Knows("main.js"))
}

func TestDispatchRejectedIntentMakesNoWorkspaceCall(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	workspace.EXPECT().Root().Return(testRoot)

	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{})
	result := dispatcher.Dispatch(context.Background(), newTestSession(), intentFor(domain.ActionCreateFile, `{"path":"../outside.txt","content":"x"}`))

	require.False(t, result.OK())
	assert.Equal(t, domain.FailureRejected, result.Failure.Kind)
	assert.Contains(t, result.Failure.Message, "path escapes workspace root")
}

func TestDispatchReadThenUpdate(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	workspace.EXPECT().Root().Return(testRoot)
	workspace.EXPECT().ReadFile(mockAnyContext(), "src/App.jsx").Return("const a = 1\n", nil).Once()
	workspace.EXPECT().UpdateFile(mockAnyContext(), "src/App.jsx", "1", "2").Return(domain.FileEdit{
		Path:    "src/App.jsx",
		Matches: 1,
		Diff:    []domain.DiffLine{{Op: domain.DiffRemoved, Text: "const a = 1"}, {Op: domain.DiffAdded, Text: "const a = 2"}},
	}, nil).Once()

	session := newTestSession()
	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{RequireReadBeforeUpdate: true})
	update := intentFor(domain.ActionUpdateFile, `{"path":"src/App.jsx","search":"1","replace":"2"}`)

	rejected := dispatcher.Dispatch(context.Background(), session, update)
	require.False(t, rejected.OK())
	assert.Equal(t, domain.FailureRejected, rejected.Failure.Kind)

	read := dispatcher.Dispatch(context.Background(), session, intentFor(domain.ActionReadFile, `{"path":"src/App.jsx"}`))
	require.True(t, read.OK())
	assert.Equal(t, "src/App.jsx (1 lines, 12 B):\nconst a = 1\n", read.Output)

	updated := dispatcher.Dispatch(context.Background(), session, update)
	require.True(t, updated.OK(), updated.TranscriptText())
	assert.Equal(t, "updated src/App.jsx\n-const a = 1\n+const a = 2", updated.Output)
}

func TestDispatchWorkspaceFailureBecomesResult(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	workspace.EXPECT().Root().Return(testRoot)
	workspace.EXPECT().ReadFile(mockAnyContext(), "missing.txt").
		Return("", domain.NewActionError(domain.ErrNotFound, "missing.txt", "")).Once()

	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{})
	result := dispatcher.Dispatch(context.Background(), newTestSession(), intentFor(domain.ActionReadFile, `{"path":"missing.txt"}`))

	require.False(t, result.OK())
	assert.Equal(t, domain.FailureNotFound, result.Failure.Kind)
	assert.Equal(t, "[read_file] error (NotFound): not found: missing.txt", result.TranscriptText())
}

func TestDispatchCommandTimeoutKeepsPartialOutput(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	workspace.EXPECT().Root().Return(testRoot)
	workspace.EXPECT().ExecuteCommand(mockAnyContext(), "npm run dev").Return(
		domain.CommandResult{Command: "npm run dev", ExitCode: -1, Stdout: "listening on 5173\n"},
		domain.NewActionError(domain.ErrTimeout, "", `"npm run dev" did not finish within 2m0s`),
	).Once()

	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{})
	result := dispatcher.Dispatch(context.Background(), newTestSession(), intentFor(domain.ActionExecuteCommand, `{"command":"npm run dev"}`))

	require.False(t, result.OK())
	assert.Equal(t, domain.FailureTimeout, result.Failure.Kind)
	assert.Contains(t, result.Failure.Message, "listening on 5173")
}

func TestDispatchDestructiveCommandAsksForConfirmation(t *testing.T) {
	t.Parallel()

	t.Run("declined", func(t *testing.T) {
		t.Parallel()

		workspace := mocks.NewMockWorkspace(t)
		workspace.EXPECT().Root().Return(testRoot)
		console := mocks.NewMockConsole(t)
		console.EXPECT().Confirm(mockAnyContext(), mock.AnythingOfType("string")).Return(false, nil).Once()

		dispatcher := NewDispatcher(workspace, console, nil, DispatcherOptions{})
		result := dispatcher.Dispatch(context.Background(), newTestSession(), intentFor(domain.ActionExecuteCommand, `{"command":"rm -rf dist"}`))

		require.False(t, result.OK())
		assert.Equal(t, domain.FailureRejected, result.Failure.Kind)
	})

	t.Run("approved", func(t *testing.T) {
		t.Parallel()

		workspace := mocks.NewMockWorkspace(t)
		workspace.EXPECT().Root().Return(testRoot)
		workspace.EXPECT().ExecuteCommand(mockAnyContext(), "rm -rf dist").Return(domain.CommandResult{Command: "rm -rf dist"}, nil).Once()
		console := mocks.NewMockConsole(t)
		console.EXPECT().Confirm(mockAnyContext(), `Run "rm -rf dist"? It looks destructive`).Return(true, nil).Once()

		dispatcher := NewDispatcher(workspace, console, nil, DispatcherOptions{})
		result := dispatcher.Dispatch(context.Background(), newTestSession(), intentFor(domain.ActionExecuteCommand, `{"command":"rm -rf dist"}`))

		require.True(t, result.OK(), result.TranscriptText())
		assert.Contains(t, result.Output, "exit code 0")
	})

	t.Run("assume yes", func(t *testing.T) {
		t.Parallel()

		workspace := mocks.NewMockWorkspace(t)
		workspace.EXPECT().Root().Return(testRoot)
		workspace.EXPECT().ExecuteCommand(mockAnyContext(), "rm -rf dist").Return(domain.CommandResult{Command: "rm -rf dist"}, nil).Once()

		dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{AssumeYes: true})
		result := dispatcher.Dispatch(context.Background(), newTestSession(), intentFor(domain.ActionExecuteCommand, `{"command":"rm -rf dist"}`))

		assert.True(t, result.OK())
	})
}

func TestDispatchScaffoldAndDelete(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	workspace.EXPECT().Root().Return(testRoot)
	workspace.EXPECT().ScaffoldProject(mockAnyContext(), "html", "site").Return(domain.ScaffoldResult{
		Template: "html",
		Dir:      "site",
		Files:    []string{"site/index.html", "site/styles.css"},
	}, nil).Once()
	workspace.EXPECT().DeleteFile(mockAnyContext(), "site/styles.css").Return(nil).Once()
	workspace.EXPECT().ListDirectory(mockAnyContext(), "site").Return([]domain.DirEntry{
		{Name: "index.html", Type: domain.EntryFile, Size: 2048},
	}, nil).Once()

	session := newTestSession()
	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{})

	scaffold := dispatcher.Dispatch(context.Background(), session, intentFor(domain.ActionScaffoldProject, `{"type":"html","name":"site"}`))
	require.True(t, scaffold.OK(), scaffold.TranscriptText())
	assert.Equal(t, []string{"site/index.html", "site/styles.css"}, session.KnownPaths())

	deleted := dispatcher.Dispatch(context.Background(), session, intentFor(domain.ActionDeleteFile, `{"path":"site/styles.css"}`))
	require.True(t, deleted.OK())
	assert.Equal(t, []string{"site/index.html"}, session.KnownPaths())

	listing := dispatcher.Dispatch(context.Background(), session, intentFor(domain.ActionListDirectory, `{"path":"site"}`))
	require.True(t, listing.OK())
	assert.Equal(t, "site (1 entries):\n  index.html (2.0 kB)", listing.Output)
}

func TestDispatchKeepsResultTextValidUTF8(t *testing.T) {
	t.Parallel()

	workspace := mocks.NewMockWorkspace(t)
	workspace.EXPECT().Root().Return(testRoot)
	workspace.EXPECT().ReadFile(mockAnyContext(), "logo.png").Return("\x89PNG\r\n", nil).Once()
	workspace.EXPECT().ExecuteCommand(mockAnyContext(), "cat logo.png").Return(
		domain.CommandResult{Command: "cat logo.png", Stdout: "\x89PNG\xff\xfe", Stderr: "bad \xc3"},
		nil,
	).Once()

	session := newTestSession()
	dispatcher := NewDispatcher(workspace, nil, nil, DispatcherOptions{})

	read := dispatcher.Dispatch(context.Background(), session, intentFor(domain.ActionReadFile, `{"path":"logo.png"}`))
	require.True(t, read.OK())
	assert.True(t, utf8.ValidString(read.Output))
	assert.Contains(t, read.Output, "not valid UTF-8")
	assert.Contains(t, read.Output, "\uFFFDPNG")

	command := dispatcher.Dispatch(context.Background(), session, intentFor(domain.ActionExecuteCommand, `{"command":"cat logo.png"}`))
	require.True(t, command.OK())
	assert.True(t, utf8.ValidString(command.TranscriptText()))
	assert.Contains(t, command.Output, "stderr:\nbad \uFFFD")
}

func mockAnyContext() interface{} {
	return mock.Anything
}
