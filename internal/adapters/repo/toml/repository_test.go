package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, dir string) *SessionRepository {
	t.Helper()

	config := viper.New()
	config.Set("session.dir", dir)

	repo, err := NewSessionRepository(config)
	require.NoError(t, err)
	return repo
}

func newSession(key, root string, at time.Time) *domain.Session {
	session := domain.NewSession(key, "id-"+key, root, "You are a coding assistant.\nReply in JSON.", at)
	session.Append(domain.RoleUser, "Working directory: "+root+"\n\nRequest: create main.js", at)
	session.Append(domain.RoleAssistant, `{"action":"create_file","input":{"path":"main.js","content":"console.log(\"hi\")\n"},"done":false}`, at.Add(time.Second))
	session.Append(domain.RoleToolResult, "[create_file] ok\nwrote main.js (18 B)", at.Add(2*time.Second))
	session.MarkKnown("main.js")
	return session
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, t.TempDir())
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := newSession("abc123", "/home/dev/app", now)

	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Load(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, session.Key, got.Key)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.Root, got.Root)
	assert.Equal(t, session.SystemPrompt, got.SystemPrompt)
	assert.True(t, session.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, session.UpdatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, []string{"main.js"}, got.KnownPaths())
	if diff := cmp.Diff(session.Transcript.Messages(), got.Transcript.Messages()); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionRepositorySaveOverwritesAndEnforcesPermissions(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "sessions")
	repo := newTestRepository(t, dir)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := newSession("abc123", "/home/dev/app", now)

	require.NoError(t, repo.Save(context.Background(), session))
	session.Append(domain.RoleUser, "now add a README", now.Add(time.Minute))
	require.NoError(t, repo.Save(context.Background(), session))

	info, err := os.Stat(filepath.Join(dir, "abc123.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := repo.Load(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Transcript.Len())

	leftovers, err := filepath.Glob(filepath.Join(dir, ".session-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestSessionRepositoryDefaultDirectory(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewSessionRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".coda", "sessions"), repo.Dir())
}

func TestSessionRepositoryMissingBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing"))

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = repo.Load(context.Background(), "abc123")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = repo.Delete(context.Background(), "abc123")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, t.TempDir())
	require.NoError(t, repo.Save(context.Background(), newSession("abc123", "/srv/app", time.Now())))

	require.NoError(t, repo.Delete(context.Background(), "abc123"))

	_, err := repo.Load(context.Background(), "abc123")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepositoryListNewestFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := newTestRepository(t, dir)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), newSession("old", "/srv/old", base)))
	require.NoError(t, repo.Save(context.Background(), newSession("new", "/srv/new", base.Add(time.Hour))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.toml"), 0o700))

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "new", summaries[0].Key)
	assert.Equal(t, "/srv/new", summaries[0].Root)
	assert.Equal(t, 3, summaries[0].Messages)
	assert.Equal(t, "old", summaries[1].Key)
}

func TestSessionRepositoryRejectsUnsafeKeys(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, t.TempDir())

	for _, key := range []string{"", "  ", "../escape", "a/b", `a\b`, ".hidden"} {
		_, err := repo.Load(context.Background(), key)
		require.Error(t, err, key)
		assert.ErrorContains(t, err, "invalid session key", key)
	}
}

func TestSessionRepositoryMalformedTOMLFailsLoadButNotList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.toml"), []byte("messages = ["), 0o600))
	repo := newTestRepository(t, dir)

	_, err := repo.Load(context.Background(), "abc")
	assert.ErrorContains(t, err, "decode session file")

	require.NoError(t, repo.Save(context.Background(), newSession("good", "/srv/good", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))))

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "good", summaries[0].Key)
}

func TestSessionRepositoryInvalidUTF8StillReloads(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, t.TempDir())
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := newSession("binary", "/srv/app", now)
	session.Append(domain.RoleToolResult, "[read_file] ok\nlogo.png:\n\x89PNG\xff\xfe", now.Add(time.Minute))
	session.MarkKnown("logo\xff.png")

	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Load(context.Background(), "binary")
	require.NoError(t, err)
	last, ok := got.Transcript.Last()
	require.True(t, ok)
	assert.Equal(t, "[read_file] ok\nlogo.png:\n\uFFFDPNG\uFFFD", last.Content)
	assert.True(t, utf8.ValidString(last.Content))
	assert.Contains(t, got.KnownPaths(), "logo\uFFFD.png")

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 4, summaries[0].Messages)
}

func TestSessionRepositoryUnknownRoleReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.toml"), []byte(strings.Join([]string{
		"version = 1",
		`key = "abc"`,
		"",
		"[[messages]]",
		`role = "system"`,
		`content = "hi"`,
		"",
	}, "\n")), 0o600))
	repo := newTestRepository(t, dir)

	_, err := repo.Load(context.Background(), "abc")
	assert.ErrorContains(t, err, `unknown role "system"`)
}

func TestSessionRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.toml"), []byte("version = 999\n"), 0o600))
	repo := newTestRepository(t, dir)

	_, err := repo.Load(context.Background(), "abc")
	assert.ErrorContains(t, err, "unsupported session schema version")
}

func TestSessionRepositoryCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, newSession("abc", "/srv/app", time.Now()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSessionRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repoA := newTestRepository(t, dir)
	repoB := newTestRepository(t, dir)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	for _, repo := range []*SessionRepository{repoA, repoB} {
		go func() {
			defer wg.Done()
			<-start
			for i := 0; i < perRepoWrites; i++ {
				errCh <- repo.Save(context.Background(), newSession("shared", "/srv/app-"+strconv.Itoa(i), now))
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Load(context.Background(), "shared")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.Root, "/srv/app-"))
}
