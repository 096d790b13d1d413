package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceResolveKeyPerRoot(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(mocks.NewMockSessionRepository(t), nil)

	one := svc.ResolveSessionKey("/repo/a")
	two := svc.ResolveSessionKey("/repo/a/")
	three := svc.ResolveSessionKey("/repo/b")

	assert.Equal(t, one, two)
	assert.NotEqual(t, one, three)
	assert.Len(t, one, 40)
}

func TestSessionServiceStartFresh(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Once()
	repo := mocks.NewMockSessionRepository(t)

	svc := NewSessionService(repo, clock)
	session, resumed, err := svc.Start(context.Background(), "/repo/a", "prompt", false)

	require.NoError(t, err)
	assert.False(t, resumed)
	assert.Equal(t, svc.ResolveSessionKey("/repo/a"), session.Key)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "prompt", session.SystemPrompt)
	assert.Equal(t, now, session.CreatedAt)
	assert.Zero(t, session.Transcript.Len())
}

func TestSessionServiceResume(t *testing.T) {
	t.Parallel()

	stored := domain.NewSession("key", "id-1", "/repo/a", "old prompt", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	stored.Append(domain.RoleUser, "make a todo component", stored.CreatedAt)

	repo := mocks.NewMockSessionRepository(t)
	svc := NewSessionService(repo, nil)
	repo.EXPECT().Load(mockAnyContext(), svc.ResolveSessionKey("/repo/a")).Return(stored, nil).Once()

	session, resumed, err := svc.Start(context.Background(), "/repo/a", "new prompt", true)

	require.NoError(t, err)
	assert.True(t, resumed)
	assert.Equal(t, "id-1", session.ID)
	assert.Equal(t, "new prompt", session.SystemPrompt)
	assert.Equal(t, 1, session.Transcript.Len())
}

func TestSessionServiceResumeWithoutSavedSessionStartsFresh(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockSessionRepository(t)
	svc := NewSessionService(repo, nil)
	repo.EXPECT().Load(mockAnyContext(), svc.ResolveSessionKey("/repo/a")).Return(nil, domain.ErrSessionNotFound).Once()

	session, resumed, err := svc.Start(context.Background(), "/repo/a", "prompt", true)

	require.NoError(t, err)
	assert.False(t, resumed)
	assert.Equal(t, "/repo/a", session.Root)
}

func TestSessionServiceResumeLoadFailure(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockSessionRepository(t)
	svc := NewSessionService(repo, nil)
	repo.EXPECT().Load(mockAnyContext(), svc.ResolveSessionKey("/repo/a")).Return(nil, errors.New("corrupt file")).Once()

	_, _, err := svc.Start(context.Background(), "/repo/a", "prompt", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load session: corrupt file")
}

func TestSessionServiceSaveSkipsEmptyTranscript(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockSessionRepository(t)
	svc := NewSessionService(repo, nil)
	session := newTestSession()

	require.NoError(t, svc.Save(context.Background(), session))

	session.Append(domain.RoleUser, "hello", time.Now())
	repo.EXPECT().Save(mockAnyContext(), session).Return(nil).Once()
	require.NoError(t, svc.Save(context.Background(), session))
}

func TestSessionServiceClearAndList(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockSessionRepository(t)
	svc := NewSessionService(repo, nil)
	key := svc.ResolveSessionKey("/repo/a")
	summaries := []domain.SessionSummary{{Key: key, Root: "/repo/a", Messages: 4}}

	repo.EXPECT().Delete(mockAnyContext(), key).Return(domain.ErrSessionNotFound).Once()
	repo.EXPECT().List(mockAnyContext()).Return(summaries, nil).Once()

	err := svc.Clear(context.Background(), "/repo/a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}
