package application

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports"
	"github.com/google/uuid"
)

// SessionService maps workspace roots to persisted conversations. One root
// has at most one saved session.
type SessionService struct {
	repo  ports.SessionRepository
	clock ports.Clock
	newID func() string
}

func NewSessionService(repo ports.SessionRepository, clock ports.Clock) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{repo: repo, clock: clock, newID: uuid.NewString}
}

func (s *SessionService) ResolveSessionKey(root string) string {
	hash := sha1.Sum([]byte(filepath.Clean(strings.TrimSpace(root))))
	return hex.EncodeToString(hash[:])
}

// Start returns the session to run in root. With resume set, the saved
// session for root is reopened when one exists; resumed reports whether it was.
func (s *SessionService) Start(ctx context.Context, root, systemPrompt string, resume bool) (*domain.Session, bool, error) {
	key := s.ResolveSessionKey(root)

	if resume {
		session, err := s.repo.Load(ctx, key)
		switch {
		case err == nil:
			session.SystemPrompt = systemPrompt
			return session, true, nil
		case !errors.Is(err, domain.ErrSessionNotFound):
			return nil, false, fmt.Errorf("load session: %w", err)
		}
	}

	return domain.NewSession(key, s.newID(), root, systemPrompt, s.clock.Now()), false, nil
}

func (s *SessionService) Save(ctx context.Context, session *domain.Session) error {
	if session.Transcript.Len() == 0 {
		return nil
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionService) Get(ctx context.Context, root string) (*domain.Session, error) {
	session, err := s.repo.Load(ctx, s.ResolveSessionKey(root))
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

func (s *SessionService) Clear(ctx context.Context, root string) error {
	if err := s.repo.Delete(ctx, s.ResolveSessionKey(root)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionService) List(ctx context.Context) ([]domain.SessionSummary, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return summaries, nil
}
