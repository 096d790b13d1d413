package ports

import (
	"context"

	"github.com/bnema/coda-cli/internal/domain"
)

type SessionRepository interface {
	Load(ctx context.Context, key string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]domain.SessionSummary, error)
}
