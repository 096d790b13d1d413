package toml

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/logging"
	"github.com/bnema/coda-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	sessionDirKey    = "session.dir"
	sessionFileMode  = 0o600
	sessionDirMode   = 0o700
	sessionConfigDir = ".coda"
	sessionSubdir    = "sessions"
	sessionExt       = ".toml"
	tempFilePattern  = ".session-*.toml.tmp"
)

// SessionRepository stores one TOML file per session key under a directory.
type SessionRepository struct {
	dir    string
	logger *slog.Logger
}

type SessionRepositoryOption func(*SessionRepository)

// WithLogger reports session files that List had to skip.
func WithLogger(logger *slog.Logger) SessionRepositoryOption {
	return func(r *SessionRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(cfg *viper.Viper, opts ...SessionRepositoryOption) (*SessionRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(sessionDirKey, filepath.Join(homeDir, sessionConfigDir, sessionSubdir))

	dir := strings.TrimSpace(cfg.GetString(sessionDirKey))
	if dir == "" {
		return nil, errors.New("session directory is empty")
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve session directory: %w", err)
	}

	repo := &SessionRepository{dir: filepath.Clean(dir), logger: logging.Nop()}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

func (r *SessionRepository) Dir() string {
	return r.dir
}

func (r *SessionRepository) Load(ctx context.Context, key string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.pathFor(key)
	if err != nil {
		return nil, err
	}

	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	file, err := readSchema(path)
	if err != nil {
		return nil, err
	}

	session, err := fromSchema(file)
	if err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session == nil {
		return errors.New("session is nil")
	}

	path, err := r.pathFor(session.Key)
	if err != nil {
		return err
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	return r.writeSchema(path, toSchema(session))
}

func (r *SessionRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.pathFor(key)
	if err != nil {
		return err
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrSessionNotFound
		}
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// List returns summaries of every stored session, most recently updated
// first.
func (r *SessionRepository) List(ctx context.Context) ([]domain.SessionSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session directory: %w", err)
	}

	summaries := make([]domain.SessionSummary, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != sessionExt {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(r.dir, name)
		mu := lockForPath(path)
		mu.RLock()
		file, err := readSchema(path)
		mu.RUnlock()
		if err != nil {
			// One unreadable file must not hide the others.
			r.logger.Warn("skipping unreadable session file", "file", path, "error", err)
			continue
		}

		summaries = append(summaries, domain.SessionSummary{
			Key:       file.Key,
			Root:      file.Root,
			Messages:  len(file.Messages),
			UpdatedAt: parseTime(file.UpdatedAt),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

func (r *SessionRepository) pathFor(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, ".") || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid session key %q", key)
	}
	return filepath.Join(r.dir, key+sessionExt), nil
}

func readSchema(path string) (sessionSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sessionSchema{}, domain.ErrSessionNotFound
		}
		return sessionSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file sessionSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return sessionSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return sessionSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *SessionRepository) writeSchema(path string, file sessionSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(r.dir, sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(r.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false
	return nil
}
