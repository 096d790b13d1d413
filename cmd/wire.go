package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	anthropicllm "github.com/bnema/coda-cli/internal/adapters/llm/anthropic"
	openaillm "github.com/bnema/coda-cli/internal/adapters/llm/openai"
	sessionrender "github.com/bnema/coda-cli/internal/adapters/render/session"
	tomlrepo "github.com/bnema/coda-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/coda-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/coda-cli/internal/adapters/secrets/file"
	"github.com/bnema/coda-cli/internal/adapters/llm"
	"github.com/bnema/coda-cli/internal/application"
	"github.com/bnema/coda-cli/internal/config"
	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/logging"
	"github.com/bnema/coda-cli/internal/ports"
	"golang.org/x/term"
)

type app struct {
	cfg              *config.Config
	sessions         *application.SessionService
	credentials      *application.CredentialService
	renderList       func([]domain.SessionSummary, sessionrender.RenderOptions) (string, error)
	renderTranscript func(*domain.Session, sessionrender.RenderOptions) (string, error)
	newCompletion    func(config.Model, string) (ports.Completion, error)
	isTerminal       func(io.Writer) bool
	now              func() time.Time
	logger           *slog.Logger
	closeLog         func() error
}

func wireApp() (*app, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, v, err := config.Load(config.LoadOptions{WorkDir: workDir})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	fileLogger, err := logging.NewFileLogger(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	repo, err := tomlrepo.NewSessionRepository(v, tomlrepo.WithLogger(fileLogger.Logger))
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	secretStore, err := newSecretStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:              cfg,
		sessions:         application.NewSessionService(repo, ports.SystemClock{}),
		credentials:      application.NewCredentialService(secretStore),
		renderList:       sessionrender.RenderList,
		renderTranscript: sessionrender.RenderTranscript,
		newCompletion:    newCompletion,
		isTerminal:       isTerminal,
		now:              time.Now,
		logger:           fileLogger.Logger,
		closeLog:         fileLogger.Close,
	}, nil
}

func newSecretStore(cfg *config.Config) (ports.SecretStore, error) {
	if cfg.Secrets.Backend == config.SecretsFile {
		return filestore.NewStore(cfg.SecretsDir), nil
	}
	return chainstore.NewKeyringFirst("", cfg.SecretsDir)
}

func newCompletion(model config.Model, apiKey string) (ports.Completion, error) {
	switch model.Provider {
	case llm.ProviderAnthropic:
		return anthropicllm.New(anthropicllm.Config{
			APIKey:    apiKey,
			BaseURL:   model.BaseURL,
			MaxTokens: model.MaxTokens,
			Timeout:   model.RequestTimeout,
		})
	default:
		return openaillm.New(openaillm.Config{
			APIKey:    apiKey,
			BaseURL:   model.BaseURL,
			MaxTokens: model.MaxTokens,
			Timeout:   model.RequestTimeout,
		})
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
