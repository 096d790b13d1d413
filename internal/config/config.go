// Package config resolves coda settings from ~/.coda/config.toml, CODA_*
// environment variables and a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/coda-cli/internal/adapters/llm"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SecretsAuto = "auto"
	SecretsFile = "file"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".coda"
	envPrefix  = "CODA"
)

type Model struct {
	Provider       llm.Provider
	Name           string
	BaseURL        string
	APIKeyEnv      string
	APIKeySecret   string
	MaxTokens      int64
	RequestTimeout time.Duration
}

type Agent struct {
	MaxTransportAttempts    uint
	MaxParseRetries         int
	MaxSteps                int
	BackoffInitial          time.Duration
	BackoffMax              time.Duration
	RequireReadBeforeUpdate bool
}

type Workspace struct {
	CommandTimeout time.Duration
	MaxOutputBytes int
	SnapshotDepth  int
	Ignore         []string
}

type Session struct {
	Persist bool
	Dir     string
}

type Secrets struct {
	// Backend is "auto" (keyring, then pass, then files) or "file".
	Backend string
}

type Log struct {
	Path  string
	Level string
}

type Config struct {
	Home       string
	ConfigFile string
	SecretsDir string

	Model     Model
	Agent     Agent
	Workspace Workspace
	Session   Session
	Secrets   Secrets
	Log       Log
}

type LoadOptions struct {
	// Home replaces the user home directory; tests point it at a temp dir.
	Home string
	// WorkDir is searched for a .env file.
	WorkDir string
	// ConfigFile overrides ~/.coda/config.toml.
	ConfigFile string
}

// Load reads the configuration. The returned viper instance carries the
// resolved keys for adapters that take one.
func Load(opts LoadOptions) (*Config, *viper.Viper, error) {
	home := opts.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	if opts.WorkDir != "" {
		if err := loadDotEnv(filepath.Join(opts.WorkDir, ".env")); err != nil {
			return nil, nil, err
		}
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(home, configDir))
	if opts.ConfigFile != "" {
		cfg.SetConfigFile(expandHome(opts.ConfigFile, home))
	}
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg, home)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, nil, fmt.Errorf("read config file: %w", err)
		}
	}

	resolved, err := resolve(cfg, home)
	if err != nil {
		return nil, nil, err
	}
	cfg.Set("session.dir", resolved.Session.Dir)

	return resolved, cfg, nil
}

func setDefaults(cfg *viper.Viper, home string) {
	base := filepath.Join(home, configDir)

	cfg.SetDefault("model.provider", string(llm.ProviderOpenRouter))
	cfg.SetDefault("model.name", "xiaomi/mimo-v2-flash:free")
	cfg.SetDefault("model.base_url", "")
	cfg.SetDefault("model.api_key_env", "")
	cfg.SetDefault("model.api_key_secret", "coda/api_key")
	cfg.SetDefault("model.max_tokens", 4096)
	cfg.SetDefault("model.request_timeout", "90s")

	cfg.SetDefault("agent.max_transport_attempts", 5)
	cfg.SetDefault("agent.max_parse_retries", 3)
	cfg.SetDefault("agent.max_steps", 50)
	cfg.SetDefault("agent.backoff_initial", "500ms")
	cfg.SetDefault("agent.backoff_max", "10s")
	cfg.SetDefault("agent.require_read_before_update", true)

	cfg.SetDefault("workspace.command_timeout", "2m")
	cfg.SetDefault("workspace.max_output_bytes", 64*1024)
	cfg.SetDefault("workspace.snapshot_depth", 3)
	cfg.SetDefault("workspace.ignore", []string{"node_modules", "vendor", "dist", "build", "target", "__pycache__", "*.log"})

	cfg.SetDefault("session.persist", true)
	cfg.SetDefault("session.dir", filepath.Join(base, "sessions"))

	cfg.SetDefault("secrets.backend", SecretsAuto)

	cfg.SetDefault("log.path", filepath.Join(base, "logs", "coda.log"))
	cfg.SetDefault("log.level", "info")
}

func resolve(cfg *viper.Viper, home string) (*Config, error) {
	provider, err := llm.ParseProvider(cfg.GetString("model.provider"))
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSpace(cfg.GetString("model.base_url"))
	if baseURL == "" {
		baseURL = provider.DefaultBaseURL()
	}
	keyEnv := strings.TrimSpace(cfg.GetString("model.api_key_env"))
	if keyEnv == "" {
		keyEnv = provider.DefaultAPIKeyEnv()
	}

	maxTokens := cfg.GetInt64("model.max_tokens")
	if maxTokens <= 0 {
		return nil, fmt.Errorf("model.max_tokens must be positive, got %d", maxTokens)
	}
	attempts := cfg.GetInt("agent.max_transport_attempts")
	if attempts < 1 {
		return nil, fmt.Errorf("agent.max_transport_attempts must be at least 1, got %d", attempts)
	}
	parseRetries := cfg.GetInt("agent.max_parse_retries")
	if parseRetries < 0 {
		return nil, fmt.Errorf("agent.max_parse_retries must not be negative, got %d", parseRetries)
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.GetString("secrets.backend")))
	if backend != SecretsAuto && backend != SecretsFile {
		return nil, fmt.Errorf("secrets.backend must be %q or %q, got %q", SecretsAuto, SecretsFile, backend)
	}

	return &Config{
		Home:       home,
		ConfigFile: cfg.ConfigFileUsed(),
		SecretsDir: filepath.Join(home, configDir, "secrets"),
		Model: Model{
			Provider:       provider,
			Name:           strings.TrimSpace(cfg.GetString("model.name")),
			BaseURL:        baseURL,
			APIKeyEnv:      keyEnv,
			APIKeySecret:   strings.TrimSpace(cfg.GetString("model.api_key_secret")),
			MaxTokens:      maxTokens,
			RequestTimeout: cfg.GetDuration("model.request_timeout"),
		},
		Agent: Agent{
			MaxTransportAttempts:    uint(attempts),
			MaxParseRetries:         parseRetries,
			MaxSteps:                cfg.GetInt("agent.max_steps"),
			BackoffInitial:          cfg.GetDuration("agent.backoff_initial"),
			BackoffMax:              cfg.GetDuration("agent.backoff_max"),
			RequireReadBeforeUpdate: cfg.GetBool("agent.require_read_before_update"),
		},
		Workspace: Workspace{
			CommandTimeout: cfg.GetDuration("workspace.command_timeout"),
			MaxOutputBytes: cfg.GetInt("workspace.max_output_bytes"),
			SnapshotDepth:  cfg.GetInt("workspace.snapshot_depth"),
			Ignore:         cfg.GetStringSlice("workspace.ignore"),
		},
		Session: Session{
			Persist: cfg.GetBool("session.persist"),
			Dir:     expandHome(cfg.GetString("session.dir"), home),
		},
		Secrets: Secrets{Backend: backend},
		Log: Log{
			Path:  expandHome(cfg.GetString("log.path"), home),
			Level: cfg.GetString("log.level"),
		},
	}, nil
}

// loadDotEnv exports .env entries without overriding variables already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func expandHome(path, home string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
