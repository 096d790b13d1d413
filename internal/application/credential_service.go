package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports"
)

var ErrMissingAPIKey = errors.New("no API key configured")

type CredentialSource string

const (
	CredentialFromEnv   CredentialSource = "env"
	CredentialFromStore CredentialSource = "secret store"
)

// CredentialService resolves the model API key. The environment wins over
// the secret store so a one-off override never touches stored secrets.
type CredentialService struct {
	store     ports.SecretStore
	lookupEnv func(string) (string, bool)
}

func NewCredentialService(store ports.SecretStore) *CredentialService {
	return &CredentialService{store: store, lookupEnv: os.LookupEnv}
}

func (s *CredentialService) SetAPIKey(ctx context.Context, secretRef, value string) error {
	secretRef = strings.TrimSpace(secretRef)
	value = strings.TrimSpace(value)
	if secretRef == "" {
		return errors.New("secret reference is required")
	}
	if value == "" {
		return errors.New("API key is empty")
	}

	if err := s.store.Put(ctx, secretRef, value); err != nil {
		return fmt.Errorf("store api key: %w", err)
	}
	return nil
}

func (s *CredentialService) RemoveAPIKey(ctx context.Context, secretRef string) error {
	if err := s.store.Delete(ctx, strings.TrimSpace(secretRef)); err != nil {
		return fmt.Errorf("delete api key: %w", err)
	}
	return nil
}

func (s *CredentialService) ResolveAPIKey(ctx context.Context, envName, secretRef string) (string, CredentialSource, error) {
	if envName = strings.TrimSpace(envName); envName != "" {
		if value, ok := s.lookupEnv(envName); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), CredentialFromEnv, nil
		}
	}

	if secretRef = strings.TrimSpace(secretRef); secretRef != "" && s.store != nil {
		value, err := s.store.Get(ctx, secretRef)
		switch {
		case err == nil && strings.TrimSpace(value) != "":
			return strings.TrimSpace(value), CredentialFromStore, nil
		case err != nil && !errors.Is(err, domain.ErrSecretNotFound):
			return "", "", fmt.Errorf("read api key: %w", err)
		}
	}

	return "", "", fmt.Errorf("%w: set %s or run `coda auth set`", ErrMissingAPIKey, envName)
}
