// Package keyring stores secrets in the operating system keychain.
package keyring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports"
	gokeyring "github.com/zalando/go-keyring"
)

const DefaultService = "coda"

type Store struct {
	service string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(service string) *Store {
	if strings.TrimSpace(service) == "" {
		service = DefaultService
	}
	return &Store{service: service}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	if err := gokeyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("keyring put %q: %w", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateKey(key); err != nil {
		return "", err
	}

	value, err := gokeyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", fmt.Errorf("keyring secret %q: %w", key, domain.ErrSecretNotFound)
		}
		return "", fmt.Errorf("keyring get %q: %w", key, err)
	}
	return value, nil
}

// Delete treats a missing entry as already deleted.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	if err := gokeyring.Delete(s.service, key); err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %q: %w", key, err)
	}
	return nil
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("secret key is empty")
	}
	return nil
}
