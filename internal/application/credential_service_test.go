package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCredentialService(t *testing.T, env map[string]string) (*CredentialService, *mocks.MockSecretStore) {
	t.Helper()

	store := mocks.NewMockSecretStore(t)
	svc := NewCredentialService(store)
	svc.lookupEnv = func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}
	return svc, store
}

func TestResolveAPIKeyPrefersEnvironment(t *testing.T) {
	t.Parallel()

	svc, _ := newCredentialService(t, map[string]string{"OPENROUTER_API_KEY": " sk-env "})

	key, source, err := svc.ResolveAPIKey(context.Background(), "OPENROUTER_API_KEY", "coda/api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-env", key)
	assert.Equal(t, CredentialFromEnv, source)
}

func TestResolveAPIKeyFallsBackToStore(t *testing.T) {
	t.Parallel()

	svc, store := newCredentialService(t, map[string]string{"OPENROUTER_API_KEY": ""})
	store.EXPECT().Get(mockAnyContext(), "coda/api_key").Return("sk-stored", nil).Once()

	key, source, err := svc.ResolveAPIKey(context.Background(), "OPENROUTER_API_KEY", "coda/api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-stored", key)
	assert.Equal(t, CredentialFromStore, source)
}

func TestResolveAPIKeyMissing(t *testing.T) {
	t.Parallel()

	svc, store := newCredentialService(t, nil)
	store.EXPECT().Get(mockAnyContext(), "coda/api_key").Return("", domain.ErrSecretNotFound).Once()

	_, _, err := svc.ResolveAPIKey(context.Background(), "OPENROUTER_API_KEY", "coda/api_key")
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "set OPENROUTER_API_KEY")
}

func TestResolveAPIKeyStoreFailure(t *testing.T) {
	t.Parallel()

	svc, store := newCredentialService(t, nil)
	store.EXPECT().Get(mockAnyContext(), "coda/api_key").Return("", errors.New("keyring locked")).Once()

	_, _, err := svc.ResolveAPIKey(context.Background(), "OPENROUTER_API_KEY", "coda/api_key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "keyring locked")
}

func TestSetAndRemoveAPIKey(t *testing.T) {
	t.Parallel()

	svc, store := newCredentialService(t, nil)
	store.EXPECT().Put(mockAnyContext(), "coda/api_key", "sk-new").Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "coda/api_key").Return(nil).Once()

	require.NoError(t, svc.SetAPIKey(context.Background(), "coda/api_key", " sk-new\n"))
	require.NoError(t, svc.RemoveAPIKey(context.Background(), "coda/api_key"))

	assert.Error(t, svc.SetAPIKey(context.Background(), "coda/api_key", "  "))
	assert.Error(t, svc.SetAPIKey(context.Background(), "", "sk"))
}
