package llm

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	t.Parallel()

	provider, err := ParseProvider(" OpenRouter ")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, provider)
	assert.Equal(t, "https://openrouter.ai/api/v1", provider.DefaultBaseURL())
	assert.Equal(t, "OPENROUTER_API_KEY", provider.DefaultAPIKeyEnv())

	_, err = ParseProvider("antropic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean anthropic?")
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		header http.Header
		want   time.Duration
	}{
		{name: "none", header: nil, want: 0},
		{name: "seconds", header: http.Header{"Retry-After": {"3"}}, want: 3 * time.Second},
		{name: "fractional seconds", header: http.Header{"Retry-After": {"0.5"}}, want: 500 * time.Millisecond},
		{name: "milliseconds win", header: http.Header{"Retry-After": {"3"}, "Retry-After-Ms": {"250"}}, want: 250 * time.Millisecond},
		{name: "http date", header: http.Header{"Retry-After": {now.Add(7 * time.Second).Format(http.TimeFormat)}}, want: 7 * time.Second},
		{name: "past date", header: http.Header{"Retry-After": {now.Add(-time.Minute).Format(http.TimeFormat)}}, want: 0},
		{name: "garbage", header: http.Header{"Retry-After": {"soon"}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RetryAfter(tt.header, now))
		})
	}
}

func TestNewTransportError(t *testing.T) {
	t.Parallel()

	limited := NewTransportError(http.StatusTooManyRequests, http.Header{"Retry-After": {"2"}}, errors.New("slow down"))
	assert.True(t, limited.RateLimited)
	assert.True(t, limited.Retryable())
	assert.Equal(t, 2*time.Second, limited.RetryAfter)
	assert.ErrorIs(t, limited, domain.ErrTransport)

	denied := NewTransportError(http.StatusUnauthorized, nil, errors.New("bad key"))
	assert.False(t, denied.Retryable())
}

func TestTurns(t *testing.T) {
	t.Parallel()

	messages := []domain.Message{
		{Role: domain.RoleUser, Content: "make main.js"},
		{Role: domain.RoleAssistant, Content: "{...}"},
		{Role: domain.RoleToolResult, Content: "[create_file] ok"},
		{Role: domain.RoleUser, Content: "thanks"},
	}

	separate := Turns(messages, false)
	assert.Len(t, separate, 4)
	assert.False(t, separate[2].Assistant)

	merged := Turns(messages, true)
	want := []Turn{
		{Text: "make main.js"},
		{Assistant: true, Text: "{...}"},
		{Text: "[create_file] ok\n\nthanks"},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("turns mismatch (-want +got):\n%s", diff)
	}
}
