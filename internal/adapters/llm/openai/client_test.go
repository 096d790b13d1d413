package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model          string `json:"model"`
	MaxTokens      int64  `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionBody(content string) string {
	raw, _ := json.Marshal(content)
	return `{"id":"chatcmpl-1","object":"chat.completion","created":1767225600,"model":"xiaomi/mimo-v2-flash:free",` +
		`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":` + string(raw) + `}}]}`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{APIKey: "sk-test", BaseURL: server.URL + "/api/v1", MaxTokens: 512, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestCompleteSendsTranscript(t *testing.T) {
	t.Parallel()

	var (
		captured capturedRequest
		path     string
		auth     string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody(`{"action":null,"output":"hi","done":true}`))
	})

	content, err := client.Complete(context.Background(), ports.CompletionRequest{
		Model:  "xiaomi/mimo-v2-flash:free",
		System: "system prompt",
		Messages: []domain.Message{
			{Role: domain.RoleUser, Content: "Can you add a file in my folder named main.js"},
			{Role: domain.RoleAssistant, Content: `{"action":"create_file"}`},
			{Role: domain.RoleToolResult, Content: "[create_file] ok"},
		},
		JSONObject: true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"action":null,"output":"hi","done":true}`, content)
	assert.Equal(t, "/api/v1/chat/completions", path)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "xiaomi/mimo-v2-flash:free", captured.Model)
	assert.Equal(t, int64(512), captured.MaxTokens)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)

	roles := make([]string, 0, len(captured.Messages))
	for _, msg := range captured.Messages {
		roles = append(roles, msg.Role)
	}
	assert.Equal(t, []string{"system", "user", "assistant", "user"}, roles)
	assert.Equal(t, "[create_file] ok", captured.Messages[3].Content)
}

func TestCompleteClassifiesFailures(t *testing.T) {
	t.Parallel()

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"message":"rate limited","type":"rate_limit"}}`)
		})

		_, err := client.Complete(context.Background(), ports.CompletionRequest{Model: "m", Messages: []domain.Message{{Role: domain.RoleUser, Content: "hi"}}})

		var transportErr *domain.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusTooManyRequests, transportErr.StatusCode)
		assert.True(t, transportErr.RateLimited)
		assert.Equal(t, 2*time.Second, transportErr.RetryAfter)
		assert.True(t, transportErr.Retryable())
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"invalid key"}}`)
		})

		_, err := client.Complete(context.Background(), ports.CompletionRequest{Model: "m", Messages: []domain.Message{{Role: domain.RoleUser, Content: "hi"}}})

		var transportErr *domain.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusUnauthorized, transportErr.StatusCode)
		assert.False(t, transportErr.Retryable())
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, completionBody("   "))
		})

		_, err := client.Complete(context.Background(), ports.CompletionRequest{Model: "m", Messages: []domain.Message{{Role: domain.RoleUser, Content: "hi"}}})
		assert.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client, err := New(Config{APIKey: "sk-test", BaseURL: url})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), ports.CompletionRequest{Model: "m", Messages: []domain.Message{{Role: domain.RoleUser, Content: "hi"}}})

		var transportErr *domain.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Zero(t, transportErr.StatusCode)
		assert.True(t, transportErr.Retryable())
	})
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := New(Config{APIKey: " "})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "API key"))
}
