// Package llm holds what the completion adapters share: provider defaults,
// error classification and transcript role mapping.
package llm

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/suggest"
)

type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
)

type providerDefaults struct {
	baseURL   string
	apiKeyEnv string
}

var defaults = map[Provider]providerDefaults{
	ProviderOpenRouter: {baseURL: "https://openrouter.ai/api/v1", apiKeyEnv: "OPENROUTER_API_KEY"},
	ProviderOpenAI:     {baseURL: "https://api.openai.com/v1", apiKeyEnv: "OPENAI_API_KEY"},
	ProviderAnthropic:  {baseURL: "https://api.anthropic.com", apiKeyEnv: "ANTHROPIC_API_KEY"},
}

func Providers() []string {
	return []string{string(ProviderOpenRouter), string(ProviderOpenAI), string(ProviderAnthropic)}
}

func ParseProvider(raw string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := defaults[provider]; !ok {
		return "", fmt.Errorf("unknown model provider %q, %s", raw, suggest.Hint(raw, Providers()))
	}
	return provider, nil
}

func (p Provider) DefaultBaseURL() string {
	return defaults[p].baseURL
}

func (p Provider) DefaultAPIKeyEnv() string {
	return defaults[p].apiKeyEnv
}

// NewTransportError wraps a failed completion request. status is zero when
// no HTTP response arrived.
func NewTransportError(status int, header http.Header, err error) *domain.TransportError {
	return &domain.TransportError{
		StatusCode:  status,
		RateLimited: status == http.StatusTooManyRequests,
		RetryAfter:  RetryAfter(header, time.Now()),
		Err:         err,
	}
}

// RetryAfter reads the provider's requested delay from retry-after-ms or
// Retry-After (seconds or an HTTP date).
func RetryAfter(header http.Header, now time.Time) time.Duration {
	if header == nil {
		return 0
	}
	if raw := strings.TrimSpace(header.Get("retry-after-ms")); raw != "" {
		if ms, err := strconv.ParseFloat(raw, 64); err == nil && ms > 0 {
			return time.Duration(ms * float64(time.Millisecond))
		}
	}

	raw := strings.TrimSpace(header.Get("Retry-After"))
	if raw == "" {
		return 0
	}
	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		if seconds <= 0 {
			return 0
		}
		return time.Duration(seconds * float64(time.Second))
	}
	if at, err := http.ParseTime(raw); err == nil {
		if wait := at.Sub(now); wait > 0 {
			return wait
		}
	}
	return 0
}

// EmptyReply reports a response that carried no assistant text.
func EmptyReply(detail string) error {
	return fmt.Errorf("%w: %s", domain.ErrParse, detail)
}

// Turn is one chat message after role mapping.
type Turn struct {
	Assistant bool
	Text      string
}

// Turns maps the transcript onto user and assistant turns. Tool results
// travel as user turns. With merge set, adjacent turns of the same side are
// joined, for providers that require strict alternation.
func Turns(messages []domain.Message, merge bool) []Turn {
	turns := make([]Turn, 0, len(messages))
	for _, msg := range messages {
		turn := Turn{Assistant: msg.Role == domain.RoleAssistant, Text: msg.Content}
		if merge && len(turns) > 0 && turns[len(turns)-1].Assistant == turn.Assistant {
			turns[len(turns)-1].Text += "\n\n" + turn.Text
			continue
		}
		turns = append(turns, turn)
	}
	return turns
}
