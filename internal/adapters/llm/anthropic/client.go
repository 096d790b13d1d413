// Package anthropic adapts the Anthropic Messages API to ports.Completion.
package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bnema/coda-cli/internal/adapters/llm"
	"github.com/bnema/coda-cli/internal/ports"
)

const defaultMaxTokens = 4096

// jsonReminder replaces the response_format switch Anthropic does not have.
const jsonReminder = "\n\nReply with a single JSON object only, with no prose or code fences around it."

type Config struct {
	APIKey     string
	BaseURL    string
	MaxTokens  int64
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	client    anthropic.Client
	maxTokens int64
}

var _ ports.Completion = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{client: anthropic.NewClient(opts...), maxTokens: maxTokens}, nil
}

func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	system := req.System
	if req.JSONObject {
		system += jsonReminder
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: c.maxTokens,
		Messages:  toMessages(req),
	}
	if strings.TrimSpace(system) != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", llm.EmptyReply("message has no text content (stop reason " + string(resp.StopReason) + ")")
	}
	return b.String(), nil
}

// toMessages merges adjacent turns because the Messages API requires user
// and assistant turns to alternate.
func toMessages(req ports.CompletionRequest) []anthropic.MessageParam {
	turns := llm.Turns(req.Messages, true)
	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, turn := range turns {
		block := anthropic.NewTextBlock(turn.Text)
		if turn.Assistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(block))
	}
	return messages
}

func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		var header http.Header
		if apiErr.Response != nil {
			header = apiErr.Response.Header
		}
		return llm.NewTransportError(apiErr.StatusCode, header, err)
	}
	return llm.NewTransportError(0, nil, err)
}
