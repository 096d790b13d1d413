// Package openai adapts OpenAI-compatible chat completion endpoints,
// OpenRouter included, to ports.Completion.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/coda-cli/internal/adapters/llm"
	"github.com/bnema/coda-cli/internal/ports"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type Config struct {
	APIKey    string
	BaseURL   string
	MaxTokens int64
	Timeout   time.Duration
	// HTTPClient overrides the SDK's default client.
	HTTPClient *http.Client
}

type Client struct {
	client    openai.Client
	maxTokens int64
}

var _ ports.Completion = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai-compatible API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Retries belong to the agent loop's backoff policy.
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

	return &Client{client: openai.NewClient(opts...), maxTokens: cfg.MaxTokens}, nil
}

func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: toMessages(req),
	}
	if req.JSONObject {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.EmptyReply("completion has no choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", llm.EmptyReply(fmt.Sprintf("empty completion (finish reason %q)", resp.Choices[0].FinishReason))
	}
	return content, nil
}

func toMessages(req ports.CompletionRequest) []openai.ChatCompletionMessageParamUnion {
	turns := llm.Turns(req.Messages, false)
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+1)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, turn := range turns {
		if turn.Assistant {
			messages = append(messages, openai.AssistantMessage(turn.Text))
			continue
		}
		messages = append(messages, openai.UserMessage(turn.Text))
	}
	return messages
}

func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		var header http.Header
		if apiErr.Response != nil {
			header = apiErr.Response.Header
		}
		return llm.NewTransportError(apiErr.StatusCode, header, err)
	}
	return llm.NewTransportError(0, nil, err)
}
