// Package llm wraps the Anthropic Messages API behind a single text
// completion call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/stash-backend/internal/config"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Client sends prompts to Claude.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewClient creates a Client for the default Anthropic endpoint.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	return newClient(cfg, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(cfg config.LLMConfig, baseURL string, logger *slog.Logger) *Client {
	return newClient(cfg, logger, option.WithBaseURL(baseURL))
}

func newClient(cfg config.LLMConfig, logger *slog.Logger, extra ...option.RequestOption) *Client {
	opts := append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}, extra...)

	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "llm"),
	}
}

// Complete sends a single-turn conversation and returns the concatenated
// text of the reply.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	start := time.Now()
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "llm request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("llm: messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.log.DebugContext(ctx, "llm response",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return text, nil
}
