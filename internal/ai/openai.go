package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

const openAIContentFilter = "content_filter"

type openAIClient struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// NewOpenAIClient creates a Client backed by an OpenAI-compatible chat API.
func NewOpenAIClient(cfg config.AIConfig, log *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	aiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		aiCfg.BaseURL = cfg.BaseURL
	}

	logger := log.With("component", "openai_client")
	logger.Info("OpenAI client initialized", "model", cfg.Model, "base_url", aiCfg.BaseURL)
	return &openAIClient{
		client: openai.NewClientWithConfig(aiCfg),
		model:  cfg.Model,
		log:    logger,
	}, nil
}

func (c *openAIClient) Complete(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Params.Temperature,
		TopP:        req.Params.TopP,
		MaxTokens:   int(req.Params.MaxOutputTokens),
	})
	if err != nil {
		c.log.ErrorContext(ctx, "Chat completion failed", "error", err)
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	out, err := interpretOpenAI(resp)
	if err != nil {
		c.log.WarnContext(ctx, "Chat completion not usable", "error", err)
		return nil, err
	}

	c.log.DebugContext(ctx, "Chat completion received",
		"prompt_tokens", resp.Usage.PromptTokens, "completion_tokens", resp.Usage.CompletionTokens)
	return out, nil
}

// interpretOpenAI extracts the first choice's text; a content_filter finish
// reason maps to ErrBlocked.
func interpretOpenAI(resp openai.ChatCompletionResponse) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	finish := string(choice.FinishReason)
	if finish == openAIContentFilter {
		return nil, fmt.Errorf("%w: finish reason %s", ErrBlocked, finish)
	}

	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrEmptyResponse)
	}
	return &Response{Text: text, FinishReason: finish}, nil
}
