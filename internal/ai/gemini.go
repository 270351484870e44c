package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety: true,
	"PROHIBITED_CONTENT":     true,
	"BLOCKLIST":              true,
	"SPII":                   true,
}

type geminiClient struct {
	genaiClient *genai.Client
	model       string
	log         *slog.Logger
}

// NewGeminiClient creates a Client backed by the Gemini API.
func NewGeminiClient(ctx context.Context, cfg config.AIConfig, log *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	logger := log.With("component", "gemini_client")
	logger.Info("Gemini client initialized", "model", cfg.Model)
	return &geminiClient{genaiClient: gi, model: cfg.Model, log: logger}, nil
}

func (c *geminiClient) Complete(ctx context.Context, req Request) (*Response, error) {
	temperature, topK, topP := req.Params.Temperature, req.Params.TopK, req.Params.TopP
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopK:            &topK,
		TopP:            &topP,
		MaxOutputTokens: req.Params.MaxOutputTokens,
	}
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, genCfg)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			c.log.ErrorContext(ctx, "Gemini API returned an error", "code", apiErr.Code, "error", err)
		} else {
			c.log.ErrorContext(ctx, "Gemini API call failed", "error", err)
		}
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	out, err := interpretGemini(resp)
	if err != nil {
		c.log.WarnContext(ctx, "Gemini response not usable", "error", err, "finish_reason", finishReasonOf(resp))
		return nil, err
	}
	return out, nil
}

// interpretGemini extracts the first candidate's text, mapping prompt blocks
// and safety finish reasons to ErrBlocked regardless of any partial text.
func interpretGemini(resp *genai.GenerateContentResponse) (*Response, error) {
	if resp == nil {
		return nil, ErrEmptyResponse
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return nil, fmt.Errorf("%w: prompt blocked (%s)", ErrBlocked, fb.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, fmt.Errorf("%w: no candidates", ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if blockedFinishReasons[candidate.FinishReason] {
		return nil, fmt.Errorf("%w: finish reason %s", ErrBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: candidate has no content", ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrEmptyResponse)
	}

	return &Response{Text: text, FinishReason: string(candidate.FinishReason)}, nil
}

func finishReasonOf(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return ""
	}
	return string(resp.Candidates[0].FinishReason)
}
