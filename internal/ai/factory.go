package ai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

// NewClient selects the backend named by cfg.Provider. It returns a nil
// Client and no error when no API key is configured.
func NewClient(ctx context.Context, cfg config.AIConfig, log *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		log.Warn("AI API key not configured; consultations will report a configuration error", "provider", cfg.Provider)
		return nil, nil
	}

	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(ctx, cfg, log)
	case "openai":
		return NewOpenAIClient(cfg, log)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}

// ParamsFromConfig extracts the generation parameters from cfg.
func ParamsFromConfig(cfg config.AIConfig) GenerationParams {
	return GenerationParams{
		Temperature:     cfg.Temperature,
		TopK:            cfg.TopK,
		TopP:            cfg.TopP,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}
}
