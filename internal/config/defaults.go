package config

import (
	"time"

	"github.com/spf13/viper"
)

// Defaults for optional settings.
const (
	DefaultAIProvider        = "gemini"
	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultAITemperature     = 0.3
	DefaultAITopK            = 40
	DefaultAITopP            = 0.95
	DefaultAIMaxOutputTokens = 500
	DefaultAITimeout         = 30 * time.Second

	DefaultDatabasePath = "arogya_sakhi.db"
	DefaultRedisAddr    = "localhost:6379"
	DefaultRedisTTL     = 24 * time.Hour
	DefaultHTTPAddr     = ":8080"

	DefaultLogLevel = "info"

	DefaultHistoryLimit = 5
	DefaultFlowTTL      = 24 * time.Hour
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", DefaultAIProvider)
	v.SetDefault("ai.temperature", DefaultAITemperature)
	v.SetDefault("ai.top_k", DefaultAITopK)
	v.SetDefault("ai.top_p", DefaultAITopP)
	v.SetDefault("ai.max_output_tokens", DefaultAIMaxOutputTokens)
	v.SetDefault("ai.timeout", DefaultAITimeout)

	v.SetDefault("database.path", DefaultDatabasePath)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", DefaultRedisAddr)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", DefaultRedisTTL)

	v.SetDefault("http.enabled", true)
	v.SetDefault("http.addr", DefaultHTTPAddr)

	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", false)

	v.SetDefault("dialogue.history_limit", DefaultHistoryLimit)
	v.SetDefault("dialogue.flow_ttl", DefaultFlowTTL)

	v.SetDefault("scheduler.tasks", map[string]any{
		"sql_maintenance":  map[string]any{"enabled": true, "schedule": "0 0 3 * * *"},
		"stale_flow_sweep": map[string]any{"enabled": true, "schedule": "0 0 * * * *"},
	})
}
