// Package config loads the bot configuration from config.yaml, BOT_* environment
// variables and built-in defaults, and validates it.
package config

import (
	"errors"
	"time"
)

// ErrValidation is wrapped by every configuration validation failure.
var ErrValidation = errors.New("config validation error")

// Config is the root configuration.
type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	AI        AIConfig        `mapstructure:"ai"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Dialogue  DialogueConfig  `mapstructure:"dialogue"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// TelegramConfig holds the bot API credentials.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`
	// AdminUserID may run operator commands such as /stats. Zero disables them.
	AdminUserID int64 `mapstructure:"admin_user_id" validate:"min=0"`
}

// AIConfig configures the completion backend.
// An empty APIKey disables backend calls; consultations then answer with a
// localized configuration error.
type AIConfig struct {
	Provider        string        `mapstructure:"provider"          validate:"required,oneof=gemini openai"`
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"             validate:"required"`
	BaseURL         string        `mapstructure:"base_url"          validate:"omitempty,url"`
	Temperature     float32       `mapstructure:"temperature"       validate:"min=0,max=2"`
	TopK            float32       `mapstructure:"top_k"             validate:"min=0"`
	TopP            float32       `mapstructure:"top_p"             validate:"min=0,max=1"`
	MaxOutputTokens int32         `mapstructure:"max_output_tokens" validate:"min=1"`
	Timeout         time.Duration `mapstructure:"timeout"           validate:"min=1s,max=5m"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// RedisConfig configures the optional session cache.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"     validate:"required_if=Enabled true"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"       validate:"min=0"`
	TTL      time.Duration `mapstructure:"ttl"      validate:"min=0"`
}

// HTTPConfig configures the health and stats endpoint.
type HTTPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr" validate:"required_if=Enabled true"`
}

// LoggerConfig configures log/slog output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// DialogueConfig tunes the dialogue engine.
type DialogueConfig struct {
	HistoryLimit int           `mapstructure:"history_limit" validate:"min=1,max=50"`
	FlowTTL      time.Duration `mapstructure:"flow_ttl"      validate:"min=1m"`
}

// SchedulerConfig maps task names to their schedule.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a scheduled task with a cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}
