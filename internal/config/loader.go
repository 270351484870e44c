package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig reads configuration in increasing precedence from defaults, the
// YAML file at path and BOT_* environment variables (BOT_AI_API_KEY sets
// ai.api_key). A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultGeminiModel
		if cfg.AI.Provider == "openai" {
			cfg.AI.Model = DefaultOpenAIModel
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnv registers keys without defaults so AutomaticEnv can populate them
// during Unmarshal.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{"telegram.token", "telegram.admin_user_id", "ai.api_key", "ai.model", "ai.base_url", "redis.password"} {
		_ = v.BindEnv(key)
	}
}
