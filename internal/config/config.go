package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port            string `env:"PORT"              envDefault:"8080"`
	AppEnv          string `env:"APP_ENV"           envDefault:"dev"`
	TitleBackend    string `env:"TITLE_BACKEND"     envDefault:"local"`
	ModelDir        string `env:"MODEL_DIR"         envDefault:"./models"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	FrontendURL     string `env:"FRONTEND_URL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
