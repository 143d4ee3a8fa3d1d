package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/dhartushar/TitleGenerator/internal/config"
	"github.com/dhartushar/TitleGenerator/internal/handler"
	"github.com/dhartushar/TitleGenerator/internal/logging"
	"github.com/dhartushar/TitleGenerator/pkg/headline"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logging.Init(cfg.AppEnv)

	generator, closer, err := buildGenerator(cfg)
	if err != nil {
		log.Fatalf("error initializing title generator: %v", err)
	}
	if closer != nil {
		defer closer()
	}

	titleHandler := handler.NewTitleHandler(generator)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/api/blog/suggest-titles/", titleHandler.SuggestTitles)
	r.GET("/api/blog/health/", titleHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func buildGenerator(cfg config.Config) (handler.TitleGenerator, func() error, error) {
	switch cfg.TitleBackend {
	case "local":
		generator, err := headline.NewLocalGenerator(cfg.ModelDir)
		if err != nil {
			return nil, nil, err
		}
		return generator, generator.Close, nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, nil, fmt.Errorf("OPENAI_API_KEY is required for the openai backend")
		}
		return headline.NewOpenAIGenerator(cfg.OpenAIAPIKey), nil, nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic backend")
		}
		return headline.NewAnthropicGenerator(cfg.AnthropicAPIKey), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown title backend: %q", cfg.TitleBackend)
	}
}
