package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/dhartushar/TitleGenerator/internal/config"
	"github.com/dhartushar/TitleGenerator/pkg/headline"

	"github.com/joho/godotenv"
)

// Downloads the headline model ahead of server start so the API boots
// without a cold download.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	path, err := headline.EnsureModel(cfg.ModelDir)
	if err != nil {
		log.Fatalf("error fetching model: %v", err)
	}

	slog.Info("model ready", "model", headline.DefaultModelID, "path", path)
}
