package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/lite-lake/xdns/internal/infrastructure/logger"
	"github.com/lite-lake/xdns/internal/interfaces/cli"
)

func main() {
	// credentials may live in a local .env; a missing file is fine
	_ = godotenv.Load()

	logLevel := slog.LevelInfo
	if os.Getenv("XDNS_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    os.Getenv("XDNS_LOG_FORMAT"),
		AddSource: os.Getenv("XDNS_DEBUG") != "",
	})

	cli.Execute()
}
