package initializers

import (
	"log/slog"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on the environment", "err", err)
	}
}
