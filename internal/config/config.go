package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all process-wide settings, read once at startup. Telegram and
// Discord credentials are optional: without them the pipeline still runs and
// falls back to local display at delivery time.
type Config struct {
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	TavilyAPIKey string `envconfig:"TAVILY_API_KEY"`

	Model    string `envconfig:"BRIEF_MODEL" default:"gemini-3-flash-preview"`
	Schedule string `envconfig:"BRIEF_SCHEDULE" default:"0 6 * * *"`

	TelegramBotToken  string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChannelID string `envconfig:"TELEGRAM_CHANNEL_ID"`

	DiscordBotToken  string `envconfig:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `envconfig:"DISCORD_CHANNEL_ID"`
}

// Load reads a .env file when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment variables from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	// envconfig's required tag only catches unset variables, not empty ones.
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return &cfg, nil
}
