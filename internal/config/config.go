package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken  string        `toml:"telegram_token"`
	DatabaseURL    string        `toml:"database_url"`
	DBLogLevel     string        `toml:"db_log_level"`
	ReportInterval time.Duration `toml:"-"`
	ReportHours    int           `toml:"report_interval_hours"`
	DigestTime     string        `toml:"digest_time"`
	HistoryLimit   int           `toml:"history_limit"`
}

// Load reads the optional TOML file at path, then applies environment
// variables on top, then fills defaults. An empty path falls back to
// CONFIG_FILE.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	overrideString(&cfg.TelegramToken, "TELEGRAM_TOKEN")
	overrideString(&cfg.DatabaseURL, "DATABASE_URL")
	overrideString(&cfg.DBLogLevel, "DB_LOG_LEVEL")
	overrideString(&cfg.DigestTime, "DIGEST_TIME")

	cfg.ReportInterval = time.Duration(cfg.ReportHours) * time.Hour
	if raw := strings.TrimSpace(os.Getenv("REPORT_INTERVAL_HOURS")); raw != "" {
		cfg.ReportInterval = parseInterval(raw)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "todo_planner.db"
	}
	if cfg.DBLogLevel == "" {
		cfg.DBLogLevel = "warn"
	}
	if cfg.ReportInterval <= 0 && cfg.DigestTime == "" {
		cfg.ReportInterval = 24 * time.Hour
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func overrideString(dst *string, env string) {
	if value := strings.TrimSpace(os.Getenv(env)); value != "" {
		*dst = value
	}
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
