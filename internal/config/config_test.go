package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_FILE", "TELEGRAM_TOKEN", "DATABASE_URL", "DB_LOG_LEVEL", "DIGEST_TIME", "REPORT_INTERVAL_HOURS"} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	clearEnv(t)
	if _, err := Load(""); err == nil {
		t.Fatal("expected error without TELEGRAM_TOKEN")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "todo_planner.db" {
		t.Errorf("DatabaseURL: got %q", cfg.DatabaseURL)
	}
	if cfg.ReportInterval != 24*time.Hour {
		t.Errorf("ReportInterval: got %v", cfg.ReportInterval)
	}
	if cfg.HistoryLimit != 10 || cfg.DBLogLevel != "warn" {
		t.Errorf("got history %d level %q", cfg.HistoryLimit, cfg.DBLogLevel)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "planner.toml")
	content := `
telegram_token = "from-file"
database_url = "data/file.db"
report_interval_hours = 6
digest_time = "08:30"
history_limit = 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATABASE_URL", "env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TelegramToken != "from-file" {
		t.Errorf("TelegramToken: got %q", cfg.TelegramToken)
	}
	if cfg.DatabaseURL != "env.db" {
		t.Errorf("env must win over file, got %q", cfg.DatabaseURL)
	}
	if cfg.ReportInterval != 6*time.Hour || cfg.DigestTime != "08:30" || cfg.HistoryLimit != 25 {
		t.Errorf("got %+v", cfg)
	}

	t.Setenv("REPORT_INTERVAL_HOURS", "nonsense")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReportInterval != 0 {
		t.Errorf("invalid interval with digest time set: got %v, want 0", cfg.ReportInterval)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
