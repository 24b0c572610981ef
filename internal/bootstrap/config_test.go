package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLoggerLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := initLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected JSON warn record, got %s", out)
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger not replaced")
	}
}

func TestParseLevelFallback(t *testing.T) {
	if got := parseLevel("verbose"); got != slog.LevelInfo {
		t.Errorf("parseLevel(verbose) = %v, want info", got)
	}
	if got := parseLevel("debug"); got != slog.LevelDebug {
		t.Errorf("parseLevel(debug) = %v, want debug", got)
	}
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	// t.Setenv registers cleanup for keys godotenv will populate.
	t.Setenv("ADMIN_GROUP", "")
	t.Setenv("ACADEMY_PAGE_SIZE", "")
	if err := os.Unsetenv("ADMIN_GROUP"); err != nil {
		t.Fatal(err)
	}
	if err := os.Unsetenv("ACADEMY_PAGE_SIZE"); err != nil {
		t.Fatal(err)
	}

	content := "ADMIN_GROUP=senseis\nACADEMY_PAGE_SIZE=25\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Auth.Roles.AdminGroup != "senseis" {
		t.Errorf("AdminGroup = %q", cfg.Auth.Roles.AdminGroup)
	}
	if cfg.Academy.PageSize != 25 {
		t.Errorf("PageSize = %d", cfg.Academy.PageSize)
	}
}

func TestLoadConfigWithoutDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_GROUP", "senseis")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}
