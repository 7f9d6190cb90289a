package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subcut/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("HF_TOKEN", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantWork := filepath.Join(tempHome, ".cache", "subcut", "work")
	if cfg.Paths.WorkDir != wantWork {
		t.Fatalf("unexpected work dir: got %q want %q", cfg.Paths.WorkDir, wantWork)
	}
	if cfg.Whisper.Model != "base" {
		t.Fatalf("unexpected default model: %q", cfg.Whisper.Model)
	}
	if cfg.Whisper.Language != "en" {
		t.Fatalf("unexpected default language: %q", cfg.Whisper.Language)
	}
	if cfg.Whisper.Device != "cuda" {
		t.Fatalf("unexpected default device: %q", cfg.Whisper.Device)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.WorkDir, cfg.Paths.ModelCacheDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
	}
}

func TestLoadParsesFileAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
work_dir = "~/scratch"

[whisper]
model = "large-v3"
language = "German"
device = "CPU"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Paths.WorkDir != filepath.Join(tempHome, "scratch") {
		t.Fatalf("tilde not expanded: %q", cfg.Paths.WorkDir)
	}
	if cfg.Whisper.Model != "large-v3" {
		t.Fatalf("unexpected model: %q", cfg.Whisper.Model)
	}
	if cfg.Whisper.Device != "cpu" {
		t.Fatalf("device not lowercased: %q", cfg.Whisper.Device)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadHFTokenFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HF_TOKEN", "hf_test_token")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Whisper.HFToken != "hf_test_token" {
		t.Fatalf("expected token from env, got %q", cfg.Whisper.HFToken)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad device", "[whisper]\ndevice = \"tpu\"\n", "whisper.device"},
		{"bad format", "[logging]\nformat = \"yaml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected %q error, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(config.SampleConfig()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
	if cfg.Whisper.Model != "base" {
		t.Fatalf("sample config drifted from defaults: %+v", cfg.Whisper)
	}
}
