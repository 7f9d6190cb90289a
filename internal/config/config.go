package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// WorkDir holds per-run work directories for extracted audio.
	WorkDir string `toml:"work_dir"`
	// ModelCacheDir is where the Whisper tooling caches downloaded
	// models; subcut locks it while a run is in flight.
	ModelCacheDir string `toml:"model_cache_dir"`
}

// Whisper contains transcription model defaults. CLI flags override
// these per run.
type Whisper struct {
	Model    string `toml:"model"`
	Language string `toml:"language"`
	Device   string `toml:"device"`
	// HFToken is the Hugging Face token some model distributions
	// require. Falls back to the HF_TOKEN environment variable.
	HFToken string `toml:"hf_token"`
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subcut.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Whisper Whisper `toml:"whisper"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subcut/config.toml")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded and normalized. The
// second return is the resolved file path; the third reports whether
// the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("subcut.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the work and model cache directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.WorkDir, c.Paths.ModelCacheDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other
// packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
