package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	var err error

	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ModelCacheDir) == "" {
		c.Paths.ModelCacheDir = defaultModelCacheDir
	}
	if c.Paths.ModelCacheDir, err = expandPath(c.Paths.ModelCacheDir); err != nil {
		return fmt.Errorf("paths.model_cache_dir: %w", err)
	}

	c.Whisper.Model = strings.TrimSpace(c.Whisper.Model)
	if c.Whisper.Model == "" {
		c.Whisper.Model = defaultModel
	}
	c.Whisper.Language = strings.TrimSpace(c.Whisper.Language)
	if c.Whisper.Language == "" {
		c.Whisper.Language = defaultLanguage
	}
	c.Whisper.Device = strings.ToLower(strings.TrimSpace(c.Whisper.Device))
	if c.Whisper.Device == "" {
		c.Whisper.Device = defaultDevice
	}
	if c.Whisper.HFToken == "" {
		if value, ok := os.LookupEnv("HF_TOKEN"); ok {
			c.Whisper.HFToken = strings.TrimSpace(value)
		}
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}
