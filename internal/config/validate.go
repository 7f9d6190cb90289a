package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Whisper.Device {
	case "cuda", "cpu":
	default:
		return fmt.Errorf("whisper.device must be cuda or cpu, got %q", c.Whisper.Device)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
