package config

const (
	defaultWorkDir       = "~/.cache/subcut/work"
	defaultModelCacheDir = "~/.cache/subcut/models"
	defaultModel         = "base"
	defaultLanguage      = "en"
	defaultDevice        = "cuda"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:       defaultWorkDir,
			ModelCacheDir: defaultModelCacheDir,
		},
		Whisper: Whisper{
			Model:    defaultModel,
			Language: defaultLanguage,
			Device:   defaultDevice,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
