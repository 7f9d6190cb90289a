// Package config loads and validates the subcut configuration file.
//
// Configuration lives at ~/.config/subcut/config.toml by default, with
// a project-local subcut.toml as fallback. All values have working
// defaults so the tool runs without any file present. Secrets (the
// Hugging Face token) may also arrive through the environment; the CLI
// entrypoint loads a .env file before config resolution.
package config
