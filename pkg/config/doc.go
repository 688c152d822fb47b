// Package config handles tool-level configuration for tmplfill.
//
// Configuration is layered with koanf: embedded defaults, then the user's
// config.toml, then TMPLFILL_* environment variables. Command-line flags are
// applied on top by the command layer. This is separate from the settings
// document, which describes delimiters and options.
package config
