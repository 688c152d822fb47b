package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TMPLFILL_"

// Output formats accepted in output.format
var OutputFormats = []string{"auto", "term", "text"}

// Config is the tool-level configuration
type Config struct {
	Settings SettingsConfig `koanf:"settings"`
	Output   OutputConfig   `koanf:"output"`
	Log      LogConfig      `koanf:"log"`
}

type SettingsConfig struct {
	Path string `koanf:"path"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}

type LogConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

// Load builds the configuration from defaults, the config file at path (if
// it exists) and the environment
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default config")
	}

	// 2. User config file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("loaded config file")
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
	}

	return unmarshal(k)
}

// Overrides merges explicit values, such as command-line flags, over cfg.
// Keys use the dotted form (output.format).
func (c *Config) Overrides(values map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(c.toMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load config")
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to apply overrides")
	}
	return unmarshal(k)
}

func (c *Config) toMap() map[string]interface{} {
	return map[string]interface{}{
		"settings.path": c.Settings.Path,
		"output.format": c.Output.Format,
		"log.verbosity": c.Log.Verbosity,
		"log.file":      c.Log.File,
	}
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	valid := false
	for _, f := range OutputFormats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigValid, "output.format must be one of %s, got %q",
			strings.Join(OutputFormats, ", "), c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Log.Verbosity < 0 {
		return errors.New(errors.ErrConfigValid, "log.verbosity cannot be negative").
			WithDetail("key", "log.verbosity")
	}
	return nil
}

// envKey maps TMPLFILL_OUTPUT_FORMAT to output.format
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
