package settings

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/logging"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// document is the TOML/YAML shape of a settings file
type document struct {
	Prefixes placeholder.Delimiters `toml:"prefixes" yaml:"prefixes"`
	Options  []types.Option         `toml:"options" yaml:"options"`
}

// Sample returns a starter settings document with the default delimiters
// and a single option
func Sample() *Settings {
	return &Settings{
		Delimiters: placeholder.Default(),
		Options: []types.Option{
			{
				ID:             "1",
				Name:           "Build site",
				TemplateFolder: "templates",
				OutputFolder:   "output",
				VariableFile:   "site.vars",
				SearchPattern:  "*.html",
			},
		},
	}
}

// Encode renders settings in the given format
func Encode(s *Settings, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		data, err := toml.Marshal(document{Prefixes: s.Delimiters, Options: s.Options})
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode settings as TOML")
		}
		return data, nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(document{Prefixes: s.Delimiters, Options: s.Options}); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode settings as YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode settings as YAML")
		}
		return buf.Bytes(), nil
	default:
		data, err := xmlDocument(s).WriteToBytes()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode settings as XML")
		}
		return data, nil
	}
}

// Write renders settings to w
func Write(w io.Writer, s *Settings, format Format) error {
	data, err := Encode(s, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write settings")
	}
	return nil
}

// WriteFile writes settings to path. An existing file is only replaced when
// force is set.
func WriteFile(fsys types.FS, path string, s *Settings, format Format, force bool) error {
	logger := logging.GetLogger("settings.generate")

	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}

	data, err := Encode(s, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
				WithDetail("path", dir)
		}
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Str("format", string(format)).Msg("wrote settings")
	return nil
}
