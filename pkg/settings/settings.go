package settings

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/logging"
	"github.com/arthur-debert/tmplfill/pkg/paths"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// Format is the encoding of a settings document
type Format string

const (
	FormatXML  Format = "xml"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats
var Formats = []Format{FormatXML, FormatTOML, FormatYAML}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatXML
	}
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "xml", "":
		return FormatXML, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown settings format: %s", s)
	}
}

// Extension returns the file extension conventionally used for the format
func (f Format) Extension() string {
	return "." + string(f)
}

// Settings is a loaded and validated settings document
type Settings struct {
	// Path is the file the settings were read from, empty when parsed from memory
	Path       string
	Delimiters placeholder.Delimiters
	Options    []types.Option
}

// Option looks up an option by id
func (s *Settings) Option(id string) (types.Option, error) {
	opt, ok := types.FindOption(s.Options, id)
	if !ok {
		return types.Option{}, errors.Newf(errors.ErrOptionNotFound, "no option with id %q", id).
			WithDetail("id", id)
	}
	return opt, nil
}

// Load reads, parses and validates the settings document at path. Relative
// folders and files in its options are resolved against the directory that
// holds the document.
func Load(fsys types.FS, path string) (*Settings, error) {
	logger := logging.GetLogger("settings")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read settings file %s", path).
			WithDetail("path", path)
	}

	format := FormatFromPath(path)
	s, err := Parse(data, format)
	if err != nil {
		if tfErr, ok := err.(*errors.TmplfillError); ok {
			tfErr.WithDetail("path", path)
		}
		return nil, err
	}

	s.Path = path
	base := filepath.Dir(path)
	for i := range s.Options {
		opt := &s.Options[i]
		opt.TemplateFolder = paths.Resolve(base, opt.TemplateFolder)
		opt.OutputFolder = paths.Resolve(base, opt.OutputFolder)
		opt.VariableFile = paths.Resolve(base, opt.VariableFile)
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("options", len(s.Options)).
		Msg("loaded settings")

	return s, nil
}

// Parse decodes and validates a settings document held in memory
func Parse(data []byte, format Format) (*Settings, error) {
	var (
		s   *Settings
		err error
	)

	switch format {
	case FormatTOML, FormatYAML:
		s, err = parseKoanf(data, format)
	default:
		s, err = parseXML(data)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks delimiters and options
func (s *Settings) Validate() error {
	if err := s.Delimiters.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(s.Options))
	for i, opt := range s.Options {
		if opt.ID == "" {
			return errors.Newf(errors.ErrConfigValid, "option #%d has an empty Id", i+1)
		}
		if strings.EqualFold(opt.ID, CancelID) {
			return errors.Newf(errors.ErrConfigValid, "option Id %q is reserved for cancel", opt.ID).
				WithDetail("id", opt.ID)
		}
		if _, dup := seen[opt.ID]; dup {
			return errors.Newf(errors.ErrConfigValid, "duplicate option Id %q", opt.ID).
				WithDetail("id", opt.ID)
		}
		seen[opt.ID] = struct{}{}

		if opt.TemplateFolder == "" || opt.OutputFolder == "" {
			return errors.Newf(errors.ErrConfigValid, "option %q needs both a template and an output folder", opt.ID).
				WithDetail("id", opt.ID)
		}
	}
	return nil
}

// CancelID is the menu answer that cancels; no option may use it
const CancelID = "C"

// option attribute names, in document order
var optionAttributes = []string{"Id", "Name", "TemplateFolder", "OutputFolder", "VariableFile", "SearchPattern"}

// missingAttribute builds the error for an option lacking an attribute
func missingAttribute(index int, id, attr string) error {
	label := strconv.Quote(id)
	if id == "" {
		label = "#" + strconv.Itoa(index+1)
	}
	return errors.Newf(errors.ErrConfigValid, "option %s is missing the %s attribute", label, attr).
		WithDetail("attribute", attr)
}
