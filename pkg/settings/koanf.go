package settings

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// rawBytesProvider feeds an in-memory document to koanf
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// keys of an option table, paired with the XML attribute they mirror
var optionKeys = []struct{ key, attr string }{
	{"id", "Id"},
	{"name", "Name"},
	{"template_folder", "TemplateFolder"},
	{"output_folder", "OutputFolder"},
	{"variable_file", "VariableFile"},
	{"search_pattern", "SearchPattern"},
}

func parseKoanf(data []byte, format Format) (*Settings, error) {
	var parser koanf.Parser = toml.Parser()
	if format == FormatYAML {
		parser = yaml.Parser()
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "settings document is not valid %s", format)
	}

	delims, err := koanfDelimiters(k)
	if err != nil {
		return nil, err
	}

	s := &Settings{Delimiters: delims}
	for i, sub := range k.Slices("options") {
		opt, err := koanfOption(i, sub)
		if err != nil {
			return nil, err
		}
		s.Options = append(s.Options, opt)
	}
	return s, nil
}

func koanfDelimiters(k *koanf.Koanf) (placeholder.Delimiters, error) {
	var d placeholder.Delimiters
	for _, style := range []placeholder.Style{placeholder.Plain, placeholder.Encoded} {
		section := "prefixes." + styleKey(style)
		if !k.Exists(section) {
			return d, errors.Newf(errors.ErrConfigValid, "missing %s prefix entry", style).
				WithDetail("prefix_id", style.String())
		}
		for _, field := range []string{"prefix", "postfix"} {
			if !k.Exists(section + "." + field) {
				return d, errors.Newf(errors.ErrConfigValid, "%s prefix entry is missing the %s key", style, field).
					WithDetail("prefix_id", style.String())
			}
		}
		delim := placeholder.Delimiter{
			Prefix:  k.String(section + ".prefix"),
			Postfix: k.String(section + ".postfix"),
		}
		if style == placeholder.Plain {
			d.Plain = delim
		} else {
			d.Encoded = delim
		}
	}
	return d, nil
}

func styleKey(style placeholder.Style) string {
	if style == placeholder.Encoded {
		return "htmlenc"
	}
	return "normal"
}

func koanfOption(index int, k *koanf.Koanf) (types.Option, error) {
	values := make(map[string]string, len(optionKeys))
	for _, field := range optionKeys {
		if !k.Exists(field.key) {
			id := ""
			if k.Exists("id") {
				id = fmt.Sprint(k.Get("id"))
			}
			return types.Option{}, missingAttribute(index, id, field.attr)
		}
		// ids written as bare numbers arrive as integers
		values[field.key] = fmt.Sprint(k.Get(field.key))
	}
	return types.Option{
		ID:             values["id"],
		Name:           values["name"],
		TemplateFolder: values["template_folder"],
		OutputFolder:   values["output_folder"],
		VariableFile:   values["variable_file"],
		SearchPattern:  values["search_pattern"],
	}, nil
}
