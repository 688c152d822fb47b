package types

import "fmt"

// Option is a named unit of work loaded from the settings document.
// It is immutable once loaded.
type Option struct {
	ID             string `koanf:"id" toml:"id" yaml:"id"`
	Name           string `koanf:"name" toml:"name" yaml:"name"`
	TemplateFolder string `koanf:"template_folder" toml:"template_folder" yaml:"template_folder"`
	OutputFolder   string `koanf:"output_folder" toml:"output_folder" yaml:"output_folder"`
	VariableFile   string `koanf:"variable_file" toml:"variable_file" yaml:"variable_file"`
	SearchPattern  string `koanf:"search_pattern" toml:"search_pattern" yaml:"search_pattern"`
}

// String returns the menu label of the option
func (o Option) String() string {
	return fmt.Sprintf("[%s]. %s", o.ID, o.Name)
}

// FindOption returns the option with the given id
func FindOption(options []Option, id string) (Option, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}
