// Package placeholder builds the tokens tmplfill searches for in templates
// and renders the values substituted for them.
//
// Two delimiter styles exist. Plain tokens are replaced by the raw value;
// Encoded tokens are replaced by the HTML-escaped value so that it can be
// dropped into markup or attribute text safely.
package placeholder

import (
	"html"

	"github.com/arthur-debert/tmplfill/pkg/errors"
)

// Style selects one of the two delimiter styles
type Style int

const (
	// Plain tokens are substituted with the raw value
	Plain Style = iota
	// Encoded tokens are substituted with the HTML-escaped value
	Encoded
)

// Settings document identifiers of the two styles
const (
	PlainID   = "NORMAL"
	EncodedID = "HTMLENC"
)

// String returns the settings identifier of the style
func (s Style) String() string {
	switch s {
	case Plain:
		return PlainID
	case Encoded:
		return EncodedID
	default:
		return "UNKNOWN"
	}
}

// Delimiter is a prefix/postfix pair wrapped around a variable key
type Delimiter struct {
	Prefix  string `koanf:"prefix" toml:"prefix" yaml:"prefix"`
	Postfix string `koanf:"postfix" toml:"postfix" yaml:"postfix"`
}

// Wrap returns prefix + key + postfix
func (d Delimiter) Wrap(key string) string {
	return d.Prefix + key + d.Postfix
}

// Delimiters holds both styles. It is loaded once and passed by value to
// every component that needs it.
type Delimiters struct {
	Plain   Delimiter `koanf:"normal" toml:"normal" yaml:"normal"`
	Encoded Delimiter `koanf:"htmlenc" toml:"htmlenc" yaml:"htmlenc"`
}

// Default returns the double/triple brace delimiters used by the sample
// settings document
func Default() Delimiters {
	return Delimiters{
		Plain:   Delimiter{Prefix: "{{", Postfix: "}}"},
		Encoded: Delimiter{Prefix: "{{{", Postfix: "}}}"},
	}
}

// Get returns the delimiter of the given style
func (d Delimiters) Get(style Style) Delimiter {
	if style == Encoded {
		return d.Encoded
	}
	return d.Plain
}

// Token returns the exact text searched for when substituting key in style
func (d Delimiters) Token(key string, style Style) string {
	return d.Get(style).Wrap(key)
}

// RenderValue returns the text substituted for a token of the given style
func (d Delimiters) RenderValue(value string, style Style) string {
	return RenderValue(value, style)
}

// RenderValue escapes value for the Encoded style and leaves it unchanged
// for Plain. Escaping covers &, <, >, " and '.
func RenderValue(value string, style Style) string {
	if style == Encoded {
		return html.EscapeString(value)
	}
	return value
}

// Decode reverses RenderValue for the given style
func Decode(rendered string, style Style) string {
	if style == Encoded {
		return html.UnescapeString(rendered)
	}
	return rendered
}

// Validate checks that both styles have a prefix and that the two styles
// produce different tokens for the same key.
func (d Delimiters) Validate() error {
	for _, style := range []Style{Plain, Encoded} {
		if d.Get(style).Prefix == "" {
			return errors.Newf(errors.ErrConfigValid, "%s delimiter has an empty prefix", style).
				WithDetail("style", style.String())
		}
	}
	if d.Plain == d.Encoded {
		return errors.New(errors.ErrConfigValid, "NORMAL and HTMLENC delimiters are identical").
			WithDetail("prefix", d.Plain.Prefix).
			WithDetail("postfix", d.Plain.Postfix)
	}
	return nil
}
