// Package substitute replaces placeholder tokens in template text.
//
// Variables are applied strictly in the order they were loaded. For each
// variable the Encoded token is replaced first and the Plain token second,
// so an Encoded token that contains the Plain token (e.g. {{{KEY}}} around
// {{KEY}}) is consumed before the Plain pass can see it. Replacement is
// literal and global: no pattern syntax, no word boundaries.
package substitute

import (
	"strings"

	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// Result is the outcome of substituting one text
type Result struct {
	Text string
	// Plain and Encoded count the tokens replaced in each style
	Plain   int
	Encoded int
}

// Total returns the number of replaced tokens
func (r Result) Total() int {
	return r.Plain + r.Encoded
}

// Engine applies variables to text using one set of delimiters
type Engine struct {
	delimiters placeholder.Delimiters
}

// New creates an engine for the given delimiters
func New(delimiters placeholder.Delimiters) *Engine {
	return &Engine{delimiters: delimiters}
}

// Delimiters returns the delimiters the engine was built with
func (e *Engine) Delimiters() placeholder.Delimiters {
	return e.delimiters
}

// Substitute returns text with every variable applied
func (e *Engine) Substitute(text string, variables []types.Variable) string {
	return e.Apply(text, variables).Text
}

// Apply substitutes variables into text and counts the replacements
func (e *Engine) Apply(text string, variables []types.Variable) Result {
	result := Result{Text: text}

	for _, v := range variables {
		var n int
		result.Text, n = replace(result.Text,
			e.delimiters.Token(v.Key, placeholder.Encoded),
			e.delimiters.RenderValue(v.Value, placeholder.Encoded))
		result.Encoded += n

		result.Text, n = replace(result.Text,
			e.delimiters.Token(v.Key, placeholder.Plain),
			e.delimiters.RenderValue(v.Value, placeholder.Plain))
		result.Plain += n
	}

	return result
}

// replace is strings.ReplaceAll that also reports how many tokens it replaced
func replace(text, token, value string) (string, int) {
	if token == "" {
		return text, 0
	}
	n := strings.Count(text, token)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, token, value), n
}
