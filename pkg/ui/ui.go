// Package ui renders run reports, option lists and errors for the operator.
// Terminal output is styled with lipgloss and pterm; text output is the same
// report with styling removed.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// OptionList is what `list` shows: where the settings came from, the
// delimiters and the options
type OptionList struct {
	Source     string
	Delimiters placeholder.Delimiters
	Options    []types.Option
}

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderRun reports a substitution run
	RenderRun(result *types.RunResult) error

	// RenderCheck reports a validation-only pass
	RenderCheck(result *types.RunResult) error

	// RenderOptions lists the configured options
	RenderOptions(list OptionList) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a message that may carry [tag]markup[/tag]
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// buffers and pipes wrapped in writers get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return NewTerminalRenderer(output), nil
	case FormatText:
		return NewTextRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
