package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tmplfill/pkg/style"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// TextRenderer writes plain text without colors or styling
type TextRenderer struct {
	output io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{output: w}
}

func (r *TextRenderer) line(indent int, markup string) error {
	_, err := fmt.Fprintln(r.output, strings.Repeat("  ", indent)+style.Strip(markup))
	return err
}

func (r *TextRenderer) RenderRun(result *types.RunResult) error {
	return r.renderResult(result, true, "Done")
}

func (r *TextRenderer) RenderCheck(result *types.RunResult) error {
	return r.renderResult(result, false, "Checked")
}

func (r *TextRenderer) renderResult(result *types.RunResult, run bool, verb string) error {
	for _, l := range resultLines(result, run, verb) {
		if err := r.line(l.indent, l.text); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) RenderOptions(list OptionList) error {
	if list.Source != "" {
		if err := r.line(0, "Settings: "+list.Source); err != nil {
			return err
		}
	}
	d := list.Delimiters
	if err := r.line(0, fmt.Sprintf("Delimiters: plain %s, encoded %s", d.Plain.Wrap("KEY"), d.Encoded.Wrap("KEY"))); err != nil {
		return err
	}
	if len(list.Options) == 0 {
		return r.line(0, "No options configured")
	}
	for _, opt := range list.Options {
		if err := r.line(1, opt.String()); err != nil {
			return err
		}
		detail := fmt.Sprintf("%s -> %s (variables: %s)",
			filepath.Join(opt.TemplateFolder, opt.SearchPattern), opt.OutputFolder, opt.VariableFile)
		if err := r.line(2, detail); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *TextRenderer) RenderMessage(msg string) error {
	return r.line(0, msg)
}
