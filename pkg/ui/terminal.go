package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/tmplfill/pkg/style"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// TerminalRenderer writes styled output for interactive terminals
type TerminalRenderer struct {
	output io.Writer
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{output: w}
}

func (r *TerminalRenderer) write(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func (r *TerminalRenderer) RenderRun(result *types.RunResult) error {
	return r.renderResult(result, true, "Done")
}

func (r *TerminalRenderer) RenderCheck(result *types.RunResult) error {
	return r.renderResult(result, false, "Checked")
}

func (r *TerminalRenderer) renderResult(result *types.RunResult, run bool, verb string) error {
	lines := resultLines(result, run, verb)

	var body strings.Builder
	for _, l := range lines[:len(lines)-1] {
		body.WriteString(strings.Repeat("  ", l.indent))
		body.WriteString(style.Render(l.text))
		body.WriteString("\n")
	}
	if err := r.write(strings.TrimRight(body.String(), "\n")); err != nil {
		return err
	}

	indicator := style.SuccessIndicator
	if len(result.Files) == 0 || !result.Clean() {
		indicator = style.WarningIndicator
	}
	return r.write(indicator + " " + style.Render(lines[len(lines)-1].text))
}

func (r *TerminalRenderer) RenderOptions(list OptionList) error {
	d := list.Delimiters
	header := fmt.Sprintf("plain [token]%s[/token]  encoded [token]%s[/token]",
		d.Plain.Wrap("KEY"), d.Encoded.Wrap("KEY"))
	if list.Source != "" {
		header = fmt.Sprintf("[path]%s[/path]\n%s", list.Source, header)
	}
	if err := r.write(style.BoxStyle.Render(style.Render(header))); err != nil {
		return err
	}

	if len(list.Options) == 0 {
		return r.write(style.MutedStyle.Render("No options configured"))
	}

	data := pterm.TableData{{"Id", "Name", "Templates", "Output", "Variables"}}
	for _, opt := range list.Options {
		data = append(data, []string{
			opt.ID,
			opt.Name,
			filepath.Join(opt.TemplateFolder, opt.SearchPattern),
			opt.OutputFolder,
			opt.VariableFile,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	return r.write(table)
}

func (r *TerminalRenderer) RenderError(err error) error {
	return r.write(style.ErrorIndicator + " " + style.ErrorStyle.Render(err.Error()))
}

func (r *TerminalRenderer) RenderMessage(msg string) error {
	return r.write(pterm.Info.Prefix.Text + " " + style.Render(msg))
}
