package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/tmplfill/pkg/types"
)

// Report lines are built once with markup and then either styled or
// stripped by the renderer.

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func headerLine(r *types.RunResult) string {
	line := fmt.Sprintf("[title]%s[/title]", r.Option)
	if r.DryRun {
		line += " [muted](dry run)[/muted]"
	}
	return line
}

func variablesLine(r *types.RunResult) string {
	line := plural(r.Variables, "variable") + " loaded"
	if n := len(r.Skipped); n > 0 {
		line += fmt.Sprintf(", [warning]%d skipped[/warning]", n)
	}
	return line
}

func skippedLine(m types.MalformedLine) string {
	return fmt.Sprintf("[warning]skipped[/warning] line %d: %q", m.Line, m.Text)
}

func fileLine(f types.FileResult, withReplacements bool) string {
	if f.Missing {
		return fmt.Sprintf("[path]%s[/path] [warning]missing[/warning]", f.Output)
	}
	line := fmt.Sprintf("[path]%s[/path]", f.Output)
	if withReplacements {
		line += fmt.Sprintf(" [muted](%s)[/muted]", plural(f.Replacements, "replacement"))
	}
	return line
}

func unresolvedLine(f types.FileResult) string {
	tokens := make([]string, len(f.Unresolved))
	for i, tok := range f.Unresolved {
		tokens[i] = "[token]" + tok + "[/token]"
	}
	return "[warning]unresolved:[/warning] " + strings.Join(tokens, ", ")
}

func summaryLine(r *types.RunResult, verb string) string {
	if len(r.Files) == 0 {
		return "[warning]No templates matched[/warning] " + r.Option.SearchPattern
	}
	if n := r.UnresolvedCount(); n > 0 {
		return fmt.Sprintf("[warning]%s, %s with unresolved placeholders[/warning]", verb, plural(n, "file"))
	}
	return "[success]" + verb + "[/success]"
}

// reportLine is one line of a report, indented in steps of two spaces
type reportLine struct {
	indent int
	text   string
}

// resultLines lays out a run or check result. Runs also show the variable
// count, skipped lines and replacement counts.
func resultLines(result *types.RunResult, run bool, verb string) []reportLine {
	lines := []reportLine{{0, headerLine(result)}}

	if run {
		lines = append(lines, reportLine{1, variablesLine(result)})
		for _, m := range result.Skipped {
			lines = append(lines, reportLine{2, skippedLine(m)})
		}
	}

	for _, f := range result.Files {
		lines = append(lines, reportLine{1, fileLine(f, run)})
		if f.HasUnresolved() {
			lines = append(lines, reportLine{2, unresolvedLine(f)})
		}
	}

	return append(lines, reportLine{0, summaryLine(result, verb)})
}
