// Package variables reads variable definition files.
//
// A variable file holds one key=value pair per line. Blank lines and lines
// starting with # are ignored. The line is trimmed once and then split on the
// first '=' only, so values may themselves contain '='.
//
// Lines that carry no '=' (or have nothing before it) cannot be turned into a
// replacement rule. They are skipped with a warning and reported through
// Result.Skipped; parsing always continues.
package variables

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"strings"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/logging"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// Result is the outcome of parsing one variable file
type Result struct {
	// Variables are the replacement rules in file order, duplicates included
	Variables []types.Variable
	// Skipped are the malformed lines that were ignored
	Skipped []types.MalformedLine
}

// Load reads the variable file at path. A missing file yields an empty
// result and no error.
func Load(fsys types.FS, path string) (*Result, error) {
	logger := logging.GetLogger("variables")

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Info().Str("path", path).Msg("variable file not found, using no variables")
			return &Result{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read variable file %s", path).
			WithDetail("path", path)
	}

	result, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read variable file %s", path).
			WithDetail("path", path)
	}

	for _, skipped := range result.Skipped {
		logger.Warn().
			Str("path", path).
			Int("line", skipped.Line).
			Str("text", skipped.Text).
			Msg("skipping malformed variable line")
	}

	logger.Debug().
		Str("path", path).
		Int("variables", len(result.Variables)).
		Int("skipped", len(result.Skipped)).
		Msg("loaded variable file")

	return result, nil
}

// Parse reads variable definitions from r
func Parse(r io.Reader) (*Result, error) {
	result := &Result{}

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++

		variable, err := ParseLine(raw)
		switch {
		case err != nil:
			result.Skipped = append(result.Skipped, types.MalformedLine{
				Line: lineNo,
				Text: strings.TrimSpace(raw),
			})
		case variable != nil:
			variable.Line = lineNo
			result.Variables = append(result.Variables, *variable)
		}

		if readErr == io.EOF {
			break
		}
	}

	return result, nil
}

// ParseLine parses a single line. It returns nil for comments and blank
// lines and an ErrMalformedVariable error when the line has no key=value
// pair.
func ParseLine(line string) (*types.Variable, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return nil, errors.Newf(errors.ErrMalformedVariable, "line %q has no '=' separator", trimmed)
	}
	if key == "" {
		return nil, errors.Newf(errors.ErrMalformedVariable, "line %q has an empty key", trimmed)
	}

	return &types.Variable{Key: key, Value: value}, nil
}
