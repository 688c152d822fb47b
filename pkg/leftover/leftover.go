// Package leftover detects placeholders that survived substitution.
//
// The scanner looks for the canonical double-brace shape {{name}}, where name
// is one or more ASCII letters, digits or hyphens. It does not use the
// configured delimiters: with non-brace delimiters it is only a best-effort
// check, and keys containing other characters (underscores, dots) are not
// reported. Findings are diagnostics and never fail a run.
package leftover

import (
	stderrors "errors"
	"io/fs"
	"regexp"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// Pattern is the shape of an unresolved placeholder
const Pattern = `\{\{[A-Za-z0-9-]+\}\}`

var placeholderRE = regexp.MustCompile(Pattern)

// FindUnresolved returns every distinct placeholder-shaped token in text,
// in order of first appearance
func FindUnresolved(text string) []string {
	matches := placeholderRE.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	found := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		found = append(found, m)
	}
	return found
}

// ScanFile reads path and returns its unresolved placeholders.
// exists is false when the file is not there; that is not an error.
func ScanFile(fsys types.FS, path string) (found []string, exists bool, err error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read output file %s", path).
			WithDetail("path", path)
	}
	return FindUnresolved(string(data)), true, nil
}
