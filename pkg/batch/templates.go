package batch

import (
	"path/filepath"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// FindTemplates lists the regular files directly inside folder whose name
// matches pattern, in name order. An empty pattern and "*.*" match every
// file.
func FindTemplates(fsys types.FS, folder, pattern string) ([]string, error) {
	if pattern == "" || pattern == "*.*" {
		pattern = "*"
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid search pattern %q", pattern).
			WithDetail("pattern", pattern)
	}

	entries, err := fsys.ReadDir(folder)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read template folder %s", folder).
			WithDetail("path", folder)
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Pattern was validated above, Match cannot fail here.
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			templates = append(templates, filepath.Join(folder, entry.Name()))
		}
	}

	return templates, nil
}
