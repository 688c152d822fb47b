package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/tmplfill/pkg/filesystem"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// Workspace is a directory tree holding everything an option needs:
// templates, a variable file and an output folder.
type Workspace struct {
	Root string
	FS   types.FS
	t    *testing.T
}

// NewMemoryWorkspace returns a workspace rooted at /work on an in-memory FS
func NewMemoryWorkspace(t *testing.T) *Workspace {
	t.Helper()

	fsys := NewTestFS()
	if err := fsys.MkdirAll("/work", 0755); err != nil {
		t.Fatalf("Failed to create workspace root: %v", err)
	}
	return &Workspace{Root: "/work", FS: fsys, t: t}
}

// NewDiskWorkspace returns a workspace in a temporary directory on disk
func NewDiskWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{Root: t.TempDir(), FS: filesystem.NewOS(), t: t}
}

// Path joins elements onto the workspace root
func (w *Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.Root}, elem...)...)
}

// Write creates a file relative to the workspace root
func (w *Workspace) Write(rel, content string) string {
	w.t.Helper()

	path := w.Path(rel)
	if err := w.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := w.FS.WriteFile(path, []byte(content), 0644); err != nil {
		w.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// WriteAll creates every file in files, in name order
func (w *Workspace) WriteAll(files map[string]string) {
	w.t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		w.Write(name, files[name])
	}
}

// Read returns the content of a file relative to the workspace root
func (w *Workspace) Read(rel string) string {
	w.t.Helper()
	return ReadFile(w.t, w.FS, w.Path(rel))
}

// Exists reports whether a path relative to the root exists
func (w *Workspace) Exists(rel string) bool {
	_, err := w.FS.Stat(w.Path(rel))
	return err == nil
}

// Option returns an option whose folders live under the workspace:
// templates/, out/ and vars.txt
func (w *Workspace) Option(id, pattern string) types.Option {
	return types.Option{
		ID:             id,
		Name:           "option " + id,
		TemplateFolder: w.Path("templates"),
		OutputFolder:   w.Path("out"),
		VariableFile:   w.Path("vars.txt"),
		SearchPattern:  pattern,
	}
}
