package batch

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/testutil"
	"github.com/arthur-debert/tmplfill/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(fsys types.FS, dryRun bool) *Runner {
	return NewRunner(Options{
		FS:         fsys,
		Delimiters: placeholder.Default(),
		DryRun:     dryRun,
	})
}

func TestRun_EndToEnd(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/greeting.html": "Hello {{NAME}}, enc={{{NAME}}}",
		"templates/missing.html":  "Hi {{NAME}} and {{MISSING}}, again {{MISSING}}",
		"templates/notes.txt":     "not matched {{NAME}}",
		"vars.txt":                "# people\nNAME=O'Brien\n",
	})

	result, err := newRunner(ws.FS, false).Run(ws.Option("1", "*.html"))
	require.NoError(t, err)

	assert.Equal(t, "Hello O'Brien, enc=O&#39;Brien", ws.Read("out/greeting.html"))
	assert.Equal(t, "Hi O'Brien and {{MISSING}}, again {{MISSING}}", ws.Read("out/missing.html"))
	assert.False(t, ws.Exists("out/notes.txt"))

	require.Len(t, result.Files, 2)
	assert.Equal(t, 1, result.Variables)
	assert.Equal(t, ws.Path("templates", "greeting.html"), result.Files[0].Template)
	assert.Equal(t, ws.Path("out", "greeting.html"), result.Files[0].Output)
	assert.Equal(t, 2, result.Files[0].Replacements)
	assert.Empty(t, result.Files[0].Unresolved)

	assert.Equal(t, []string{"{{MISSING}}"}, result.Files[1].Unresolved)
	assert.Equal(t, 1, result.UnresolvedCount())
	assert.False(t, result.DryRun)
}

func TestRun_MissingVariableFile(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.Write("templates/a.html", "{{NAME}}")

	result, err := newRunner(ws.FS, false).Run(ws.Option("1", "*.html"))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Variables)
	assert.Equal(t, "{{NAME}}", ws.Read("out/a.html"))
	assert.Equal(t, []string{"{{NAME}}"}, result.Files[0].Unresolved)
}

func TestRun_SkippedVariableLines(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/a.html": "{{A}}",
		"vars.txt":         "A=1\nbroken line\n",
	})

	result, err := newRunner(ws.FS, false).Run(ws.Option("1", "*.html"))
	require.NoError(t, err)

	assert.Equal(t, "1", ws.Read("out/a.html"))
	assert.Equal(t, []types.MalformedLine{{Line: 2, Text: "broken line"}}, result.Skipped)
}

func TestRun_CreatesNestedOutputFolder(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.Write("templates/a.html", "x")

	opt := ws.Option("1", "*")
	opt.OutputFolder = ws.Path("deep", "er", "out")

	_, err := newRunner(ws.FS, false).Run(opt)
	require.NoError(t, err)
	assert.Equal(t, "x", ws.Read("deep/er/out/a.html"))
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/a.html": "new {{V}}",
		"out/a.html":       "old content that is longer",
		"vars.txt":         "V=value",
	})

	_, err := newRunner(ws.FS, false).Run(ws.Option("1", "*.html"))
	require.NoError(t, err)
	assert.Equal(t, "new value", ws.Read("out/a.html"))
}

func TestRun_NonRecursive(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/top.html":        "top",
		"templates/nested/sub.html": "sub",
	})

	result, err := newRunner(ws.FS, false).Run(ws.Option("1", "*.html"))
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, ws.Path("templates", "top.html"), result.Files[0].Template)
}

func TestRun_DryRun(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/a.html": "{{A}} {{B}}",
		"vars.txt":         "A=1",
	})

	result, err := newRunner(ws.FS, true).Run(ws.Option("1", "*.html"))
	require.NoError(t, err)

	assert.False(t, ws.Exists("out"))
	assert.True(t, result.DryRun)
	require.Len(t, result.Files, 1)
	assert.Equal(t, []string{"{{B}}"}, result.Files[0].Unresolved)
	assert.False(t, result.Files[0].Missing)
}

func TestRun_Failures(t *testing.T) {
	t.Run("missing template folder", func(t *testing.T) {
		ws := testutil.NewMemoryWorkspace(t)

		_, err := newRunner(ws.FS, false).Run(ws.Option("1", "*.html"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		ws := testutil.NewMemoryWorkspace(t)
		ws.Write("templates/a.html", "x")

		_, err := newRunner(ws.FS, false).Run(ws.Option("1", "[.html"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("output folder is a file", func(t *testing.T) {
		ws := testutil.NewDiskWorkspace(t)
		ws.WriteAll(map[string]string{
			"templates/a.html": "x",
			"out":              "i am a file",
		})

		_, err := newRunner(ws.FS, false).Run(ws.Option("1", "*.html"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	})

	t.Run("write failure keeps earlier files", func(t *testing.T) {
		ws := testutil.NewMemoryWorkspace(t)
		ws.WriteAll(map[string]string{
			"templates/a.html": "a",
			"templates/b.html": "b",
			"templates/c.html": "c",
		})
		failing := &failingWriteFS{FS: ws.FS, failOn: "b.html"}

		_, err := newRunner(failing, false).Run(ws.Option("1", "*.html"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
		assert.Equal(t, ws.Path("out", "b.html"), errors.GetErrorDetails(err)["path"])

		assert.True(t, ws.Exists("out/a.html"))
		assert.False(t, ws.Exists("out/b.html"))
		assert.False(t, ws.Exists("out/c.html"))
	})
}

func TestCheck(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/a.html": "ignored",
		"templates/b.html": "ignored",
		"out/a.html":       "left {{OVER}}",
	})

	result, err := newRunner(ws.FS, true).Check(ws.Option("1", "*.html"))
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, []string{"{{OVER}}"}, result.Files[0].Unresolved)
	assert.False(t, result.Files[0].Missing)
	assert.True(t, result.Files[1].Missing)
	assert.Empty(t, result.Files[1].Unresolved)
}

func TestRunAll(t *testing.T) {
	ws := testutil.NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/a.html": "{{A}}",
		"vars.txt":         "A=ok",
	})

	broken := ws.Option("2", "*.html")
	broken.TemplateFolder = ws.Path("nowhere")

	outcomes := newRunner(ws.FS, false).RunAll([]types.Option{broken, ws.Option("1", "*.html")})

	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.Nil(t, outcomes[0].Result)
	assert.NoError(t, outcomes[1].Err)
	assert.Equal(t, "ok", ws.Read("out/a.html"))
	assert.Equal(t, 1, Failed(outcomes))
}

func TestOutputPath(t *testing.T) {
	opt := types.Option{OutputFolder: "/srv/out"}
	assert.Equal(t, filepath.Join("/srv/out", "page.html"), OutputPath(opt, "/tpl/page.html"))
}

type failingWriteFS struct {
	types.FS
	failOn string
}

func (f *failingWriteFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if filepath.Base(name) == f.failOn {
		return &fs.PathError{Op: "write", Path: name, Err: stderrors.New("disk full")}
	}
	return f.FS.WriteFile(name, data, perm)
}
