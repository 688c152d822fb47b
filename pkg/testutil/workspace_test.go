package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryWorkspace(t *testing.T) {
	ws := NewMemoryWorkspace(t)
	ws.WriteAll(map[string]string{
		"templates/a.html": "A",
		"vars.txt":         "K=V",
	})

	assert.Equal(t, "A", ws.Read("templates/a.html"))
	assert.True(t, ws.Exists("vars.txt"))
	assert.False(t, ws.Exists("out"))

	opt := ws.Option("1", "*.html")
	assert.Equal(t, "/work/templates", opt.TemplateFolder)
	assert.Equal(t, "/work/out", opt.OutputFolder)
	assert.Equal(t, "/work/vars.txt", opt.VariableFile)
	assert.Equal(t, "*.html", opt.SearchPattern)
}

func TestDiskWorkspace(t *testing.T) {
	ws := NewDiskWorkspace(t)
	path := ws.Write("nested/dir/file.txt", "content")

	assert.Equal(t, ws.Path("nested", "dir", "file.txt"), path)
	assert.Equal(t, "content", ws.Read("nested/dir/file.txt"))
}
