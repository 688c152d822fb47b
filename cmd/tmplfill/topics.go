package tmplfill

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var embeddedTopics embed.FS

// helpTopics returns the embedded help topics rooted at their directory
func helpTopics() fs.FS {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		return embeddedTopics
	}
	return sub
}
