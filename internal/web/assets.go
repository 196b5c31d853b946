package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Assets returns the page stylesheet and script, rooted at static/.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
