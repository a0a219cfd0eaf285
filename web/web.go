// Package web embeds the landing page served under /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// Static returns the static asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
