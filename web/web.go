// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed tmpl/*.html
var tmpl embed.FS

//go:embed static
var static embed.FS

// Templates is rooted at the template directory, so names are bare file names
// like "home.html".
func Templates() fs.FS {
	sub, err := fs.Sub(tmpl, "tmpl")
	if err != nil {
		panic(err)
	}
	return sub
}

func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
