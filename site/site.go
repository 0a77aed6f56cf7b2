// Package site embeds the pages shown by the content panel.
package site

import (
	"embed"
	"io/fs"
)

//go:embed home.html pages/*.html
var files embed.FS

// FS returns the site root: home.html plus pages/<name>.html.
func FS() fs.FS {
	return files
}

// Home returns the home fragment, which is served from memory rather than fetched.
func Home() string {
	data, err := fs.ReadFile(files, "home.html")
	if err != nil {
		// Embedded at build time; only a broken build gets here.
		panic("site: home.html missing: " + err.Error())
	}
	return string(data)
}
