// Package site embeds the default HestJS website sources: manifest, copy,
// templates, docs, client scripts and static files.
package site

import (
	"embed"
	"io/fs"
)

//go:embed manifest.yaml sidebars.yaml translations templates docs javascript static
var files embed.FS

// FS returns the embedded site sources.
func FS() fs.FS {
	return files
}
