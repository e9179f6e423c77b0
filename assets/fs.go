package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:data
var dataFS embed.FS

// FS returns the bundled models, navmeshes and levels rooted at the data directory.
func FS() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Open returns dir as a filesystem, or the bundled data when dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return FS()
	}
	return os.DirFS(dir)
}
