package assets

import (
	"embed"
	"io/fs"
)

//go:embed rom
var romFiles embed.FS

// ROM returns the read-only filesystem of assets built into the binary.
func ROM() fs.FS {
	sub, err := fs.Sub(romFiles, "rom")
	if err != nil {
		// "rom" is a literal embedded directory; Sub cannot fail on it
		panic(err)
	}
	return sub
}
