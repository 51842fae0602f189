package reference

import (
	"embed"
	"io/fs"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// DefaultFile names the bundled table inside EmbeddedFS.
const DefaultFile = "ranges.yaml"

// EmbeddedFS returns the bundled reference data.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
