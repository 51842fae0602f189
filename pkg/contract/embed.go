package contract

import (
	"embed"
	"io/fs"
)

// DefaultFile is the bundled contract document.
const DefaultFile = "official.yaml"

//go:embed data/*.yaml
var embeddedFiles embed.FS

// EmbeddedFS exposes the bundled contract documents rooted at data/.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedFiles, "data")
	if err != nil {
		panic("contract: embedded data missing: " + err.Error())
	}
	return sub
}
