package beiform

import (
	"io/fs"

	"github.com/goliatone/go-beiform/pkg/contract"
	"github.com/goliatone/go-beiform/pkg/reference"
	"github.com/goliatone/go-beiform/pkg/summary"
)

// EmbeddedTemplates exposes the built-in review summary templates so callers
// can reuse or extend them without importing the summary package directly.
func EmbeddedTemplates() fs.FS {
	return summary.EmbeddedTemplates()
}

// ContractFS exposes the embedded OpenAPI contract of the calculation
// service. The default document is contract.DefaultFile.
func ContractFS() fs.FS {
	return contract.EmbeddedFS()
}

// ReferenceFS exposes the bundled energy reference table data.
func ReferenceFS() fs.FS {
	return reference.EmbeddedFS()
}
