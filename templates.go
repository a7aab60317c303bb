package formflow

import (
	"io/fs"

	"github.com/goliatone/go-formflow/pkg/page"
)

// EmbeddedTemplates exposes the built-in page template so callers can reuse
// or extend it without importing the page package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
