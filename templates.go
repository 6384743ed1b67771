package standardform

import (
	"io/fs"

	"github.com/goliatone/go-standardform/pkg/render"
)

// EmbeddedTemplates exposes the built-in templates so callers can copy or
// extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
