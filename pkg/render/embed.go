package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/standard_form/*.tmpl templates/standard_form/widgets/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle rooted so that identifiers
// such as "standard_form/field.tmpl" resolve directly.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
