package template

import (
	"io"
)

// TemplateRenderer is the template-rendering collaborator the field renderer
// delegates to. It accepts a template identifier and a key/value context and
// returns the rendered markup.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	FuncRegistry
}

// FuncRegistry receives template functions and filters at startup. Template
// engines satisfy it; callers wiring the render functions into another engine
// can provide their own implementation.
type FuncRegistry interface {
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
