// Package standardform renders form fields with consistent presentation
// attributes (CSS classes, placeholders, required markers) and exposes the
// renderers as standard_widget, standard_field and standard_form template
// functions.
package standardform

import (
	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

// Field aliases model.Field.
type Field = model.Field

// Form aliases model.Form.
type Form = model.Form

// Choice aliases model.Choice.
type Choice = model.Choice

// WidgetArgs, FieldArgs and FormArgs alias the per-call render arguments.
type (
	WidgetArgs = render.WidgetArgs
	FieldArgs  = render.FieldArgs
	FormArgs   = render.FormArgs
)

// Renderer aliases render.Renderer.
type Renderer = render.Renderer

// Option aliases render.Option.
type Option = render.Option

// New builds a Renderer over the embedded templates unless options say
// otherwise.
func New(options ...Option) (*Renderer, error) {
	return render.New(options...)
}

// NewWidgetRegistry returns a registry holding the built-in widget names.
func NewWidgetRegistry(options ...widgets.Option) *widgets.Registry {
	return widgets.NewRegistry(options...)
}
