package render

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render/template"
	"github.com/goliatone/go-standardform/pkg/render/template/pongo"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

// Renderer exposes the widget, field and form entry points. It holds no
// per-render state and is safe for concurrent use.
type Renderer struct {
	templates template.TemplateRenderer
	widgets   WidgetRenderer
	names     TemplateNames
	help      *helpTextRenderer
	logger    *zap.Logger
}

// New constructs a Renderer. Without WithTemplateRenderer a pongo2 engine is
// built over the embedded templates (or WithTemplatesFS/WithTemplatesDir).
// The template functions are registered on the template renderer before New
// returns.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		extension:  ".tmpl",
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(cfg.extension),
		)
		if err != nil {
			return nil, fmt.Errorf("render: configure template renderer: %w", err)
		}
		templates = engine
	}

	names := DefaultTemplateNames()
	if cfg.themeSelector != nil {
		themed, tokens, err := applyTheme(cfg.themeSelector, cfg.themeName, cfg.themeVariant, names)
		if err != nil {
			return nil, err
		}
		names = themed
		if err := templates.GlobalContext(map[string]any{themeTokensKey: tokens}); err != nil {
			return nil, fmt.Errorf("render: apply theme tokens: %w", err)
		}
	}
	names = names.WithOverrides(cfg.overrides)

	r := &Renderer{
		templates: templates,
		widgets:   cfg.widgets,
		names:     names,
		help:      newHelpTextRenderer(cfg.helpPolicy),
		logger:    cfg.logger,
	}
	if r.widgets == nil {
		r.widgets = templateWidgets{templates: templates, names: names}
	}
	if err := r.Register(templates); err != nil {
		return nil, err
	}
	return r, nil
}

// TemplateNames returns the identifiers in effect after theme and explicit
// overrides.
func (r *Renderer) TemplateNames() TemplateNames {
	return r.names
}

// Widget renders the bare widget for field with the resolved presentation
// attributes. Fields showing a hidden initial value short-circuit to the plain
// widget followed by the hidden initial input.
func (r *Renderer) Widget(field model.Field, args WidgetArgs) (string, error) {
	if r == nil || r.widgets == nil {
		return "", errors.New("render: renderer is not configured")
	}

	resolution := ResolveWidget(field, args)
	if resolution.ShortCircuit {
		r.logger.Debug("rendering widget with hidden initial value",
			zap.String("field", field.Name))
		plain, err := r.widgets.RenderWidget(field, MergeAttributes(field.Attrs, nil))
		if err != nil {
			return "", err
		}
		hidden, err := r.widgets.RenderHiddenInitial(field)
		if err != nil {
			return "", err
		}
		return plain + hidden, nil
	}

	if args.InputType != "" && !knownInputType(resolution.InputType) {
		r.logger.Debug("input type override outside the built-in families",
			zap.String("field", field.Name),
			zap.String("input_type", string(resolution.InputType)))
	}
	return r.widgets.RenderWidget(field, resolution.Attributes)
}

// Field renders field inside the field wrapper template. The default template
// is DefaultFieldTemplate unless overridden by args.Template, the theme or
// WithTemplateNames.
func (r *Renderer) Field(field model.Field, args FieldArgs) (string, error) {
	if r == nil || r.templates == nil {
		return "", errors.New("render: renderer is not configured")
	}

	ctx := BuildFieldContext(field, args)
	display, _ := ctx["field"].(model.Field)

	help, err := r.help.render(display.HelpText)
	if err != nil {
		return "", fmt.Errorf("render: help text for field %q: %w", field.Name, err)
	}
	ctx["help_html"] = help

	widget, err := r.Widget(display, WidgetArgs{
		Options:     args.Options,
		CustomClass: args.CustomClass,
		Placeholder: args.Placeholder,
		InputType:   args.InputType,
	})
	if err != nil {
		return "", err
	}
	ctx["widget_html"] = widget

	name := firstNonEmpty(args.Template, r.names.Field)
	out, err := r.templates.RenderTemplate(name, ctx)
	if err != nil {
		return "", fmt.Errorf("render: field %q: %w", field.Name, err)
	}
	return out, nil
}

// Form renders form with the form wrapper template.
func (r *Renderer) Form(form model.Form, args FormArgs) (string, error) {
	if r == nil || r.templates == nil {
		return "", errors.New("render: renderer is not configured")
	}
	name := firstNonEmpty(args.Template, r.names.Form)
	out, err := r.templates.RenderTemplate(name, BuildFormContext(form, args))
	if err != nil {
		return "", fmt.Errorf("render: form %q: %w", form.Name, err)
	}
	return out, nil
}

func knownInputType(t widgets.InputType) bool {
	switch t {
	case widgets.InputText, widgets.InputSelect, widgets.InputRadioCheck:
		return true
	default:
		return false
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
