package render

import (
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-standardform/pkg/render/template"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer template.TemplateRenderer
	extension        string
	overrides        map[string]string
	widgets          WidgetRenderer
	logger           *zap.Logger
	helpPolicy       *bluemonday.Policy

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithExtension sets the template file extension used by the default engine.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		cfg.extension = ext
	}
}

// WithTemplateRenderer injects the template-rendering collaborator. The
// renderer registers its template functions on it during construction.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateNames overrides template identifiers by logical name ("field",
// "form", "widgets.input", "widgets.select", "widgets.checkbox",
// "widgets.choices", "widgets.hidden").
func WithTemplateNames(overrides map[string]string) Option {
	return func(cfg *config) {
		if len(overrides) == 0 {
			return
		}
		if cfg.overrides == nil {
			cfg.overrides = make(map[string]string, len(overrides))
		}
		for key, value := range overrides {
			cfg.overrides[key] = value
		}
	}
}

// WithWidgetRenderer replaces the template-backed widget renderer.
func WithWidgetRenderer(widgets WidgetRenderer) Option {
	return func(cfg *config) {
		if widgets != nil {
			cfg.widgets = widgets
		}
	}
}

// WithThemeSelector resolves template overrides and tokens from a go-theme
// selection at construction time. Explicit WithTemplateNames overrides still
// win over theme templates.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// WithThemeProvider builds a go-theme Selector over provider with the given
// default theme and variant and applies it like WithThemeSelector.
func WithThemeProvider(provider theme.ThemeProvider, name, variant string) Option {
	return func(cfg *config) {
		if provider == nil {
			return
		}
		name = strings.TrimSpace(name)
		variant = strings.TrimSpace(variant)
		cfg.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   name,
			DefaultVariant: variant,
		}
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithHelpTextPolicy replaces the sanitizer applied to rendered help text.
func WithHelpTextPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.helpPolicy = policy
		}
	}
}
