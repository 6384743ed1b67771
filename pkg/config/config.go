// Package config loads renderer settings from a JSON or YAML file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-standardform/pkg/render"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

// Config describes how a Renderer and its widget registry are assembled.
type Config struct {
	TemplatesDir string            `json:"templatesDir" yaml:"templatesDir"`
	Extension    string            `json:"extension" yaml:"extension"`
	Templates    map[string]string `json:"templates" yaml:"templates"`
	Theme        ThemeRef          `json:"theme" yaml:"theme"`
	Themes       []theme.Manifest  `json:"themes" yaml:"themes"`
	ThemeFiles   []string          `json:"themeFiles" yaml:"themeFiles"`
	Widgets      map[string]string `json:"widgets" yaml:"widgets"`

	// Source is the file the config was read from, when loaded via Load.
	Source string `json:"-" yaml:"-"`
}

// ThemeRef selects a theme and optional variant.
type ThemeRef struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

// Load reads and parses a config file. Relative templatesDir and themeFiles
// values are resolved against the directory holding the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return Config{}, err
	}
	if cfg.TemplatesDir != "" && !filepath.IsAbs(cfg.TemplatesDir) {
		cfg.TemplatesDir = filepath.Join(filepath.Dir(path), cfg.TemplatesDir)
	}
	for idx, file := range cfg.ThemeFiles {
		if file != "" && !filepath.IsAbs(file) {
			cfg.ThemeFiles[idx] = filepath.Join(filepath.Dir(path), file)
		}
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes data as JSON, falling back to YAML. source is only used in
// error messages.
func Parse(data []byte, source string) (Config, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Config{}
		if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}
	if err := cfg.validate(source); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate(source string) error {
	seen := make(map[string]struct{}, len(c.Themes))
	for idx, manifest := range c.Themes {
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return fmt.Errorf("config: file %s theme at index %d has no name", source, idx)
		}
		key := name + "@" + strings.TrimSpace(manifest.Version)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("config: file %s defines theme %q twice", source, key)
		}
		seen[key] = struct{}{}
	}
	for key := range c.Widgets {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("config: file %s maps an empty widget name", source)
		}
	}
	return nil
}

// Registry builds a widget registry with the built-in names plus the
// configured custom widgets. Unknown kind names are logged and mapped to
// widgets.KindOther.
func (c Config) Registry(logger *zap.Logger) *widgets.Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := widgets.NewRegistry(widgets.WithLogger(logger))
	for name, kindName := range c.Widgets {
		kind, ok := widgets.ParseKind(kindName)
		if !ok {
			logger.Warn("unknown widget kind in config, using plain text input",
				zap.String("widget", name),
				zap.String("kind", kindName),
				zap.String("source", c.Source))
			kind = widgets.KindOther
		}
		reg.Register(name, kind)
	}
	return reg
}

// Options converts the config into renderer options. The logger is passed
// through to the renderer.
func (c Config) Options(logger *zap.Logger) ([]render.Option, error) {
	var opts []render.Option
	if logger != nil {
		opts = append(opts, render.WithLogger(logger))
	}
	if dir := strings.TrimSpace(c.TemplatesDir); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("config: templates dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("config: templates dir %s is not a directory", dir)
		}
		opts = append(opts, render.WithTemplatesDir(dir))
	}
	if ext := strings.TrimSpace(c.Extension); ext != "" {
		opts = append(opts, render.WithExtension(ext))
	}
	if name := strings.TrimSpace(c.Theme.Name); name != "" {
		registry, err := c.ThemeRegistry()
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithThemeProvider(registry, name, c.Theme.Variant))
	}
	if len(c.Templates) > 0 {
		opts = append(opts, render.WithTemplateNames(c.Templates))
	}
	return opts, nil
}

// Apply builds both the renderer options and the widget registry.
func (c Config) Apply(logger *zap.Logger) ([]render.Option, *widgets.Registry, error) {
	opts, err := c.Options(logger)
	if err != nil {
		return nil, nil, err
	}
	return opts, c.Registry(logger), nil
}
