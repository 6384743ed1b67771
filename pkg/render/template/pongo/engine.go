package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-standardform/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	globalData map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".tmpl" extension appended to template
// identifiers.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine is a pongo2-backed template.TemplateRenderer. Parsed templates are
// cached until Invalidate is called.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Either a base directory or an fs.FS is required;
// when both are given the directory is searched first.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		set:       pongo2.NewSet("standardform", loaders...),
		templates: make(map[string]*pongo2.Template),
		ext:       cfg.extension,
	}
	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("pongo: apply global data: %w", err)
	}
	return engine, nil
}

// RenderTemplate renders the named template. The configured extension is
// appended when name does not already carry it.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	path := e.templatePath(name)

	tmpl, err := e.lookup(path)
	if err != nil {
		return "", err
	}
	rendered, err := e.execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w", path, err)
	}
	return rendered, writeAll(rendered, out)
}

// RenderString parses and renders inline template content.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}
	rendered, err := e.execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template string: %w", err)
	}
	return rendered, writeAll(rendered, out)
}

// filters holds the functions behind every filter name this package has
// installed into pongo2. pongo2 keeps filters in an unguarded process wide
// map, so each name is written there once and later registrations only swap
// the function in this table.
var filters = struct {
	sync.RWMutex
	fns map[string]func(input any, param any) (any, error)
}{fns: make(map[string]func(input any, param any) (any, error))}

// RegisterFilter installs fn as a pongo2 filter. Filters are process wide;
// registering an existing name replaces its function.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}

	filters.Lock()
	defer filters.Unlock()
	if _, installed := filters.fns[trimmed]; installed {
		filters.fns[trimmed] = fn
		return nil
	}

	var err error
	if pongo2.FilterExists(trimmed) {
		err = pongo2.ReplaceFilter(trimmed, dispatchFilter(trimmed))
	} else {
		err = pongo2.RegisterFilter(trimmed, dispatchFilter(trimmed))
	}
	if err != nil {
		return fmt.Errorf("pongo: register filter %q: %w", trimmed, err)
	}
	filters.fns[trimmed] = fn
	return nil
}

func dispatchFilter(name string) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		filters.RLock()
		fn := filters.fns[name]
		filters.RUnlock()
		if fn == nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: fmt.Errorf("filter %q is not registered", name)}
		}

		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
}

// GlobalContext merges data into the values visible to every template.
// Functions are stored as-is so templates can call them. Globals are meant to
// be installed during setup, before templates render concurrently.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: engine is nil")
	}
	if data == nil {
		return nil
	}
	ctx, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	globals := make(pongo2.Context, len(e.set.Globals)+len(ctx))
	globals.Update(e.set.Globals)
	globals.Update(ctx)
	e.set.Globals = globals
	return nil
}

// Invalidate drops cached templates so the next render reloads them. With no
// names, the whole cache is cleared. Names may be given with or without the
// extension.
func (e *Engine) Invalidate(names ...string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(names) == 0 {
		e.templates = make(map[string]*pongo2.Template)
		return
	}
	for _, name := range names {
		delete(e.templates, e.templatePath(name))
	}
}

func (e *Engine) templatePath(name string) string {
	path := strings.TrimPrefix(strings.TrimSpace(name), "/")
	if e.ext != "" && !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	return path
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

func (e *Engine) execute(tmpl *pongo2.Template, data any) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer

	// Templates may call back into the engine through global functions, so
	// no lock is held while executing.
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeAll(rendered string, out []io.Writer) error {
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return err
		}
	}
	return nil
}

// toContext accepts any map keyed by strings, including named map types such
// as render.Context.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return trimKeys(v), nil
	case map[string]any:
		return trimKeys(v), nil
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("pongo: unsupported context type %T", data)
	}
	out := make(pongo2.Context, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := strings.TrimSpace(iter.Key().String())
		if key == "" {
			continue
		}
		out[key] = iter.Value().Interface()
	}
	return out, nil
}

func trimKeys(in map[string]any) pongo2.Context {
	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}
