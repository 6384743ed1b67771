package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/goliatone/go-standardform/internal/fixture"
	"github.com/goliatone/go-standardform/internal/prompt"
	"github.com/goliatone/go-standardform/internal/watch"
	"github.com/goliatone/go-standardform/pkg/config"
	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

type cliOptions struct {
	formPath     string
	fieldName    string
	mode         string
	options      string
	customClass  string
	placeholder  string
	label        string
	inputType    string
	template     string
	configPath   string
	templatesDir string
	interactive  bool
	watch        bool
	output       string
	debug        bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, nil); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "standardform: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and renders to stdout (or -output). driver is used for
// -interactive; nil selects the survey driver.
func run(ctx context.Context, args []string, stdout io.Writer, driver prompt.Driver) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	renderOpts, registry, err := cfg.Apply(logger)
	if err != nil {
		return err
	}

	target, err := loadTarget(ctx, &opts, registry, driver)
	if err != nil {
		return err
	}

	renderOnce := func() error {
		r, err := render.New(renderOpts...)
		if err != nil {
			return err
		}
		out, err := renderTarget(r, opts, target)
		if err != nil {
			return err
		}
		return writeOutput(stdout, opts.output, out)
	}

	if err := renderOnce(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	if cfg.TemplatesDir == "" {
		return errors.New("-watch requires -templates or templatesDir in the config file")
	}
	w, err := watch.New(cfg.TemplatesDir, watch.WithLogger(logger), watch.WithExtension(extensionOrDefault(cfg.Extension)))
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.TemplatesDir, err)
	}
	logger.Info("watching templates", zap.String("dir", cfg.TemplatesDir))
	err = w.Run(ctx, func(name string) {
		logger.Info("template changed, re-rendering", zap.String("template", name))
		if err := renderOnce(); err != nil {
			logger.Error("re-render failed", zap.Error(err))
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("standardform", flag.ContinueOnError)
	fs.StringVar(&opts.formPath, "form", "", "form description file (YAML or JSON)")
	fs.StringVar(&opts.fieldName, "field", "", "render only this field of the form")
	fs.StringVar(&opts.mode, "mode", "", "what to render: form, field or widget (default form, or field when -field is set)")
	fs.StringVar(&opts.options, "options", "", "space separated option flags, e.g. \"placeholder_from_label no_required\"")
	fs.StringVar(&opts.customClass, "custom-class", "", "extra CSS classes for the widget")
	fs.StringVar(&opts.placeholder, "placeholder", "", "explicit placeholder")
	fs.StringVar(&opts.label, "label", "", "label override (field mode)")
	fs.StringVar(&opts.inputType, "input-type", "", "input type override: text, select or radiocheck")
	fs.StringVar(&opts.template, "template", "", "template override for the field or form wrapper")
	fs.StringVar(&opts.configPath, "config", "", "renderer config file (YAML or JSON)")
	fs.StringVar(&opts.templatesDir, "templates", "", "directory with template overrides")
	fs.BoolVar(&opts.interactive, "interactive", false, "describe a single field through prompts")
	fs.BoolVar(&opts.watch, "watch", false, "re-render when templates change")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	opts.mode = strings.ToLower(strings.TrimSpace(opts.mode))
	if opts.mode == "" {
		opts.mode = "form"
		if opts.fieldName != "" || opts.interactive {
			opts.mode = "field"
		}
	}
	switch opts.mode {
	case "form", "field", "widget":
	default:
		return cliOptions{}, fmt.Errorf("unknown -mode %q", opts.mode)
	}
	if opts.interactive && opts.mode == "form" {
		return cliOptions{}, errors.New("-interactive renders a single field; use -mode field or widget")
	}
	if !opts.interactive && opts.formPath == "" {
		return cliOptions{}, errors.New("-form is required unless -interactive is set")
	}
	if !opts.interactive && opts.mode != "form" && opts.fieldName == "" {
		return cliOptions{}, fmt.Errorf("-mode %s requires -field", opts.mode)
	}
	return opts, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func loadConfig(opts cliOptions) (config.Config, error) {
	var cfg config.Config
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if opts.templatesDir != "" {
		cfg.TemplatesDir = opts.templatesDir
	}
	return cfg, nil
}

type target struct {
	form  model.Form
	field model.Field
}

func loadTarget(ctx context.Context, opts *cliOptions, registry *widgets.Registry, driver prompt.Driver) (target, error) {
	if opts.interactive {
		if driver == nil {
			driver = prompt.NewSurveyDriver()
		}
		result, err := prompt.BuildField(ctx, driver, registry)
		if err != nil {
			return target{}, err
		}
		// answers fill in flags the user did not pass explicitly
		if opts.options == "" {
			opts.options = result.Args.Options
		}
		if opts.customClass == "" {
			opts.customClass = result.Args.CustomClass
		}
		return target{field: result.Field, form: model.Form{Fields: []model.Field{result.Field}}}, nil
	}

	form, err := fixture.Load(opts.formPath, registry)
	if err != nil {
		return target{}, err
	}
	if opts.mode == "form" {
		return target{form: form}, nil
	}
	field, ok := form.Field(opts.fieldName)
	if !ok {
		return target{}, fmt.Errorf("field %q not found in %s", opts.fieldName, opts.formPath)
	}
	return target{form: form, field: field}, nil
}

func renderTarget(r *render.Renderer, opts cliOptions, t target) (string, error) {
	switch opts.mode {
	case "widget":
		return r.Widget(t.field, render.WidgetArgs{
			Options:     opts.options,
			CustomClass: opts.customClass,
			Placeholder: opts.placeholder,
			InputType:   opts.inputType,
		})
	case "field":
		return r.Field(t.field, render.FieldArgs{
			Options:     opts.options,
			CustomClass: opts.customClass,
			Placeholder: opts.placeholder,
			Label:       opts.label,
			InputType:   opts.inputType,
			Template:    opts.template,
		})
	default:
		return r.Form(t.form, render.FormArgs{
			Options:     opts.options,
			CustomClass: opts.customClass,
			Template:    opts.template,
		})
	}
}

func writeOutput(stdout io.Writer, path, html string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, html)
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func extensionOrDefault(ext string) string {
	if strings.TrimSpace(ext) == "" {
		return ".tmpl"
	}
	return ext
}
