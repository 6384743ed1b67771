package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-standardform/pkg/flags"
	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render/template"
)

// Template function names installed by Register.
const (
	FuncWidget = "standard_widget"
	FuncField  = "standard_field"
	FuncForm   = "standard_form"

	FilterBooleanify = "booleanify"
)

// Funcs returns the three render entry points as template functions.
//
// Each function takes the field (or form) first, followed by string
// arguments. Arguments of the form key=value set custom_class, placeholder,
// label, input_type or template; every other argument is appended to the
// option string:
//
//	{{ standard_field(field, "placeholder_from_label", "custom_class=input-block")|safe }}
func (r *Renderer) Funcs() map[string]any {
	return map[string]any{
		FuncWidget: func(value any, args ...string) (string, error) {
			field, err := coerceField(value)
			if err != nil {
				return "", err
			}
			call := parseCallArgs(args)
			return r.Widget(field, WidgetArgs{
				Options:     call.options,
				CustomClass: call.kw["custom_class"],
				Placeholder: call.kw["placeholder"],
				InputType:   call.kw["input_type"],
			})
		},
		FuncField: func(value any, args ...string) (string, error) {
			field, err := coerceField(value)
			if err != nil {
				return "", err
			}
			call := parseCallArgs(args)
			return r.Field(field, FieldArgs{
				Options:     call.options,
				CustomClass: call.kw["custom_class"],
				Placeholder: call.kw["placeholder"],
				Label:       call.kw["label"],
				InputType:   call.kw["input_type"],
				Template:    call.kw["template"],
			})
		},
		FuncForm: func(value any, args ...string) (string, error) {
			form, err := coerceForm(value)
			if err != nil {
				return "", err
			}
			call := parseCallArgs(args)
			return r.Form(form, FormArgs{
				Options:     call.options,
				CustomClass: call.kw["custom_class"],
				Template:    call.kw["template"],
			})
		},
	}
}

// Register installs the template functions and the booleanify filter on
// registry.
func (r *Renderer) Register(registry template.FuncRegistry) error {
	if registry == nil {
		return errors.New("render: func registry is nil")
	}
	if err := registry.GlobalContext(r.Funcs()); err != nil {
		return fmt.Errorf("render: register template funcs: %w", err)
	}
	if err := registry.RegisterFilter(FilterBooleanify, booleanifyFilter); err != nil {
		return fmt.Errorf("render: register %s filter: %w", FilterBooleanify, err)
	}
	return nil
}

func booleanifyFilter(input any, _ any) (any, error) {
	switch v := input.(type) {
	case bool:
		return v, nil
	case string:
		return flags.Booleanify(v)
	default:
		return flags.Booleanify(fmt.Sprint(v))
	}
}

var callKeywords = map[string]struct{}{
	"custom_class": {},
	"placeholder":  {},
	"label":        {},
	"input_type":   {},
	"template":     {},
}

type callArgs struct {
	options string
	kw      map[string]string
}

func parseCallArgs(args []string) callArgs {
	out := callArgs{kw: make(map[string]string)}
	var options []string
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok {
			if _, known := callKeywords[strings.TrimSpace(key)]; known {
				out.kw[strings.TrimSpace(key)] = value
				continue
			}
		}
		if arg != "" {
			options = append(options, arg)
		}
	}
	out.options = strings.Join(options, " ")
	return out
}

func coerceField(value any) (model.Field, error) {
	switch v := value.(type) {
	case model.Field:
		return v, nil
	case *model.Field:
		if v == nil {
			return model.Field{}, errors.New("render: nil field pointer")
		}
		return *v, nil
	case nil:
		return model.Field{}, errors.New("render: nil field value")
	default:
		return model.Field{}, fmt.Errorf("render: unsupported field type %T", value)
	}
}

func coerceForm(value any) (model.Form, error) {
	switch v := value.(type) {
	case model.Form:
		return v, nil
	case *model.Form:
		if v == nil {
			return model.Form{}, errors.New("render: nil form pointer")
		}
		return *v, nil
	case nil:
		return model.Form{}, errors.New("render: nil form value")
	default:
		return model.Form{}, fmt.Errorf("render: unsupported form type %T", value)
	}
}
