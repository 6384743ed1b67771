package render

import (
	"strings"

	"github.com/goliatone/go-standardform/pkg/flags"
	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

const (
	classInputPrefix = "input-"
	classInputError  = "input-error"
	// block display is never valid on grouped choice inputs
	classInputBlock = "input-block"
)

// WidgetArgs are the per-call arguments of the widget renderer. Empty strings
// mean "not supplied".
type WidgetArgs struct {
	Options     string
	CustomClass string
	Placeholder string
	InputType   string
}

// FieldArgs are the per-call arguments of the field renderer.
type FieldArgs struct {
	Options     string
	CustomClass string
	Placeholder string
	Label       string
	InputType   string
	Template    string
}

// FormArgs are the per-call arguments of the form renderer.
type FormArgs struct {
	Options     string
	CustomClass string
	Template    string
}

// Context is the key/value mapping handed to the template renderer.
type Context map[string]any

// WidgetResolution is the outcome of attribute resolution for a widget.
// When ShortCircuit is set the caller renders the plain widget followed by
// the hidden initial value and ignores every other field.
type WidgetResolution struct {
	ShortCircuit bool
	InputType    widgets.InputType
	Flags        flags.Flags
	Classes      []string
	Attributes   Attributes
}

// ResolveWidget computes the presentation attributes for field.
func ResolveWidget(field model.Field, args WidgetArgs) WidgetResolution {
	if field.HasHiddenInitial() {
		return WidgetResolution{ShortCircuit: true}
	}

	opts := flags.Parse(args.Options)
	resolved := Attributes{}

	if args.Placeholder != "" {
		resolved["placeholder"] = args.Placeholder
	} else if opts.PlaceholderFromLabel {
		resolved["placeholder"] = field.Label
	}

	if field.Required && !opts.NoRequired {
		resolved["required"] = "required"
	}

	inputType := ResolveInputType(field, args.InputType)
	classes := BuildClassList(inputType, field.HasErrors(), args.CustomClass)
	resolved["class"] = strings.Join(classes, " ")

	return WidgetResolution{
		InputType:  inputType,
		Flags:      opts,
		Classes:    classes,
		Attributes: MergeAttributes(field.Attrs, resolved),
	}
}

// ResolveInputType returns the explicit override when supplied, otherwise the
// classification of the field's widget kind.
func ResolveInputType(field model.Field, explicit string) widgets.InputType {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return widgets.InputType(trimmed)
	}
	return widgets.Classify(field.Kind)
}

// BuildClassList assembles the widget classes: input-<type>, input-error when
// the field has errors, then the custom classes in their original order.
// input-block is dropped for radiocheck inputs.
func BuildClassList(inputType widgets.InputType, hasErrors bool, customClass string) []string {
	custom := strings.Fields(customClass)
	classes := make([]string, 0, len(custom)+2)
	classes = append(classes, classInputPrefix+string(inputType))
	if hasErrors {
		classes = append(classes, classInputError)
	}
	for _, token := range custom {
		if inputType == widgets.InputRadioCheck && token == classInputBlock {
			continue
		}
		classes = append(classes, token)
	}
	return classes
}

// BuildFieldContext assembles the context for the field wrapper template. A
// label override applies to a copy of field for this render only.
// no_required is intentionally absent: it only affects the widget.
func BuildFieldContext(field model.Field, args FieldArgs) Context {
	if args.Label != "" {
		field = field.WithLabel(args.Label)
	}
	opts := flags.Parse(args.Options)

	return Context{
		"field":              field,
		"options":            args.Options,
		"no_required_helper": opts.NoRequiredHelper,
		"no_help_text":       opts.NoHelpText,
		"no_error_text":      opts.NoErrorText,
		"custom_class":       args.CustomClass,
		"placeholder":        args.Placeholder,
		"input_type":         string(ResolveInputType(field, args.InputType)),
		"label":              field.Label,
		"field_id":           field.ID(),
	}
}

// BuildFormContext assembles the context for the form wrapper template. The
// raw option string is passed through so the template can forward it to each
// field; the wrapper flags are parsed the same way BuildFieldContext does.
func BuildFormContext(form model.Form, args FormArgs) Context {
	opts := flags.Parse(args.Options)
	return Context{
		"form":               form,
		"options":            args.Options,
		"custom_class":       args.CustomClass,
		"no_required_helper": opts.NoRequiredHelper,
		"no_help_text":       opts.NoHelpText,
		"no_error_text":      opts.NoErrorText,
	}
}
