package model

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-standardform/pkg/widgets"
)

// Choice is a selectable option for select and choice-group widgets.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field is the read-only descriptor of a bound form field. Renderers never
// mutate a Field; per-render overrides operate on copies.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	HelpText string `json:"helpText,omitempty"`

	// Kind is resolved once when the descriptor is built.
	Kind widgets.Kind `json:"kind"`
	// HTMLType is the html type attribute for text-like inputs (email,
	// password, number...). Empty means "text".
	HTMLType string `json:"htmlType,omitempty"`

	Required          bool     `json:"required,omitempty"`
	Errors            []string `json:"errors,omitempty"`
	ShowHiddenInitial bool     `json:"showHiddenInitial,omitempty"`

	Value   any      `json:"value,omitempty"`
	Initial any      `json:"initial,omitempty"`
	Choices []Choice `json:"choices,omitempty"`

	// Attrs are the widget's base attributes; resolved presentation
	// attributes are merged on top.
	Attrs map[string]string `json:"attrs,omitempty"`
	// WidgetTemplate overrides the template used for the bare widget.
	WidgetTemplate string `json:"widgetTemplate,omitempty"`
}

// HasErrors reports whether validation errors are attached to the field.
func (f Field) HasErrors() bool {
	return len(f.Errors) > 0
}

// HasHiddenInitial reports whether the widget must be followed by a hidden
// input carrying the initial value.
func (f Field) HasHiddenInitial() bool {
	return f.ShowHiddenInitial
}

// ID returns the DOM id used for the control.
func (f Field) ID() string {
	if id := strings.TrimSpace(f.Attrs["id"]); id != "" {
		return id
	}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return ""
	}
	return "id_" + name
}

// InitialName is the name of the hidden input carrying the initial value.
func (f Field) InitialName() string {
	return "initial-" + f.Name
}

// InputType classifies the field's widget kind.
func (f Field) InputType() widgets.InputType {
	return widgets.Classify(f.Kind)
}

// HTMLInputType returns the html type attribute for text-like widgets.
func (f Field) HTMLInputType() string {
	if t := strings.TrimSpace(f.HTMLType); t != "" {
		return t
	}
	return "text"
}

// WithLabel returns a copy of the field carrying label. The receiver is left
// untouched.
func (f Field) WithLabel(label string) Field {
	f.Label = label
	return f
}

// Values returns the bound value as strings, flattening slices for
// multi-value widgets.
func (f Field) Values() []string {
	return stringValues(f.Value)
}

// Selected reports whether value is part of the bound value.
func (f Field) Selected(value string) bool {
	for _, candidate := range f.Values() {
		if candidate == value {
			return true
		}
	}
	return false
}

// Form groups fields rendered by the form template.
type Form struct {
	Name   string   `json:"name,omitempty"`
	Action string   `json:"action,omitempty"`
	Method string   `json:"method,omitempty"`
	Errors []string `json:"errors,omitempty"`
	Fields []Field  `json:"fields"`
}

// HasErrors reports whether the form or any field carries errors.
func (f Form) HasErrors() bool {
	if len(f.Errors) > 0 {
		return true
	}
	for _, field := range f.Fields {
		if field.HasErrors() {
			return true
		}
	}
	return false
}

// Field looks up a field by name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

func stringValues(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}
