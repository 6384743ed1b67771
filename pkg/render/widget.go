package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-standardform/pkg/flags"
	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render/template"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

// WidgetRenderer produces the markup of a bare widget. It stands in for the
// form framework's own widget rendering.
type WidgetRenderer interface {
	RenderWidget(field model.Field, attrs Attributes) (string, error)
	RenderHiddenInitial(field model.Field) (string, error)
}

type templateWidgets struct {
	templates template.TemplateRenderer
	names     TemplateNames
}

type choiceView struct {
	Value    string
	Label    string
	ID       string
	Selected bool
}

func (w templateWidgets) RenderWidget(field model.Field, attrs Attributes) (string, error) {
	if w.templates == nil {
		return "", errors.New("render: widget template renderer is nil")
	}
	attrs = MergeAttributes(attrs, nil)
	id := field.ID()
	if _, ok := attrs["id"]; !ok && id != "" {
		attrs["id"] = id
	}

	values := field.Values()
	value := ""
	if len(values) > 0 {
		value = values[0]
	}

	ctx := Context{
		"field":        field,
		"name":         field.Name,
		"id":           id,
		"value":        value,
		"html_type":    field.HTMLInputType(),
		"attrs":        attrs.String(),
		"option_attrs": attrs.Without("id").String(),
		"multiple":     field.Kind == widgets.KindMultiSelect,
		"checked":      isChecked(field.Value),
		"choice_type":  choiceType(field.Kind),
		"choices":      choiceViews(field, id),
	}
	name := w.templateFor(field)
	out, err := w.templates.RenderTemplate(name, ctx)
	if err != nil {
		return "", fmt.Errorf("render: widget %q: %w", field.Name, err)
	}
	return out, nil
}

func (w templateWidgets) RenderHiddenInitial(field model.Field) (string, error) {
	if w.templates == nil {
		return "", errors.New("render: widget template renderer is nil")
	}
	initial := ""
	if values := (model.Field{Value: field.Initial}).Values(); len(values) > 0 {
		initial = values[0]
	}
	ctx := Context{
		"field": field,
		"name":  field.InitialName(),
		"id":    "initial-" + field.ID(),
		"value": initial,
	}
	out, err := w.templates.RenderTemplate(w.names.Hidden, ctx)
	if err != nil {
		return "", fmt.Errorf("render: hidden initial %q: %w", field.Name, err)
	}
	return out, nil
}

func (w templateWidgets) templateFor(field model.Field) string {
	if tpl := strings.TrimSpace(field.WidgetTemplate); tpl != "" {
		return tpl
	}
	switch field.Kind {
	case widgets.KindSingleSelect, widgets.KindMultiSelect:
		return w.names.Select
	case widgets.KindSingleCheckbox:
		return w.names.Checkbox
	case widgets.KindCheckboxGroup, widgets.KindRadioGroup:
		return w.names.Choices
	default:
		return w.names.Input
	}
}

func choiceType(kind widgets.Kind) string {
	if kind == widgets.KindRadioGroup {
		return "radio"
	}
	return "checkbox"
}

func choiceViews(field model.Field, id string) []choiceView {
	if len(field.Choices) == 0 {
		return nil
	}
	out := make([]choiceView, 0, len(field.Choices))
	for idx, choice := range field.Choices {
		view := choiceView{
			Value:    choice.Value,
			Label:    choice.Label,
			Selected: field.Selected(choice.Value),
		}
		if view.Label == "" {
			view.Label = choice.Value
		}
		if id != "" {
			view.ID = fmt.Sprintf("%s_%d", id, idx)
		}
		out = append(out, view)
	}
	return out
}

func isChecked(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		checked, err := flags.Booleanify(v)
		return err == nil && checked
	default:
		return false
	}
}
