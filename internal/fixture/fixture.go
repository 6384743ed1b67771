// Package fixture loads form descriptions used by the command line renderer
// and by tests.
package fixture

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

type formFile struct {
	Name         string              `yaml:"name"`
	Action       string              `yaml:"action"`
	Method       string              `yaml:"method"`
	Errors       []string            `yaml:"errors"`
	ServerErrors map[string][]string `yaml:"serverErrors"`
	Fields       []fieldFile         `yaml:"fields"`
}

type fieldFile struct {
	Name              string            `yaml:"name"`
	Label             string            `yaml:"label"`
	Help              string            `yaml:"help"`
	Widget            string            `yaml:"widget"`
	Kind              string            `yaml:"kind"`
	Type              string            `yaml:"type"`
	Required          bool              `yaml:"required"`
	Errors            []string          `yaml:"errors"`
	ShowHiddenInitial bool              `yaml:"showHiddenInitial"`
	Value             any               `yaml:"value"`
	Initial           any               `yaml:"initial"`
	Choices           []choiceFile      `yaml:"choices"`
	Attrs             map[string]string `yaml:"attrs"`
	Template          string            `yaml:"template"`
}

// choiceFile accepts either a scalar ("red") or a value/label mapping.
type choiceFile model.Choice

func (c *choiceFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Value = node.Value
		c.Label = node.Value
		return nil
	}
	var raw struct {
		Value string `yaml:"value"`
		Label string `yaml:"label"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	c.Value = raw.Value
	c.Label = raw.Label
	if c.Label == "" {
		c.Label = c.Value
	}
	return nil
}

// html input types implied by text-like widget names.
var widgetHTMLTypes = map[string]string{
	strings.ToLower(widgets.WidgetEmailInput):    "email",
	strings.ToLower(widgets.WidgetURLInput):      "url",
	strings.ToLower(widgets.WidgetNumberInput):   "number",
	strings.ToLower(widgets.WidgetPasswordInput): "password",
}

// Load reads a form description from path.
func Load(path string, registry *widgets.Registry) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return Parse(data, path, registry)
}

// LoadFS reads a form description from fsys.
func LoadFS(fsys fs.FS, name string, registry *widgets.Registry) (model.Form, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return model.Form{}, fmt.Errorf("fixture: read %s: %w", name, err)
	}
	return Parse(data, name, registry)
}

// Parse decodes a YAML (or JSON) form description. Widget names are resolved
// through registry; a nil registry uses the built-in widget names. Server
// error payloads are attached with render.ApplyErrors.
func Parse(data []byte, source string, registry *widgets.Registry) (model.Form, error) {
	if strings.TrimSpace(string(data)) == "" {
		return model.Form{}, fmt.Errorf("fixture: file %s is empty", source)
	}
	if registry == nil {
		registry = widgets.NewRegistry()
	}

	var doc formFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Form{}, fmt.Errorf("fixture: parse %s: %w", source, err)
	}

	form := model.Form{
		Name:   strings.TrimSpace(doc.Name),
		Action: strings.TrimSpace(doc.Action),
		Method: strings.TrimSpace(doc.Method),
		Errors: doc.Errors,
		Fields: make([]model.Field, 0, len(doc.Fields)),
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for idx, raw := range doc.Fields {
		field, err := buildField(raw, registry)
		if err != nil {
			return model.Form{}, fmt.Errorf("fixture: %s field %d: %w", source, idx, err)
		}
		if _, dup := seen[field.Name]; dup {
			return model.Form{}, fmt.Errorf("fixture: %s defines field %q twice", source, field.Name)
		}
		seen[field.Name] = struct{}{}
		form.Fields = append(form.Fields, field)
	}

	return render.ApplyErrors(form, doc.ServerErrors), nil
}

func buildField(raw fieldFile, registry *widgets.Registry) (model.Field, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return model.Field{}, fmt.Errorf("missing name")
	}

	widget := strings.TrimSpace(raw.Widget)
	if widget == "" {
		widget = widgets.WidgetTextInput
	}

	var kind widgets.Kind
	if explicit := strings.TrimSpace(raw.Kind); explicit != "" {
		parsed, ok := widgets.ParseKind(explicit)
		if !ok {
			return model.Field{}, fmt.Errorf("field %q: unknown kind %q", name, explicit)
		}
		kind = parsed
	} else {
		kind = registry.KindFor(widget)
	}

	htmlType := strings.TrimSpace(raw.Type)
	if htmlType == "" {
		htmlType = widgetHTMLTypes[strings.ToLower(widget)]
	}

	choices := make([]model.Choice, 0, len(raw.Choices))
	for _, choice := range raw.Choices {
		choices = append(choices, model.Choice(choice))
	}
	if len(choices) == 0 {
		choices = nil
	}

	label := raw.Label
	if label == "" {
		label = defaultLabel(name)
	}

	return model.Field{
		Name:              name,
		Label:             label,
		HelpText:          raw.Help,
		Kind:              kind,
		HTMLType:          htmlType,
		Required:          raw.Required,
		Errors:            raw.Errors,
		ShowHiddenInitial: raw.ShowHiddenInitial,
		Value:             raw.Value,
		Initial:           raw.Initial,
		Choices:           choices,
		Attrs:             raw.Attrs,
		WidgetTemplate:    strings.TrimSpace(raw.Template),
	}, nil
}

// defaultLabel turns "first_name" into "First name".
func defaultLabel(name string) string {
	label := strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
