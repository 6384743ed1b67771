package render

import "strings"

// Default template identifiers, relative to the template root and without
// extension.
const (
	DefaultFieldTemplate    = "standard_form/field"
	DefaultFormTemplate     = "standard_form/form"
	DefaultInputTemplate    = "standard_form/widgets/input"
	DefaultSelectTemplate   = "standard_form/widgets/select"
	DefaultCheckboxTemplate = "standard_form/widgets/checkbox"
	DefaultChoicesTemplate  = "standard_form/widgets/choices"
	DefaultHiddenTemplate   = "standard_form/widgets/hidden"
)

// templateKeyPrefix namespaces template keys inside theme manifests.
const templateKeyPrefix = "standard_form."

// TemplateNames holds the template identifiers used by the renderer.
type TemplateNames struct {
	Field    string
	Form     string
	Input    string
	Select   string
	Checkbox string
	Choices  string
	Hidden   string
}

// DefaultTemplateNames returns the identifiers of the embedded templates.
func DefaultTemplateNames() TemplateNames {
	return TemplateNames{
		Field:    DefaultFieldTemplate,
		Form:     DefaultFormTemplate,
		Input:    DefaultInputTemplate,
		Select:   DefaultSelectTemplate,
		Checkbox: DefaultCheckboxTemplate,
		Choices:  DefaultChoicesTemplate,
		Hidden:   DefaultHiddenTemplate,
	}
}

// Partials returns the names keyed by their theme manifest key
// ("standard_form.field", "standard_form.widgets.input", ...).
func (n TemplateNames) Partials() map[string]string {
	return map[string]string{
		templateKeyPrefix + "field":            n.Field,
		templateKeyPrefix + "form":             n.Form,
		templateKeyPrefix + "widgets.input":    n.Input,
		templateKeyPrefix + "widgets.select":   n.Select,
		templateKeyPrefix + "widgets.checkbox": n.Checkbox,
		templateKeyPrefix + "widgets.choices":  n.Choices,
		templateKeyPrefix + "widgets.hidden":   n.Hidden,
	}
}

// WithOverrides returns a copy with the named templates replaced. Keys are
// logical names ("field", "form", "widgets.input", ...) optionally prefixed
// with "standard_form." as used in theme manifests. Unknown keys and empty
// values are ignored.
func (n TemplateNames) WithOverrides(overrides map[string]string) TemplateNames {
	for rawKey, value := range overrides {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		key := strings.TrimPrefix(strings.TrimSpace(rawKey), templateKeyPrefix)
		switch key {
		case "field":
			n.Field = value
		case "form":
			n.Form = value
		case "widgets.input":
			n.Input = value
		case "widgets.select":
			n.Select = value
		case "widgets.checkbox":
			n.Checkbox = value
		case "widgets.choices":
			n.Choices = value
		case "widgets.hidden":
			n.Hidden = value
		}
	}
	return n
}
