package render

import (
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// themeTokensKey is the global template variable holding theme tokens.
const themeTokensKey = "theme_tokens"

// applyTheme resolves the template names and tokens of the selected
// theme/variant. Variant templates and tokens win over the base manifest and
// names the manifest does not mention keep their current value.
func applyTheme(selector theme.ThemeSelector, name, variant string, names TemplateNames) (TemplateNames, map[string]string, error) {
	if selector == nil {
		return names, nil, errors.New("render: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return names, nil, fmt.Errorf("render: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return names, nil, fmt.Errorf("render: theme %q returned no manifest", name)
	}
	names = names.WithOverrides(selection.Partials(names.Partials()))
	return names, selection.Tokens(), nil
}
