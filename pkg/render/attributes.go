package render

import (
	"html"
	"sort"
	"strings"
)

// Attributes is an HTML attribute mapping for a single element.
type Attributes map[string]string

// MergeAttributes returns base overlaid with overrides. Neither input is
// modified.
func MergeAttributes(base, overrides map[string]string) Attributes {
	out := make(Attributes, len(base)+len(overrides))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// Without returns a copy lacking the given keys.
func (a Attributes) Without(keys ...string) Attributes {
	out := MergeAttributes(a, nil)
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// String renders the attributes as ` key="value"` pairs sorted by key, with
// values HTML escaped. The result is empty when there are no attributes.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(key))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(a[key]))
		builder.WriteByte('"')
	}
	return builder.String()
}
