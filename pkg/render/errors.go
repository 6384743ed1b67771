package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-standardform/pkg/model"
)

// ApplyErrors attaches a server-side error payload to the form before it is
// rendered. Keys may be plain field names, dotted paths or JSON pointers
// ("/body/email"); the last path segment naming a known field wins. Unknown
// keys and form-level keys ("__all__", "non_field_errors", "") become form
// errors so messages are never lost. Messages are trimmed and de-duplicated
// while preserving order. The input form is not modified.
func ApplyErrors(form model.Form, payload map[string][]string) model.Form {
	out := form
	out.Fields = append([]model.Field(nil), form.Fields...)
	out.Errors = append([]string(nil), form.Errors...)
	if len(payload) == 0 {
		return out
	}

	index := make(map[string]int, len(out.Fields))
	for i, field := range out.Fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			index[name] = i
		}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		messages := normalizeMessages(payload[key])
		if len(messages) == 0 {
			continue
		}
		pos, ok := matchField(key, index)
		if !ok {
			out.Errors = append(out.Errors, messages...)
			continue
		}
		field := out.Fields[pos]
		field.Errors = normalizeMessages(append(append([]string(nil), field.Errors...), messages...))
		out.Fields[pos] = field
	}

	out.Errors = normalizeMessages(out.Errors)
	return out
}

func matchField(key string, index map[string]int) (int, bool) {
	if isFormLevelKey(key) {
		return 0, false
	}
	segments := pathSegments(key)
	for i := len(segments) - 1; i >= 0; i-- {
		if pos, ok := index[segments[i]]; ok {
			return pos, true
		}
	}
	return 0, false
}

func pathSegments(path string) []string {
	replacer := strings.NewReplacer("[", ".", "]", "", "~1", "/", "~0", "~")
	parts := strings.FieldsFunc(replacer.Replace(strings.TrimSpace(path)), func(r rune) bool {
		return r == '.' || r == '/' || r == '#' || r == '$'
	})
	out := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
