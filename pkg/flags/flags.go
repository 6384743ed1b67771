// Package flags parses the space separated option strings accepted by the
// standard_widget, standard_field and standard_form template functions.
//
// Parsing is strict set membership over raw tokens: tokens may appear in any
// order, duplicates are harmless and unknown tokens are ignored so templates
// can carry options meant for other helpers.
package flags

import (
	"errors"
	"fmt"
	"strings"
)

// Recognised option tokens.
const (
	PlaceholderFromLabel = "placeholder_from_label"
	NoRequired           = "no_required"
	NoRequiredHelper     = "no_required_helper"
	NoHelpText           = "no_help_text"
	NoErrorText          = "no_error_text"
)

// Flags is the typed view of an option string.
type Flags struct {
	PlaceholderFromLabel bool
	NoRequired           bool
	NoRequiredHelper     bool
	NoHelpText           bool
	NoErrorText          bool
}

// Parse splits raw on single spaces and records which recognised tokens are
// present. An empty string yields the zero value.
func Parse(raw string) Flags {
	var out Flags
	if raw == "" {
		return out
	}
	for _, token := range strings.Split(raw, " ") {
		switch token {
		case PlaceholderFromLabel:
			out.PlaceholderFromLabel = true
		case NoRequired:
			out.NoRequired = true
		case NoRequiredHelper:
			out.NoRequiredHelper = true
		case NoHelpText:
			out.NoHelpText = true
		case NoErrorText:
			out.NoErrorText = true
		}
	}
	return out
}

// String renders the set flags in canonical order.
func (f Flags) String() string {
	tokens := make([]string, 0, 5)
	if f.PlaceholderFromLabel {
		tokens = append(tokens, PlaceholderFromLabel)
	}
	if f.NoRequired {
		tokens = append(tokens, NoRequired)
	}
	if f.NoRequiredHelper {
		tokens = append(tokens, NoRequiredHelper)
	}
	if f.NoHelpText {
		tokens = append(tokens, NoHelpText)
	}
	if f.NoErrorText {
		tokens = append(tokens, NoErrorText)
	}
	return strings.Join(tokens, " ")
}

// ErrNotBoolean is returned by Booleanify for literals outside the recognised
// yes/no vocabulary.
var ErrNotBoolean = errors.New("flags: not a boolean literal")

// Booleanify normalises yes/true/on and no/false/off (case-insensitive) to a
// bool. Any other literal is rejected with ErrNotBoolean.
func Booleanify(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "on":
		return true, nil
	case "no", "false", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrNotBoolean, value)
	}
}
