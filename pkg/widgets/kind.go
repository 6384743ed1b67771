package widgets

import "strings"

// Kind is the semantic category of an input control. It is assigned once when
// a field descriptor is built so classification never inspects widget types at
// render time.
type Kind int

const (
	KindOther Kind = iota
	KindTextLike
	KindSingleSelect
	KindMultiSelect
	KindCheckboxGroup
	KindRadioGroup
	KindSingleCheckbox
)

var kindNames = map[Kind]string{
	KindOther:          "other",
	KindTextLike:       "text",
	KindSingleSelect:   "select",
	KindMultiSelect:    "multiselect",
	KindCheckboxGroup:  "checkbox_group",
	KindRadioGroup:     "radio_group",
	KindSingleCheckbox: "checkbox",
}

// Kinds lists every defined kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindOther,
		KindTextLike,
		KindSingleSelect,
		KindMultiSelect,
		KindCheckboxGroup,
		KindRadioGroup,
		KindSingleCheckbox,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindOther]
}

// IsChoiceGroup reports whether the kind renders as checkboxes or radios.
func (k Kind) IsChoiceGroup() bool {
	switch k {
	case KindCheckboxGroup, KindRadioGroup, KindSingleCheckbox:
		return true
	default:
		return false
	}
}

// ParseKind maps a kind name (as returned by String) back to a Kind. Matching
// ignores case, surrounding whitespace and the "-"/"_" distinction.
func ParseKind(name string) (Kind, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if normalized == "" {
		return KindOther, false
	}
	for kind, candidate := range kindNames {
		if candidate == normalized {
			return kind, true
		}
	}
	return KindOther, false
}

// InputType is the abstract input family used to derive the input-<type> CSS
// class.
type InputType string

const (
	InputText       InputType = "text"
	InputSelect     InputType = "select"
	InputRadioCheck InputType = "radiocheck"
)

// Classify maps a widget kind onto its input type. The mapping is total:
// unrecognised kinds fall back to InputText.
func Classify(kind Kind) InputType {
	switch kind {
	case KindTextLike:
		return InputText
	case KindSingleSelect, KindMultiSelect:
		return InputSelect
	case KindCheckboxGroup, KindRadioGroup, KindSingleCheckbox:
		return InputRadioCheck
	default:
		return InputText
	}
}
