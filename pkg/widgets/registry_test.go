package widgets

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClassify_Table(t *testing.T) {
	cases := map[Kind]InputType{
		KindTextLike:       InputText,
		KindSingleSelect:   InputSelect,
		KindMultiSelect:    InputSelect,
		KindCheckboxGroup:  InputRadioCheck,
		KindRadioGroup:     InputRadioCheck,
		KindSingleCheckbox: InputRadioCheck,
		KindOther:          InputText,
		Kind(42):           InputText,
		Kind(-1):           InputText,
	}

	for kind, want := range cases {
		if got := Classify(kind); got != want {
			t.Fatalf("Classify(%d) = %q, want %q", kind, got, want)
		}
	}
}

func TestClassify_IsTotal(t *testing.T) {
	valid := map[InputType]bool{InputText: true, InputSelect: true, InputRadioCheck: true}
	for _, kind := range append(Kinds(), Kind(99)) {
		if got := Classify(kind); !valid[got] {
			t.Fatalf("Classify(%v) returned unexpected input type %q", kind, got)
		}
	}
}

func TestParseKind_RoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		got, ok := ParseKind(kind.String())
		if !ok || got != kind {
			t.Fatalf("ParseKind(%q) = %v (ok=%v), want %v", kind.String(), got, ok, kind)
		}
	}

	if got, ok := ParseKind(" Radio-Group "); !ok || got != KindRadioGroup {
		t.Fatalf("expected loose match for radio group, got %v (ok=%v)", got, ok)
	}
	if _, ok := ParseKind("slider"); ok {
		t.Fatalf("expected unknown kind name to be rejected")
	}
}

func TestKind_IsChoiceGroup(t *testing.T) {
	for _, kind := range Kinds() {
		want := Classify(kind) == InputRadioCheck
		if got := kind.IsChoiceGroup(); got != want {
			t.Fatalf("%v.IsChoiceGroup() = %v, want %v", kind, got, want)
		}
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		expect Kind
	}{
		{name: WidgetTextInput, expect: KindTextLike},
		{name: "emailinput", expect: KindTextLike},
		{name: WidgetSelect, expect: KindSingleSelect},
		{name: WidgetSelectMultiple, expect: KindMultiSelect},
		{name: WidgetCheckboxSelectMultiple, expect: KindCheckboxGroup},
		{name: WidgetRadioSelect, expect: KindRadioGroup},
		{name: WidgetCheckboxInput, expect: KindSingleCheckbox},
		{name: "radio_group", expect: KindRadioGroup},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.name)
			if !ok {
				t.Fatalf("expected %q to resolve", tc.name)
			}
			if got != tc.expect {
				t.Fatalf("expected %v, got %v", tc.expect, got)
			}
		})
	}
}

func TestRegister_OverridesBuiltin(t *testing.T) {
	reg := NewRegistry()
	reg.Register("select", KindMultiSelect)

	if got, _ := reg.Resolve(WidgetSelect); got != KindMultiSelect {
		t.Fatalf("expected override to win, got %v", got)
	}
}

func TestKindFor_UnknownLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reg := NewRegistry(WithLogger(zap.New(core)))

	if got := reg.KindFor("ColorPicker"); got != KindOther {
		t.Fatalf("expected KindOther for unknown widget, got %v", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["widget"] != "ColorPicker" {
		t.Fatalf("expected widget name in log context, got %v", entry.ContextMap())
	}

	if got := reg.KindFor(""); got != KindOther {
		t.Fatalf("expected KindOther for empty widget name, got %v", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("empty widget name should not log, got %d entries", logs.Len())
	}
}

func TestNilRegistry(t *testing.T) {
	var reg *Registry
	if got, ok := reg.Resolve(WidgetSelect); ok || got != KindOther {
		t.Fatalf("nil registry should not resolve, got %v (ok=%v)", got, ok)
	}
	if got := reg.KindFor(WidgetSelect); got != KindOther {
		t.Fatalf("nil registry KindFor should return KindOther, got %v", got)
	}
}
