package render

import "testing"

func TestAttributesString(t *testing.T) {
	attrs := Attributes{
		"required":    "required",
		"class":       "input-text",
		"placeholder": `Say "hi" <b>`,
	}
	want := ` class="input-text" placeholder="Say &#34;hi&#34; &lt;b&gt;" required="required"`
	if got := attrs.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := (Attributes{}).String(); got != "" {
		t.Fatalf("empty attributes should render empty, got %q", got)
	}
}

func TestAttributesWithout(t *testing.T) {
	attrs := Attributes{"id": "x", "class": "y"}
	trimmed := attrs.Without("id")
	if _, ok := trimmed["id"]; ok {
		t.Fatalf("expected id removed")
	}
	if attrs["id"] != "x" {
		t.Fatalf("Without mutated the receiver")
	}
}

func TestMergeAttributes(t *testing.T) {
	base := map[string]string{"a": "1", "b": "2"}
	merged := MergeAttributes(base, map[string]string{"b": "3"})
	if merged["a"] != "1" || merged["b"] != "3" {
		t.Fatalf("unexpected merge result %v", merged)
	}
	if base["b"] != "2" {
		t.Fatalf("base mutated")
	}
}

func TestParseCallArgs(t *testing.T) {
	call := parseCallArgs([]string{"no_required", "", "custom_class=input-block wide", "placeholder_from_label", "foo=bar", "label=Name"})
	if call.options != "no_required placeholder_from_label foo=bar" {
		t.Fatalf("unexpected options %q", call.options)
	}
	if call.kw["custom_class"] != "input-block wide" || call.kw["label"] != "Name" {
		t.Fatalf("unexpected keywords %v", call.kw)
	}
}
