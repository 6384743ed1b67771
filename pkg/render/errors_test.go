package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render"
)

func TestApplyErrors(t *testing.T) {
	form := model.Form{
		Errors: []string{"Existing"},
		Fields: []model.Field{
			{Name: "name"},
			{Name: "email", Errors: []string{"Email invalid"}},
			{Name: "tags"},
		},
	}

	payload := map[string][]string{
		"/body/name":         {"Name is required", " Name is required "},
		"body.email":         {"Email invalid", "Email taken"},
		"$.body.tags[0]":     {"Tags must be unique"},
		"non_field_errors":   {"Form level error"},
		"request/body/other": {"Unknown field"},
		"":                   {"Unscoped", "  "},
	}

	got := render.ApplyErrors(form, payload)

	wantFields := map[string][]string{
		"name":  {"Name is required"},
		"email": {"Email invalid", "Email taken"},
		"tags":  {"Tags must be unique"},
	}
	for name, want := range wantFields {
		field, _ := got.Field(name)
		if diff := cmp.Diff(want, field.Errors); diff != "" {
			t.Fatalf("field %s errors mismatch (-want +got):\n%s", name, diff)
		}
	}

	wantForm := []string{"Existing", "Unscoped", "Form level error", "Unknown field"}
	if diff := cmp.Diff(wantForm, got.Errors); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}

	if len(form.Fields[0].Errors) != 0 || len(form.Errors) != 1 {
		t.Fatalf("ApplyErrors mutated the input form: %+v", form)
	}
}

func TestApplyErrors_Empty(t *testing.T) {
	form := model.Form{Fields: []model.Field{{Name: "a"}}}
	got := render.ApplyErrors(form, nil)
	if got.HasErrors() {
		t.Fatalf("expected no errors, got %+v", got)
	}
}
