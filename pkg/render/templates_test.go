package render_test

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render"
	"github.com/goliatone/go-standardform/pkg/testsupport"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

func newEmbeddedRenderer(t *testing.T, options ...render.Option) *render.Renderer {
	t.Helper()
	r, err := render.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func assertNotContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(html, fragment) {
			t.Fatalf("unexpected %q in output:\n%s", fragment, html)
		}
	}
}

func TestEmbeddedWidget_TextInput(t *testing.T) {
	r := newEmbeddedRenderer(t)
	field := model.Field{
		Name:     "email",
		Label:    "Email",
		Kind:     widgets.KindTextLike,
		HTMLType: "email",
		Required: true,
		Errors:   []string{"Enter a valid email address."},
		Value:    "ada@example.com",
	}

	html, err := r.Widget(field, render.WidgetArgs{Options: "placeholder_from_label", CustomClass: "my-class"})
	if err != nil {
		t.Fatalf("widget: %v", err)
	}
	assertContains(t, html,
		`<input type="email" name="email" value="ada@example.com"`,
		` class="input-text input-error my-class"`,
		` id="id_email"`,
		` placeholder="Email"`,
		` required="required"`,
	)
}

func TestEmbeddedWidget_Select(t *testing.T) {
	r := newEmbeddedRenderer(t)
	field := model.Field{
		Name:  "colors",
		Kind:  widgets.KindMultiSelect,
		Value: []string{"red", "blue"},
		Choices: []model.Choice{
			{Value: "red", Label: "Red"},
			{Value: "green", Label: "Green"},
			{Value: "blue", Label: "Blue"},
		},
	}

	html, err := r.Widget(field, render.WidgetArgs{})
	if err != nil {
		t.Fatalf("widget: %v", err)
	}
	assertContains(t, html,
		`<select name="colors" multiple class="input-select" id="id_colors">`,
		`<option value="red" selected>Red</option>`,
		`<option value="green">Green</option>`,
		`<option value="blue" selected>Blue</option>`,
	)
}

func TestEmbeddedWidget_RadioGroupDropsInputBlock(t *testing.T) {
	r := newEmbeddedRenderer(t)
	field := model.Field{
		Name:     "plan",
		Kind:     widgets.KindRadioGroup,
		Required: true,
		Value:    "pro",
		Choices: []model.Choice{
			{Value: "free", Label: "Free"},
			{Value: "pro", Label: "Pro"},
		},
	}

	html, err := r.Widget(field, render.WidgetArgs{CustomClass: "input-block inline"})
	if err != nil {
		t.Fatalf("widget: %v", err)
	}
	assertContains(t, html,
		`<ul id="id_plan">`,
		`<input type="radio" name="plan" value="free" id="id_plan_0" class="input-radiocheck inline" required="required"> Free`,
		`value="pro" id="id_plan_1" checked class="input-radiocheck inline"`,
	)
	assertNotContains(t, html, "input-block")
}

func TestEmbeddedWidget_SingleCheckbox(t *testing.T) {
	r := newEmbeddedRenderer(t)
	field := model.Field{Name: "terms", Kind: widgets.KindSingleCheckbox, Value: "on"}

	html, err := r.Widget(field, render.WidgetArgs{})
	if err != nil {
		t.Fatalf("widget: %v", err)
	}
	assertContains(t, html, `<input type="checkbox" name="terms" checked class="input-radiocheck" id="id_terms">`)
}

func TestEmbeddedWidget_HiddenInitial(t *testing.T) {
	r := newEmbeddedRenderer(t)
	field := model.Field{
		Name:              "price",
		Kind:              widgets.KindTextLike,
		Required:          true,
		Value:             "10",
		Initial:           "9",
		ShowHiddenInitial: true,
	}

	html, err := r.Widget(field, render.WidgetArgs{Options: "placeholder_from_label", CustomClass: "x"})
	if err != nil {
		t.Fatalf("widget: %v", err)
	}
	assertContains(t, html,
		`<input type="text" name="price" value="10" id="id_price">`,
		`<input type="hidden" name="initial-price" value="9" id="initial-id_price">`,
	)
	assertNotContains(t, html, "input-text", "required", "placeholder")

	if strings.Index(html, `type="text"`) > strings.Index(html, `type="hidden"`) {
		t.Fatalf("plain widget must precede hidden initial input:\n%s", html)
	}
}

func TestEmbeddedField_Wrapper(t *testing.T) {
	r := newEmbeddedRenderer(t)
	field := model.Field{
		Name:     "email",
		Label:    "Email",
		HelpText: "We never share it. <script>alert(1)</script>",
		Kind:     widgets.KindTextLike,
		Required: true,
		Errors:   []string{"This field is required."},
	}

	html, err := r.Field(field, render.FieldArgs{Options: "placeholder_from_label", Label: "Work email"})
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	assertContains(t, html,
		`<div class="form-field field-text has-error">`,
		`<label for="id_email">Work email <span class="required-helper">*</span></label>`,
		` placeholder="Work email"`,
		`<div class="help-text"><p>We never share it.`,
		`<ul class="error-text"><li>This field is required.</li></ul>`,
	)
	assertNotContains(t, html, "<script")
}

func TestEmbeddedField_ConcurrentNewAndRender(t *testing.T) {
	field := model.Field{Name: "email", Label: "Email", Kind: widgets.KindTextLike}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := render.New()
			if err != nil {
				errs <- err
				return
			}
			html, err := r.Field(field, render.FieldArgs{})
			if err != nil {
				errs <- err
				return
			}
			if !strings.Contains(html, `id="id_email"`) {
				errs <- fmt.Errorf("unexpected field output:\n%s", html)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestEmbeddedField_SuppressionFlags(t *testing.T) {
	r := newEmbeddedRenderer(t)
	field := model.Field{
		Name:     "email",
		Label:    "Email",
		HelpText: "Help",
		Required: true,
		Errors:   []string{"Broken"},
	}

	html, err := r.Field(field, render.FieldArgs{Options: "no_required_helper no_help_text no_error_text"})
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	assertNotContains(t, html, "required-helper", "help-text", "error-text")
	// no_required_helper only hides the marker; the widget stays required
	assertContains(t, html, `required="required"`)

	html, err = r.Field(field, render.FieldArgs{Options: "no_required"})
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	assertNotContains(t, html, `required="required"`)
	assertContains(t, html, "required-helper")
}

func TestEmbeddedForm_RendersFieldsThroughTemplateFunc(t *testing.T) {
	r := newEmbeddedRenderer(t)
	form := model.Form{
		Name:   "signup",
		Action: "/signup",
		Errors: []string{"Please fix the errors below."},
		Fields: []model.Field{
			{Name: "email", Label: "Email", Kind: widgets.KindTextLike, Required: true},
			{Name: "plan", Label: "Plan", Kind: widgets.KindSingleSelect, Choices: []model.Choice{{Value: "free"}}},
		},
	}

	html, err := r.Form(form, render.FormArgs{Options: "placeholder_from_label", CustomClass: "stacked"})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	assertContains(t, html,
		`<form name="signup" method="post" action="/signup" class="standard-form stacked">`,
		`<ul class="form-errors"><li>Please fix the errors below.</li></ul>`,
		`<label for="id_email">Email`,
		` placeholder="Email"`,
		`<select name="plan" class="input-select" id="id_plan" placeholder="Plan">`,
		`<option value="free">free</option>`,
	)
}

func TestEmbeddedTemplates_CallableFromCustomTemplate(t *testing.T) {
	custom := fstest.MapFS{
		"page.tmpl": {Data: []byte(`{{ standard_widget(field, "no_required", "custom_class=wide") }}|{% if "Yes"|booleanify %}on{% endif %}`)},
	}
	files := render.TemplatesFS()
	merged := fstest.MapFS{}
	for name, file := range custom {
		merged[name] = file
	}
	for _, name := range []string{
		"standard_form/widgets/input.tmpl",
		"standard_form/widgets/hidden.tmpl",
	} {
		data, err := fs.ReadFile(files, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		merged[name] = &fstest.MapFile{Data: data}
	}

	r := newEmbeddedRenderer(t, render.WithTemplatesFS(merged), render.WithTemplateNames(map[string]string{"field": "page"}))
	field := model.Field{Name: "nick", Required: true}

	html, err := r.Field(field, render.FieldArgs{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// the widget markup is escaped because the custom template omits |safe
	assertContains(t, html, "&lt;input type=", "nick", "wide", "|on")
	assertNotContains(t, html, "<input")
	assertNotContains(t, html, "required")
}

func TestEmbeddedForm_FromFixture(t *testing.T) {
	r := newEmbeddedRenderer(t)
	form := testsupport.MustLoadForm(t, filepath.Join("testdata", "contact.yaml"))

	html, err := r.Form(form, render.FormArgs{Options: "no_required_helper"})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	assertContains(t, html,
		`<form name="contact" method="post" action="/contact" class="standard-form">`,
		`<label for="id_name">Your name</label>`,
		`<input type="email" name="email" class="input-text input-error" id="id_email" required="required">`,
		`<li>Enter a valid email address.</li>`,
		`<option value="support" selected>Support</option>`,
		`<input type="checkbox" name="subscribe" checked class="input-radiocheck" id="id_subscribe">`,
	)
	assertNotContains(t, html, "required-helper")
}
