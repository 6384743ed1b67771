package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-standardform/internal/prompt"
)

const fixtureYAML = `
name: signup
action: /signup
fields:
  - name: email
    label: Email
    widget: EmailInput
    required: true
  - name: plan
    widget: RadioSelect
    choices: [free, pro]
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signup.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRun_Form(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-form", writeFixture(t), "-options", "placeholder_from_label"}, &out, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	html := out.String()
	for _, want := range []string{`<form name="signup"`, `type="email"`, `placeholder="Email"`, `type="radio"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestRun_Widget(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-form", writeFixture(t), "-mode", "widget", "-field", "plan", "-custom-class", "input-block inline"}
	if err := run(context.Background(), args, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	html := out.String()
	if strings.Contains(html, "input-block") || !strings.Contains(html, "input-radiocheck inline") {
		t.Fatalf("unexpected widget output:\n%s", html)
	}
	if strings.Contains(html, "<form") || strings.Contains(html, "form-field") {
		t.Fatalf("widget mode should render only the widget:\n%s", html)
	}
}

func TestRun_FieldToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.html")
	args := []string{"-form", writeFixture(t), "-field", "email", "-label", "Work email", "-options", "no_required_helper", "-output", output}
	if err := run(context.Background(), args, &bytes.Buffer{}, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "Work email") || strings.Contains(html, "required-helper") {
		t.Fatalf("unexpected field output:\n%s", html)
	}
}

type fakeDriver struct {
	inputs []string
}

func (d *fakeDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	if value == "" {
		return cfg.Default, nil
	}
	return value, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	return cfg.DefaultIndex, nil
}

func (d *fakeDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return []int{0}, nil
}

func TestRun_Interactive(t *testing.T) {
	var out bytes.Buffer
	driver := &fakeDriver{inputs: []string{"nickname", "Nickname", "wide"}}
	if err := run(context.Background(), []string{"-interactive", "-mode", "widget"}, &out, driver); err != nil {
		t.Fatalf("run: %v", err)
	}
	html := out.String()
	for _, want := range []string{`name="nickname"`, `placeholder="Nickname"`, `class="input-text wide"`, `required="required"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestParseFlags_Validation(t *testing.T) {
	cases := map[string][]string{
		"missing form":       {},
		"unknown mode":       {"-form", "x.yaml", "-mode", "page"},
		"field without name": {"-form", "x.yaml", "-mode", "field"},
		"interactive form":   {"-interactive", "-mode", "form"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := parseFlags(args); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}

	opts, err := parseFlags([]string{"-form", "x.yaml", "-field", "email"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.mode != "field" {
		t.Fatalf("expected field mode when -field is set, got %q", opts.mode)
	}
}

func TestRun_WatchRequiresTemplatesDir(t *testing.T) {
	err := run(context.Background(), []string{"-form", writeFixture(t), "-watch"}, &bytes.Buffer{}, nil)
	if err == nil || !strings.Contains(err.Error(), "-watch requires") {
		t.Fatalf("expected watch error, got %v", err)
	}
}
