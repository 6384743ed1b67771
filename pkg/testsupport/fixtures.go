package testsupport

import (
	"bytes"
	"io"
	"testing"

	"github.com/goliatone/go-standardform/internal/fixture"
	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

// MustLoadForm reads a YAML/JSON form fixture with the built-in widget names.
func MustLoadForm(t *testing.T, path string) model.Form {
	t.Helper()

	form, err := fixture.Load(path, widgets.NewRegistry())
	if err != nil {
		t.Fatalf("load form fixture: %v", err)
	}
	return form
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
