package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-standardform/pkg/flags"
	"github.com/goliatone/go-standardform/pkg/model"
	"github.com/goliatone/go-standardform/pkg/render"
	"github.com/goliatone/go-standardform/pkg/widgets"
)

// Result is a field descriptor plus the render arguments chosen at the
// prompt.
type Result struct {
	Field model.Field
	Args  render.FieldArgs
}

var optionTokens = []string{
	flags.PlaceholderFromLabel,
	flags.NoRequired,
	flags.NoRequiredHelper,
	flags.NoHelpText,
	flags.NoErrorText,
}

// BuildField walks the user through describing a single field. Widget names
// are offered from registry.
func BuildField(ctx context.Context, driver Driver, registry *widgets.Registry) (Result, error) {
	if driver == nil {
		return Result{}, errors.New("prompt: driver is nil")
	}
	if registry == nil {
		registry = widgets.NewRegistry()
	}

	name, err := driver.Input(ctx, InputConfig{
		Message:   "Field name",
		Validator: requireValue,
	})
	if err != nil {
		return Result{}, err
	}
	name = strings.TrimSpace(name)

	label, err := driver.Input(ctx, InputConfig{Message: "Label", Default: name})
	if err != nil {
		return Result{}, err
	}

	names := registry.Names()
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Widget",
		Options:      names,
		DefaultIndex: indexOf(names, widgets.WidgetTextInput),
	})
	if err != nil {
		return Result{}, err
	}
	if idx < 0 || idx >= len(names) {
		return Result{}, fmt.Errorf("prompt: widget selection %d out of range", idx)
	}
	kind := registry.KindFor(names[idx])

	required, err := driver.Confirm(ctx, ConfirmConfig{Message: "Required?", Default: true})
	if err != nil {
		return Result{}, err
	}

	field := model.Field{
		Name:     name,
		Label:    strings.TrimSpace(label),
		Kind:     kind,
		Required: required,
	}

	if needsChoices(kind) {
		raw, err := driver.Input(ctx, InputConfig{
			Message:   "Choices (comma separated)",
			Validator: requireValue,
		})
		if err != nil {
			return Result{}, err
		}
		field.Choices = parseChoices(raw)
	}

	selected, err := driver.MultiSelect(ctx, SelectConfig{
		Message: "Options",
		Options: optionTokens,
	})
	if err != nil {
		return Result{}, err
	}
	tokens := make([]string, 0, len(selected))
	for _, i := range selected {
		if i >= 0 && i < len(optionTokens) {
			tokens = append(tokens, optionTokens[i])
		}
	}

	customClass, err := driver.Input(ctx, InputConfig{Message: "Custom classes"})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Field: field,
		Args: render.FieldArgs{
			Options:     strings.Join(tokens, " "),
			CustomClass: strings.TrimSpace(customClass),
		},
	}, nil
}

func needsChoices(kind widgets.Kind) bool {
	switch kind {
	case widgets.KindSingleSelect, widgets.KindMultiSelect, widgets.KindCheckboxGroup, widgets.KindRadioGroup:
		return true
	default:
		return false
	}
}

func parseChoices(raw string) []model.Choice {
	var out []model.Choice
	for _, part := range strings.Split(raw, ",") {
		value := strings.TrimSpace(part)
		if value == "" {
			continue
		}
		out = append(out, model.Choice{Value: value, Label: value})
	}
	return out
}

func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}
