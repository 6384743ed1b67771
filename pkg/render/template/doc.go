// Package template defines the engine-agnostic contract used by the field
// renderer. The pongo subpackage provides the default Django-style engine.
package template
