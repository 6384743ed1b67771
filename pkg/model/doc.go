// Package model defines the field and form descriptors consumed by the
// renderer. A Field is a read-only view built fresh per request from the
// caller's form objects; its widget Kind is resolved once at construction
// (see widgets.Registry) so rendering never dispatches on widget types. Label
// overrides and other per-render adjustments always work on copies.
package model
