package widgets

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Built-in widget type names, matching the widget classes exposed by the
// server-side form framework.
const (
	WidgetTextInput              = "TextInput"
	WidgetEmailInput             = "EmailInput"
	WidgetURLInput               = "URLInput"
	WidgetNumberInput            = "NumberInput"
	WidgetPasswordInput          = "PasswordInput"
	WidgetSelect                 = "Select"
	WidgetSelectMultiple         = "SelectMultiple"
	WidgetCheckboxSelectMultiple = "CheckboxSelectMultiple"
	WidgetRadioSelect            = "RadioSelect"
	WidgetCheckboxInput          = "CheckboxInput"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes registry warnings to the supplied logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry resolves widget type names to a Kind. Names are matched case
// insensitively. An empty registry resolves every name to KindOther.
type Registry struct {
	mu     sync.RWMutex
	kinds  map[string]registration
	logger *zap.Logger
}

type registration struct {
	name string
	kind Kind
}

// NewRegistry constructs a registry with the built-in widget names registered.
func NewRegistry(options ...Option) *Registry {
	reg := &Registry{
		kinds:  make(map[string]registration),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(reg)
		}
	}
	reg.registerBuiltins()
	return reg
}

// Register maps a widget name to a kind. Registering an existing name replaces
// the previous mapping.
func (r *Registry) Register(name string, kind Kind) {
	if r == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[strings.ToLower(trimmed)] = registration{name: trimmed, kind: kind}
}

// Resolve returns the kind registered for name.
func (r *Registry) Resolve(name string) (Kind, bool) {
	if r == nil {
		return KindOther, false
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return KindOther, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.kinds[key]
	if !ok {
		return KindOther, false
	}
	return entry.kind, true
}

// KindFor resolves name, logging a warning and returning KindOther when the
// name is unknown. Empty names resolve to KindOther silently.
func (r *Registry) KindFor(name string) Kind {
	kind, ok := r.Resolve(name)
	if ok || strings.TrimSpace(name) == "" || r == nil {
		return kind
	}
	r.logger.Warn("unknown widget type, rendering as plain text input",
		zap.String("widget", name))
	return KindOther
}

// Names returns the registered widget names sorted alphabetically.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.kinds))
	for _, entry := range r.kinds {
		names = append(names, entry.name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (r *Registry) registerBuiltins() {
	for _, name := range []string{
		WidgetTextInput,
		WidgetEmailInput,
		WidgetURLInput,
		WidgetNumberInput,
		WidgetPasswordInput,
	} {
		r.Register(name, KindTextLike)
	}
	r.Register(WidgetSelect, KindSingleSelect)
	r.Register(WidgetSelectMultiple, KindMultiSelect)
	r.Register(WidgetCheckboxSelectMultiple, KindCheckboxGroup)
	r.Register(WidgetRadioSelect, KindRadioGroup)
	r.Register(WidgetCheckboxInput, KindSingleCheckbox)

	// kind names double as widget names so fixtures can say "select" directly.
	for _, kind := range Kinds() {
		if kind == KindOther {
			continue
		}
		if _, exists := r.kinds[kind.String()]; !exists {
			r.Register(kind.String(), kind)
		}
	}
}
