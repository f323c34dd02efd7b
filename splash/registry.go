// CLAUDE:SUMMARY Registry of UIs with their splash directives and optional custom configurators.
package splash

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hazyhaar/splashscreen/horosafe"
)

type entry struct {
	ui           UI
	directive    *Directive
	configurator Configurator
}

// Registry maps UI names to the directive the application attached to them.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds ui with directive d. A nil d registers a UI without a splash
// screen. The directive is copied.
func (r *Registry) Register(ui UI, d *Directive) error {
	if err := horosafe.ValidateIdentifier(ui.Name); err != nil {
		return fmt.Errorf("splash: register ui: %w", err)
	}
	e := &entry{ui: ui}
	if d != nil {
		cp := *d
		e.directive = &cp
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[ui.Name]; dup {
		return fmt.Errorf("splash: ui %q already registered", ui.Name)
	}
	r.entries[ui.Name] = e
	return nil
}

// SetConfigurator overrides the configurator of a registered UI. A nil c
// restores the default.
func (r *Registry) SetConfigurator(name string, c Configurator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUI, name)
	}
	e.configurator = c
	return nil
}

// Lookup returns the environment of a registered UI and its custom
// configurator, which is nil when the default applies.
func (r *Registry) Lookup(name string) (Environment, Configurator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return Environment{}, nil, false
	}
	env := Environment{UI: e.ui}
	if e.directive != nil {
		cp := *e.directive
		env.Directive = &cp
	}
	return env, e.configurator, true
}

// Names returns the registered UI names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
