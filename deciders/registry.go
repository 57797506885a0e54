package deciders

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// Registry is the immutable binding from decider name to decider strategy.
// It is built once from a non-empty plugin set and never mutated, so reads
// require no locking and the registry is safe to share across concurrent
// engine invocations.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry builds a registry from the supplied plugins. An empty plugin
// set or a name registered twice is a wiring defect and fails construction.
func NewRegistry(plugins ...Plugin) (*Registry, error) {
	if len(plugins) == 0 {
		return nil, errors.New("decider registry requires at least one plugin")
	}

	byName := make(map[string]Plugin, len(plugins))
	for _, p := range plugins {
		if _, ok := byName[p.name]; ok {
			return nil, fmt.Errorf("decider %q registered twice", p.name)
		}
		byName[p.name] = p
	}

	return &Registry{plugins: byName}, nil
}

// Contains returns whether the named decider is registered. Policy loading
// collaborators use this to validate references before the engine runs.
func (r *Registry) Contains(name string) bool {
	_, ok := r.plugins[name]
	return ok
}

// Names returns the registered decider names in unspecified order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	return names
}

// Scale dispatches the config to the decider it names. Referencing an
// unregistered decider indicates the policy authoring collaborator and the
// registry wiring disagree; that is a fatal defect, not a recoverable input
// error, so it panics rather than skipping the decider.
func (r *Registry) Scale(config sdk.DeciderConfig, ctx *sdk.DecisionContext) sdk.Decision {
	p, ok := r.plugins[config.Decider()]
	if !ok {
		panic(fmt.Sprintf("decider %q is not registered", config.Decider()))
	}
	return p.invoke(config, ctx)
}

// Holder defers registry construction until first use and memoizes the
// result. It is safe under concurrent first access; the factory runs
// exactly once.
type Holder struct {
	once     sync.Once
	factory  func() (*Registry, error)
	registry *Registry
}

// NewHolder returns a holder that builds its registry with factory on the
// first call to Get.
func NewHolder(factory func() (*Registry, error)) *Holder {
	return &Holder{factory: factory}
}

// Get returns the held registry, constructing it on first call. A factory
// error is a startup wiring defect and panics.
func (h *Holder) Get() *Registry {
	h.once.Do(func() {
		r, err := h.factory()
		if err != nil {
			panic(fmt.Sprintf("failed to construct decider registry: %v", err))
		}
		h.registry = r
	})
	return h.registry
}
