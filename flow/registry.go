package flow

import (
	"sort"
	"sync"
)

// Kind partitions the registry by plugin role.
type Kind string

const (
	KindReader    Kind = "reader"
	KindFilter    Kind = "filter"
	KindWriter    Kind = "writer"
	KindGenerator Kind = "generator"
)

// Factory creates a fresh, unconfigured plugin instance.
type Factory func() Plugin

// Registry provides named plugin lookup for dynamic pipeline assembly.
// It is populated by the caller and read-only to the core.
type Registry struct {
	mu        sync.RWMutex
	factories map[Kind]map[string]Factory
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]map[string]Factory)}
}

// Register adds a plugin factory under the given role. The registered
// name is taken from a throwaway instance.
func (r *Registry) Register(kind Kind, f Factory) {
	name := f().Name()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories[kind] == nil {
		r.factories[kind] = make(map[string]Factory)
	}
	r.factories[kind][name] = f
}

// Create instantiates a fresh plugin by name, searching the given kinds.
// With no kinds supplied, all roles are searched.
func (r *Registry) Create(name string, kinds ...Kind) (Plugin, Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, kind := range r.kindsOrAll(kinds) {
		if f, ok := r.factories[kind][name]; ok {
			return f(), kind, true
		}
	}
	return nil, "", false
}

// Names returns the sorted plugin names registered under the given
// kinds. With no kinds supplied, all roles are included.
func (r *Registry) Names(kinds ...Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var names []string
	for _, kind := range r.kindsOrAll(kinds) {
		for name := range r.factories[kind] {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Kind returns the role a name is registered under.
func (r *Registry) Kind(name string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for kind, byName := range r.factories {
		if _, ok := byName[name]; ok {
			return kind, true
		}
	}
	return "", false
}

func (r *Registry) kindsOrAll(kinds []Kind) []Kind {
	if len(kinds) > 0 {
		return kinds
	}
	return []Kind{KindReader, KindFilter, KindWriter, KindGenerator}
}
