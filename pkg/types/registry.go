package types

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry maps class and interface names to Go types.
// It stands in for "does this class exist" lookups: only registered names can be
// used as declared types.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]reflect.Type
	byType map[reflect.Type]string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]reflect.Type),
		byType: make(map[reflect.Type]string),
	}
}

// Register adds a named Go type to the registry.
// If the name exists, it is overwritten.
func (r *Registry) Register(name string, t reflect.Type) error {
	if name == "" {
		return fmt.Errorf("%w: empty class name", ErrInvalidType)
	}
	if t == nil {
		return fmt.Errorf("%w: nil Go type for %q", ErrInvalidType, name)
	}
	if _, reserved := synonyms[name]; reserved {
		return fmt.Errorf("%w: %q is a reserved type name", ErrInvalidType, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byName[name]; ok && r.byType[old] == name {
		delete(r.byType, old)
		if alias, ok := r.aliasOf(old, name); ok {
			r.byType[old] = alias
		}
	}
	r.byName[name] = t
	r.byType[t] = name
	return nil
}

// aliasOf returns the smallest name other than skip still bound to t.
// The caller holds the write lock.
func (r *Registry) aliasOf(t reflect.Type, skip string) (string, bool) {
	var alias string
	for name, bound := range r.byName {
		if bound == t && name != skip && (alias == "" || name < alias) {
			alias = name
		}
	}
	return alias, alias != ""
}

// RegisterType registers T under name. Pass an interface type to register an interface.
func RegisterType[T any](r *Registry, name string) error {
	return r.Register(name, reflect.TypeFor[T]())
}

// Lookup returns the class identity registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	if r == nil {
		return Type{}, false
	}
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return Type{}, false
	}
	return Class(name, t), true
}

// NameOf returns the registered name of a Go type.
func (r *Registry) NameOf(t reflect.Type) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byType[t]
	return name, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
