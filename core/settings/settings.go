package settings

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound     = errors.New("setting not found")
	ErrTypeMismatch = errors.New("setting type mismatch")
)

// Registry is a name-keyed store of type-erased configuration values.
// It is safe for concurrent use; reads take a shared lock since the
// registry is read-mostly after startup.
type Registry struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{values: make(map[string]any)}
}

// Set stores a value under a name. A later Set with the same name
// replaces both the previous value and its type.
func (r *Registry) Set(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = value
}

// Has reports whether a value is stored under the name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.values[name]
	return ok
}

// Names returns the stored setting names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	return names
}

// Get retrieves the value stored under name as type T. A consumer must
// request the exact stored type: no coercion is attempted, and a stored
// value of a different type fails with ErrTypeMismatch, distinctly from
// ErrNotFound.
func Get[T any](r *Registry, name string) (T, error) {
	var zero T

	r.mu.RLock()
	v, ok := r.values[name]
	r.mu.RUnlock()

	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, name, v)
	}
	return typed, nil
}

// GetOr retrieves the value stored under name, falling back to the
// given default when it is absent or of a different type.
func GetOr[T any](r *Registry, name string, fallback T) T {
	v, err := Get[T](r, name)
	if err != nil {
		return fallback
	}
	return v
}
