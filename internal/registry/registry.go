// Package registry binds typed values to keys for the lifetime of an application.
package registry

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/samber/lo"
)

var ErrNoProvider = errors.New("no provider found")

// Key identifies a value of type T. Two keys never collide, even with equal descriptions.
type Key[T any] struct {
	id          string
	description string
}

func NewKey[T any](description string) Key[T] {
	return Key[T]{
		id:          fmt.Sprintf("%s#%s", description, uuid.NewString()),
		description: description,
	}
}

func (k Key[T]) String() string {
	if k.description == "" {
		return k.id
	}

	return k.description
}

// Registry is backed by a do injector. Lookups fall back to the parent registry.
type Registry struct {
	injector *do.Injector
	parent   *Registry
}

func New() *Registry {
	return &Registry{injector: do.New()}
}

// FromInjector wraps an existing injector so keyed values live next to its services.
func FromInjector(injector *do.Injector) *Registry {
	return &Registry{injector: injector}
}

// Scope returns a child registry. Values registered in it shadow the parent's.
func (r *Registry) Scope() *Registry {
	return &Registry{
		injector: do.New(),
		parent:   r,
	}
}

func (r *Registry) Injector() *do.Injector {
	return r.injector
}

// Register binds value to key. The last write wins.
func Register[T any](r *Registry, key Key[T], value T) {
	do.OverrideNamedValue(r.injector, key.id, value)
}

// Resolve looks key up in r and then in its ancestors. A nil value counts as
// not registered.
func Resolve[T any](r *Registry, key Key[T]) (T, error) {
	for current := r; current != nil; current = current.parent {
		value, err := do.InvokeNamed[T](current.injector, key.id)
		if err == nil && !lo.IsNil(value) {
			return value, nil
		}
	}

	var empty T

	return empty, fmt.Errorf("%w for %s", ErrNoProvider, key)
}

// MustResolve is Resolve that panics when nothing was registered under key.
func MustResolve[T any](r *Registry, key Key[T]) T {
	value, err := Resolve(r, key)
	if err != nil {
		panic(err)
	}

	return value
}
