package stockroom

import (
	"reflect"
)

// Resources are per-world singletons keyed by the component id of their
// type. Registering a resource type consumes a ComponentID, the same dense
// space the component registry draws from.

// SetResource installs value as the singleton for R, replacing (and thereby
// dropping) any previous value.
func SetResource[R any](w *World, value R) {
	c := NewComponent[R]()
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resources[c.ID()] = &value
}

// GetResource returns the installed singleton for R, or ResourceAbsentError
// when none is installed.
func GetResource[R any](w *World) (*R, error) {
	c := NewComponent[R]()
	w.mu.Lock()
	defer w.mu.Unlock()
	stored, found := w.resources[c.ID()]
	if !found {
		return nil, ResourceAbsentError{Type: reflect.TypeFor[R]()}
	}
	return stored.(*R), nil
}

// HasResource reports whether a singleton for R is installed.
func HasResource[R any](w *World) bool {
	c := NewComponent[R]()
	w.mu.Lock()
	defer w.mu.Unlock()
	_, found := w.resources[c.ID()]
	return found
}
