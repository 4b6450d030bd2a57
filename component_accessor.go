package stockroom

import (
	"github.com/rotisserie/eris"
)

// Add migrates e into an archetype carrying T and returns a pointer to the
// (default-initialized, or pre-existing) cell. Adding a component the entity
// already has keeps its value. Returns nil for dead entities.
func (c Component[T]) Add(w *World, e Entity) (*T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return c.addLocked(w, e)
}

// Set is Add followed by assigning value to the cell.
func (c Component[T]) Set(w *World, e Entity, value T) (*T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ptr, err := c.addLocked(w, e)
	if err != nil {
		return nil, eris.Wrap(err, "failed to set component")
	}
	if ptr != nil {
		*ptr = value
	}
	return ptr, nil
}

func (c Component[T]) addLocked(w *World, e Entity) (*T, error) {
	if err := w.migrate(e, []ComponentID{c.rec.id}, nil); err != nil {
		return nil, eris.Wrap(err, "failed to add component")
	}
	return c.getLocked(w, e), nil
}

// Remove migrates e out of T, dropping its value. Removing an absent
// component or operating on a dead entity is a no-op.
func (c Component[T]) Remove(w *World, e Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.migrate(e, nil, []ComponentID{c.rec.id}); err != nil {
		return eris.Wrap(err, "failed to remove component")
	}
	return nil
}

// Get returns a pointer to e's cell for T, or (nil, false) when e is dead or
// does not carry T. The pointer is invalidated by any operation that may
// swap-remove through e's row.
func (c Component[T]) Get(w *World, e Entity) (*T, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ptr := c.getLocked(w, e)
	return ptr, ptr != nil
}

// Has reports whether e is alive and carries T.
func (c Component[T]) Has(w *World, e Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.aliveLocked(e) {
		return false
	}
	return w.locations[e.ID].arch.contains(c.rec.id)
}

func (c Component[T]) getLocked(w *World, e Entity) *T {
	if !w.aliveLocked(e) {
		return nil
	}
	loc := w.locations[e.ID]
	if !loc.arch.contains(c.rec.id) {
		return nil
	}
	col := loc.arch.columns[c.rec.id].(*columnOf[T])
	return &col.data[loc.row]
}

// GetFromCursor retrieves the component cell at the cursor position.
func (c Component[T]) GetFromCursor(cursor *Cursor) *T {
	col := cursor.currentArchetype.columns[c.rec.id].(*columnOf[T])
	return &col.data[cursor.entityIndex-1]
}

// GetFromCursorSafe checks that the cursor's archetype carries T before
// dereferencing. Returns a boolean indicating success and the cell if found.
func (c Component[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if !cursor.currentArchetype.contains(c.rec.id) {
		return false, nil
	}
	return true, c.GetFromCursor(cursor)
}

// CheckCursor reports whether the cursor's archetype carries T.
func (c Component[T]) CheckCursor(cursor *Cursor) bool {
	return cursor.currentArchetype.contains(c.rec.id)
}

// SliceFrom returns the whole column for T in the chunk cursor's current
// archetype. Its length equals Count(). The slice is owned by the archetype;
// callers must not retain it across mutations.
func (c Component[T]) SliceFrom(cursor *ChunkCursor) []T {
	col := cursor.currentArchetype.columns[c.rec.id].(*columnOf[T])
	return col.data
}
