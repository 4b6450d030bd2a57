package stockroom

import (
	"sync"

	"github.com/TheBitDrifter/mask"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World combines the entity table, archetype index, migration engine, event
// bus, and resource store behind a single serializing lock.
type World struct {
	mu     sync.Mutex
	locked bool

	generations []uint32
	freeIDs     []uint32
	locations   []entityLocation

	archetypes archetypes
	resources  map[ComponentID]any
	handlers   map[ComponentID]*componentHandlers

	log zerolog.Logger
}

type archetypes struct {
	nextID           archetypeID
	asSlice          []*archetype
	idsGroupedByMask map[mask.Mask]archetypeID
}

// Option configures a World at construction time.
type Option func(*World)

// WithLogger routes the world's structured debug and introspection events
// through logger. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.log = logger
	}
}

func newWorld(opts ...Option) *World {
	w := &World{
		archetypes: archetypes{
			nextID:           1,
			idsGroupedByMask: make(map[mask.Mask]archetypeID),
		},
		resources: make(map[ComponentID]any),
		handlers:  make(map[ComponentID]*componentHandlers),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	// Fresh entities land in the empty-signature archetype, so it exists for
	// the life of the world.
	var empty mask.Mask
	w.createArchetype(empty, nil)
	return w
}

func (w *World) archetypeBySignature(sig mask.Mask) (*archetype, bool) {
	id, found := w.archetypes.idsGroupedByMask[sig]
	if !found {
		return nil, false
	}
	return w.archetypes.asSlice[id-1], true
}

// createArchetype constructs the unique archetype for sig. Archetypes are
// heap nodes, so references held in the location table stay valid as the
// index grows.
func (w *World) createArchetype(sig mask.Mask, ids []ComponentID) *archetype {
	created := newArchetype(w.archetypes.nextID, sig, ids)
	w.archetypes.asSlice = append(w.archetypes.asSlice, created)
	w.archetypes.idsGroupedByMask[sig] = w.archetypes.nextID
	w.archetypes.nextID++
	w.logArchetypeCreated(created)
	return created
}

// CreateEntity allocates a fresh entity and places it in the empty-signature
// archetype. Slot indices are reused after destruction with a bumped
// generation.
func (w *World) CreateEntity() (Entity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locked {
		return Entity{}, WorldLockedError{}
	}
	return w.createLocked(), nil
}

// CreateEntities allocates n fresh entities.
func (w *World) CreateEntities(n int) ([]Entity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locked {
		return nil, eris.Wrap(WorldLockedError{}, "failed to create entities")
	}
	entities := make([]Entity, n)
	for i := range entities {
		entities[i] = w.createLocked()
	}
	return entities, nil
}

func (w *World) createLocked() Entity {
	var id uint32
	if n := len(w.freeIDs); n > 0 {
		id = w.freeIDs[n-1]
		w.freeIDs = w.freeIDs[:n-1]
	} else {
		id = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.locations = append(w.locations, entityLocation{})
	}
	e := Entity{ID: id, Generation: w.generations[id]}
	empty := w.archetypes.asSlice[0]
	row := len(empty.entities)
	empty.entities = append(empty.entities, e)
	w.locations[id] = entityLocation{arch: empty, row: row}
	return e
}

// DestroyEntity removes e from its archetype, bumps the slot generation, and
// recycles the slot. Destroying a dead entity is a no-op.
func (w *World) DestroyEntity(e Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locked {
		return WorldLockedError{}
	}
	w.destroyLocked(e)
	return nil
}

// DestroyEntities destroys each entity in order.
func (w *World) DestroyEntities(entities ...Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locked {
		return eris.Wrap(WorldLockedError{}, "failed to destroy entities")
	}
	for _, e := range entities {
		w.destroyLocked(e)
	}
	return nil
}

func (w *World) destroyLocked(e Entity) {
	if !w.aliveLocked(e) {
		return
	}
	loc := w.locations[e.ID]
	w.removeFromArchetype(loc.arch, loc.row)
	w.generations[e.ID]++
	w.freeIDs = append(w.freeIDs, e.ID)
	w.locations[e.ID] = entityLocation{}
}

// removeFromArchetype applies swap-remove at row and patches the swapped
// neighbor's location so it keeps resolving to its own data.
func (w *World) removeFromArchetype(a *archetype, row int) {
	moved, swapped := a.swapRemove(row)
	if swapped {
		w.locations[moved.ID].row = row
	}
}

// Alive reports whether e refers to a live entity. Stale handles (destroyed,
// or from a recycled slot) report false forever.
func (w *World) Alive(e Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.aliveLocked(e)
}

func (w *World) aliveLocked(e Entity) bool {
	return int(e.ID) < len(w.generations) &&
		w.generations[e.ID] == e.Generation &&
		w.locations[e.ID].arch != nil
}

// AddComponents migrates e into the archetype that also carries the given
// component types, default-initializing the new columns. Types already
// present keep their values. No-op on dead entities.
func (w *World) AddComponents(e Entity, components ...ComponentType) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.migrate(e, componentIDs(components), nil); err != nil {
		return eris.Wrap(err, "failed to add components")
	}
	return nil
}

// RemoveComponents migrates e out of the given component types, dropping
// their values. Types not present are ignored. No-op on dead entities.
func (w *World) RemoveComponents(e Entity, components ...ComponentType) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.migrate(e, nil, componentIDs(components)); err != nil {
		return eris.Wrap(err, "failed to remove components")
	}
	return nil
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.generations) - len(w.freeIDs)
}

// ArchetypeCount returns the number of distinct archetypes created so far,
// including the empty-signature archetype.
func (w *World) ArchetypeCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.archetypes.asSlice)
}
