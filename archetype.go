package stockroom

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

type archetypeID uint32

// archetype owns the rows for one specific component-set signature: a column
// of entity handles plus one typed column per signature bit. Rows are
// contiguous and removal is swap-with-last.
type archetype struct {
	id        archetypeID
	signature mask.Mask
	ids       []ComponentID
	entities  []Entity
	columns   [MaxComponents]column
}

func newArchetype(id archetypeID, signature mask.Mask, ids []ComponentID) *archetype {
	// Column slots stay nil until the first migration into this archetype;
	// archetypes reached only through query masks never allocate storage.
	return &archetype{
		id:        id,
		signature: signature,
		ids:       ids,
	}
}

func (a *archetype) contains(id ComponentID) bool {
	var m mask.Mask
	m.Mark(uint32(id))
	return a.signature.ContainsAll(m)
}

// components yields the archetype's component ids in column order.
func (a *archetype) components() iter.Seq[ComponentID] {
	return func(yield func(ComponentID) bool) {
		for _, id := range a.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// ensureColumn materializes the column for rec if it hasn't been yet.
func (a *archetype) ensureColumn(rec *typeRecord) column {
	col := a.columns[rec.id]
	if col == nil {
		col = rec.newColumn()
		a.columns[rec.id] = col
	}
	return col
}

// swapRemove removes row r from every column and the entity list. It returns
// the entity taken from the last row and whether a swap actually happened.
// When r was the last row no swap happens and the returned entity is the
// removed one.
func (a *archetype) swapRemove(r int) (Entity, bool) {
	last := len(a.entities) - 1
	for _, id := range a.ids {
		if col := a.columns[id]; col != nil {
			col.swapRemove(r)
		}
	}
	moved := a.entities[last]
	swapped := r != last
	if swapped {
		a.entities[r] = moved
	}
	a.entities = a.entities[:last]
	return moved, swapped
}
