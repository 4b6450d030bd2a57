package stockroom

import (
	"slices"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// migrate transitions e from its current archetype to the one whose signature
// is (current ∪ add) ∖ remove. All columns present in both keep their values;
// newly introduced columns get a default-initialized cell; removed columns
// drop theirs. The caller must hold w.mu.
//
// The destination row is fully written before the source row is swap-removed,
// so a failure before the source mutation leaves the world consistent.
func (w *World) migrate(e Entity, add, remove []ComponentID) error {
	if w.locked {
		return WorldLockedError{}
	}
	if !w.aliveLocked(e) {
		return nil
	}

	loc := w.locations[e.ID]
	src := loc.arch

	dstSig := src.signature
	for _, id := range add {
		dstSig.Mark(uint32(id))
	}
	for _, id := range remove {
		dstSig.Unmark(uint32(id))
	}
	if dstSig == src.signature {
		return nil
	}

	// Re-adding a present component and removing an absent one are no-ops for
	// that id: no default construction, no callback.
	added := make([]ComponentID, 0, len(add))
	for _, id := range add {
		if !src.contains(id) && !slices.Contains(added, id) {
			added = append(added, id)
		}
	}
	removed := make([]ComponentID, 0, len(remove))
	for _, id := range remove {
		if src.contains(id) && !slices.Contains(removed, id) {
			removed = append(removed, id)
		}
	}

	dst, found := w.archetypeBySignature(dstSig)
	if !found {
		dst = w.createArchetype(dstSig, destinationIDs(src, added, removed))
	}

	srcRow := loc.row
	dstRow := len(dst.entities)
	dst.entities = append(dst.entities, e)

	for _, id := range dst.ids {
		col := dst.ensureColumn(recordByID(id))
		if src.contains(id) {
			col.pushMoveFrom(src.columns[id], srcRow)
		} else {
			col.pushDefault()
		}
	}

	w.removeFromArchetype(src, srcRow)
	w.locations[e.ID] = entityLocation{arch: dst, row: dstRow}
	w.logMigration(e, src, dst)

	// Callbacks observe the committed transition. They run under the world
	// lock; re-entering the world from one deadlocks.
	for _, id := range added {
		w.fireAdded(id, e)
	}
	for _, id := range removed {
		w.fireRemoved(id, e)
	}
	return nil
}

// destinationIDs builds the sorted component-id list for the archetype an
// entity migrates into.
func destinationIDs(src *archetype, added, removed []ComponentID) []ComponentID {
	ids := iter_util.Collect(src.components())
	for _, id := range removed {
		if i := slices.Index(ids, id); i >= 0 {
			ids = slices.Delete(ids, i, i+1)
		}
	}
	ids = append(ids, added...)
	slices.Sort(ids)
	return ids
}
