package stockroom

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/rs/zerolog"
)

func componentArray(ids []ComponentID) *zerolog.Array {
	arrayLogger := zerolog.Arr()
	for _, id := range ids {
		dictLogger := zerolog.Dict().
			Int("component_id", int(id)).
			Str("component_name", recordByID(id).name())
		arrayLogger = arrayLogger.Dict(dictLogger)
	}
	return arrayLogger
}

func (w *World) logArchetypeCreated(a *archetype) {
	if e := w.log.Debug(); e.Enabled() {
		e.Uint32("archetype_id", uint32(a.id)).
			Int("total_components", len(a.ids)).
			Array("components", componentArray(a.ids)).
			Msg("archetype created")
	}
}

func (w *World) logMigration(e Entity, from, to *archetype) {
	if ev := w.log.Debug(); ev.Enabled() {
		ev.Uint32("entity_id", e.ID).
			Uint32("entity_generation", e.Generation).
			Uint32("from_archetype", uint32(from.id)).
			Uint32("to_archetype", uint32(to.id)).
			Array("components", componentArray(to.ids)).
			Msg("entity migrated")
	}
}

// MemoryStats summarizes the world's storage footprint.
type MemoryStats struct {
	Entities       int
	Archetypes     int
	ComponentBytes uintptr
	MetadataBytes  uintptr
}

// MemoryStats walks every archetype and tallies live rows, materialized
// column bytes, and entity-table metadata.
func (w *World) MemoryStats() MemoryStats {
	w.mu.Lock()
	defer w.mu.Unlock()

	stats := MemoryStats{Archetypes: len(w.archetypes.asSlice)}
	for _, arch := range w.archetypes.asSlice {
		stats.Entities += len(arch.entities)
		for _, id := range arch.ids {
			if col := arch.columns[id]; col != nil {
				stats.ComponentBytes += uintptr(col.len()) * recordByID(id).size
			}
		}
	}
	stats.MetadataBytes = uintptr(len(w.generations))*unsafe.Sizeof(uint32(0)) +
		uintptr(len(w.locations))*unsafe.Sizeof(entityLocation{})
	return stats
}

func (m MemoryStats) String() string {
	var b strings.Builder
	b.WriteString("=== ECS Memory Usage ===\n")
	fmt.Fprintf(&b, "Entities: %d\n", m.Entities)
	fmt.Fprintf(&b, "Archetypes: %d\n", m.Archetypes)
	fmt.Fprintf(&b, "Component data: %.1f KB\n", float64(m.ComponentBytes)/1024)
	fmt.Fprintf(&b, "Entity metadata: %.1f KB\n", float64(m.MetadataBytes)/1024)
	return b.String()
}

// LogMemoryUsage emits the memory report through the world's logger.
func (w *World) LogMemoryUsage() {
	stats := w.MemoryStats()
	w.log.Info().
		Int("entities", stats.Entities).
		Int("archetypes", stats.Archetypes).
		Uint64("component_bytes", uint64(stats.ComponentBytes)).
		Uint64("metadata_bytes", uint64(stats.MetadataBytes)).
		Msg("memory usage")
}
