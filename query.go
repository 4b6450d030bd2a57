package stockroom

import (
	"github.com/TheBitDrifter/mask"
)

// Query selects archetypes whose signature is a superset of the include mask
// and disjoint from the exclude mask. Queries are cheap value builders; they
// only touch the world when a cursor walks them.
type Query struct {
	include mask.Mask
	exclude mask.Mask
}

func newQuery(components ...ComponentType) *Query {
	q := &Query{}
	return q.And(components...)
}

// And adds the given component types to the include mask.
func (q *Query) And(components ...ComponentType) *Query {
	for _, c := range components {
		q.include.Mark(uint32(c.ID()))
	}
	return q
}

// Exclude adds the given component types to the exclude mask. Archetypes
// carrying any of them are skipped even when the include mask matches.
func (q *Query) Exclude(components ...ComponentType) *Query {
	for _, c := range components {
		q.exclude.Mark(uint32(c.ID()))
	}
	return q
}

func (q *Query) matches(a *archetype) bool {
	return a.signature.ContainsAll(q.include) && a.signature.ContainsNone(q.exclude)
}
