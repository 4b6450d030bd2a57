package stockroom

type factory struct{}

var Factory factory

func (f factory) NewWorld(opts ...Option) *World {
	return newWorld(opts...)
}

func (f factory) NewQuery(components ...ComponentType) *Query {
	return newQuery(components...)
}

func (f factory) NewCursor(query *Query, world *World) *Cursor {
	return newCursor(query, world)
}

func (f factory) NewChunkCursor(query *Query, world *World) *ChunkCursor {
	return newChunkCursor(query, world)
}
