/*
Package stockroom is an in-process Entity-Component-System (ECS) data store.

Stockroom maps opaque entity handles to heterogeneous sets of plain-data
components and keeps the components in cache-friendly columnar form. Entities
sharing the exact same component set live together in one archetype, so bulk
iteration over a component combination walks contiguous arrays.

Core Concepts:

  - Entity: An (ID, Generation) handle referring to one row of some archetype.
  - Component: A plain-data value attached to an entity, keyed by its Go type.
  - Archetype: The unique row container for one specific set of component types.
  - Query: An include/exclude mask pair selecting a subset of archetypes.

Basic Usage:

	// Create a world
	world := stockroom.Factory.NewWorld()

	// Define components
	position := stockroom.NewComponent[Position]()
	velocity := stockroom.NewComponent[Velocity]()

	// Create entities
	entities, _ := world.CreateEntities(100)
	for _, e := range entities {
		position.Set(world, e, Position{X: 1})
		velocity.Add(world, e)
	}

	// Query entities and process them
	query := stockroom.Factory.NewQuery(position, velocity)
	cursor := stockroom.Factory.NewCursor(query, world)

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

All public operations serialize through a single world lock. While a cursor
walk is live the world additionally rejects structural mutation, so a cursor
can never observe a half-migrated row.
*/
package stockroom
