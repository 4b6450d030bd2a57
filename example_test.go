package stockroom_test

import (
	"fmt"

	"github.com/TheBitDrifter/stockroom"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic stockroom usage with entity creation and queries
func Example_basic() {
	// Create a world
	world := stockroom.Factory.NewWorld()

	// Define components
	position := stockroom.NewComponent[Position]()
	velocity := stockroom.NewComponent[Velocity]()
	name := stockroom.NewComponent[Name]()

	// Create entities
	entities, _ := world.CreateEntities(5)
	for _, e := range entities {
		position.Add(world, e)
	}
	entities, _ = world.CreateEntities(3)
	for _, e := range entities {
		world.AddComponents(e, position, velocity)
	}

	// Create one named entity
	player, _ := world.CreateEntity()
	world.AddComponents(player, position, velocity)
	name.Set(world, player, Name{Value: "Player"})
	position.Set(world, player, Position{X: 10, Y: 20})
	velocity.Set(world, player, Velocity{X: 1, Y: 2})

	// Query for all entities with position and velocity
	query := stockroom.Factory.NewQuery(position, velocity)
	cursor := stockroom.Factory.NewCursor(query, world)

	// Count matching entities
	matchCount := 0
	for cursor.Next() {
		matchCount++
	}
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	// Query for just the named entity
	named := stockroom.Factory.NewQuery(name)
	cursor = stockroom.Factory.NewCursor(named, world)

	// Process the named entity
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		nme := name.GetFromCursor(cursor)

		// Update position based on velocity
		pos.X += vel.X
		pos.Y += vel.Y

		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_queries shows include and exclude masks
func Example_queries() {
	world := stockroom.Factory.NewWorld()

	position := stockroom.NewComponent[Position]()
	velocity := stockroom.NewComponent[Velocity]()
	name := stockroom.NewComponent[Name]()

	// Create different entity types
	setups := [][]stockroom.ComponentType{
		{position},
		{position, velocity},
		{position, name},
		{position, velocity, name},
	}
	for _, components := range setups {
		entities, _ := world.CreateEntities(3)
		for _, e := range entities {
			world.AddComponents(e, components...)
		}
	}

	// Include query: entities with position AND velocity
	query := stockroom.Factory.NewQuery(position, velocity)
	cursor := stockroom.Factory.NewCursor(query, world)
	fmt.Printf("Include query matched %d entities\n", cursor.TotalMatched())
	cursor.Reset()

	// Exclude query: entities with position but NOT velocity
	query = stockroom.Factory.NewQuery(position).Exclude(velocity)
	cursor = stockroom.Factory.NewCursor(query, world)
	fmt.Printf("Exclude query matched %d entities\n", cursor.TotalMatched())
	cursor.Reset()

	// Exclude both velocity and name
	query = stockroom.Factory.NewQuery(position).Exclude(velocity, name)
	cursor = stockroom.Factory.NewCursor(query, world)
	fmt.Printf("Double exclude matched %d entities\n", cursor.TotalMatched())
	cursor.Reset()

	// Output:
	// Include query matched 6 entities
	// Exclude query matched 6 entities
	// Double exclude matched 3 entities
}

// Example_chunks shows whole-column iteration for vectorized inner loops
func Example_chunks() {
	world := stockroom.Factory.NewWorld()

	position := stockroom.NewComponent[Position]()
	velocity := stockroom.NewComponent[Velocity]()

	entities, _ := world.CreateEntities(4)
	for i, e := range entities {
		position.Add(world, e)
		velocity.Set(world, e, Velocity{X: float64(i)})
	}

	query := stockroom.Factory.NewQuery(position, velocity)
	chunks := stockroom.Factory.NewChunkCursor(query, world)

	for chunks.Next() {
		positions := position.SliceFrom(chunks)
		velocities := velocity.SliceFrom(chunks)
		for i := range positions {
			positions[i].X += velocities[i].X
		}
		fmt.Printf("Processed a chunk of %d rows\n", chunks.Count())
	}

	stats := world.MemoryStats()
	fmt.Printf("Entities: %d\n", stats.Entities)
	fmt.Printf("Archetypes: %d\n", stats.Archetypes)

	// Output:
	// Processed a chunk of 4 rows
	// Entities: 4
	// Archetypes: 3
}
