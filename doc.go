/*
Package silo provides archetype-based entity/component storage for games and
simulations.

Silo stores each component's fields in dense, type-homogeneous columns and
keeps entities with the same component types packed together for optimal cache
utilization. Component types are described by runtime schemas rather than Go
struct types, which makes the engine usable as a storage backend for systems
whose component layouts arrive at runtime (scripting layers, network
protocols, editors).

Core Concepts:

  - Entity: A unique identifier that represents a game object.
  - Component: A schema-described record kind attachable to entities.
  - Archetype: A collection of entities sharing the same component types.
  - Query: A way to find entities with specific component combinations.

Basic Usage:

	// Define components
	position := silo.NewComponentType("position",
		column.Field{Name: "x", Kind: column.Float64},
		column.Field{Name: "y", Kind: column.Float64},
	)
	health := silo.NewComponentType("health",
		column.Field{Name: "hp", Kind: column.Int32},
	)

	// Create a world and an entity
	world := silo.Factory.NewWorld()
	player := world.CreateEntity()
	world.AddEntityWithComponents(player, silo.Values{
		position: {"x": 5, "y": 7},
		health:   {"hp": 80},
	})

	// Query entities and process them
	cursor := world.Query(position, health)
	for cursor.Next() {
		pos := cursor.Component(position)
		fmt.Println(cursor.Entity(), pos["x"], pos["y"])
	}

Structural changes (adding or removing component types) migrate entities
between archetypes; removal uses swap-and-pop compaction, so iteration order
is not creation order. A world assumes a single logical writer and performs no
internal locking; the Lock/Unlock and Enqueue methods defer structural changes
requested while a cursor is iterating.
*/
package silo
