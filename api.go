package silo

import (
	"github.com/TheBitDrifter/silo/column"
)

type World interface {
	CreateEntity() Entity
	AddEntityWithComponents(Entity, Values) error
	AddComponent(Entity, Component, column.Record) error
	RemoveComponent(Entity, Component) error
	DestroyEntity(Entity) error
	GetComponent(Entity, Component) (column.Record, bool)
	Query(...Component) *Cursor

	NewOrExistingArchetype(...Component) (*Archetype, error)
	ArchetypeFor(Entity) (*Archetype, bool)
	RowIndexFor(Component) uint32
	EntityCount() int

	EnqueueAddEntityWithComponents(Entity, Values) error
	EnqueueAddComponent(Entity, Component, column.Record) error
	EnqueueRemoveComponent(Entity, Component) error
	EnqueueDestroyEntity(Entity) error
	Locked() bool
	Lock()
	Unlock()
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(archetype *Archetype, world World) bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
}

// Warning: internal dependencies abound!
type Cursor struct {
	// The query to filter archetypes
	query QueryNode

	// The fetch order for component tuples
	fetch []Component

	// The world to iterate over
	world World

	// Current iteration state
	currentArchetype *Archetype
	archetypeIndex   int
	entityIndex      int
	remaining        int

	// Initialization state
	initialized  bool
	matchedArchs []*Archetype
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
