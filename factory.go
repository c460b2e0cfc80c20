package silo

import "github.com/TheBitDrifter/silo/column"

type factory struct{}

var Factory factory

func (f factory) NewWorld() World {
	return newWorld()
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, world World, fetch ...Component) *Cursor {
	return newCursor(query, world, fetch...)
}

// NewComponentType declares a component type from its stable id and ordered
// field schema.
func NewComponentType(id string, fields ...column.Field) Component {
	return column.NewElementType(id, fields...)
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
