package silo

import "github.com/TheBitDrifter/silo/column"

// ComponentAccessor binds a component type for convenient reads through
// cursors and worlds.
type ComponentAccessor struct {
	Component
}

// NewAccessor wraps a component type in an accessor.
func NewAccessor(c Component) ComponentAccessor {
	return ComponentAccessor{Component: c}
}

// GetFromCursor retrieves the component record for the entity at the cursor
// position.
func (a ComponentAccessor) GetFromCursor(cursor *Cursor) column.Record {
	return cursor.Component(a.Component)
}

// GetFromCursorSafe safely retrieves the record, checking if the component
// exists in the archetype at the cursor position.
func (a ComponentAccessor) GetFromCursorSafe(cursor *Cursor) (bool, column.Record) {
	if !a.CheckCursor(cursor) {
		return false, nil
	}
	return true, a.GetFromCursor(cursor)
}

// CheckCursor determines if the component exists in the archetype at the
// cursor position.
func (a ComponentAccessor) CheckCursor(cursor *Cursor) bool {
	return cursor.CurrentArchetype().Contains(a.Component)
}

// GetFromEntity retrieves the component record for the specified entity.
func (a ComponentAccessor) GetFromEntity(world World, e Entity) (column.Record, bool) {
	return world.GetComponent(e, a.Component)
}
