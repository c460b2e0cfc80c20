package silo

import (
	"github.com/TheBitDrifter/silo/column"
)

// Component represents a data attribute/state that can be attached to entities.
// Components can be used to create queries for entities.
type Component interface {
	column.ElementType
}

// Values carries caller-provided component instances keyed by their type.
type Values map[Component]column.Record

// byID flattens a value map onto stable type identifiers, which is how
// archetypes key their stores.
func (v Values) byID() map[string]column.Record {
	out := make(map[string]column.Record, len(v))
	for c, rec := range v {
		out[c.ID()] = rec
	}
	return out
}
