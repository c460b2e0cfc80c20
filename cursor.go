package silo

import (
	"iter"

	"github.com/TheBitDrifter/silo/column"
)

func newCursor(query QueryNode, world World, fetch ...Component) *Cursor {
	return &Cursor{
		query: query,
		fetch: fetch,
		world: world,
	}
}

func (c *Cursor) Next() bool {
	if c.entityIndex < c.remaining {
		c.entityIndex++
		return true
	}
	return c.advance()
}

func (c *Cursor) advance() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.archetypeIndex < len(c.matchedArchs) {
		c.currentArchetype = c.matchedArchs[c.archetypeIndex]
		c.remaining = c.currentArchetype.Len()

		if c.entityIndex < c.remaining {
			c.entityIndex++
			return true
		}
		c.archetypeIndex++
		c.entityIndex = 0
	}
	c.Reset()
	return false
}

// Entity returns the entity at the cursor position.
func (c *Cursor) Entity() Entity {
	return c.currentArchetype.entities[c.entityIndex-1]
}

// Component reads one component record at the cursor position, nil when the
// current archetype does not carry the type.
func (c *Cursor) Component(comp Component) column.Record {
	store, err := c.currentArchetype.Store(comp)
	if err != nil {
		return nil
	}
	return store.Get(c.entityIndex - 1)
}

// Components returns the tuple at the cursor position, ordered exactly as the
// fetch types were passed, independent of the archetype's sorted order.
func (c *Cursor) Components() []column.Record {
	tuple := make([]column.Record, len(c.fetch))
	for i, comp := range c.fetch {
		tuple[i] = c.Component(comp)
	}
	return tuple
}

// Each iterates every match, yielding the entity and its fetch-ordered tuple.
func (c *Cursor) Each() iter.Seq2[Entity, []column.Record] {
	return func(yield func(Entity, []column.Record) bool) {
		c.initialize()

		for c.archetypeIndex < len(c.matchedArchs) {
			c.currentArchetype = c.matchedArchs[c.archetypeIndex]
			c.remaining = c.currentArchetype.Len()

			for c.entityIndex < c.remaining {
				c.entityIndex++
				if !yield(c.Entity(), c.Components()) {
					c.Reset()
					return
				}
			}
			c.entityIndex = 0
			c.archetypeIndex++
		}
		c.Reset()
	}
}

// initialize snapshots the matching archetypes and locks the world so that
// structural changes requested mid-iteration queue up until Reset.
func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.matchedArchs = make([]*Archetype, 0)

	for _, arch := range c.world.(*world).archetypes.asSlice {
		if c.query.Evaluate(arch, c.world) {
			c.matchedArchs = append(c.matchedArchs, arch)
		}
	}
	if len(c.matchedArchs) > 0 {
		c.archetypeIndex = 0
		c.currentArchetype = c.matchedArchs[0]
		c.remaining = c.currentArchetype.Len()
	}
	c.world.Lock()
	c.initialized = true
}

func (c *Cursor) Reset() {
	c.archetypeIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.matchedArchs = nil
	if c.initialized {
		c.initialized = false
		c.world.Unlock()
	}
}

func (c *Cursor) CurrentArchetype() *Archetype {
	return c.currentArchetype
}

func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	total := 0
	for _, arch := range c.matchedArchs {
		total += arch.Len()
	}
	return total
}
