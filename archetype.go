package silo

import (
	"iter"
	"sort"
	"strings"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/silo/column"
)

type archetypeID uint32

var _ mask.Maskable = &Archetype{}

// Archetype groups every entity sharing an identical set of component types.
// It owns one column store per type in its signature, a dense entity list and
// an entity→row index, kept perfectly synchronized: for every entity e,
// rows[e] is the unique i with entities[i] == e, and row i of every store
// holds e's data.
type Archetype struct {
	id       archetypeID
	msk      mask.Mask
	types    []Component
	sig      string
	stores   map[string]*column.Store
	entities []Entity
	rows     map[Entity]int
}

// canonicalize sorts a component list by type id and drops duplicates, so
// that insertion order never affects archetype identity.
func canonicalize(types []Component) []Component {
	sorted := make([]Component, len(types))
	copy(sorted, types)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID() < sorted[j].ID()
	})
	out := sorted[:0]
	for i, t := range sorted {
		if i > 0 && t.ID() == sorted[i-1].ID() {
			continue
		}
		out = append(out, t)
	}
	return out
}

func signatureOf(canonical []Component) string {
	ids := make([]string, len(canonical))
	for i, t := range canonical {
		ids[i] = t.ID()
	}
	return strings.Join(ids, "|")
}

// newArchetype builds stores for an already-canonicalized type list.
func newArchetype(id archetypeID, msk mask.Mask, canonical []Component) (*Archetype, error) {
	stores := make(map[string]*column.Store, len(canonical))
	for _, t := range canonical {
		store, err := column.NewStoreBuilder().
			WithSchema(t.Schema()).
			WithCapacity(Config.storeCapacity).
			WithEvents(Config.storeEvents).
			Build()
		if err != nil {
			return nil, err
		}
		stores[t.ID()] = store
	}
	return &Archetype{
		id:     id,
		msk:    msk,
		types:  canonical,
		sig:    signatureOf(canonical),
		stores: stores,
		rows:   make(map[Entity]int),
	}, nil
}

func (a *Archetype) ID() uint32 {
	return uint32(a.id)
}

// Signature is the canonical string key: sorted type ids joined by "|".
func (a *Archetype) Signature() string {
	return a.sig
}

func (a *Archetype) Mask() mask.Mask {
	return a.msk
}

func (a *Archetype) Len() int {
	return len(a.entities)
}

func (a *Archetype) IndexOf(e Entity) (int, bool) {
	idx, ok := a.rows[e]
	return idx, ok
}

func (a *Archetype) Contains(c Component) bool {
	return a.ContainsTypeID(c.ID())
}

func (a *Archetype) ContainsTypeID(id string) bool {
	_, ok := a.stores[id]
	return ok
}

// Types yields the archetype's component types in canonical order.
func (a *Archetype) Types() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for _, t := range a.types {
			if !yield(t) {
				return
			}
		}
	}
}

// Store returns the column store backing the given component type.
func (a *Archetype) Store(c Component) (*column.Store, error) {
	store, ok := a.stores[c.ID()]
	if !ok {
		return nil, ComponentNotFoundError{Component: c}
	}
	return store, nil
}

// ComponentAt reads one component record at a row position.
func (a *Archetype) ComponentAt(c Component, index int) (column.Record, error) {
	store, ok := a.stores[c.ID()]
	if !ok {
		return nil, ComponentNotFoundError{Component: c}
	}
	return store.Get(index), nil
}

// Each visits every occupied row in current physical order. Swap-removal
// reorders rows, so this is not creation order.
func (a *Archetype) Each() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		for i, e := range a.entities {
			if !yield(i, e) {
				return
			}
		}
	}
}

// addEntity appends the entity at the next free row, writing the provided
// value for every owned type and a default-constructed record for the rest.
func (a *Archetype) addEntity(e Entity, values map[string]column.Record) error {
	row := len(a.entities)
	for i, t := range a.types {
		if err := a.stores[t.ID()].Set(row, values[t.ID()]); err != nil {
			// roll the already-written stores back to keep sizes aligned
			// with the entity list
			for _, prev := range a.types[:i] {
				store := a.stores[prev.ID()]
				if store.Len() == row+1 {
					_ = store.SwapRemove(row)
				}
			}
			return err
		}
	}
	a.entities = append(a.entities, e)
	a.rows[e] = row
	return nil
}

// removeEntity swap-removes the entity's row across the entity list and every
// store. No-op if the entity is absent. The row index relocation happens
// before the store swap-removes, which assume the same semantics.
func (a *Archetype) removeEntity(e Entity) {
	idx, ok := a.rows[e]
	if !ok {
		return
	}
	last := len(a.entities) - 1
	if idx != last {
		moved := a.entities[last]
		a.entities[idx] = moved
		a.rows[moved] = idx
	}
	a.entities = a.entities[:last]
	delete(a.rows, e)
	for _, store := range a.stores {
		_ = store.SwapRemove(idx)
	}
}

// copyEntityTo builds the typeId→value map migration needs: existing values
// for types present in both archetypes, default-constructed records for types
// only the target owns.
func (a *Archetype) copyEntityTo(srcIdx int, target *Archetype) map[string]column.Record {
	values := make(map[string]column.Record, len(target.types))
	for _, t := range target.types {
		if store, ok := a.stores[t.ID()]; ok {
			values[t.ID()] = store.Get(srcIdx)
		} else {
			values[t.ID()] = t.Schema().Zero()
		}
	}
	return values
}
