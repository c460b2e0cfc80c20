package silo

import (
	"fmt"
	"log/slog"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"

	"github.com/TheBitDrifter/silo/column"
)

var _ World = &world{}

// MaxComponentTypes caps the distinct component types per world. Type ids are
// interned into mask bits, so the cap follows the mask width.
const MaxComponentTypes = 64

type world struct {
	locked     bool
	registry   Cache[Component]
	nextEntity Entity
	byEntity   map[Entity]*Archetype
	archetypes *archetypes
	opQueue    opQueue
}

type archetypes struct {
	nextID           archetypeID
	asSlice          []*Archetype
	idsGroupedByMask map[mask.Mask]archetypeID
}

func newWorld() World {
	archetypes := &archetypes{
		nextID:           1,
		idsGroupedByMask: make(map[mask.Mask]archetypeID),
	}
	world := &world{
		registry:   FactoryNewCache[Component](MaxComponentTypes),
		nextEntity: 1,
		byEntity:   make(map[Entity]*Archetype),
		archetypes: archetypes,
		opQueue:    newOpQueue(),
	}
	return world
}

// CreateEntity hands out the next id. Ids start at 1 and are never reused
// within a world's lifetime.
func (w *world) CreateEntity() Entity {
	e := w.nextEntity
	w.nextEntity++
	return e
}

// RowIndexFor interns the component's type id into its mask bit, registering
// it on first sight. Exceeding MaxComponentTypes is a programming error and
// panics.
func (w *world) RowIndexFor(c Component) uint32 {
	if idx, ok := w.registry.GetIndex(c.ID()); ok {
		return uint32(idx)
	}
	idx, err := w.registry.Register(c.ID(), c)
	if err != nil {
		panic(fmt.Errorf("failed to register component type %q: %w", c.ID(), err))
	}
	slog.Debug(
		"New component type registered",
		slog.String("id", c.ID()),
		slog.Int("bit", idx),
	)
	return uint32(idx)
}

func (w *world) maskFor(types []Component) mask.Mask {
	var m mask.Mask
	for _, t := range types {
		m.Mark(w.RowIndexFor(t))
	}
	return m
}

// NewOrExistingArchetype canonicalizes the type list and returns the cached
// archetype for its signature, creating and caching it on first use.
// Archetypes are retained for the world's lifetime, even once empty.
func (w *world) NewOrExistingArchetype(types ...Component) (*Archetype, error) {
	canonical := canonicalize(types)
	msk := w.maskFor(canonical)
	if id, found := w.archetypes.idsGroupedByMask[msk]; found {
		return w.archetypes.asSlice[id-1], nil
	}
	created, err := newArchetype(w.archetypes.nextID, msk, canonical)
	if err != nil {
		return nil, err
	}
	w.archetypes.asSlice = append(w.archetypes.asSlice, created)
	w.archetypes.idsGroupedByMask[msk] = w.archetypes.nextID
	w.archetypes.nextID++
	slog.Debug(
		"New archetype created",
		slog.String("signature", created.Signature()),
		slog.Int("id", int(created.ID())),
	)
	return created, nil
}

func (w *world) AddEntityWithComponents(e Entity, values Values) error {
	if w.locked {
		return LockedWorldError{}
	}
	if _, exists := w.byEntity[e]; exists {
		return fmt.Errorf("entity %s already exists", e)
	}
	types := make([]Component, 0, len(values))
	for c := range values {
		types = append(types, c)
	}
	arch, err := w.NewOrExistingArchetype(types...)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}
	if err := arch.addEntity(e, values.byID()); err != nil {
		return fmt.Errorf("failed to add entity: %w", err)
	}
	w.byEntity[e] = arch
	return nil
}

// AddComponent attaches (or overwrites) one component. An entity without an
// archetype inserts directly into the single-component archetype. A type the
// entity already carries takes the same copy→merge→remove→insert path as a
// cross-archetype migration, just with target == origin.
func (w *world) AddComponent(e Entity, c Component, value column.Record) error {
	if w.locked {
		return LockedWorldError{}
	}
	origin, ok := w.byEntity[e]
	if !ok {
		arch, err := w.NewOrExistingArchetype(c)
		if err != nil {
			return fmt.Errorf("failed to get/create archetype: %w", err)
		}
		if err := arch.addEntity(e, map[string]column.Record{c.ID(): value}); err != nil {
			return fmt.Errorf("failed to add entity: %w", err)
		}
		w.byEntity[e] = arch
		return nil
	}

	types := iter_util.Collect(origin.Types())
	if !origin.Contains(c) {
		types = append(types, c)
	}
	target, err := w.NewOrExistingArchetype(types...)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}

	idx, ok := origin.IndexOf(e)
	if !ok {
		return fmt.Errorf("entity %s missing from its archetype", e)
	}
	values := origin.copyEntityTo(idx, target)
	values[c.ID()] = value

	if target == origin {
		// same-archetype overwrite; capture the old row for rollback before
		// the remove invalidates idx
		old := origin.copyEntityTo(idx, origin)
		origin.removeEntity(e)
		if err := origin.addEntity(e, values); err != nil {
			_ = origin.addEntity(e, old)
			return fmt.Errorf("failed to overwrite component: %w", err)
		}
		return nil
	}

	// insert into the target before removing from the origin, so a failed
	// insert leaves the entity where it was
	if err := target.addEntity(e, values); err != nil {
		return fmt.Errorf("failed to transfer entity: %w", err)
	}
	origin.removeEntity(e)
	w.byEntity[e] = target
	return nil
}

// RemoveComponent detaches one component, migrating the entity to the subset
// archetype. No-op when the entity is unknown or does not carry the type.
func (w *world) RemoveComponent(e Entity, c Component) error {
	if w.locked {
		return LockedWorldError{}
	}
	origin, ok := w.byEntity[e]
	if !ok || !origin.Contains(c) {
		return nil
	}

	remaining := make([]Component, 0, len(origin.types)-1)
	for t := range origin.Types() {
		if t.ID() != c.ID() {
			remaining = append(remaining, t)
		}
	}
	target, err := w.NewOrExistingArchetype(remaining...)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}

	idx, ok := origin.IndexOf(e)
	if !ok {
		return fmt.Errorf("entity %s missing from its archetype", e)
	}
	values := origin.copyEntityTo(idx, target)

	if err := target.addEntity(e, values); err != nil {
		return fmt.Errorf("failed to transfer entity: %w", err)
	}
	origin.removeEntity(e)
	w.byEntity[e] = target
	return nil
}

// DestroyEntity removes the entity from its archetype and drops the directory
// entry. The archetype itself is retained even if now empty. No-op when the
// entity is unknown.
func (w *world) DestroyEntity(e Entity) error {
	if w.locked {
		return LockedWorldError{}
	}
	arch, ok := w.byEntity[e]
	if !ok {
		return nil
	}
	arch.removeEntity(e)
	delete(w.byEntity, e)
	return nil
}

// GetComponent returns the stored record, or false when the entity is
// unknown, its archetype lacks the type, or its row cannot be resolved.
func (w *world) GetComponent(e Entity, c Component) (column.Record, bool) {
	arch, ok := w.byEntity[e]
	if !ok {
		return nil, false
	}
	idx, ok := arch.IndexOf(e)
	if !ok {
		return nil, false
	}
	rec, err := arch.ComponentAt(c, idx)
	if err != nil {
		return nil, false
	}
	return rec, true
}

// Query matches every archetype whose signature is a superset of the given
// types. Each result's component tuple follows the argument order here, not
// the archetype's internal sorted order.
func (w *world) Query(types ...Component) *Cursor {
	items := make([]interface{}, len(types))
	for i, t := range types {
		items[i] = t
	}
	node := newQuery().And(items...)
	return newCursor(node, w, types...)
}

func (w *world) ArchetypeFor(e Entity) (*Archetype, bool) {
	arch, ok := w.byEntity[e]
	return arch, ok
}

func (w *world) EntityCount() int {
	return len(w.byEntity)
}

func (w *world) Locked() bool {
	return w.locked
}

func (w *world) Lock() {
	w.locked = true
}

func (w *world) Unlock() {
	w.locked = false
	err := w.processOperationQueue()
	if err != nil {
		panic(err)
	}
}

func (w *world) EnqueueAddEntityWithComponents(e Entity, values Values) error {
	if !w.locked {
		if err := w.AddEntityWithComponents(e, values); err != nil {
			return fmt.Errorf("failed to add entity directly: %w", err)
		}
		return nil
	}
	w.opQueue.createOps = append(w.opQueue.createOps, operation{
		typ:    opCreate,
		entity: e,
		values: values,
	})
	return nil
}

func (w *world) EnqueueAddComponent(e Entity, c Component, value column.Record) error {
	if !w.locked {
		return w.AddComponent(e, c, value)
	}
	w.opQueue.EnqueueComponentOp(opAddComponent, e, c, value)
	return nil
}

func (w *world) EnqueueRemoveComponent(e Entity, c Component) error {
	if !w.locked {
		return w.RemoveComponent(e, c)
	}
	w.opQueue.EnqueueComponentOp(opRemoveComponent, e, c, nil)
	return nil
}

func (w *world) EnqueueDestroyEntity(e Entity) error {
	if !w.locked {
		return w.DestroyEntity(e)
	}
	w.opQueue.EnqueueDestroy(e)
	return nil
}
