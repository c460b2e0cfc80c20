package silo

import (
	"fmt"

	"github.com/TheBitDrifter/silo/column"
)

type operation struct {
	typ    operationType
	entity Entity
	comp   Component
	value  column.Record
	values Values
}

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAddComponent
	opRemoveComponent
)

type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[Entity]struct{}
	pendingMods    map[Entity]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		pendingMods:    make(map[Entity]int),
	}
}

func (w *world) processOperationQueue() error {
	if len(w.opQueue.createOps) == 0 &&
		len(w.opQueue.componentOps) == 0 &&
		len(w.opQueue.destroyOps) == 0 {
		return nil
	}

	// Process creates first
	for _, op := range w.opQueue.createOps {
		if err := w.AddEntityWithComponents(op.entity, op.values); err != nil {
			return fmt.Errorf("failed to process queued entity creation: %w", err)
		}
	}

	// Process component modifications
	for _, op := range w.opQueue.componentOps {
		switch op.typ {
		case opAddComponent:
			if err := w.AddComponent(op.entity, op.comp, op.value); err != nil {
				return fmt.Errorf("failed to add queued component: %w", err)
			}
		case opRemoveComponent:
			if err := w.RemoveComponent(op.entity, op.comp); err != nil {
				return fmt.Errorf("failed to remove queued component: %w", err)
			}
		}
	}

	// Process destroys last
	for _, op := range w.opQueue.destroyOps {
		if err := w.DestroyEntity(op.entity); err != nil {
			return fmt.Errorf("failed to process queued destroy: %w", err)
		}
	}

	// Clear all queues
	w.opQueue.createOps = w.opQueue.createOps[:0]
	w.opQueue.componentOps = w.opQueue.componentOps[:0]
	w.opQueue.destroyOps = w.opQueue.destroyOps[:0]
	clear(w.opQueue.pendingDestroy)
	clear(w.opQueue.pendingMods)
	return nil
}

func (q *opQueue) EnqueueDestroy(e Entity) {
	if _, exists := q.pendingDestroy[e]; exists {
		return
	}
	q.pendingDestroy[e] = struct{}{}

	// Cancel any pending component operations for this entity
	if idx, hasMods := q.pendingMods[e]; hasMods {
		// Mark operation as no-op by setting type to invalid
		q.componentOps[idx].typ = -1
		delete(q.pendingMods, e)
	}

	q.destroyOps = append(q.destroyOps, operation{
		typ:    opDestroy,
		entity: e,
	})
}

func (q *opQueue) EnqueueComponentOp(typ operationType, e Entity, comp Component, value column.Record) {
	// If entity is pending destroy, ignore component operations
	if _, isDestroyed := q.pendingDestroy[e]; isDestroyed {
		return
	}

	// If entity already has a pending component operation, update it in place
	if existingIdx, exists := q.pendingMods[e]; exists {
		existingOp := &q.componentOps[existingIdx]
		existingOp.typ = typ
		existingOp.comp = comp
		existingOp.value = value
		return
	}

	q.pendingMods[e] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: e,
		comp:   comp,
		value:  value,
	})
}
