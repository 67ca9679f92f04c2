package ecs

import "go.uber.org/zap"

// EntityID uniquely identifies an entity for the lifetime of its Manager.
// Ids are handed out strictly increasing starting at 1 and never reused, so
// a stale id can never resolve to a newer entity. 0 is never assigned.
type EntityID uint64

// Entity is a handle to a live entity: its id plus a bitset of attached
// component types. The component data itself lives in the per-type stores;
// the bitset mirrors store membership bit for bit, and every mutating
// operation keeps the two in lock-step.
type Entity struct {
	mgr  *Manager
	id   EntityID
	mask componentMask
}

// ID returns the entity's identifier.
func (e *Entity) ID() EntityID { return e.id }

// Destroy removes every component attached to the entity, firing on-remove
// hooks, then drops the entity from its Manager. The handle is detached
// afterwards: all further operations through it report absent. Safe to call
// on an already-destroyed handle.
func (e *Entity) Destroy() {
	if e == nil || e.mgr == nil {
		return
	}
	m := e.mgr
	m.entities.destroy(&m.registry, e)
	m.log.Debug("entity destroyed", zap.Uint64("id", uint64(e.id)))
}

// directory hands out entity ids and owns the id to record mapping.
type directory struct {
	lastID  EntityID
	records map[EntityID]*Entity
}

func newDirectory() directory {
	return directory{records: make(map[EntityID]*Entity, 256)}
}

func (d *directory) create(m *Manager) *Entity {
	d.lastID++
	e := &Entity{mgr: m, id: d.lastID}
	d.records[e.id] = e
	return e
}

func (d *directory) get(id EntityID) *Entity {
	return d.records[id]
}

// destroy clears the entity's data from every store its mask names, then
// deletes the record and detaches the handle. The record stays resolvable
// while on-remove hooks run.
func (d *directory) destroy(reg *typeRegistry, e *Entity) {
	e.mask.forEachSet(func(id typeID) {
		if s := reg.stores[id]; s != nil {
			s.remove(e)
		}
	})
	delete(d.records, e.id)
	e.mgr = nil
}
