package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// storeFor returns C's store, creating and registering it on first use.
func storeFor[C any](m *Manager) (*Store[C], typeID) {
	t := reflect.TypeOf((*C)(nil)).Elem()
	id := m.registry.idFor(t)
	if s := m.registry.stores[id]; s != nil {
		return s.(*Store[C]), id
	}
	s := newStore[C]()
	s.mgr = m
	m.registry.register(id, s)
	m.log.Debug("component store registered",
		zap.String("type", t.String()),
		zap.Uint16("id", uint16(id)),
		zap.Uint32("priority", s.pri))
	return s, id
}

// Add attaches a component to e and returns a pointer to the stored value,
// valid until the next structural change of C's store. When e already holds
// a C the existing instance is returned and v is ignored. The store for C
// is created on first use of the type. A nil or destroyed entity yields
// nil.
func Add[C any](e *Entity, v C) *C {
	if e == nil || e.mgr == nil {
		return nil
	}
	s, id := storeFor[C](e.mgr)
	if e.mask.test(id) {
		return s.Get(e.id)
	}
	c := s.add(e, v)
	e.mask.set(id)
	return c
}

// Get returns e's component of type C, or nil when absent.
func Get[C any](e *Entity) *C {
	if e == nil || e.mgr == nil {
		return nil
	}
	id, ok := e.mgr.registry.lookup(reflect.TypeOf((*C)(nil)).Elem())
	if !ok || !e.mask.test(id) {
		return nil
	}
	return e.mgr.registry.stores[id].(*Store[C]).Get(e.id)
}

// Remove detaches e's component of type C, firing its on-remove hook.
// No-op when absent.
func Remove[C any](e *Entity) {
	if e == nil || e.mgr == nil {
		return
	}
	s, id := storeFor[C](e.mgr)
	s.remove(e)
	e.mask.clear(id)
}

// Has reports whether e currently holds a component of type C.
func Has[C any](e *Entity) bool {
	if e == nil || e.mgr == nil {
		return false
	}
	id, ok := e.mgr.registry.lookup(reflect.TypeOf((*C)(nil)).Elem())
	return ok && e.mask.test(id)
}

// Has2 reports whether e holds both C1 and C2, checking in order and
// stopping at the first miss.
func Has2[C1, C2 any](e *Entity) bool {
	return Has[C1](e) && Has[C2](e)
}

// Has3 reports whether e holds C1, C2 and C3.
func Has3[C1, C2, C3 any](e *Entity) bool {
	return Has[C1](e) && Has[C2](e) && Has[C3](e)
}

// Register creates C's store ahead of first use so its slot in the update
// order is fixed up front. No-op when the store already exists.
func Register[C any](m *Manager) {
	storeFor[C](m)
}

// SnapshotStore returns a deep copy of C's store, or nil when no store
// exists. The copy is detached from the Manager: mutate its values through
// Each, then install it with ReplaceStore.
func SnapshotStore[C any](m *Manager) *Store[C] {
	id, ok := m.registry.lookup(reflect.TypeOf((*C)(nil)).Elem())
	if !ok {
		return nil
	}
	s := m.registry.stores[id]
	if s == nil {
		return nil
	}
	return s.(*Store[C]).clone()
}

// ReplaceStore swaps C's registered store for s wholesale. The old store is
// dropped without firing hooks; s re-enters the update order at its
// priority, behind any stores of equal priority. s must hold the same owner
// set as the store it replaces or entity bitsets go stale; that contract is
// the caller's, not the registry's. Nil s is a no-op.
func ReplaceStore[C any](m *Manager, s *Store[C]) {
	if s == nil {
		return
	}
	t := reflect.TypeOf((*C)(nil)).Elem()
	id := m.registry.idFor(t)
	m.registry.unregister(id)
	s.mgr = m
	s.cursor = 0
	m.registry.register(id, s)
	m.log.Debug("component store replaced", zap.String("type", t.String()))
}
