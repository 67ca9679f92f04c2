package ecs

import (
	"math"
	"slices"
)

// DefaultPriority is the update-pass priority of component types that do
// not implement Prioritized.
const DefaultPriority uint32 = math.MaxUint8

// Updater is implemented by component types that run per-entity logic on
// each Step. The receiver is the stored component itself; e is its owning
// entity. Types without it hold inert data.
type Updater interface {
	Update(e *Entity)
}

// AddHook is implemented by component types that want a callback right
// after an instance is added to an entity. The entity's membership bit for
// the type is not set yet when the hook runs.
type AddHook interface {
	OnAdd(e *Entity)
}

// RemoveHook is implemented by component types that want a callback right
// before an instance is removed, including during entity destruction.
type RemoveHook interface {
	OnRemove(e *Entity)
}

// Prioritized is implemented by component types that declare an update-pass
// priority. Higher runs earlier; equal priorities run in registration
// order. The value is read once when the type's store is created and must
// be constant.
type Prioritized interface {
	Priority() uint32
}

// anyStore is the type-erased handle the registry keeps per component type.
type anyStore interface {
	remove(e *Entity)
	manage()
	priority() uint32
}

// Store holds every instance of one component type in two index-aligned
// slices: components[i] belongs to owners[i], and an owner appears at most
// once. Lookup is a linear scan, a deliberate trade-off for the small
// per-type populations a store is expected to hold.
type Store[C any] struct {
	mgr        *Manager
	components []C
	owners     []EntityID
	cursor     int
	pri        uint32
	hasUpdate  bool
	hasAdd     bool
	hasRemove  bool
}

// newStore resolves C's hooks and priority once, from the method set of *C.
func newStore[C any]() *Store[C] {
	s := &Store[C]{pri: DefaultPriority}
	var zero C
	if p, ok := any(&zero).(Prioritized); ok {
		s.pri = p.Priority()
	}
	_, s.hasUpdate = any(&zero).(Updater)
	_, s.hasAdd = any(&zero).(AddHook)
	_, s.hasRemove = any(&zero).(RemoveHook)
	return s
}

// Len returns the number of stored components.
func (s *Store[C]) Len() int { return len(s.components) }

// Get returns the component owned by id, or nil.
func (s *Store[C]) Get(id EntityID) *C {
	for i, owner := range s.owners {
		if owner == id {
			return &s.components[i]
		}
	}
	return nil
}

// Each calls fn for every component in storage order. fn may mutate
// component values but must not add or remove entries.
func (s *Store[C]) Each(fn func(EntityID, *C)) {
	for i := range s.components {
		fn(s.owners[i], &s.components[i])
	}
}

// add appends v for e and fires the on-add hook. When e already owns a
// component the stored one is returned and v is dropped.
func (s *Store[C]) add(e *Entity, v C) *C {
	if c := s.Get(e.id); c != nil {
		return c
	}
	s.components = append(s.components, v)
	s.owners = append(s.owners, e.id)
	c := &s.components[len(s.components)-1]
	if s.hasAdd {
		any(c).(AddHook).OnAdd(e)
	}
	return c
}

// remove erases e's component, if present, by shifting later entries down.
// Order is preserved, never swap-removed. A removal at or before the
// iteration cursor pulls the cursor back one so an in-progress pass neither
// skips nor revisits an element; removing index 0 under a cursor of 0 parks
// the cursor at -1, which the loop increment brings back to 0.
func (s *Store[C]) remove(e *Entity) {
	for i, owner := range s.owners {
		if owner != e.id {
			continue
		}
		if i <= s.cursor {
			s.cursor--
		}
		if s.hasRemove {
			any(&s.components[i]).(RemoveHook).OnRemove(e)
		}
		s.components = slices.Delete(s.components, i, i+1)
		s.owners = slices.Delete(s.owners, i, i+1)
		return
	}
}

// manage runs the update hook over every component. The loop variable is
// the stored cursor, not a local, so removals triggered from inside a hook
// adjust the live position. Owners that no longer resolve are skipped.
func (s *Store[C]) manage() {
	if !s.hasUpdate {
		return
	}
	for s.cursor = 0; s.cursor < len(s.components); s.cursor++ {
		e := s.mgr.GetByID(s.owners[s.cursor])
		if e == nil {
			continue
		}
		any(&s.components[s.cursor]).(Updater).Update(e)
	}
}

func (s *Store[C]) priority() uint32 { return s.pri }

// clone deep-copies the slice pair. Element copies are value copies, deep
// for the plain data types components are expected to be.
func (s *Store[C]) clone() *Store[C] {
	n := newStore[C]()
	n.components = slices.Clone(s.components)
	n.owners = slices.Clone(s.owners)
	return n
}
