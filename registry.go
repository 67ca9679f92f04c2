package ecs

import (
	"fmt"
	"reflect"
	"slices"
)

// MaxComponentTypes caps how many distinct component types a Manager can
// ever see. Type ids are dense and never reclaimed, so running out is a
// programming error, not a runtime condition.
const MaxComponentTypes = 256

type typeID uint16

// typeRegistry assigns dense ids to component types and owns the erased
// store handles, both in a direct id-indexed table and in a list kept in
// descending priority order for the update pass.
type typeRegistry struct {
	ids     map[reflect.Type]typeID
	stores  [MaxComponentTypes]anyStore
	ordered []anyStore
}

func newTypeRegistry() typeRegistry {
	return typeRegistry{
		ids:     make(map[reflect.Type]typeID, 16),
		ordered: make([]anyStore, 0, 16),
	}
}

// idFor returns the id for t, assigning the next free one on first sight.
// An id sticks to its type for the life of the registry, surviving store
// replacement.
func (r *typeRegistry) idFor(t reflect.Type) typeID {
	if id, ok := r.ids[t]; ok {
		return id
	}
	if len(r.ids) >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: too many component types (max %d)", MaxComponentTypes))
	}
	id := typeID(len(r.ids))
	r.ids[t] = id
	return id
}

// lookup returns the id for t without assigning one.
func (r *typeRegistry) lookup(t reflect.Type) (typeID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// register installs s under id unless a store is already present. The
// priority list insert lands before the first entry with strictly lower
// priority, so equal priorities keep their registration order.
func (r *typeRegistry) register(id typeID, s anyStore) {
	if r.stores[id] != nil {
		return
	}
	r.stores[id] = s
	i := 0
	for ; i < len(r.ordered); i++ {
		if r.ordered[i].priority() < s.priority() {
			break
		}
	}
	r.ordered = slices.Insert(r.ordered, i, s)
}

// unregister drops the store for id from both the table and the priority
// list. No per-component hooks fire; the store is simply released.
func (r *typeRegistry) unregister(id typeID) {
	s := r.stores[id]
	if s == nil {
		return
	}
	for i, h := range r.ordered {
		if h == s {
			r.ordered = slices.Delete(r.ordered, i, i+1)
			break
		}
	}
	r.stores[id] = nil
}

// manageAll runs every store's update pass in priority order.
func (r *typeRegistry) manageAll() {
	for i := 0; i < len(r.ordered); i++ {
		r.ordered[i].manage()
	}
}
