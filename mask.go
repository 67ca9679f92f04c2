package ecs

import "math/bits"

// componentMask tracks which component types an entity holds, one bit per
// type id.
type componentMask [MaxComponentTypes / 64]uint64

func (m *componentMask) set(id typeID) {
	m[id>>6] |= 1 << (id & 63)
}

func (m *componentMask) clear(id typeID) {
	m[id>>6] &^= 1 << (id & 63)
}

func (m *componentMask) test(id typeID) bool {
	return m[id>>6]&(1<<(id&63)) != 0
}

// forEachSet calls fn for every set bit, lowest type id first.
func (m *componentMask) forEachSet(fn func(typeID)) {
	for w, word := range m {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			fn(typeID(w<<6 + b))
			word &^= 1 << b
		}
	}
}
