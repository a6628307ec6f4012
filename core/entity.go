package core

// Entity is a generational handle to a simulation object.
// The low 32 bits hold the arena index, the high 32 bits the generation.
// Generation 0 is never issued, so the zero Entity is always invalid.
type Entity uint64

// EntityNone is the invalid entity handle
const EntityNone Entity = 0

// NewEntity packs an arena index and generation into a handle
func NewEntity(index uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot index of the handle
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the generation the handle was issued with
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Valid reports whether the handle could have been issued by an arena
func (e Entity) Valid() bool {
	return e.Generation() != 0
}
