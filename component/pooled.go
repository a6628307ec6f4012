package component

// PooledComponent marks an entity as owned by the entity pool
// Tag is the origin category; Active distinguishes leased handles from
// handles sitting in the category queue
type PooledComponent struct {
	Tag    string
	Active bool
}
