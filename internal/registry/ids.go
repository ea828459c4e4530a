// internal/registry/ids.go
package registry

import "github.com/bethropolis/overlay/internal/types"

// IDGenerator hands out monotonically increasing object ids starting at 1.
type IDGenerator struct {
	last types.ObjectID
}

// Next returns a new, never before issued id.
func (g *IDGenerator) Next() types.ObjectID {
	g.last++
	return g.last
}

// Last returns the most recently issued id, or 0.
func (g *IDGenerator) Last() types.ObjectID {
	return g.last
}
