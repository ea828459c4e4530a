// internal/registry/registry.go

// Package registry maps session object ids to canvas handles.
package registry

import (
	"errors"
	"fmt"

	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/types"
)

var (
	// ErrDuplicateID is returned when an id is registered twice.
	ErrDuplicateID = errors.New("duplicate object id")
	// ErrNotFound is returned when an id does not resolve to a live object.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidID is returned for the reserved zero id.
	ErrInvalidID = errors.New("invalid object id")
)

// LiveSet reports whether a handle still refers to an object the canvas owns.
type LiveSet interface {
	Contains(h types.Handle) bool
}

// Registry is a non-owning id -> handle lookup. Entries are never removed;
// an entry whose handle the LiveSet no longer contains is stale and does
// not resolve.
//
// Registry is not safe for concurrent use.
type Registry struct {
	handles map[types.ObjectID]types.Handle
	live    LiveSet
}

// New creates a registry. A nil live set treats every registered handle as live.
func New(live LiveSet) *Registry {
	return &Registry{
		handles: make(map[types.ObjectID]types.Handle),
		live:    live,
	}
}

// Register associates a freshly created id with its handle.
func (r *Registry) Register(id types.ObjectID, h types.Handle) error {
	if id == 0 {
		return fmt.Errorf("register: %w: zero id", ErrInvalidID)
	}
	if existing, ok := r.handles[id]; ok {
		logger.Errorf("Registry: id %d already mapped to handle %d", id, existing)
		return fmt.Errorf("register id %d: %w", id, ErrDuplicateID)
	}
	r.handles[id] = h
	logger.DebugTagf("registry", "Registered id %d -> handle %d", id, h)
	return nil
}

// Resolve looks up the live handle for id.
func (r *Registry) Resolve(id types.ObjectID) (types.Handle, error) {
	h, ok := r.handles[id]
	if !ok {
		return 0, fmt.Errorf("resolve id %d: %w", id, ErrNotFound)
	}
	if r.live != nil && !r.live.Contains(h) {
		return 0, fmt.Errorf("resolve id %d (stale handle %d): %w", id, h, ErrNotFound)
	}
	return h, nil
}

// Len returns the number of registered ids, stale entries included.
func (r *Registry) Len() int {
	return len(r.handles)
}
