// internal/canvas/canvas.go

// Package canvas is the in-memory set of labels the editor draws. Render
// requests are forwarded to whoever draws it.
package canvas

import (
	"errors"
	"fmt"

	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/types"
)

var (
	// ErrUnknownHandle is returned for handles the canvas does not own.
	ErrUnknownHandle = errors.New("unknown canvas handle")
	// ErrValueKind is returned when a value does not match the property's kind.
	ErrValueKind = errors.New("value kind does not match property")
)

type entry struct {
	text     *Text
	attached bool
}

// Object is a snapshot of an attached label, in drawing order.
type Object struct {
	Handle types.Handle
	Text   Text
}

// Canvas is a fixed-size surface holding text labels. Detached labels keep
// their state so they can be attached again; destroyed labels are gone.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	lastHandle    types.Handle
	entries       map[types.Handle]*entry
	order         []types.Handle // attached handles, bottom to top
	active        types.Handle
	renders       int
	onRender      func()
}

// New creates an empty canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		width:   width,
		height:  height,
		entries: make(map[types.Handle]*entry),
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Resize changes the canvas dimensions and requests a render.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	logger.DebugTagf("canvas", "Resized to %dx%d", width, height)
	c.RequestRender()
}

// Add takes ownership of t, attaches it on top and returns its handle.
func (c *Canvas) Add(t *Text) types.Handle {
	c.lastHandle++
	h := c.lastHandle
	c.entries[h] = &entry{text: t, attached: true}
	c.order = append(c.order, h)
	logger.DebugTagf("canvas", "Added handle %d (%q)", h, t.Text)
	return h
}

// Detach removes the object from the visible set without destroying it.
func (c *Canvas) Detach(h types.Handle) bool {
	e, ok := c.entries[h]
	if !ok || !e.attached {
		return false
	}
	e.attached = false
	c.removeFromOrder(h)
	if c.active == h {
		c.active = 0
	}
	logger.DebugTagf("canvas", "Detached handle %d", h)
	return true
}

// Reattach puts a detached object back on top of the visible set.
func (c *Canvas) Reattach(h types.Handle) bool {
	e, ok := c.entries[h]
	if !ok || e.attached {
		return false
	}
	e.attached = true
	c.order = append(c.order, h)
	logger.DebugTagf("canvas", "Reattached handle %d", h)
	return true
}

// Destroy drops the object entirely. Registry entries pointing at it go stale.
func (c *Canvas) Destroy(h types.Handle) bool {
	e, ok := c.entries[h]
	if !ok {
		return false
	}
	if e.attached {
		c.removeFromOrder(h)
	}
	if c.active == h {
		c.active = 0
	}
	delete(c.entries, h)
	logger.DebugTagf("canvas", "Destroyed handle %d", h)
	return true
}

func (c *Canvas) removeFromOrder(h types.Handle) {
	for i, o := range c.order {
		if o == h {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Contains reports whether the canvas still owns h, attached or not.
func (c *Canvas) Contains(h types.Handle) bool {
	_, ok := c.entries[h]
	return ok
}

// Attached reports whether h is currently on the visible canvas.
func (c *Canvas) Attached(h types.Handle) bool {
	e, ok := c.entries[h]
	return ok && e.attached
}

// Property reads p from the object behind h.
func (c *Canvas) Property(h types.Handle, p types.Property) (types.Value, bool) {
	e, ok := c.entries[h]
	if !ok {
		return types.Value{}, false
	}
	return e.text.get(p)
}

// SetProperty writes v into p on the object behind h.
func (c *Canvas) SetProperty(h types.Handle, p types.Property, v types.Value) error {
	e, ok := c.entries[h]
	if !ok {
		return fmt.Errorf("set %v on handle %d: %w", p, h, ErrUnknownHandle)
	}
	if !v.Fits(p) {
		return fmt.Errorf("set %v to %v: %w", p, v, ErrValueKind)
	}
	e.text.set(p, v)
	return nil
}

// Text returns a copy of the label behind h.
func (c *Canvas) Text(h types.Handle) (Text, bool) {
	e, ok := c.entries[h]
	if !ok {
		return Text{}, false
	}
	return *e.text, true
}

// Objects returns copies of the attached labels, bottom to top.
func (c *Canvas) Objects() []Object {
	objs := make([]Object, 0, len(c.order))
	for _, h := range c.order {
		objs = append(objs, Object{Handle: h, Text: *c.entries[h].text})
	}
	return objs
}

// SetActive marks h as the active selection. Zero or a detached handle clears it.
func (c *Canvas) SetActive(h types.Handle) {
	if !c.Attached(h) {
		h = 0
	}
	c.active = h
}

// Active returns the active handle, if any.
func (c *Canvas) Active() (types.Handle, bool) {
	return c.active, c.active != 0
}

// OnRender sets the hook run on every render request.
func (c *Canvas) OnRender(fn func()) {
	c.onRender = fn
}

// RequestRender asks for the canvas to be redrawn.
func (c *Canvas) RequestRender() {
	c.renders++
	if c.onRender != nil {
		c.onRender()
	}
}

// RenderCount returns how many renders have been requested.
func (c *Canvas) RenderCount() int {
	return c.renders
}
