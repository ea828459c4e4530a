// internal/session/session.go

// Package session turns editor gestures into canvas mutations and records
// each one in the history so it can be undone.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bethropolis/overlay/internal/canvas"
	"github.com/bethropolis/overlay/internal/clipboard"
	"github.com/bethropolis/overlay/internal/core/history"
	"github.com/bethropolis/overlay/internal/event"
	"github.com/bethropolis/overlay/internal/fonts"
	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/registry"
	"github.com/bethropolis/overlay/internal/types"
	"github.com/google/uuid"
)

var (
	// ErrUnknownFont is returned for font families outside the catalog.
	ErrUnknownFont = errors.New("unknown font family")
	// ErrInvalidFontSize is returned for sizes below 1.
	ErrInvalidFontSize = errors.New("font size must be at least 1")
)

// Placement margins for new labels, in canvas units.
const (
	placementMarginX = 100
	placementMarginY = 50
)

// Options configures a Session. Zero fields take defaults.
type Options struct {
	DefaultFont     string
	DefaultFontSize int
	DefaultText     string
	MaxHistory      int
	Fonts           *fonts.Catalog
	Clipboard       clipboard.Source
	Rand            *rand.Rand
}

// Session is one editing session: a canvas, its registry and its history.
// All methods must be called from the UI loop.
type Session struct {
	id       uuid.UUID
	canvas   *canvas.Canvas
	registry *registry.Registry
	history  *history.Manager
	events   *event.Manager
	ids      registry.IDGenerator
	fonts    *fonts.Catalog
	clip     clipboard.Source
	rng      *rand.Rand

	font        string
	fontSize    int
	defaultText string

	selected types.ObjectID
	created  []types.ObjectID // creation order, for selection cycling
}

// New creates a session editing c.
func New(c *canvas.Canvas, events *event.Manager, opts Options) *Session {
	if opts.Fonts == nil {
		opts.Fonts = fonts.NewCatalog(nil)
	}
	if opts.DefaultFont == "" {
		opts.DefaultFont = "Arial"
	}
	if opts.DefaultFontSize < 1 {
		opts.DefaultFontSize = 20
	}
	if opts.DefaultText == "" {
		opts.DefaultText = "New Text"
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &clipboard.Internal{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if events == nil {
		events = event.NewManager()
	}

	reg := registry.New(c)
	s := &Session{
		id:          uuid.New(),
		canvas:      c,
		registry:    reg,
		history:     history.NewManager(c, reg, events, opts.MaxHistory),
		events:      events,
		fonts:       opts.Fonts,
		clip:        opts.Clipboard,
		rng:         opts.Rand,
		font:        opts.DefaultFont,
		fontSize:    opts.DefaultFontSize,
		defaultText: opts.DefaultText,
	}
	if name, ok := s.fonts.Lookup(s.font); ok {
		s.font = name
	}
	s.history.OnDiscard(s.destroyDiscarded)
	logger.Infof("Session %s started on a %dx%d canvas", s.id, s.canvasWidth(), s.canvasHeight())
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Canvas returns the canvas being edited.
func (s *Session) Canvas() *canvas.Canvas { return s.canvas }

// History returns the session's history manager.
func (s *Session) History() *history.Manager { return s.history }

// Fonts returns the font catalog.
func (s *Session) Fonts() *fonts.Catalog { return s.fonts }

// Font returns the toolbar font family.
func (s *Session) Font() string { return s.font }

// FontSize returns the toolbar font size.
func (s *Session) FontSize() int { return s.fontSize }

func (s *Session) canvasWidth() int {
	w, _ := s.canvas.Size()
	return w
}

func (s *Session) canvasHeight() int {
	_, h := s.canvas.Size()
	return h
}

// AddText places a new label at a random spot with the toolbar font and
// selects it. An empty text uses the default label text.
func (s *Session) AddText(text string) (types.ObjectID, error) {
	if text == "" {
		text = s.defaultText
	}
	pos := types.Position{
		Left: float64(s.randomBelow(s.canvasWidth() - placementMarginX)),
		Top:  float64(s.randomBelow(s.canvasHeight() - placementMarginY)),
	}

	id := s.ids.Next()
	h := s.canvas.Add(canvas.NewText(text, s.font, float64(s.fontSize), pos))
	if err := s.history.OnCreate(id, h); err != nil {
		s.canvas.Destroy(h)
		return 0, fmt.Errorf("add text: %w", err)
	}
	s.created = append(s.created, id)

	s.events.Dispatch(event.TypeObjectAdded, event.ObjectAddedData{ID: id, Handle: h})
	s.selectID(id)
	s.canvas.RequestRender()
	logger.Debugf("Session: added #%d %q at (%.0f, %.0f)", id, text, pos.Left, pos.Top)
	return id, nil
}

func (s *Session) randomBelow(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// destroyDiscarded frees a label whose creation was undone and then dropped
// from the redo log. Its registry entry goes stale.
func (s *Session) destroyDiscarded(id types.ObjectID) {
	h, err := s.registry.Resolve(id)
	if err != nil {
		return
	}
	s.canvas.Destroy(h)
	for i, c := range s.created {
		if c == id {
			s.created = append(s.created[:i], s.created[i+1:]...)
			break
		}
	}
	logger.DebugTagf("session", "Destroyed discarded label #%d", id)
}

// PasteText adds a label holding the first line of the clipboard.
func (s *Session) PasteText() (types.ObjectID, error) {
	text, err := clipboard.LabelText(s.clip)
	if err != nil {
		return 0, fmt.Errorf("paste: %w", err)
	}
	return s.AddText(text)
}

// CopyText writes the selected label's text to the clipboard. It reports
// false when nothing is selected.
func (s *Session) CopyText() (bool, error) {
	_, h, ok := s.selection()
	if !ok {
		return false, nil
	}
	label, ok := s.canvas.Text(h)
	if !ok {
		return false, nil
	}
	if err := s.clip.WriteAll(label.Text); err != nil {
		return false, fmt.Errorf("copy: %w", err)
	}
	logger.Debugf("Session: copied %q", label.Text)
	return true, nil
}

// Undo reverts the most recent edit.
func (s *Session) Undo() history.Outcome {
	out := s.history.Undo()
	s.dropStaleSelection()
	return out
}

// Redo reapplies the most recently undone edit.
func (s *Session) Redo() history.Outcome {
	out := s.history.Redo()
	s.dropStaleSelection()
	return out
}

// CanUndo reports whether Undo would apply anything.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would apply anything.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }
