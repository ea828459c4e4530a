// internal/clipboard/clipboard.go

// Package clipboard supplies text for "paste as new label" and receives
// copied label text.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/overlay/internal/logger"
)

// ErrEmpty is returned when the clipboard holds no usable text.
var ErrEmpty = errors.New("clipboard is empty")

// MaxLabelRunes caps the length of a pasted label.
const MaxLabelRunes = 80

// Source reads and writes text on a clipboard.
type Source interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System reads the operating system clipboard.
type System struct{}

// ReadAll returns the system clipboard contents.
func (System) ReadAll() (string, error) {
	return sysclip.ReadAll()
}

// WriteAll replaces the system clipboard contents.
func (System) WriteAll(text string) error {
	return sysclip.WriteAll(text)
}

// Available reports whether a system clipboard utility can be used.
func Available() bool {
	return !sysclip.Unsupported
}

// Internal is an in-process clipboard, used when the system one is off or missing.
type Internal struct {
	text string
}

// WriteAll replaces the internal clipboard contents.
func (c *Internal) WriteAll(text string) error {
	c.text = text
	return nil
}

// ReadAll returns the internal clipboard contents.
func (c *Internal) ReadAll() (string, error) {
	return c.text, nil
}

// New picks the system clipboard when requested and supported.
func New(useSystem bool) Source {
	if useSystem && Available() {
		logger.Debugf("Clipboard: using system clipboard")
		return System{}
	}
	if useSystem {
		logger.Warnf("Clipboard: system clipboard unsupported, falling back to internal")
	}
	return &Internal{}
}

// LabelText reads src and returns the first non-blank line, trimmed and
// capped at MaxLabelRunes.
func LabelText(src Source) (string, error) {
	raw, err := src.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r := []rune(line); len(r) > MaxLabelRunes {
			line = string(r[:MaxLabelRunes])
		}
		return line, nil
	}
	return "", ErrEmpty
}
