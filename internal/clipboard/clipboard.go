// Package clipboard copies text to the system clipboard, falling back to
// an OSC52 terminal escape when no system clipboard is available.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/alimgiray/gfolio/pkg/logger"
)

// ErrUnavailable is returned by writers that cannot run on this machine.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// SystemWriter uses the operating system clipboard.
type SystemWriter struct{}

func (SystemWriter) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// OSC52Writer asks the terminal behind out to copy the text.
type OSC52Writer struct {
	out io.Writer
}

func NewOSC52Writer(out io.Writer) *OSC52Writer {
	return &OSC52Writer{out: out}
}

func (w *OSC52Writer) WriteText(text string) error {
	if w.out == nil {
		return ErrUnavailable
	}
	_, err := osc52.New(text).WriteTo(w.out)
	return err
}

// Copier tries its primary writer first and the fallback after it.
type Copier struct {
	primary  Writer
	fallback Writer
}

func NewCopier(primary, fallback Writer) *Copier {
	return &Copier{primary: primary, fallback: fallback}
}

// NewSystemCopier copies through the OS clipboard, or OSC52 on term.
func NewSystemCopier(term io.Writer) *Copier {
	return NewCopier(SystemWriter{}, NewOSC52Writer(term))
}

// Copy succeeds if either writer does.
func (c *Copier) Copy(text string) error {
	var primaryErr error
	if c.primary != nil {
		primaryErr = c.primary.WriteText(text)
		if primaryErr == nil {
			return nil
		}
		logger.WithError(primaryErr).Debugf("primary clipboard failed, trying fallback")
	}

	if c.fallback == nil {
		if primaryErr == nil {
			return ErrUnavailable
		}
		return primaryErr
	}
	if err := c.fallback.WriteText(text); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}
