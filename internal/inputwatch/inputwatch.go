// Package inputwatch polls the keyboard while strokes are being drawn
// so the operator can pause or abort without touching the pointer.
//
// The watcher owns the terminal: it switches stdin into raw mode so
// single keypresses arrive without a newline, and restores the
// previous state on Stop. The vector pipeline is unaware of this
// package; only the drawing loop in the CLI consumes its signals.
package inputwatch

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Signal is a keyboard event relevant to the drawing loop.
type Signal int

const (
	// SignalPause suspends drawing after the current gesture step.
	SignalPause Signal = iota
	// SignalResume continues a paused drawing run.
	SignalResume
	// SignalAbort stops the run; already-drawn strokes stay.
	SignalAbort
)

// Keys recognized by the watcher.
const (
	keyQuit      = 'q'
	keyPause     = 'p'
	keyInterrupt = 0x03 // Ctrl-C arrives as a raw byte in raw mode
)

// Watcher reads single keypresses in a goroutine and publishes
// signals on a channel. Use Start for the real terminal and
// StartWithReader in tests.
type Watcher struct {
	signals chan Signal
	restore func()
	paused  bool
}

// Start switches stdin to raw mode and begins polling it.
func Start() (*Watcher, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set terminal raw mode: %w", err)
	}

	w := StartWithReader(os.Stdin)
	w.restore = func() {
		_ = term.Restore(fd, oldState)
	}
	return w, nil
}

// StartWithReader begins polling an arbitrary byte stream. The
// goroutine exits when the reader returns an error or after an abort
// key.
func StartWithReader(r io.Reader) *Watcher {
	w := &Watcher{signals: make(chan Signal, 4)}
	go w.loop(r)
	return w
}

// Signals returns the channel the drawing loop selects on.
func (w *Watcher) Signals() <-chan Signal {
	return w.signals
}

// Stop restores the terminal state. The polling goroutine finishes on
// its next read; stdin reads cannot be interrupted portably, which is
// fine because Stop is called on the way out of the process.
func (w *Watcher) Stop() {
	if w.restore != nil {
		w.restore()
	}
}

func (w *Watcher) loop(r io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case keyQuit, 'Q', keyInterrupt:
			w.signals <- SignalAbort
			return
		case keyPause, 'P':
			if w.paused {
				w.signals <- SignalResume
			} else {
				w.signals <- SignalPause
			}
			w.paused = !w.paused
		}
	}
}
