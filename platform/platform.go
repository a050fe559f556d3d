// Package platform defines the narrow collaborator interface the
// rendering core consumes for everything it does not own: raw mode,
// alternate-screen lifecycle, terminal size, blocking writes, and
// key reads. The core never talks to a file descriptor directly —
// it is injected a Collaborator at construction, per the spec's
// "platform as injected collaborator, not a global singleton"
// redesign note.
package platform

import (
	"time"

	"github.com/finnbar/vtscreen/input"
)

// Collaborator is everything the renderer and Surface API need from
// the outside world.
//
// Grounded on original_source/src/backend.rs's Backend (init/cleanup/
// read_key_timeout/get_terminal_size) and the teacher's screen.go
// raw-mode lifecycle, generalized from a package-level singleton into
// an interface so it can be injected and faked in tests.
type Collaborator interface {
	// Init acquires raw mode and the alternate screen. Calling Init
	// twice without an intervening Cleanup returns
	// rendererr.ErrAlreadyInitialized.
	Init() error
	// Cleanup releases raw mode and the alternate screen. Calling
	// Cleanup before Init, or twice in a row, is a no-op success.
	Cleanup() error
	// Size reports the current terminal dimensions.
	Size() (rows, cols int, err error)
	// Write performs one blocking write of p, retrying on partial
	// writes until all bytes are sent or an error occurs.
	Write(p []byte) error
	// InputReady is a non-blocking readiness probe; it reports false
	// on a non-TTY input.
	InputReady() bool
	// ReadKey blocks for up to timeout (0 = block indefinitely) for
	// one key. ok is false on timeout.
	ReadKey(timeout time.Duration) (key input.Key, ok bool, err error)
}
