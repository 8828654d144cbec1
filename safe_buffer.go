// Completion: 100% - Commit-once byte buffer complete
package bajo

import (
	"bytes"
	"fmt"
)

// safe_buffer.go is adapted from the teacher's executable-writer lifecycle
// guard of the same name: a bytes.Buffer wrapper that panics on a write
// after commit, so a bug that tries to keep appending to an already-
// finalized byte image fails loudly instead of silently producing a
// corrupt image. Script.Encode uses it to accumulate the final bytecode.
type SafeBuffer struct {
	buf       bytes.Buffer
	committed bool
	name      string
}

// NewSafeBuffer creates a new SafeBuffer with a name for debugging.
func NewSafeBuffer(name string) *SafeBuffer {
	return &SafeBuffer{name: name}
}

// Write appends bytes to the buffer. Panics if the buffer is committed.
func (sb *SafeBuffer) Write(p []byte) (n int, err error) {
	if sb.committed {
		panic(fmt.Sprintf("SafeBuffer(%s): write to committed buffer", sb.name))
	}
	return sb.buf.Write(p)
}

// Bytes returns the buffer contents. Safe to call after commit.
func (sb *SafeBuffer) Bytes() []byte { return sb.buf.Bytes() }

// Len returns the buffer length.
func (sb *SafeBuffer) Len() int { return sb.buf.Len() }

// Commit marks the buffer as complete; no further writes are allowed.
func (sb *SafeBuffer) Commit() {
	debugf("SafeBuffer(%s): committed with %d bytes", sb.name, sb.buf.Len())
	sb.committed = true
}

// IsCommitted reports whether the buffer has been committed.
func (sb *SafeBuffer) IsCommitted() bool { return sb.committed }
