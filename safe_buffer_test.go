package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeBufferWriteThenCommit(t *testing.T) {
	sb := NewSafeBuffer("t")
	sb.Write([]byte{1, 2, 3})
	assert.False(t, sb.IsCommitted())
	sb.Commit()
	assert.True(t, sb.IsCommitted())
	assert.Equal(t, []byte{1, 2, 3}, sb.Bytes())
}

func TestSafeBufferPanicsOnWriteAfterCommit(t *testing.T) {
	sb := NewSafeBuffer("t")
	sb.Commit()
	assert.Panics(t, func() { sb.Write([]byte{1}) })
}
