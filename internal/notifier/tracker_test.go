package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchTracker(t *testing.T) {
	tracker := NewDispatchTracker()

	assert.False(t, tracker.Sent("s1", "u1"))

	tracker.MarkSent("s1", "u1")
	assert.True(t, tracker.Sent("s1", "u1"))
	assert.False(t, tracker.Sent("s1", "u2"), "other users stay untracked")
	assert.False(t, tracker.Sent("s2", "u1"), "other sessions stay untracked")
	assert.Equal(t, 1, tracker.Size())

	tracker.Clear("s1", "u1")
	assert.False(t, tracker.Sent("s1", "u1"))
	assert.Equal(t, 0, tracker.Size())

	// Clearing an absent key is a no-op.
	tracker.Clear("s9", "u9")
	assert.Equal(t, 0, tracker.Size())
}
