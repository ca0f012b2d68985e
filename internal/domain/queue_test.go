package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueStatusValues(t *testing.T) {
	assert.Equal(t, "waiting", string(QueueStatusWaiting))
	assert.Equal(t, "in-progress", string(QueueStatusInProgress))
	assert.Equal(t, "completed", string(QueueStatusCompleted))
	assert.Equal(t, "no-show", string(QueueStatusNoShow))
}

func TestQueueEntry_IsFinished(t *testing.T) {
	assert.False(t, (&QueueEntry{Status: QueueStatusWaiting}).IsFinished())
	assert.False(t, (&QueueEntry{Status: QueueStatusInProgress}).IsFinished())
	assert.True(t, (&QueueEntry{Status: QueueStatusCompleted}).IsFinished())
	assert.True(t, (&QueueEntry{Status: QueueStatusNoShow}).IsFinished())
}
