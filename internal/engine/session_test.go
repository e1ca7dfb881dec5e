package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionTrackerRotatesAfterIdle(t *testing.T) {
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newSessionTracker(30 * time.Minute)
	tr.now = func() time.Time { return clock }

	first := tr.touch("u1")
	assert.NotEmpty(t, first.ID)

	// Activity inside the window keeps the session.
	clock = clock.Add(20 * time.Minute)
	assert.Equal(t, first.ID, tr.touch("u1").ID)

	// Going quiet past the timeout starts a fresh session.
	clock = clock.Add(31 * time.Minute)
	second := tr.touch("u1")
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, clock, second.StartedAt)
}

func TestSessionTrackerIsolatesLearners(t *testing.T) {
	tr := newSessionTracker(30 * time.Minute)
	assert.NotEqual(t, tr.touch("u1").ID, tr.touch("u2").ID)
}

func TestSessionAccuracy(t *testing.T) {
	s := &Session{}
	assert.Zero(t, s.Accuracy())

	s.Answered, s.Correct = 4, 3
	assert.InDelta(t, 0.75, s.Accuracy(), 1e-9)
}
