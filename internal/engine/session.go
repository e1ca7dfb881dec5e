package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session tracks one learner's current run of turns. Sessions are
// process-local; their summary lands in progress and interest records
// as answers are recorded.
type Session struct {
	ID           string
	UserID       string
	StartedAt    time.Time
	LastActivity time.Time
	Answered     int
	Correct      int
}

// Accuracy is the running accuracy within this session.
func (s *Session) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// sessionTracker hands out sessions, rotating a learner onto a fresh
// one after the idle timeout.
type sessionTracker struct {
	mu       sync.Mutex
	idle     time.Duration
	sessions map[string]*Session
	now      func() time.Time
}

func newSessionTracker(idle time.Duration) *sessionTracker {
	return &sessionTracker{
		idle:     idle,
		sessions: map[string]*Session{},
		now:      time.Now,
	}
}

// touch returns the learner's live session, creating a new one when
// none exists or the previous one idled out.
func (t *sessionTracker) touch(userID string) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	s, ok := t.sessions[userID]
	if !ok || now.Sub(s.LastActivity) > t.idle {
		s = &Session{
			ID:           uuid.NewString(),
			UserID:       userID,
			StartedAt:    now,
			LastActivity: now,
		}
		t.sessions[userID] = s
		return s
	}
	s.LastActivity = now
	return s
}
