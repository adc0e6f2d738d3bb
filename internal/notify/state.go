package notify

import (
	"sync"
	"time"
)

// State tracks when a nudge was last shown per habit. It is constructed and
// owned by the calling layer and passed in explicitly; the analytics engine
// holds no global notification state.
type State struct {
	mu        sync.Mutex
	lastShown map[string]time.Time
}

// NewState creates an empty nudge state.
func NewState() *State {
	return &State{lastShown: make(map[string]time.Time)}
}

// ShouldNudge reports whether a nudge may be shown for the habit and, when
// it may, records now as the last-shown time in the same step so concurrent
// callers cannot double-nudge.
func (s *State) ShouldNudge(habitID string, now time.Time, minInterval time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastShown[habitID]; ok && now.Sub(last) < minInterval {
		return false
	}
	s.lastShown[habitID] = now
	return true
}

// LastShown returns the last-shown time for a habit, if any.
func (s *State) LastShown(habitID string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastShown[habitID]
	return last, ok
}

// Reset clears the record for one habit, e.g. after the habit is deleted.
func (s *State) Reset(habitID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.lastShown, habitID)
}
