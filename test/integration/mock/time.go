package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock for tests. It keeps ticking from whatever
// instant it was pinned to, so elapsed time still advances naturally.
type Time struct {
	mu               sync.Mutex
	currentStartTime time.Time
	pinnedAt         time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{
		currentStartTime: now,
		pinnedAt:         now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.pinnedAt = time.Now()
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentStartTime.Add(time.Since(t.pinnedAt))
}
