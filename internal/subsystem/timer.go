package subsystem

import (
	"fmt"
	"sync"
	"time"
)

// Timer measures wall-clock time from bootstrap to teardown and keeps
// named stamps for the phase breakdown.
type Timer struct {
	mu     sync.Mutex
	start  time.Time
	stamps map[string]time.Duration
}

// NewTimer starts the clock.
func NewTimer() *Timer {
	return &Timer{
		start:  time.Now(),
		stamps: make(map[string]time.Duration),
	}
}

// Stamp records the elapsed time under a label, overwriting earlier
// stamps with the same label.
func (t *Timer) Stamp(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stamps[label] = time.Since(t.start)
}

// StampAt returns the recorded duration for a label.
func (t *Timer) StampAt(label string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.stamps[label]
	return d, ok
}

// Elapsed returns the wall-clock time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Wall formats the elapsed time as H:MM:SS for the teardown summary.
func (t *Timer) Wall() string {
	return FormatWall(t.Elapsed())
}

// FormatWall renders a duration as H:MM:SS.
func FormatWall(d time.Duration) string {
	seconds := int64(d.Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
}
