// Package cite collects the references a run should acknowledge.
// Packages and styles register their citations as they are activated;
// the engine prints the collected list during teardown unless the user
// disabled the reminder.
package cite

import "sync"

// Entry is one citation request.
type Entry struct {
	Key       string
	Reference string
}

// Tracker accumulates citation requests in first-seen order. Safe for
// concurrent use.
type Tracker struct {
	mu      sync.Mutex
	enabled bool
	seen    map[string]bool
	entries []Entry
}

// NewTracker returns a tracker. A disabled tracker accepts and drops
// every request.
func NewTracker(enabled bool) *Tracker {
	return &Tracker{
		enabled: enabled,
		seen:    make(map[string]bool),
	}
}

// Enabled reports whether the reminder is active.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// Add registers a citation request. Repeats of the same key are
// dropped, keeping the first reference text.
func (t *Tracker) Add(key, reference string) {
	if key == "" || reference == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled || t.seen[key] {
		return
	}
	t.seen[key] = true
	t.entries = append(t.entries, Entry{Key: key, Reference: reference})
}

// Entries returns the collected requests in first-seen order.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Entry(nil), t.entries...)
}

// Lines renders the end-of-run reminder, one reference per line. The
// result is empty when nothing was collected.
func (t *Tracker) Lines() []string {
	entries := t.Entries()
	if len(entries) == 0 {
		return nil
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "This run used features that request citation:")
	for _, entry := range entries {
		lines = append(lines, "  - "+entry.Reference)
	}
	return lines
}
