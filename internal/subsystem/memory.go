// Package subsystem holds the engine's mandatory subsystems: the
// objects bootstrap constructs in dependency order once the accelerator
// configuration is validated. Each subsystem is small and single
// purpose; bootstrap owns their lifetimes and releases them in reverse
// construction order.
package subsystem

import (
	"fmt"
	"sort"
	"sync"
)

// Arena tracks named host-memory allocations for the per-atom arrays
// and neighbor structures. Subsystems register growth so the end-of-run
// summary can report peak usage.
type Arena struct {
	mu     sync.Mutex
	allocs map[string]int64
	peak   int64
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{allocs: make(map[string]int64)}
}

// Grow records that the named allocation now holds bytes. Growing to a
// non-positive size is an error.
func (a *Arena) Grow(name string, bytes int64) error {
	if bytes <= 0 {
		return fmt.Errorf("allocation %s needs a positive size, got %d", name, bytes)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.allocs[name] = bytes
	if usage := a.usageLocked(); usage > a.peak {
		a.peak = usage
	}
	return nil
}

// Destroy releases the named allocation. Unknown names are a no-op.
func (a *Arena) Destroy(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.allocs, name)
}

// Usage returns the current total of live allocations.
func (a *Arena) Usage() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.usageLocked()
}

// Peak returns the largest total the arena has held.
func (a *Arena) Peak() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.peak
}

// Names returns the live allocation names in sorted order.
func (a *Arena) Names() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.allocs))
	for name := range a.allocs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Close releases everything.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allocs = make(map[string]int64)
	return nil
}

func (a *Arena) usageLocked() int64 {
	var total int64
	for _, bytes := range a.allocs {
		total += bytes
	}
	return total
}
