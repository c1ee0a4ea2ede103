package accel

import (
	"fmt"
	"sort"
	"sync"

	"moldyn/internal/logger"
	"moldyn/pkg/simtypes"
)

// Space names one side of the host/device split.
type Space int

const (
	// SpaceHost - data lives in host memory.
	SpaceHost Space = iota
	// SpaceDevice - data lives in device memory.
	SpaceDevice
)

// String returns a human-readable representation of the space.
func (s Space) String() string {
	switch s {
	case SpaceHost:
		return "host"
	case SpaceDevice:
		return "device"
	default:
		return "unknown"
	}
}

// Runtime is the device execution context. It exists only when the
// device backend is enabled; the rest of the engine checks the backend
// variant, never a nil runtime.
type Runtime struct {
	cfg    simtypes.DeviceBackend
	comm   simtypes.Communicator
	closed bool
}

// NewRuntime initializes the device runtime for the validated backend
// configuration.
func NewRuntime(cfg simtypes.DeviceBackend, comm simtypes.Communicator) (*Runtime, error) {
	if cfg.Threads <= 0 {
		return nil, fmt.Errorf("device runtime needs a positive host thread count, got %d", cfg.Threads)
	}
	if cfg.Devices < 0 {
		return nil, fmt.Errorf("device runtime needs a non-negative device count, got %d", cfg.Devices)
	}

	logger.Debug("device runtime initialized",
		"threads", cfg.Threads,
		"devices", cfg.Devices,
		"neighbor", string(cfg.Neighbor),
		"rank", comm.Rank())

	return &Runtime{cfg: cfg, comm: comm}, nil
}

// Config returns the backend configuration the runtime was built with.
func (r *Runtime) Config() simtypes.DeviceBackend {
	return r.cfg
}

// Close shuts the runtime down. Safe to call more than once.
func (r *Runtime) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	logger.Debug("device runtime closed", "rank", r.comm.Rank())
	return nil
}

// AtomMirror tracks which space holds the freshest copy of the per-atom
// data. Subsystems mark a side modified after writing and sync the
// other side before reading.
type AtomMirror struct {
	mu       sync.Mutex
	runtime  *Runtime
	modified map[Space]bool
}

// NewAtomMirror returns a mirror with both sides in sync.
func NewAtomMirror(runtime *Runtime) *AtomMirror {
	return &AtomMirror{
		runtime:  runtime,
		modified: make(map[Space]bool),
	}
}

// MarkModified records that space now holds changes the other side has
// not seen.
func (m *AtomMirror) MarkModified(space Space) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modified[space] = true
}

// Sync brings space up to date with the other side's changes.
func (m *AtomMirror) Sync(space Space) {
	m.mu.Lock()
	defer m.mu.Unlock()

	other := SpaceHost
	if space == SpaceHost {
		other = SpaceDevice
	}
	if m.modified[other] {
		logger.Debug("atom mirror sync", "to", space.String(), "from", other.String())
		m.modified[other] = false
	}
}

// InSync reports whether neither side holds unseen changes.
func (m *AtomMirror) InSync() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.modified[SpaceHost] && !m.modified[SpaceDevice]
}

// MemoryPool tracks named device-resident allocations so teardown can
// verify nothing leaks across a run.
type MemoryPool struct {
	mu      sync.Mutex
	runtime *Runtime
	allocs  map[string]int64
}

// NewMemoryPool returns an empty pool bound to the runtime.
func NewMemoryPool(runtime *Runtime) *MemoryPool {
	return &MemoryPool{
		runtime: runtime,
		allocs:  make(map[string]int64),
	}
}

// Allocate records a named device allocation. Reallocating a live name
// replaces its size.
func (p *MemoryPool) Allocate(name string, bytes int64) error {
	if bytes <= 0 {
		return fmt.Errorf("device allocation %s needs a positive size, got %d", name, bytes)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allocs[name] = bytes
	return nil
}

// Release frees a named allocation. Releasing an unknown name is a
// no-op.
func (p *MemoryPool) Release(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.allocs, name)
}

// TotalAllocated returns the sum of live allocation sizes.
func (p *MemoryPool) TotalAllocated() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	var total int64
	for _, bytes := range p.allocs {
		total += bytes
	}
	return total
}

// Names returns the live allocation names in sorted order.
func (p *MemoryPool) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.allocs))
	for name := range p.allocs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Close releases every live allocation.
func (p *MemoryPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allocs = make(map[string]int64)
	return nil
}
