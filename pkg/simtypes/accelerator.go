package simtypes

// BackendKind discriminates the accelerator backend variants.
type BackendKind int

const (
	// BackendNone - no accelerator; the engine runs single-threaded.
	BackendNone BackendKind = iota
	// BackendThreadedCPU - OpenMP-style CPU threading.
	BackendThreadedCPU
	// BackendDevice - Kokkos-style device backend with host threads.
	BackendDevice
)

// String returns a human-readable representation of the backend kind.
func (k BackendKind) String() string {
	switch k {
	case BackendNone:
		return "none"
	case BackendThreadedCPU:
		return "threaded-cpu"
	case BackendDevice:
		return "device"
	default:
		return "unknown"
	}
}

// AcceleratorBackend is the tagged configuration variant driving conditional
// subsystem construction. Exactly one of NoAccelerator, ThreadedCPU, or
// DeviceBackend is active in a validated configuration; consumers switch on
// Kind (or type-switch) rather than inspecting nullable fields.
type AcceleratorBackend interface {
	// Kind identifies the variant.
	Kind() BackendKind
	// ThreadCount is the declared degree of parallelism handed to the
	// subsystems built after bootstrap. Bootstrap itself never spawns
	// worker threads.
	ThreadCount() int
}

// NoAccelerator is the default backend: no accelerator package active.
type NoAccelerator struct{}

// Kind returns BackendNone.
func (NoAccelerator) Kind() BackendKind { return BackendNone }

// ThreadCount returns 1; without an accelerator the engine is serial.
func (NoAccelerator) ThreadCount() int { return 1 }

// ThreadedCPU is the OpenMP-style backend configuration.
type ThreadedCPU struct {
	// Threads is the validated worker-thread count (> 0).
	Threads int
	// ThreadedNeighbor selects threaded neighbor-list builds.
	ThreadedNeighbor bool
}

// Kind returns BackendThreadedCPU.
func (ThreadedCPU) Kind() BackendKind { return BackendThreadedCPU }

// ThreadCount returns the validated worker-thread count.
func (t ThreadedCPU) ThreadCount() int { return t.Threads }

// DeviceNeighborMode selects how the device backend builds neighbor lists.
type DeviceNeighborMode string

const (
	// DeviceNeighborHalf builds half neighbor lists on the device.
	DeviceNeighborHalf DeviceNeighborMode = "half"
	// DeviceNeighborFull builds full neighbor lists on the device.
	DeviceNeighborFull DeviceNeighborMode = "full"
)

// DeviceBackend is the Kokkos-style backend configuration.
type DeviceBackend struct {
	// Threads is the validated host-thread count (> 0).
	Threads int
	// Devices is the number of devices per node, zero for a host-only
	// device runtime.
	Devices int
	// Neighbor is the device neighbor-list mode.
	Neighbor DeviceNeighborMode
}

// Kind returns BackendDevice.
func (DeviceBackend) Kind() BackendKind { return BackendDevice }

// ThreadCount returns the validated host-thread count.
func (d DeviceBackend) ThreadCount() int { return d.Threads }
