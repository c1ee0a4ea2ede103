package subsystem

import (
	"fmt"

	"moldyn/pkg/simtypes"
)

// Neighbor holds neighbor-list build settings. Threading and the
// device build mode come from the accelerator backend chosen at
// bootstrap.
type Neighbor struct {
	skin       float64
	every      int
	delay      int
	threaded   bool
	deviceMode simtypes.DeviceNeighborMode
}

// NewNeighbor derives neighbor settings from the active backend.
func NewNeighbor(backend simtypes.AcceleratorBackend) *Neighbor {
	n := &Neighbor{
		skin:  0.3,
		every: 1,
		delay: 10,
	}
	switch b := backend.(type) {
	case simtypes.ThreadedCPU:
		n.threaded = b.ThreadedNeighbor
	case simtypes.DeviceBackend:
		n.deviceMode = b.Neighbor
	}
	return n
}

// Skin returns the neighbor skin distance.
func (n *Neighbor) Skin() float64 {
	return n.skin
}

// SetSkin overrides the neighbor skin distance.
func (n *Neighbor) SetSkin(skin float64) error {
	if skin < 0 {
		return fmt.Errorf("neighbor skin must be non-negative, got %g", skin)
	}
	n.skin = skin
	return nil
}

// Every returns the rebuild check interval in timesteps.
func (n *Neighbor) Every() int {
	return n.every
}

// Delay returns the minimum steps between rebuilds.
func (n *Neighbor) Delay() int {
	return n.delay
}

// SetCadence updates the rebuild check interval and delay together.
func (n *Neighbor) SetCadence(every, delay int) error {
	if every < 1 {
		return fmt.Errorf("neighbor every must be at least 1, got %d", every)
	}
	if delay < 0 {
		return fmt.Errorf("neighbor delay must be non-negative, got %d", delay)
	}
	n.every = every
	n.delay = delay
	return nil
}

// Threaded reports whether neighbor builds run multi-threaded.
func (n *Neighbor) Threaded() bool {
	return n.threaded
}

// DeviceMode returns the device-side neighbor build mode. Empty when
// no device backend is active.
func (n *Neighbor) DeviceMode() simtypes.DeviceNeighborMode {
	return n.deviceMode
}
