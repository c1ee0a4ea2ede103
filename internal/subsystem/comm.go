package subsystem

import (
	"fmt"

	"moldyn/pkg/simtypes"
)

// Comm couples the process communicator with the per-rank thread
// count chosen by the accelerator backend.
type Comm struct {
	comm    simtypes.Communicator
	threads int
}

// NewComm builds the communication subsystem.
func NewComm(comm simtypes.Communicator, backend simtypes.AcceleratorBackend) (*Comm, error) {
	if comm == nil {
		return nil, fmt.Errorf("communication subsystem requires a communicator")
	}
	threads := 1
	if backend != nil {
		threads = backend.ThreadCount()
	}
	return &Comm{comm: comm, threads: threads}, nil
}

// Rank returns this process's rank.
func (c *Comm) Rank() int {
	return c.comm.Rank()
}

// Size returns the number of ranks.
func (c *Comm) Size() int {
	return c.comm.Size()
}

// Threads returns the worker thread count per rank.
func (c *Comm) Threads() int {
	return c.threads
}

// Barrier blocks until every rank reaches it.
func (c *Comm) Barrier() {
	c.comm.Barrier()
}
