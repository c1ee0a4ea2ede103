package subsystem

import (
	"fmt"

	"github.com/google/uuid"

	"moldyn/pkg/simtypes"
)

// Universe wraps the process group the engine runs in and assigns the
// run its identity. Every rank constructs an identical universe; the
// run ID is the root's contribution to output file stamping.
type Universe struct {
	comm  simtypes.Communicator
	runID string
}

// NewUniverse wraps the communicator.
func NewUniverse(comm simtypes.Communicator) (*Universe, error) {
	if comm == nil {
		return nil, fmt.Errorf("universe needs a communicator")
	}
	return &Universe{
		comm:  comm,
		runID: uuid.NewString(),
	}, nil
}

// Rank returns this process's rank within the group.
func (u *Universe) Rank() int { return u.comm.Rank() }

// Size returns the number of processes in the group.
func (u *Universe) Size() int { return u.comm.Size() }

// Root reports whether this process is rank zero.
func (u *Universe) Root() bool { return u.comm.Rank() == 0 }

// RunID returns the unique identifier assigned to this run.
func (u *Universe) RunID() string { return u.runID }

// Comm exposes the underlying communicator for subsystems that need
// collective operations.
func (u *Universe) Comm() simtypes.Communicator { return u.comm }
