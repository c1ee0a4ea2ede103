package simtypes

// Communicator is the process-group handle an embedder passes to engine
// construction. Every process in the group performs an identical, symmetric
// bootstrap; the handle only has to answer membership queries and provide a
// group-wide barrier. The bootstrap never blocks indefinitely on it.
type Communicator interface {
	// Rank is this process's index within the group.
	Rank() int
	// Size is the number of processes in the group.
	Size() int
	// Barrier blocks until every process in the group has entered it.
	Barrier()
	// Name identifies the group for diagnostics.
	Name() string
}

// selfComm is the single-process communicator. Distributed-memory
// communication semantics are out of scope; this handle keeps the
// collective call surface so the bootstrap sequence reads the same either
// way.
type selfComm struct{}

func (selfComm) Rank() int    { return 0 }
func (selfComm) Size() int    { return 1 }
func (selfComm) Barrier()     {}
func (selfComm) Name() string { return "self" }

// SelfCommunicator returns the communicator for a standalone
// single-process run.
func SelfCommunicator() Communicator {
	return selfComm{}
}
