package subsystem

import (
	"fmt"

	"moldyn/internal/logger"
	"moldyn/internal/screen"
	"moldyn/pkg/simtypes"
)

// Reporter turns subsystem failures and warnings into user-facing
// messages with rank context. It never terminates the process; fatal
// conditions surface as errors for bootstrap to handle.
type Reporter struct {
	comm    simtypes.Communicator
	printer *screen.Printer
}

// NewReporter binds the reporter to the process group and the output
// streams.
func NewReporter(comm simtypes.Communicator, printer *screen.Printer) (*Reporter, error) {
	if comm == nil {
		return nil, fmt.Errorf("reporter needs a communicator")
	}
	if printer == nil {
		return nil, fmt.Errorf("reporter needs an output printer")
	}
	return &Reporter{comm: comm, printer: printer}, nil
}

// All reports a condition every rank hits collectively and returns it
// as an error.
func (r *Reporter) All(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	r.printer.Line("ERROR: " + err.Error())
	logger.Error("collective error", "error", err, "ranks", r.comm.Size())
	return err
}

// One reports a condition detected on this rank alone.
func (r *Reporter) One(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	r.printer.Line(fmt.Sprintf("ERROR on rank %d: %v", r.comm.Rank(), err))
	logger.Error("rank error", "error", err, "rank", r.comm.Rank())
	return err
}

// Warn prints a warning to both streams and the structured log.
func (r *Reporter) Warn(text string) {
	r.printer.Warn(text)
	logger.Warn(text, "rank", r.comm.Rank())
}
