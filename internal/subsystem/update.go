package subsystem

import "fmt"

// Update tracks integration state shared by the run loop.
type Update struct {
	unitStyle string
	dt        float64
	ntimestep int64
}

// NewUpdate builds the update subsystem with reduced units and the
// matching default timestep.
func NewUpdate() *Update {
	u := &Update{}
	u.SetUnits("lj")
	return u
}

// SetUnits switches the unit style and resets the timestep to that
// style's default.
func (u *Update) SetUnits(style string) error {
	dt, ok := defaultTimestep[style]
	if !ok {
		return fmt.Errorf("unknown unit style %s", style)
	}
	u.unitStyle = style
	u.dt = dt
	return nil
}

// defaultTimestep maps a unit style to its default dt.
var defaultTimestep = map[string]float64{
	"lj":    0.005,
	"real":  1.0,
	"metal": 0.001,
	"si":    1.0e-8,
	"cgs":   1.0e-8,
}

// UnitStyle returns the active unit style.
func (u *Update) UnitStyle() string {
	return u.unitStyle
}

// Dt returns the current timestep size.
func (u *Update) Dt() float64 {
	return u.dt
}

// SetDt overrides the timestep size.
func (u *Update) SetDt(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("timestep must be positive, got %g", dt)
	}
	u.dt = dt
	return nil
}

// Ntimestep returns the current timestep counter.
func (u *Update) Ntimestep() int64 {
	return u.ntimestep
}

// Advance moves the timestep counter forward by n steps.
func (u *Update) Advance(n int64) {
	u.ntimestep += n
}

// Reset sets the timestep counter to a specific value.
func (u *Update) Reset(step int64) {
	u.ntimestep = step
}
