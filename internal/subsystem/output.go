package subsystem

import "fmt"

// Output controls thermodynamic reporting during a run.
type Output struct {
	thermoEvery int
	keywords    []string
}

// NewOutput builds the output subsystem with the default thermo
// columns and no periodic reporting.
func NewOutput() *Output {
	return &Output{
		keywords: []string{"step", "temp", "epair", "emol", "etotal", "press"},
	}
}

// ThermoEvery returns the reporting interval in timesteps, zero when
// only the first and last step report.
func (o *Output) ThermoEvery() int {
	return o.thermoEvery
}

// SetThermoEvery updates the reporting interval.
func (o *Output) SetThermoEvery(every int) error {
	if every < 0 {
		return fmt.Errorf("thermo interval must be non-negative, got %d", every)
	}
	o.thermoEvery = every
	return nil
}

// Keywords returns the active thermo columns in report order.
func (o *Output) Keywords() []string {
	out := make([]string, len(o.keywords))
	copy(out, o.keywords)
	return out
}

// SetKeywords replaces the thermo columns.
func (o *Output) SetKeywords(keywords ...string) error {
	if len(keywords) == 0 {
		return fmt.Errorf("thermo style needs at least one keyword")
	}
	o.keywords = append([]string(nil), keywords...)
	return nil
}
