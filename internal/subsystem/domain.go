package subsystem

import "fmt"

// Region is a named block of space referenced by box creation and
// group selection.
type Region struct {
	Name   string
	Lo, Hi [3]float64
}

// Domain describes the simulation box. The box is undefined until the
// deck sets its bounds, usually from a named region.
type Domain struct {
	defined  bool
	lo, hi   [3]float64
	periodic [3]bool
	regions  map[string]Region
}

// NewDomain builds an undefined, fully periodic domain.
func NewDomain() *Domain {
	return &Domain{
		periodic: [3]bool{true, true, true},
		regions:  make(map[string]Region),
	}
}

// AddRegion defines a named block region. Redefining a name is an
// error.
func (d *Domain) AddRegion(name string, lo, hi [3]float64) error {
	if name == "" {
		return fmt.Errorf("region name cannot be empty")
	}
	if _, exists := d.regions[name]; exists {
		return fmt.Errorf("region %s already exists", name)
	}
	for axis := 0; axis < 3; axis++ {
		if hi[axis] <= lo[axis] {
			return fmt.Errorf("region %s is empty on axis %d: lo %g, hi %g", name, axis, lo[axis], hi[axis])
		}
	}
	d.regions[name] = Region{Name: name, Lo: lo, Hi: hi}
	return nil
}

// Region returns a named region.
func (d *Domain) Region(name string) (Region, bool) {
	r, ok := d.regions[name]
	return r, ok
}

// SetBoundsFromRegion defines the box from a named region's extent.
func (d *Domain) SetBoundsFromRegion(name string) error {
	r, ok := d.regions[name]
	if !ok {
		return fmt.Errorf("region %s does not exist", name)
	}
	return d.SetBounds(r.Lo, r.Hi)
}

// Defined reports whether box bounds have been set.
func (d *Domain) Defined() bool {
	return d.defined
}

// SetBounds defines the box extent on all three axes.
func (d *Domain) SetBounds(lo, hi [3]float64) error {
	for axis := 0; axis < 3; axis++ {
		if hi[axis] <= lo[axis] {
			return fmt.Errorf("box bound on axis %d is empty: lo %g, hi %g", axis, lo[axis], hi[axis])
		}
	}
	d.lo = lo
	d.hi = hi
	d.defined = true
	return nil
}

// Bounds returns the box lo and hi corners.
func (d *Domain) Bounds() (lo, hi [3]float64) {
	return d.lo, d.hi
}

// SetPeriodic sets per-axis periodicity.
func (d *Domain) SetPeriodic(x, y, z bool) {
	d.periodic = [3]bool{x, y, z}
}

// Periodic reports periodicity per axis.
func (d *Domain) Periodic() [3]bool {
	return d.periodic
}

// Volume returns the box volume, zero while undefined.
func (d *Domain) Volume() float64 {
	if !d.defined {
		return 0
	}
	v := 1.0
	for axis := 0; axis < 3; axis++ {
		v *= d.hi[axis] - d.lo[axis]
	}
	return v
}
