package style

import (
	"moldyn/internal/packages"
	"moldyn/pkg/simtypes"
)

// definition is the shared implementation behind the built-in atom
// styles. A style here declares its keyword and the per-atom fields it
// maintains; the numerics that operate on those fields live with the
// force and integration subsystems.
type definition struct {
	keyword string
	fields  []string
}

func (d definition) Keyword() string { return d.keyword }

func (d definition) Fields() []string {
	return append([]string(nil), d.fields...)
}

func newDef(keyword string, fields ...string) Creator {
	return func() simtypes.AtomStyle {
		return definition{keyword: keyword, fields: fields}
	}
}

// coreFields are maintained by every atom style.
var coreFields = []string{"id", "type", "x", "v", "f"}

func withCore(extra ...string) []string {
	return append(append([]string(nil), coreFields...), extra...)
}

// RegisterDefaults populates the factory with the core styles plus the
// styles contributed by each installed package. The device-mirror
// variants that shadow a molecular style need both their own package
// and MOLECULE present.
func (f *AtomFactory) RegisterDefaults(set *packages.Set) {
	// Core styles, available in every build.
	f.Register("atomic", newDef("atomic", coreFields...))
	f.Register("body", newDef("body", withCore("radius", "rmass", "angmom", "torque", "body")...))
	f.Register("charge", newDef("charge", withCore("q")...))
	f.Register("ellipsoid", newDef("ellipsoid", withCore("rmass", "angmom", "torque", "ellipsoid")...))
	f.Register("hybrid", newDef("hybrid", coreFields...))
	f.Register("line", newDef("line", withCore("molecule", "omega", "torque", "line")...))
	f.Register("sphere", newDef("sphere", withCore("radius", "rmass", "omega", "torque")...))
	f.Register("tri", newDef("tri", withCore("molecule", "omega", "angmom", "torque", "tri")...))

	if set.Installed(packages.Molecule) {
		f.Register("angle", newDef("angle", withCore("molecule", "bonds", "angles")...))
		f.Register("bond", newDef("bond", withCore("molecule", "bonds")...))
		f.Register("full", newDef("full", withCore("molecule", "q", "bonds", "angles", "dihedrals", "impropers")...))
		f.Register("molecular", newDef("molecular", withCore("molecule", "bonds", "angles", "dihedrals", "impropers")...))
		f.Register("template", newDef("template", withCore("molecule", "molindex", "molatom")...))
	}

	if set.Installed(packages.Dipole) {
		f.Register("dipole", newDef("dipole", withCore("q", "mu")...))
	}
	if set.Installed(packages.Peri) {
		f.Register("peri", newDef("peri", withCore("vfrac", "rmass", "s0", "x0")...))
	}
	if set.Installed(packages.Spin) {
		f.Register("spin", newDef("spin", withCore("sp", "fm")...))
	}
	if set.Installed(packages.Wavepacket) {
		f.Register("wavepacket", newDef("wavepacket", withCore("q", "espin", "eradius", "ervel", "erforce")...))
	}
	if set.Installed(packages.DPD) {
		f.Register("dpd", newDef("dpd", withCore("theta", "ucond", "umech", "uchem")...))
	}
	if set.Installed(packages.MesoDPD) {
		f.Register("edpd", newDef("edpd", withCore("temp", "heatflux", "cv")...))
		f.Register("mdpd", newDef("mdpd", withCore("rho", "drho")...))
		f.Register("tdpd", newDef("tdpd", withCore("cc", "ccflux")...))
	}
	if set.Installed(packages.SMD) {
		f.Register("smd", newDef("smd", withCore("molecule", "volume", "kradius", "cradius", "e", "de")...))
	}
	if set.Installed(packages.SPH) {
		f.Register("meso", newDef("meso", withCore("rho", "drho", "esph", "desph", "cv")...))
	}

	if set.Installed(packages.Kokkos) {
		f.Register("atomic/kk", newDef("atomic/kk", coreFields...))
		f.Register("charge/kk", newDef("charge/kk", withCore("q")...))
		f.Register("sphere/kk", newDef("sphere/kk", withCore("radius", "rmass", "omega", "torque")...))
		f.Register("hybrid/kk", newDef("hybrid/kk", coreFields...))

		if set.Installed(packages.Molecule) {
			f.Register("angle/kk", newDef("angle/kk", withCore("molecule", "bonds", "angles")...))
			f.Register("bond/kk", newDef("bond/kk", withCore("molecule", "bonds")...))
			f.Register("full/kk", newDef("full/kk", withCore("molecule", "q", "bonds", "angles", "dihedrals", "impropers")...))
			f.Register("molecular/kk", newDef("molecular/kk", withCore("molecule", "bonds", "angles", "dihedrals", "impropers")...))
		}
		if set.Installed(packages.Spin) {
			f.Register("spin/kk", newDef("spin/kk", withCore("sp", "fm")...))
		}
	}
}
