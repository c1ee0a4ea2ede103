package subsystem

import (
	"moldyn/internal/logger"
	"moldyn/internal/style"
	"moldyn/pkg/simtypes"
)

// Atoms owns per-atom storage and the active atom style. The style
// starts as "atomic" and can be switched by the deck before atoms are
// created.
type Atoms struct {
	factory *style.AtomFactory
	current simtypes.AtomStyle
	keyword string
	natoms  int64
}

// NewAtoms builds the atom subsystem with the default atomic style.
func NewAtoms(factory *style.AtomFactory, resolver *style.Resolver) (*Atoms, error) {
	a := &Atoms{factory: factory}
	if err := a.SetStyle(resolver, "atomic"); err != nil {
		return nil, err
	}
	return a, nil
}

// SetStyle resolves and activates an atom style by its base keyword.
func (a *Atoms) SetStyle(resolver *style.Resolver, keyword string) error {
	created, resolved, err := a.factory.Create(resolver, keyword)
	if err != nil {
		return err
	}
	a.current = created
	a.keyword = resolved
	logger.Debug("atom style set", "style", resolved)
	return nil
}

// Style returns the active atom style.
func (a *Atoms) Style() simtypes.AtomStyle {
	return a.current
}

// StyleKeyword returns the resolved keyword of the active style,
// including any accelerator suffix.
func (a *Atoms) StyleKeyword() string {
	return a.keyword
}

// Factory exposes the style factory for availability checks.
func (a *Atoms) Factory() *style.AtomFactory {
	return a.factory
}

// Count returns the number of atoms currently owned.
func (a *Atoms) Count() int64 {
	return a.natoms
}

// SetCount records the atom total after a create or read operation.
func (a *Atoms) SetCount(n int64) {
	a.natoms = n
}
