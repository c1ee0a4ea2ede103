package style

import (
	"strings"

	"moldyn/internal/logger"
	"moldyn/internal/packages"
	"moldyn/pkg/simtypes"
)

// Resolver turns a base style keyword into the ordered list of concrete
// keywords to try under the engine's active suffix state. It is a pure
// name generator: it never checks whether a candidate is registered or
// whether its owning package is installed. Callers compose it with the
// registry and a factory to make that decision.
type Resolver struct {
	state *simtypes.SuffixState
}

// NewResolver returns a resolver reading the given suffix state. The
// state is owned by bootstrap and must not change after construction
// completes, so reads here need no locking.
func NewResolver(state *simtypes.SuffixState) *Resolver {
	return &Resolver{state: state}
}

// Resolve returns the candidate keywords for base in preference order.
// With suffix dispatch disabled the only candidate is base itself. With
// a primary suffix s1 and optional secondary s2 the order is base/s1,
// base/s2, base. A keyword that already names a variant, meaning its
// trailing component is a known accelerator suffix, is returned
// unchanged; multi-part base names like lj/cut are still suffixed.
func (r *Resolver) Resolve(category simtypes.StyleCategory, base string) []string {
	candidates := r.candidates(base)
	logger.Debug("resolved style candidates", "category", category, "base", base, "candidates", candidates)
	return candidates
}

// alreadySuffixed reports whether the keyword's trailing component is
// an accelerator suffix from the package catalog.
func alreadySuffixed(keyword string) bool {
	idx := strings.LastIndex(keyword, simtypes.SuffixSeparator)
	if idx < 0 {
		return false
	}
	_, ok := packages.FindSuffix(keyword[idx+1:])
	return ok
}

func (r *Resolver) candidates(base string) []string {
	if alreadySuffixed(base) {
		return []string{base}
	}
	if r.state == nil || !r.state.Enabled() {
		return []string{base}
	}

	out := make([]string, 0, 3)
	out = append(out, base+simtypes.SuffixSeparator+r.state.Primary())
	if secondary := r.state.Secondary(); secondary != "" {
		out = append(out, base+simtypes.SuffixSeparator+secondary)
	}
	return append(out, base)
}
