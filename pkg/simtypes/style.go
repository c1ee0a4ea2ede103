package simtypes

// AtomStyle is a concrete per-atom representation produced by the style
// factory after suffix resolution and package gating. Implementations live
// with the engine's style machinery; the numerics behind a representation
// are outside this layer.
type AtomStyle interface {
	// Keyword is the resolved concrete style keyword, e.g. "full" or
	// "full/kk".
	Keyword() string
	// Fields lists the per-atom quantities the representation carries.
	Fields() []string
}
