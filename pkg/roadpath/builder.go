package roadpath

// Builder accumulates path segments incrementally and materializes them
// into a [Path]. It is not safe for concurrent use and must be confined to
// one goroutine.
type Builder struct {
	segments []string
}

// NewBuilder creates a Builder. A non-empty base becomes the first
// segment.
func NewBuilder(base string) *Builder {
	b := &Builder{}
	if base != "" {
		b.segments = append(b.segments, base)
	}

	return b
}

// Add appends segments in call order and returns the Builder for chaining.
func (b *Builder) Add(segments ...string) *Builder {
	b.segments = append(b.segments, segments...)

	return b
}

// Parent appends a literal ".." segment rather than removing the previous
// one; the cancellation happens when [Builder.Build] joins and cleans the
// result.
func (b *Builder) Parent() *Builder {
	b.segments = append(b.segments, "..")

	return b
}

// Build joins the accumulated segments into a Path with the same semantics
// as [Join]. It does not clear the Builder: segments added afterwards
// accumulate onto the same sequence, and a later Build includes them.
func (b *Builder) Build() Path {
	return New(Join(b.segments...))
}

// Segments returns a copy of the raw accumulated segments, unjoined and
// uncleaned.
func (b *Builder) Segments() []string {
	out := make([]string, len(b.segments))
	copy(out, b.segments)

	return out
}

// String returns the string form of what [Builder.Build] would produce.
func (b *Builder) String() string {
	return b.Build().String()
}
