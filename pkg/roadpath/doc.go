// Package roadpath provides path manipulation, parsing, normalization, and
// resolution utilities.
//
// It wraps the platform path primitives with an immutable [Path] value type,
// a free-function API over plain path strings, and an incremental [Builder].
package roadpath
