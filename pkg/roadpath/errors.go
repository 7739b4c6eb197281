package roadpath

import "errors"

var (
	// ErrPath is the common sentinel for path operations. It is reserved
	// for callers that want one error to test against; no current
	// operation returns it directly.
	ErrPath = errors.New("path error")

	// ErrNotRelative indicates a path cannot be expressed relative to the
	// requested base because it does not lie within the base's subtree.
	ErrNotRelative = errors.New("path is not relative to base")

	// ErrNoName indicates the path has no final component to replace.
	ErrNoName = errors.New("path has no name component")

	// ErrInvalidName indicates a replacement name is empty, a dot
	// component, or contains a path separator.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidSuffix indicates a replacement suffix is missing its
	// leading dot or contains a path separator.
	ErrInvalidSuffix = errors.New("invalid suffix")

	// ErrNoCommonPath indicates the input paths share no ancestor
	// component.
	ErrNoCommonPath = errors.New("paths have no common ancestor")

	// ErrMixedPaths indicates a mix of absolute and relative input paths.
	ErrMixedPaths = errors.New("mix of absolute and relative paths")

	// ErrEmptyPattern indicates an empty match pattern.
	ErrEmptyPattern = errors.New("empty pattern")
)
