package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxSymlinkDepth bounds symlink chains during rooted resolution.
const maxSymlinkDepth = 10

var (
	// ErrMaxNestingLevelReached indicates a symlink chain longer than the
	// allowed depth.
	ErrMaxNestingLevelReached = errors.New("maximum symlink nesting level reached")

	// ErrResolvedOutsideRoot indicates a path that escapes the requested
	// root directory after resolution.
	ErrResolvedOutsideRoot = errors.New("path resolved to outside the root")
)

// ResolveSymlink resolves path to its final target, following chains of
// symbolic links up to maxDepth levels. A path that is not a symlink, or
// that does not exist, is returned verbatim.
func ResolveSymlink(path string, maxDepth int) (string, error) {
	current := path

	for depth := 0; ; depth++ {
		target, err := os.Readlink(current)
		if err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				// Not a symlink.
				return current, nil
			}

			return "", fmt.Errorf("read link %q: %w", current, err)
		}

		if depth == maxDepth {
			return "", fmt.Errorf("%w: %q", ErrMaxNestingLevelReached, path)
		}

		// A relative target is resolved against the link's own directory.
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}

		current = target
	}
}

// ResolveWithin resolves path and guarantees the result stays inside root.
// A relative path is resolved against base; an absolute path is treated as
// relative to root. Symlinks are followed before the boundary check, so a
// link cannot escape the root. It fails with [ErrResolvedOutsideRoot] when
// the final resolved path is not within root's subtree.
func ResolveWithin(base, root, path string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}

	joined := path
	if filepath.IsAbs(joined) {
		joined = filepath.Join(absRoot, joined)
	} else {
		absBase, err := filepath.Abs(base)
		if err != nil {
			return "", fmt.Errorf("resolve base %q: %w", base, err)
		}

		joined = filepath.Join(absBase, joined)
	}

	resolved, err := ResolveSymlink(joined, maxSymlinkDepth)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", resolved, err)
	}

	// The trailing separator keeps /foo2 from passing a /foo root check.
	rootPrefix := absRoot
	if !strings.HasSuffix(rootPrefix, string(os.PathSeparator)) {
		rootPrefix += string(os.PathSeparator)
	}

	if abs+string(os.PathSeparator) != rootPrefix && !strings.HasPrefix(abs, rootPrefix) {
		return "", fmt.Errorf("%w: %q", ErrResolvedOutsideRoot, path)
	}

	return abs, nil
}
