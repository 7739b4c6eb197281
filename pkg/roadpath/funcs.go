package roadpath

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Join joins any number of path segments into a single path. A segment
// that is itself absolute discards everything before it. The result is
// cleaned.
func Join(segments ...string) string {
	start := 0

	for i, s := range segments {
		if filepath.IsAbs(s) {
			start = i
		}
	}

	return filepath.Join(segments[start:]...)
}

// Split splits a path into its parent directory and final component.
func Split(path string) (dir, name string) {
	return filepath.Dir(path), nameOf(path)
}

// Dirname returns the parent directory of path.
func Dirname(path string) string {
	return filepath.Dir(path)
}

// Basename returns the final component of path, or "" for a root.
func Basename(path string) string {
	return nameOf(path)
}

// SplitExt splits a path into everything before its last extension and the
// extension itself, such that root+ext reconstructs path exactly.
func SplitExt(path string) (root, ext string) {
	_, ext = splitSuffix(nameOf(path))
	if ext == "" || !strings.HasSuffix(path, ext) {
		return path, ""
	}

	return path[:len(path)-len(ext)], ext
}

// Normalize collapses redundant separators and "." / ".." segments
// lexically, with no filesystem access.
func Normalize(path string) string {
	return filepath.Clean(path)
}

// Absolute resolves path against the current working directory without
// consulting the filesystem.
func Absolute(path string) (string, error) {
	return filepath.Abs(path)
}

// Resolve canonicalizes path against the filesystem, following symlinks.
// The platform error is returned unchanged when resolution fails.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// Relative expresses path relative to base. An empty base means the
// current working directory, re-queried at call time. It fails with
// [ErrNotRelative] when path does not lie within base's subtree.
func Relative(path, base string) (string, error) {
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}

		base = wd
	}

	rel, err := New(path).RelativeTo(New(base))
	if err != nil {
		return "", err
	}

	return rel.String(), nil
}

// ExpandUser replaces a leading "~" or "~user" with the corresponding home
// directory. The path is returned unchanged when the lookup fails or the
// path does not start with "~".
func ExpandUser(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	i := strings.IndexFunc(path, isSep)
	if i < 0 {
		i = len(path)
	}

	var home string

	if name := path[1:i]; name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return path
		}

		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return path
		}

		home = u.HomeDir
	}

	return home + path[i:]
}

// ExpandVars substitutes $VAR and ${VAR} environment variable references.
// Unset variables are left in place rather than replaced with "".
func ExpandVars(path string) string {
	return os.Expand(path, func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}

		return "$" + name
	})
}

// Expand expands a leading "~" and then environment variable references.
// User expansion runs strictly first, so a variable may not introduce a
// "~" of its own.
func Expand(path string) string {
	return ExpandVars(ExpandUser(path))
}

// CommonPath returns the longest common ancestor directory of the input
// paths. It fails with [ErrMixedPaths] on a mix of absolute and relative
// paths, and with [ErrNoCommonPath] on an empty input or when the inputs
// share no component beyond a bare root.
func CommonPath(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("%w: no paths given", ErrNoCommonPath)
	}

	drive0, root0, common := splitPath(paths[0])

	for _, p := range paths[1:] {
		drive, root, comps := splitPath(p)

		if (root == "") != (root0 == "") {
			return "", fmt.Errorf("%w: %q and %q", ErrMixedPaths, paths[0], p)
		}

		if drive != drive0 {
			return "", fmt.Errorf("%w: %q and %q", ErrNoCommonPath, paths[0], p)
		}

		if len(comps) < len(common) {
			common = common[:len(comps)]
		}

		for i := range common {
			if comps[i] != common[i] {
				common = common[:i]

				break
			}
		}
	}

	if len(common) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoCommonPath, paths)
	}

	return drive0 + root0 + strings.Join(common, string(filepath.Separator)), nil
}

// CommonPrefix returns the longest common string prefix of the input
// paths. Unlike [CommonPath] it is purely character-level and does not
// respect component boundaries, so the result may not name a directory.
func CommonPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	prefix := paths[0]

	for _, p := range paths[1:] {
		for len(prefix) > 0 && !strings.HasPrefix(p, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	return prefix
}

// SameFile reports whether two paths refer to the same filesystem entity.
// The platform error is returned unchanged when either path cannot be
// statted, including when it does not exist.
func SameFile(path1, path2 string) (bool, error) {
	fi1, err := os.Stat(path1)
	if err != nil {
		return false, err
	}

	fi2, err := os.Stat(path2)
	if err != nil {
		return false, err
	}

	return os.SameFile(fi1, fi2), nil
}
