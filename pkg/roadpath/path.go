package roadpath

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Path wraps a single filesystem path string. The zero value is the empty
// path. Path values are never mutated; every transformation returns a new
// value, so sharing a Path across goroutines is safe.
type Path struct {
	s string
}

// New creates a Path from a path string. The string is stored as-is: no
// filesystem access, validation, or normalization happens at construction.
func New(path string) Path {
	return Path{s: path}
}

// Cwd returns the process's current working directory. The platform is
// re-queried on every call; nothing is cached.
func Cwd() (Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Path{}, fmt.Errorf("get working directory: %w", err)
	}

	return Path{s: wd}, nil
}

// Home returns the current user's home directory.
func Home() (Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Path{}, fmt.Errorf("get home directory: %w", err)
	}

	return Path{s: home}, nil
}

// Temp returns the platform's designated temporary directory.
func Temp() Path {
	return Path{s: os.TempDir()}
}

// String returns the wrapped path string verbatim.
func (p Path) String() string {
	return p.s
}

// Equal reports whether p and other identify the same path lexically. Both
// sides are cleaned before comparing, so "/a/b" equals "/a/b/" and
// "/a/./b". No filesystem access happens; two paths naming the same file
// through different directories are not Equal.
func (p Path) Equal(other Path) bool {
	return filepath.Clean(p.s) == filepath.Clean(other.s)
}

// Name returns the final path component, including any extension. It is
// empty for roots and for paths ending in "..".
func (p Path) Name() string {
	return nameOf(p.s)
}

// Stem returns the final component with its last extension removed.
func (p Path) Stem() string {
	stem, _ := splitSuffix(p.Name())

	return stem
}

// Suffix returns the last extension of the final component, including the
// leading dot, or "" if there is none.
func (p Path) Suffix() string {
	_, suffix := splitSuffix(p.Name())

	return suffix
}

// Suffixes returns every extension of the final component in order, each
// including its leading dot.
func (p Path) Suffixes() []string {
	return splitSuffixes(p.Name())
}

// Parent returns the immediate containing directory. The parent of a root
// is the root itself, and the parent of a bare name is ".".
func (p Path) Parent() Path {
	return Path{s: filepath.Dir(p.s)}
}

// Parents returns every ancestor directory, nearest first, ending at the
// root for absolute paths and at "." for relative ones.
func (p Path) Parents() []Path {
	var out []Path

	cur := filepath.Clean(p.s)

	for {
		next := filepath.Dir(cur)
		if next == cur {
			break
		}

		out = append(out, Path{s: next})
		cur = next
	}

	return out
}

// Parts returns the ordered path components, with the drive and root as the
// first element where present.
func (p Path) Parts() []string {
	drive, root, comps := splitPath(p.s)
	if drive+root == "" {
		return comps
	}

	return append([]string{drive + root}, comps...)
}

// Parse decomposes the path into a [Parts] record in one pass. It has no
// error conditions; fields are empty when inapplicable.
func (p Path) Parse() Parts {
	drive, root, _ := splitPath(p.s)

	return Parts{
		Drive:    drive,
		Root:     root,
		Parts:    p.Parts(),
		Name:     p.Name(),
		Stem:     p.Stem(),
		Suffix:   p.Suffix(),
		Suffixes: p.Suffixes(),
		Parent:   p.Parent().String(),
	}
}

// Join appends segments to the path. A segment that is itself absolute
// discards everything accumulated before it, per standard path-joining
// semantics. The result is cleaned.
func (p Path) Join(segments ...string) Path {
	return Path{s: Join(append([]string{p.s}, segments...)...)}
}

// Absolute resolves the path against the current working directory without
// consulting the filesystem or following symlinks. The result is not
// guaranteed to exist.
func (p Path) Absolute() (Path, error) {
	abs, err := filepath.Abs(p.s)
	if err != nil {
		return Path{}, err
	}

	return Path{s: abs}, nil
}

// Resolve fully resolves the path against the filesystem, following
// symlinks and collapsing "." and ".." segments into a canonical absolute
// path. The platform error is returned unchanged when resolution fails,
// for example when the path does not exist.
func (p Path) Resolve() (Path, error) {
	abs, err := filepath.Abs(p.s)
	if err != nil {
		return Path{}, err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Path{}, err
	}

	return Path{s: resolved}, nil
}

// Normalize collapses redundant separators and "." / ".." segments
// lexically, with no filesystem access.
func (p Path) Normalize() Path {
	return Path{s: filepath.Clean(p.s)}
}

// RelativeTo expresses the path relative to base. It fails with
// [ErrNotRelative] when the path does not lie lexically within base's
// subtree.
func (p Path) RelativeTo(base Path) (Path, error) {
	rel, err := filepath.Rel(base.s, p.s)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Path{}, fmt.Errorf("%w: %q is not under %q", ErrNotRelative, p.s, base.s)
	}

	return Path{s: rel}, nil
}

// WithName replaces the final component with name. It fails with
// [ErrNoName] when the path has no final component, and with
// [ErrInvalidName] when name is empty, a dot component, or contains a
// separator.
func (p Path) WithName(name string) (Path, error) {
	if p.Name() == "" {
		return Path{}, fmt.Errorf("%w: %q", ErrNoName, p.s)
	}

	if name == "" || name == "." || name == ".." || strings.ContainsFunc(name, isSep) {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return Path{s: filepath.Join(filepath.Dir(p.s), name)}, nil
}

// WithStem replaces the stem of the final component, keeping the current
// suffix.
func (p Path) WithStem(stem string) (Path, error) {
	return p.WithName(stem + p.Suffix())
}

// WithSuffix replaces the last extension of the final component. The
// suffix must be empty or start with a dot; an empty suffix removes the
// extension.
func (p Path) WithSuffix(suffix string) (Path, error) {
	if suffix != "" && (suffix == "." || !strings.HasPrefix(suffix, ".") || strings.ContainsFunc(suffix, isSep)) {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidSuffix, suffix)
	}

	return p.WithName(p.Stem() + suffix)
}

// Match tests the path against a glob-style pattern. A relative pattern is
// matched against the same number of trailing components; an absolute
// pattern must match the whole path. The wildcard syntax is that of
// [doublestar.Match], which includes "**".
func (p Path) Match(pattern string) (bool, error) {
	if pattern == "" {
		return false, ErrEmptyPattern
	}

	pat := filepath.ToSlash(pattern)
	target := filepath.ToSlash(filepath.Clean(p.s))

	if !filepath.IsAbs(pattern) {
		_, _, comps := splitPath(p.s)

		n := len(strings.Split(strings.Trim(pat, "/"), "/"))
		if n > len(comps) {
			return false, nil
		}

		target = strings.Join(comps[len(comps)-n:], "/")
	}

	ok, err := doublestar.Match(pat, target)
	if err != nil {
		return false, fmt.Errorf("match %q: %w", pattern, err)
	}

	return ok, nil
}

// Exists reports whether the path exists. Any stat failure, including a
// permission error, reports false.
func (p Path) Exists() bool {
	_, err := os.Stat(p.s)

	return err == nil
}

// IsFile reports whether the path exists and is a regular file. Symlinks
// are followed.
func (p Path) IsFile() bool {
	fi, err := os.Stat(p.s)

	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether the path exists and is a directory. Symlinks are
// followed.
func (p Path) IsDir() bool {
	fi, err := os.Stat(p.s)

	return err == nil && fi.IsDir()
}

// IsSymlink reports whether the path itself is a symbolic link. The link
// is not followed.
func (p Path) IsSymlink() bool {
	fi, err := os.Lstat(p.s)

	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

// IsAbs reports whether the path is absolute. Purely lexical.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(p.s)
}

// Glob returns the paths under p matching pattern, in directory-enumeration
// order. The pattern is matched relative to p and may span multiple levels
// with explicit separators or "**".
func (p Path) Glob(pattern string) ([]Path, error) {
	root := p.s
	if root == "" {
		root = "."
	}

	matches, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	out := make([]Path, 0, len(matches))
	for _, m := range matches {
		out = append(out, Path{s: filepath.Join(p.s, filepath.FromSlash(m))})
	}

	return out, nil
}

// RGlob is the recursive form of [Glob]: the pattern is matched against
// entries at any depth under p, including directly beneath it.
func (p Path) RGlob(pattern string) ([]Path, error) {
	return p.Glob(path.Join("**", filepath.ToSlash(pattern)))
}
