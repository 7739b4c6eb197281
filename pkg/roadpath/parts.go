package roadpath

import (
	"path/filepath"
	"strings"
)

// Parts is the decomposition of a single path produced by [Path.Parse].
// Fields are the empty string or a nil slice when inapplicable.
type Parts struct {
	Drive    string
	Root     string
	Parts    []string
	Name     string
	Stem     string
	Suffix   string
	Suffixes []string
	Parent   string
}

// splitPath decomposes a path string into its drive (volume name), root
// separator, and components. Empty and "." components are dropped, ".."
// components are kept.
func splitPath(s string) (drive, root string, comps []string) {
	drive = filepath.VolumeName(s)
	rest := s[len(drive):]

	if len(rest) > 0 && isSep(rune(rest[0])) {
		root = string(filepath.Separator)
	}

	for _, c := range strings.FieldsFunc(rest, isSep) {
		if c == "." {
			continue
		}

		comps = append(comps, c)
	}

	return drive, root, comps
}

func isSep(r rune) bool {
	return r == '/' || r == filepath.Separator
}

// nameOf returns the final component of s, or "" when s has none (roots,
// ".", "..", and the empty path).
func nameOf(s string) string {
	_, _, comps := splitPath(s)
	if len(comps) == 0 {
		return ""
	}

	if n := comps[len(comps)-1]; n != ".." {
		return n
	}

	return ""
}

// splitSuffix splits a final path component into its stem and last
// extension. A leading dot (hidden files) or a trailing dot does not begin
// an extension.
func splitSuffix(name string) (stem, suffix string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i >= len(name)-1 {
		return name, ""
	}

	return name[:i], name[i:]
}

// splitSuffixes returns every extension of name in order, by repeatedly
// stripping the last extension.
func splitSuffixes(name string) []string {
	var out []string

	for {
		stem, suffix := splitSuffix(name)
		if suffix == "" {
			break
		}

		out = append(out, suffix)
		name = stem
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
