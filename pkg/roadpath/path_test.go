package roadpath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad/roadpath/pkg/roadpath"
)

func TestPathAccessors(t *testing.T) {
	t.Parallel()

	p := roadpath.New("/x/y/z.tar.gz")

	assert.Equal(t, "z.tar.gz", p.Name())
	assert.Equal(t, "z.tar", p.Stem())
	assert.Equal(t, ".gz", p.Suffix())
	assert.Equal(t, []string{".tar", ".gz"}, p.Suffixes())
	assert.Equal(t, "/x/y", p.Parent().String())
	assert.Equal(t, []string{"/", "x", "y", "z.tar.gz"}, p.Parts())
}

func TestPathAccessors_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("root has no name", func(t *testing.T) {
		t.Parallel()

		p := roadpath.New("/")
		assert.Empty(t, p.Name())
		assert.Empty(t, p.Suffix())
		assert.Empty(t, p.Suffixes())
		assert.Equal(t, "/", p.Parent().String())
	})
	t.Run("hidden file has no suffix", func(t *testing.T) {
		t.Parallel()

		p := roadpath.New("/home/user/.bashrc")
		assert.Equal(t, ".bashrc", p.Name())
		assert.Equal(t, ".bashrc", p.Stem())
		assert.Empty(t, p.Suffix())
		assert.Empty(t, p.Suffixes())
	})
	t.Run("trailing dot is not a suffix", func(t *testing.T) {
		t.Parallel()

		p := roadpath.New("a.")
		assert.Equal(t, "a.", p.Stem())
		assert.Empty(t, p.Suffix())
	})
	t.Run("dot dot has no name", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, roadpath.New("..").Name())
	})
}

func TestPathParents(t *testing.T) {
	t.Parallel()

	t.Run("absolute", func(t *testing.T) {
		t.Parallel()

		parents := roadpath.New("/a/b/c").Parents()
		require.Len(t, parents, 3)
		assert.Equal(t, "/a/b", parents[0].String())
		assert.Equal(t, "/a", parents[1].String())
		assert.Equal(t, "/", parents[2].String())
	})
	t.Run("relative", func(t *testing.T) {
		t.Parallel()

		parents := roadpath.New("a/b").Parents()
		require.Len(t, parents, 2)
		assert.Equal(t, "a", parents[0].String())
		assert.Equal(t, ".", parents[1].String())
	})
	t.Run("root has none", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, roadpath.New("/").Parents())
	})
}

func TestPathParse(t *testing.T) {
	t.Parallel()

	parts := roadpath.New("/home/user/documents/file.txt").Parse()

	assert.Empty(t, parts.Drive)
	assert.Equal(t, "/", parts.Root)
	assert.Equal(t, []string{"/", "home", "user", "documents", "file.txt"}, parts.Parts)
	assert.Equal(t, "file.txt", parts.Name)
	assert.Equal(t, "file", parts.Stem)
	assert.Equal(t, ".txt", parts.Suffix)
	assert.Equal(t, []string{".txt"}, parts.Suffixes)
	assert.Equal(t, "/home/user/documents", parts.Parent)
}

func TestPathEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, roadpath.New("/a/b").Equal(roadpath.New("/a/b/")))
	assert.True(t, roadpath.New("/a/b").Equal(roadpath.New("/a/./b")))
	assert.True(t, roadpath.New("/a//b").Equal(roadpath.New("/a/b")))
	assert.False(t, roadpath.New("a/b").Equal(roadpath.New("/a/b")))
	assert.False(t, roadpath.New("/a/b").Equal(roadpath.New("/a/c")))
}

func TestPathJoin(t *testing.T) {
	t.Parallel()

	t.Run("appends segments", func(t *testing.T) {
		t.Parallel()

		p := roadpath.New("/a").Join("b", "c")
		assert.Equal(t, "/a/b/c", p.String())
	})
	t.Run("absolute segment restarts", func(t *testing.T) {
		t.Parallel()

		p := roadpath.New("/a/b").Join("/etc", "hosts")
		assert.Equal(t, "/etc/hosts", p.String())
	})
}

func TestPathNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a/c", roadpath.New("/a/b/../c").Normalize().String())
	assert.Equal(t, "a/b", roadpath.New("a/./b").Normalize().String())
}

func TestPathRelativeTo(t *testing.T) {
	t.Parallel()

	t.Run("descendant", func(t *testing.T) {
		t.Parallel()

		rel, err := roadpath.New("/a/b/c").RelativeTo(roadpath.New("/a"))
		require.NoError(t, err)
		assert.True(t, rel.Equal(roadpath.New("b/c")))
	})
	t.Run("self", func(t *testing.T) {
		t.Parallel()

		rel, err := roadpath.New("/a/b").RelativeTo(roadpath.New("/a/b"))
		require.NoError(t, err)
		assert.Equal(t, ".", rel.String())
	})
	t.Run("unrelated base", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New("/a/b/c").RelativeTo(roadpath.New("/z"))
		require.ErrorIs(t, err, roadpath.ErrNotRelative)
	})
	t.Run("mixed absolute and relative", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New("a/b").RelativeTo(roadpath.New("/a"))
		require.ErrorIs(t, err, roadpath.ErrNotRelative)
	})
}

func TestPathWithName(t *testing.T) {
	t.Parallel()

	t.Run("replaces name", func(t *testing.T) {
		t.Parallel()

		p, err := roadpath.New("/a/b.txt").WithName("c.md")
		require.NoError(t, err)
		assert.Equal(t, "/a/c.md", p.String())
	})
	t.Run("root has no name", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New("/").WithName("c.md")
		require.ErrorIs(t, err, roadpath.ErrNoName)
	})
	t.Run("rejects separator", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New("/a/b").WithName("c/d")
		require.ErrorIs(t, err, roadpath.ErrInvalidName)
	})
	t.Run("rejects empty", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New("/a/b").WithName("")
		require.ErrorIs(t, err, roadpath.ErrInvalidName)
	})
}

func TestPathWithStem(t *testing.T) {
	t.Parallel()

	p, err := roadpath.New("/a/b.tar.gz").WithStem("c")
	require.NoError(t, err)
	assert.Equal(t, "/a/c.gz", p.String())
}

func TestPathWithSuffix(t *testing.T) {
	t.Parallel()

	t.Run("replaces suffix", func(t *testing.T) {
		t.Parallel()

		p, err := roadpath.New("/a/b.tar.gz").WithSuffix(".bz2")
		require.NoError(t, err)
		assert.Equal(t, "/a/b.tar.bz2", p.String())
	})
	t.Run("empty suffix removes", func(t *testing.T) {
		t.Parallel()

		p, err := roadpath.New("/a/b.tar.gz").WithSuffix("")
		require.NoError(t, err)
		assert.Equal(t, "/a/b.tar", p.String())
	})
	t.Run("missing dot", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New("/a/b.txt").WithSuffix("md")
		require.ErrorIs(t, err, roadpath.ErrInvalidSuffix)
	})
	t.Run("root has no name", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New("/").WithSuffix(".txt")
		require.ErrorIs(t, err, roadpath.ErrNoName)
	})
}

func TestPathMatch(t *testing.T) {
	t.Parallel()

	p := roadpath.New("/x/y/z.tar.gz")

	t.Run("matches final component", func(t *testing.T) {
		t.Parallel()

		ok, err := p.Match("*.gz")
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("matches trailing components", func(t *testing.T) {
		t.Parallel()

		ok, err := p.Match("y/*.gz")
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		ok, err := p.Match("*.tar")
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("absolute pattern matches whole path", func(t *testing.T) {
		t.Parallel()

		ok, err := p.Match("/x/**")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = p.Match("/y/**")
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("empty pattern", func(t *testing.T) {
		t.Parallel()

		_, err := p.Match("")
		require.ErrorIs(t, err, roadpath.ErrEmptyPattern)
	})
}

func TestPathFilesystemQueries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("test"), 0o600))

	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(file, link))

	assert.True(t, roadpath.New(dir).Exists())
	assert.True(t, roadpath.New(dir).IsDir())
	assert.False(t, roadpath.New(dir).IsFile())

	assert.True(t, roadpath.New(file).Exists())
	assert.True(t, roadpath.New(file).IsFile())
	assert.False(t, roadpath.New(file).IsSymlink())

	assert.True(t, roadpath.New(link).IsSymlink())
	assert.True(t, roadpath.New(link).IsFile(), "stat follows the link")

	missing := roadpath.New(filepath.Join(dir, "missing"))
	assert.False(t, missing.Exists())
	assert.False(t, missing.IsFile())
	assert.False(t, missing.IsDir())
	assert.False(t, missing.IsSymlink())

	assert.True(t, roadpath.New(dir).IsAbs())
	assert.False(t, roadpath.New("a/b").IsAbs())
}

func TestPathResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("test"), 0o600))

	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(file, link))

	t.Run("follows symlinks", func(t *testing.T) {
		t.Parallel()

		want, err := roadpath.Resolve(file)
		require.NoError(t, err)

		got, err := roadpath.New(link).Resolve()
		require.NoError(t, err)
		assert.Equal(t, want, got.String())
	})
	t.Run("missing path surfaces the platform error", func(t *testing.T) {
		t.Parallel()

		_, err := roadpath.New(filepath.Join(dir, "missing")).Resolve()
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestPathAbsolute(t *testing.T) {
	t.Parallel()

	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := roadpath.New("x/y").Absolute()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "x", "y"), p.String())
}

func TestPathGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, f := range []string{"a.txt", "b.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o600))
	}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.txt"), nil, 0o600))

	p := roadpath.New(dir)

	t.Run("direct children", func(t *testing.T) {
		t.Parallel()

		matches, err := p.Glob("*.txt")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.txt"),
		}, pathStrings(matches))
	})
	t.Run("pattern with separator", func(t *testing.T) {
		t.Parallel()

		matches, err := p.Glob("sub/*.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "sub", "c.txt")}, pathStrings(matches))
	})
	t.Run("recursive", func(t *testing.T) {
		t.Parallel()

		matches, err := p.RGlob("*.txt")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.txt"),
			filepath.Join(dir, "sub", "c.txt"),
		}, pathStrings(matches))
	})
	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		matches, err := p.Glob("*.json")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestFactories(t *testing.T) {
	t.Parallel()

	cwd, err := roadpath.Cwd()
	require.NoError(t, err)
	assert.True(t, cwd.IsAbs())

	home, err := roadpath.Home()
	require.NoError(t, err)
	assert.True(t, home.IsAbs())

	assert.NotEmpty(t, roadpath.Temp().String())
}

func pathStrings(paths []roadpath.Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.String())
	}

	return out
}
