package lister

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/arthur-debert/midir/pkg/filesystem"
	"github.com/arthur-debert/midir/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDir creates b.txt, a.txt and sub/ under a fresh temp directory and
// returns the directory as created and in canonical form.
func setupDir(t *testing.T) (dir, canonical string) {
	t.Helper()
	dir = t.TempDir()
	testutil.CreateFile(t, dir, "b.txt", "b")
	testutil.CreateFile(t, dir, "a.txt", "a")
	testutil.CreateDir(t, dir, "sub")

	canonical, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return dir, canonical
}

func quietLogger() Option {
	return WithLogger(zerolog.Nop())
}

func TestLsdirDefaults(t *testing.T) {
	dir, canonical := setupDir(t)

	got, err := Lsdir(dir, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(canonical, "a.txt"),
		filepath.Join(canonical, "b.txt"),
		filepath.Join(canonical, "sub"),
	}, got)
}

func TestLsdirSelection(t *testing.T) {
	dir, canonical := setupDir(t)
	isText := func(p string) bool { return strings.HasSuffix(p, ".txt") }

	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{
			name: "files only",
			opts: []Option{WithFolders(false)},
			want: []string{filepath.Join(canonical, "a.txt"), filepath.Join(canonical, "b.txt")},
		},
		{
			name: "folders only",
			opts: []Option{WithFiles(false)},
			want: []string{filepath.Join(canonical, "sub")},
		},
		{
			name: "filter only",
			opts: []Option{WithFiles(false), WithFolders(false), WithFilter(func(p string) bool {
				return filepath.Base(p) == "b.txt"
			})},
			want: []string{filepath.Join(canonical, "b.txt")},
		},
		{
			name: "filter adds to folders",
			opts: []Option{WithFiles(false), WithFilter(func(p string) bool {
				return filepath.Base(p) == "a.txt"
			})},
			want: []string{filepath.Join(canonical, "a.txt"), filepath.Join(canonical, "sub")},
		},
		{
			name: "filter rejecting everything selects nothing",
			opts: []Option{WithFiles(false), WithFolders(false), WithFilter(func(string) bool { return false })},
			want: []string{},
		},
		{
			name: "relative entries use the path as given",
			opts: []Option{WithFullPath(false), WithFolders(false), WithFilter(isText)},
			want: []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lsdir(dir, append(tt.opts, quietLogger())...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLsdirFilterReceivesFullPaths(t *testing.T) {
	dir, canonical := setupDir(t)

	var seen []string
	_, err := Lsdir(dir, WithFiles(false), WithFolders(false), WithFilter(func(p string) bool {
		seen = append(seen, p)
		return true
	}), quietLogger())
	require.NoError(t, err)

	for _, p := range seen {
		assert.Equal(t, canonical, filepath.Dir(p))
	}
	assert.Len(t, seen, 3)
}

func TestLsdirErrors(t *testing.T) {
	dir, _ := setupDir(t)

	t.Run("nothing requested", func(t *testing.T) {
		_, err := Lsdir(dir, WithFiles(false), WithFolders(false), quietLogger())
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument), "got %v", err)
	})

	t.Run("path is a file", func(t *testing.T) {
		_, err := Lsdir(filepath.Join(dir, "a.txt"), quietLogger())
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory), "got %v", err)
	})

	t.Run("path does not exist", func(t *testing.T) {
		_, err := Lsdir(filepath.Join(dir, "missing"), quietLogger())
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory), "got %v", err)
	})

	t.Run("path with a NUL byte", func(t *testing.T) {
		_, err := Lsdir(dir+"\x00", quietLogger())
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory), "got %v", err)
	})
}

func TestLsdirEmptyPathIsWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	canonicalWd, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)

	got, err := Lsdir("", WithFolders(false), quietLogger())
	require.NoError(t, err)
	assert.Contains(t, got, filepath.Join(canonicalWd, "lister.go"))

	got, err = Lsdir("", WithFullPath(false), WithFolders(false), quietLogger())
	require.NoError(t, err)
	assert.Contains(t, got, "lister.go")
}

func TestLsdirRelativePathsAreCleaned(t *testing.T) {
	dir, _ := setupDir(t)

	got, err := Lsdir(filepath.Join(dir, "sub")+string(filepath.Separator)+"..", WithFullPath(false), WithFolders(false), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, got)
}

func TestLsdirWarnsOnMixedSelection(t *testing.T) {
	dir, _ := setupDir(t)
	always := WithFilter(func(string) bool { return true })

	t.Run("filter with files and folders", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := Lsdir(dir, always, WithLogger(zerolog.New(&buf)))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"level":"warn"`)
		assert.Contains(t, buf.String(), "Filter combined")
	})

	t.Run("filter alone", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := Lsdir(dir, always, WithFiles(false), WithFolders(false), WithLogger(zerolog.New(&buf)))
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "Filter combined")
	})
}

func TestLsdirSymlinks(t *testing.T) {
	dir, canonical := setupDir(t)
	if err := os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link-dir")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link-file")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")))

	t.Run("links count as their targets", func(t *testing.T) {
		got, err := Lsdir(dir, WithFiles(false), quietLogger())
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(canonical, "link-dir"), filepath.Join(canonical, "sub")}, got)
	})

	t.Run("dangling links only through the filter", func(t *testing.T) {
		got, err := Lsdir(dir, quietLogger())
		require.NoError(t, err)
		assert.NotContains(t, got, filepath.Join(canonical, "dangling"))

		got, err = Lsdir(dir, WithFiles(false), WithFolders(false), WithFilter(func(p string) bool {
			return filepath.Base(p) == "dangling"
		}), quietLogger())
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(canonical, "dangling")}, got)
	})

	t.Run("listing through a linked directory", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inner.txt"), nil, 0644))
		got, err := Lsdir(filepath.Join(dir, "link-dir"), quietLogger())
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(canonical, "sub", "inner.txt")}, got)
	})
}

func TestListerInMemory(t *testing.T) {
	root := filepath.FromSlash("/project")
	mem := testutil.NewMemoryTree(t, root, map[string]string{
		"pkg/":      "",
		"cmd/":      "",
		"go.mod":    "module x",
		"README.md": "#",
	})

	l := New(filesystem.NewAferoFS(mem), WithFullPath(false), quietLogger())

	got, err := l.List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "README.md"),
		filepath.Join(root, "cmd"),
		filepath.Join(root, "go.mod"),
		filepath.Join(root, "pkg"),
	}, got)

	got, err = l.List(root, WithFiles(false))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "cmd"), filepath.Join(root, "pkg")}, got)

	_, err = l.List(filepath.Join(root, "go.mod"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory))
}
