package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// RealTempDir creates a temporary directory and returns it with symbolic
// links resolved, so it compares equal to canonicalized paths on systems
// where the temp root is itself a link.
func RealTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	return dir
}

// CreateFile creates a file with the given content in the specified directory.
// Parent directories are created as needed.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates the directory parent/parts... and returns its path.
func CreateDir(t *testing.T, parent string, parts ...string) string {
	t.Helper()

	path := filepath.Join(append([]string{parent}, parts...)...)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// CreateSymlink creates a symbolic link pointing to target.
func CreateSymlink(t *testing.T, target, link string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}

	return link
}

// ListingTree creates b.txt, a.txt and sub/ in a fresh real temp directory
func ListingTree(t *testing.T) string {
	t.Helper()

	dir := RealTempDir(t)
	CreateFile(t, dir, "b.txt", "b")
	CreateFile(t, dir, "a.txt", "a")
	CreateDir(t, dir, "sub")
	return dir
}
