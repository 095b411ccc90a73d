package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// NewMemoryTree builds an in-memory filesystem under root. Keys of layout
// are slash separated paths relative to root; a trailing slash makes a
// directory, anything else a file holding the value.
func NewMemoryTree(t *testing.T, root string, layout map[string]string) afero.Fs {
	t.Helper()

	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", root, err)
	}

	for name, content := range layout {
		path := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(name, "/")))

		if strings.HasSuffix(name, "/") {
			if err := mem.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			continue
		}

		if err := mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", path, err)
		}
		if err := afero.WriteFile(mem, path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	return mem
}
