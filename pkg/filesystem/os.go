package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/midir/pkg/paths"
)

// osFS implements FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) Canonical(path string) (string, error) {
	return paths.Canonical(path)
}
