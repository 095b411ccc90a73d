package filesystem

import (
	"io/fs"
)

// FS is the filesystem view needed to list directories
type FS interface {
	// Stat returns file info, following symlinks
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of a directory sorted by name
	ReadDir(name string) ([]fs.DirEntry, error)

	// Canonical returns the absolute, symlink-resolved form of a path
	Canonical(path string) (string, error)
}
