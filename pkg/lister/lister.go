// Package lister lists the immediate children of a directory, selecting
// files, folders or entries accepted by a predicate.
package lister

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/arthur-debert/midir/pkg/filesystem"
	"github.com/arthur-debert/midir/pkg/logging"
	"github.com/arthur-debert/midir/pkg/paths"
)

// Lister lists directories on a filesystem
type Lister struct {
	fs       filesystem.FS
	defaults []Option
}

// New creates a Lister over fs. The options become defaults for every List call.
func New(fs filesystem.FS, opts ...Option) *Lister {
	return &Lister{fs: fs, defaults: opts}
}

// Lsdir lists path on the OS filesystem
func Lsdir(path string, opts ...Option) ([]string, error) {
	return New(filesystem.NewOS()).List(path, opts...)
}

// List returns the sorted entries of the directory at path selected by opts
func (l *Lister) List(path string, opts ...Option) ([]string, error) {
	o := defaultOptions()
	for _, opt := range l.defaults {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.GetLogger("lister")
	if o.logger != nil {
		logger = *o.logger
	}
	done := logging.LogOperationStart(logger, "lsdir")
	defer done()

	// An empty path is the working directory; anything else that cannot
	// name a file cannot name a directory either.
	if path != "" {
		if err := paths.ValidatePath(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrNotADirectory, "%q is not a directory", path).
				WithDetail("path", path)
		}
	}

	dir, err := l.fs.Canonical(path)
	if err != nil {
		return nil, err
	}

	info, err := l.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", path).
			WithDetail("path", path).
			WithDetail("resolved", dir)
	}

	if !o.files && !o.folders && o.filter == nil {
		return nil, errors.New(errors.ErrInvalidArgument,
			"nothing to list: files, folders and filter are all disabled")
	}

	if o.filter != nil && (o.files || o.folders) {
		logger.Warn().
			Str("path", path).
			Bool("files", o.files).
			Bool("folders", o.folders).
			Msg("Filter combined with files/folders selection; entries matching either are listed")
	}

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %s", dir)
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if !l.selected(full, o) {
			continue
		}
		if o.fullPath {
			result = append(result, full)
		} else {
			result = append(result, filepath.Join(path, entry.Name()))
		}
	}

	sort.Strings(result)
	return result, nil
}

// selected classifies an entry by what it points to, so symlinks count as
// their targets and dangling links match only through the filter.
func (l *Lister) selected(full string, o options) bool {
	if info, err := l.fs.Stat(full); err == nil {
		if o.files && info.Mode().IsRegular() {
			return true
		}
		if o.folders && info.IsDir() {
			return true
		}
	}
	return o.filter != nil && o.filter(full)
}
