package paths

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/midir/pkg/caller"
	"github.com/arthur-debert/midir/pkg/errors"
)

// Midir returns the directory component of path. An empty path means the
// source file of the function calling Midir.
func Midir(path string) (string, error) {
	if path == "" {
		file, err := caller.File(1)
		if err != nil {
			return "", err
		}
		return filepath.Dir(file), nil
	}
	return filepath.Dir(path), nil
}

// Mipath returns the canonical form of path. An empty path means the source
// file of the function calling Mipath.
func Mipath(path string) (string, error) {
	if path == "" {
		file, err := caller.File(1)
		if err != nil {
			return "", err
		}
		return Canonical(file)
	}
	return Canonical(path)
}

// maxLinks bounds how many symbolic links one Canonical call follows.
const maxLinks = 255

// Canonical makes path absolute and resolves symbolic links one component at
// a time, so ".." applies to the resolved parent rather than to the link
// text. Components that do not exist are kept as written, which lets
// nonexistent paths canonicalize too. A symlink loop stops resolution and
// the rest of the path is appended unresolved.
func Canonical(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
		}
		path = wd + string(filepath.Separator) + path
	}

	r := &resolver{seen: make(map[string]string)}
	vol := filepath.VolumeName(path)
	resolved, _, err := r.join(vol+string(filepath.Separator), path[len(vol):])
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// resolver carries the link bookkeeping of one Canonical call.
type resolver struct {
	// seen maps a link to its resolution, or to "" while it is being resolved
	seen  map[string]string
	links int
}

// join resolves rest on top of base, which is already canonical. It reports
// false when a symlink loop cut resolution short.
func (r *resolver) join(base, rest string) (string, bool, error) {
	names := splitPath(rest)
	for i, name := range names {
		switch name {
		case ".":
			continue
		case "..":
			base = filepath.Dir(base)
			continue
		}

		next := filepath.Join(base, name)
		info, err := os.Lstat(next)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			base = next
			continue
		}

		if target, ok := r.seen[next]; ok {
			if target != "" {
				base = target
				continue
			}
			return joinNames(next, names[i+1:]), false, nil
		}

		r.links++
		if r.links > maxLinks {
			return "", false, errors.Newf(errors.ErrFileAccess, "too many symbolic links resolving %s", next).
				WithDetail("path", next)
		}

		target, err := os.Readlink(next)
		if err != nil {
			return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to read link %s", next)
		}

		start := base
		if filepath.IsAbs(target) {
			vol := filepath.VolumeName(target)
			start = vol + string(filepath.Separator)
			target = target[len(vol):]
		}

		r.seen[next] = ""
		resolved, ok, err := r.join(start, target)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return joinNames(resolved, names[i+1:]), false, nil
		}
		r.seen[next] = resolved
		base = resolved
	}
	return base, true, nil
}

// splitPath returns the non-empty components of path
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(c rune) bool {
		return c < utf8.RuneSelf && os.IsPathSeparator(uint8(c))
	})
}

func joinNames(base string, names []string) string {
	return filepath.Join(append([]string{base}, names...)...)
}

// IsDir reports whether path exists and is a directory, following symlinks.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
