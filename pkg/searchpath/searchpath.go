package searchpath

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/arthur-debert/midir/pkg/registry"
)

// EnvSearchPath is the environment variable the default search path is seeded from
const EnvSearchPath = "MIDIR_PATH"

// SearchPath is an ordered, duplicate-free list of directories
type SearchPath struct {
	dirs registry.Registry[string]
}

var (
	defaultOnce sync.Once
	defaultPath *SearchPath
)

// New creates a SearchPath holding dirs in order. Empty entries are skipped.
func New(dirs ...string) *SearchPath {
	sp := &SearchPath{dirs: registry.New[string]()}
	for _, dir := range dirs {
		if dir != "" {
			sp.dirs.Append(dir)
		}
	}
	return sp
}

// FromEnv creates a SearchPath from the list held by the named environment variable
func FromEnv(name string) *SearchPath {
	return New(filepath.SplitList(os.Getenv(name))...)
}

// Default returns the process wide SearchPath, seeded from MIDIR_PATH on first use
func Default() *SearchPath {
	defaultOnce.Do(func() {
		defaultPath = FromEnv(EnvSearchPath)
	})
	return defaultPath
}

// Add appends dir unless it is already present and reports whether it was added
func (sp *SearchPath) Add(dir string) (bool, error) {
	if dir == "" {
		return false, errors.New(errors.ErrInvalidInput, "search path directory cannot be empty")
	}
	return sp.dirs.Append(dir), nil
}

// Contains reports whether dir is registered
func (sp *SearchPath) Contains(dir string) bool {
	return sp.dirs.Has(dir)
}

// Dirs returns the registered directories in order
func (sp *SearchPath) Dirs() []string {
	return sp.dirs.List()
}

// Len returns the number of registered directories
func (sp *SearchPath) Len() int {
	return sp.dirs.Count()
}

// String joins the directories with the platform list separator
func (sp *SearchPath) String() string {
	return Export(sp)
}

// Export renders sp in the form FromEnv reads
func Export(sp *SearchPath) string {
	return strings.Join(sp.Dirs(), string(os.PathListSeparator))
}
