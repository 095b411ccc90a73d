package searchpath

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/midir/pkg/caller"
	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/arthur-debert/midir/pkg/logging"
	"github.com/arthur-debert/midir/pkg/paths"
)

// DefaultLevels is the number of levels registered when none is given
const DefaultLevels = 1

// RootLevels registers the directory of the calling source file and its
// ancestors, levels directories in total, skipping ones already present.
func RootLevels(sp *SearchPath, levels int) error {
	start, err := callerDir()
	if err != nil {
		return err
	}
	return RootLevelsFrom(sp, start, levels)
}

// RootLevelsFrom is RootLevels starting at an explicit directory
func RootLevelsFrom(sp *SearchPath, start string, levels int) error {
	if err := checkTarget(sp, start); err != nil {
		return err
	}
	if levels < 0 {
		return errors.Newf(errors.ErrValue, "levels must not be negative, got %d", levels).
			WithDetail("levels", levels)
	}

	logger := logging.GetLogger("searchpath")
	dir := filepath.Clean(start)
	for i := 0; i < levels; i++ {
		added, err := sp.Add(dir)
		if err != nil {
			return err
		}
		logger.Debug().
			Str("dir", dir).
			Int("level", i).
			Bool("added", added).
			Msg("Visited search path level")
		dir = filepath.Dir(dir)
	}

	return nil
}

// RootSuffix registers the nearest ancestor of the calling source file's
// directory whose name ends with suffix. The directory itself counts as an
// ancestor; the filesystem root does not.
func RootSuffix(sp *SearchPath, suffix string) error {
	start, err := callerDir()
	if err != nil {
		return err
	}
	return RootSuffixFrom(sp, start, suffix)
}

// RootSuffixFrom is RootSuffix starting at an explicit directory.
//
// The walk stops at the first matching directory. If that directory is
// already registered the call succeeds without changing sp.
func RootSuffixFrom(sp *SearchPath, start, suffix string) error {
	if err := checkTarget(sp, start); err != nil {
		return err
	}
	if strings.TrimSpace(suffix) == "" {
		return errors.New(errors.ErrValue, "suffix must not be empty or blank").
			WithDetail("suffix", suffix)
	}

	logger := logging.GetLogger("searchpath")
	dir := filepath.Clean(start)
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		if strings.HasSuffix(filepath.Base(dir), suffix) {
			added, err := sp.Add(dir)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("dir", dir).
				Str("suffix", suffix).
				Bool("added", added).
				Msg("Matched search path suffix")
			return nil
		}

		dir = parent
	}

	return errors.Newf(errors.ErrFolderNotFound, "no ancestor of %s ends with %q", start, suffix).
		WithDetail("suffix", suffix).
		WithDetail("start", start)
}

// ParseLevels converts a textual level count, as found on a command line
func ParseLevels(s string) (int, error) {
	levels, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrType, "levels must be an integer, got %q", s).
			WithDetail("levels", s)
	}
	return levels, nil
}

// LevelsFromValue converts an untyped value, as found in decoded
// configuration, to a level count. Integers of any width and numeric strings
// are accepted; anything else is a type error.
func LevelsFromValue(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, errors.Newf(errors.ErrValue, "levels %d out of range", n)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint:
		if n > math.MaxInt {
			return 0, errors.Newf(errors.ErrValue, "levels %d out of range", n)
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, errors.Newf(errors.ErrValue, "levels %d out of range", n)
		}
		return int(n), nil
	case string:
		return ParseLevels(n)
	default:
		return 0, errors.Newf(errors.ErrType, "levels must be an integer, got %s", typeName(v)).
			WithDetail("levels", v)
	}
}

// SuffixFromValue converts an untyped value to a suffix. Only strings are accepted.
func SuffixFromValue(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.ErrType, "suffix must be a string, got %s", typeName(v)).
			WithDetail("suffix", v)
	}
	return s, nil
}

// callerDir returns the directory of the file that called the public
// mutator, which sits two frames above this function.
func callerDir() (string, error) {
	file, err := caller.File(2)
	if err != nil {
		return "", err
	}
	return paths.Midir(file)
}

func checkTarget(sp *SearchPath, start string) error {
	if sp == nil {
		return errors.New(errors.ErrInvalidInput, "search path is nil")
	}
	if start == "" {
		return errors.New(errors.ErrInvalidInput, "start directory cannot be empty")
	}
	return nil
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
