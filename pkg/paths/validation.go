package paths

import (
	"strings"

	"github.com/arthur-debert/midir/pkg/errors"
)

// maxPathLength mirrors the common PATH_MAX filesystem limit.
const maxPathLength = 4096

// ValidatePath rejects paths that can never name a file: empty strings,
// strings with NUL bytes and strings longer than the filesystem limit.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(path) > maxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}
