// Package caller resolves the source file of the code that called into midir.
package caller

import (
	"path/filepath"
	"runtime"

	"github.com/arthur-debert/midir/pkg/errors"
)

// Location is the source file of a call site, captured explicitly so it can
// be handed to functions that would otherwise inspect the stack themselves.
type Location string

// File returns the path of the source file skip frames above the function
// that called File. File(0) is the caller's own file, File(1) is the file
// of whoever called the caller.
//
// Paths come from the binary's debug information: they are absolute unless
// the binary was built with -trimpath, in which case they are relative to
// the module root.
func File(skip int) (string, error) {
	if skip < 0 {
		return "", errors.Newf(errors.ErrValue, "skip must not be negative, got %d", skip).
			WithDetail("skip", skip)
	}

	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok || file == "" {
		return "", errors.Newf(errors.ErrStackUnderflow, "call stack has no frame %d levels up", skip).
			WithDetail("skip", skip)
	}

	return file, nil
}

// Here captures the source file of the function calling Here.
func Here() Location {
	file, err := File(1)
	if err != nil {
		// Here always has a caller; a missing frame means a broken runtime.
		panic(err)
	}
	return Location(file)
}

// Path returns the location as a plain path string.
func (l Location) Path() string {
	return string(l)
}

// Dir returns the directory containing the location's file.
func (l Location) Dir() string {
	return filepath.Dir(string(l))
}
