package caller_test

import "github.com/arthur-debert/midir/pkg/caller"

// These helpers live in their own file so tests can tell apart the file of
// the function asking and the file of its caller.

func ownFile() (string, error) {
	return caller.File(0)
}

func callersFile() (string, error) {
	return caller.File(1)
}

func captureHere() caller.Location {
	return caller.Here()
}
