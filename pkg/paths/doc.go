// Package paths answers two questions about a path: where does it really
// live, and which directory holds it.
//
// Both operations accept an empty string to mean "the file of the code that
// called me". The caller's file is found with runtime introspection (see
// pkg/caller), so a test file can ask for its own directory without knowing
// where the repository was checked out:
//
//	dir, err := paths.Midir("")   // directory of the calling source file
//	file, err := paths.Mipath("") // canonical path of the calling source file
//
// # Midir
//
// Midir returns the parent directory of a path. Given an explicit path it is
// a pure string operation: nothing is read from disk and relative paths stay
// relative. The result is cleaned, so Midir("/a/b/../c") is "/a".
//
// # Mipath
//
// Mipath returns the canonical form of a path: absolute, with symbolic links
// resolved. Components are resolved left to right, so "link/../c" names the
// sibling of the link's target, not of the link. The path does not need to
// exist: missing components are kept as written and dangling links are
// followed to their targets.
package paths
