// Package testutil provides helpers for testing midir components.
//
// Key components:
//   - Directory trees: RealTempDir, CreateFile, CreateDir, CreateSymlink
//   - Environment isolation: IsolateEnv
//   - In-memory trees: NewMemoryTree, backed by afero
//
// Every helper fails the test on error, so callers never check results.
package testutil
