// Package filesystem provides the read-only filesystem view used by midir.
//
// The FS interface covers what directory listing needs: metadata, directory
// entries and path canonicalization. NewOS talks to the real filesystem;
// NewAferoFS adapts any afero.Fs, which keeps tests in memory.
package filesystem
