// Package registry provides a generic, thread-safe, ordered set. Items keep
// their insertion order and duplicates are ignored, which is the shape of a
// module search path.
package registry
