package lister

import "github.com/rs/zerolog"

// Option configures a listing
type Option func(*options)

type options struct {
	fullPath bool
	files    bool
	folders  bool
	filter   func(string) bool
	logger   *zerolog.Logger
}

func defaultOptions() options {
	return options{
		fullPath: true,
		files:    true,
		folders:  true,
	}
}

// WithFullPath chooses between absolute entries (the default) and entries
// joined onto the path exactly as the caller wrote it.
func WithFullPath(full bool) Option {
	return func(o *options) { o.fullPath = full }
}

// WithFiles includes or excludes regular files. Files are included by default.
func WithFiles(include bool) Option {
	return func(o *options) { o.files = include }
}

// WithFolders includes or excludes directories. Directories are included by default.
func WithFolders(include bool) Option {
	return func(o *options) { o.folders = include }
}

// WithFilter includes every entry whose absolute path satisfies fn, in
// addition to whatever WithFiles and WithFolders select.
func WithFilter(fn func(path string) bool) Option {
	return func(o *options) { o.filter = fn }
}

// WithLogger sets the logger warnings are reported on
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger }
}
