package midir

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Locate directories relative to source files and extend search paths"
	MsgDirShort        = "Print the directory containing a path"
	MsgPathShort       = "Print the canonical absolute form of a path"
	MsgLsShort         = "List the entries of a directory"
	MsgRootCmdShort    = "Add ancestor directories to the search path"
	MsgLevelsShort     = "Add the start directory and its ancestors, N levels in total"
	MsgSuffixShort     = "Add the nearest ancestor whose name ends with SUFFIX"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into DIR"

	// Output titles
	MsgSearchPathTitle = "Search path"
	MsgEntriesTitle    = "Entries of %s"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrBadGlob   = "invalid --match pattern %q"
	MsgErrFrom      = "--from %s is not a directory"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat    = "Output format: auto, text, json or yaml"
	MsgFlagConfig    = "Configuration file (default .midir.toml in the working directory)"
	MsgFlagRelative  = "Print entries joined onto the path as given instead of absolute"
	MsgFlagNoFiles   = "Leave regular files out"
	MsgFlagNoFolders = "Leave directories out"
	MsgFlagMatch     = "Only list entries whose name matches GLOB"
	MsgFlagFrom      = "Start directory (default the working directory)"
	MsgFlagExport    = "Print an export statement for eval instead of the list"
	MsgFlagDefaults  = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/ls-long.txt
	msgLsLongRaw string
	MsgLsLong    = strings.TrimSpace(msgLsLongRaw)

	//go:embed msgs/ls-example.txt
	msgLsExampleRaw string
	MsgLsExample    = strings.TrimSpace(msgLsExampleRaw)

	//go:embed msgs/root-cmd-long.txt
	msgRootCmdLongRaw string
	MsgRootCmdLong    = strings.TrimSpace(msgRootCmdLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
