package midir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/midir/internal/version"
	"github.com/arthur-debert/midir/pkg/config"
	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/arthur-debert/midir/pkg/lister"
	"github.com/arthur-debert/midir/pkg/logging"
	"github.com/arthur-debert/midir/pkg/paths"
	"github.com/arthur-debert/midir/pkg/searchpath"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dir <path>",
		Short:   MsgDirShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.Midir(args[0])
			if err != nil {
				return err
			}
			return a.renderer(cmd).Value(dir)
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "path <path>",
		Short:   MsgPathShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.Mipath(args[0])
			if err != nil {
				return err
			}
			return a.renderer(cmd).Value(path)
		},
	}
}

func newLsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls <path>",
		Short:   MsgLsShort,
		Long:    MsgLsLong,
		Example: MsgLsExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := listOptions(a.cfg.Lsdir)
			if err != nil {
				return err
			}

			entries, err := lister.Lsdir(args[0], opts...)
			if err != nil {
				return err
			}

			log.Info().
				Str("path", args[0]).
				Int("entries", len(entries)).
				Msg("Listed directory")

			return a.renderer(cmd).List(fmt.Sprintf(MsgEntriesTitle, args[0]), entries)
		},
	}

	// Values are read back through the configuration overrides
	cmd.Flags().Bool("relative", false, MsgFlagRelative)
	cmd.Flags().Bool("no-files", false, MsgFlagNoFiles)
	cmd.Flags().Bool("no-folders", false, MsgFlagNoFolders)
	cmd.Flags().String("match", "", MsgFlagMatch)

	return cmd
}

// listOptions turns the lsdir configuration into lister options. A glob
// replaces the file and folder selections.
func listOptions(c config.LsdirConfig) ([]lister.Option, error) {
	opts := []lister.Option{lister.WithFullPath(c.FullPath)}

	if c.Match == "" {
		return append(opts, lister.WithFiles(c.Files), lister.WithFolders(c.Folders)), nil
	}

	if _, err := filepath.Match(c.Match, ""); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrBadGlob, c.Match).
			WithDetail("match", c.Match)
	}

	pattern := c.Match
	return append(opts,
		lister.WithFiles(false),
		lister.WithFolders(false),
		lister.WithFilter(func(path string) bool {
			ok, _ := filepath.Match(pattern, filepath.Base(path))
			return ok
		}),
	), nil
}

func newRootGroupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "root",
		Short:   MsgRootCmdShort,
		Long:    MsgRootCmdLong,
		Example: MsgRootExample,
		GroupID: "core",
	}

	var (
		from   string
		export bool
	)
	cmd.PersistentFlags().StringVar(&from, "from", "", MsgFlagFrom)
	cmd.PersistentFlags().BoolVar(&export, "export", false, MsgFlagExport)

	levels := &cobra.Command{
		Use:   "levels [N]",
		Short: MsgLevelsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Root.Levels
			if len(args) == 1 {
				parsed, err := searchpath.ParseLevels(args[0])
				if err != nil {
					return err
				}
				n = parsed
			}

			start, err := startDir(from)
			if err != nil {
				return err
			}

			sp := searchpath.FromEnv(a.cfg.SearchPath.Env)
			if err := searchpath.RootLevelsFrom(sp, start, n); err != nil {
				return err
			}
			return a.printSearchPath(cmd, sp, export)
		},
	}

	suffix := &cobra.Command{
		Use:   "suffix [SUFFIX]",
		Short: MsgSuffixShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.cfg.Root.Suffix
			if len(args) == 1 {
				s = args[0]
			}

			start, err := startDir(from)
			if err != nil {
				return err
			}

			sp := searchpath.FromEnv(a.cfg.SearchPath.Env)
			if err := searchpath.RootSuffixFrom(sp, start, s); err != nil {
				return err
			}
			return a.printSearchPath(cmd, sp, export)
		},
	}

	cmd.AddCommand(levels, suffix)
	return cmd
}

// startDir resolves --from, defaulting to the working directory
func startDir(from string) (string, error) {
	if from == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get working directory")
		}
		from = wd
	}

	if !paths.IsDir(from) {
		return "", errors.Newf(errors.ErrNotADirectory, MsgErrFrom, from).
			WithDetail("path", from)
	}
	return paths.Mipath(from)
}

func (a *app) printSearchPath(cmd *cobra.Command, sp *searchpath.SearchPath, export bool) error {
	r := a.renderer(cmd)
	if export {
		return r.Raw(fmt.Sprintf("export %s=%s\n", a.cfg.SearchPath.Env, shellQuote(searchpath.Export(sp))))
	}
	return r.List(MsgSearchPathTitle, sp.Dirs())
}

// shellQuote wraps s in single quotes for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.renderer(cmd)
			if defaults {
				return r.Raw(config.DefaultContent())
			}

			text, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			return r.Raw(text)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.completion")
			logger.Debug().Str("shell", args[0]).Msg("Generating completion")

			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [DIR]",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", dir)
			}

			header := &doc.GenManHeader{
				Title:   "MIDIR",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to generate man pages")
			}
			return nil
		},
	}
}
