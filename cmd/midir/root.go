package midir

import (
	"github.com/arthur-debert/midir/internal/version"
	"github.com/arthur-debert/midir/pkg/config"
	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/arthur-debert/midir/pkg/logging"
	"github.com/arthur-debert/midir/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the state shared by every command of one invocation
type app struct {
	verbosity  int
	format     string
	configFile string

	cfg *config.Config
}

// flagOverrides maps command line flags to the configuration keys they
// override. Only flags the user actually set are applied.
var flagOverrides = map[string]func(f *pflag.Flag) (string, interface{}){
	"format":     func(f *pflag.Flag) (string, interface{}) { return "output.format", f.Value.String() },
	"relative":   func(f *pflag.Flag) (string, interface{}) { return "lsdir.full_path", f.Value.String() != "true" },
	"no-files":   func(f *pflag.Flag) (string, interface{}) { return "lsdir.files", f.Value.String() != "true" },
	"no-folders": func(f *pflag.Flag) (string, interface{}) { return "lsdir.folders", f.Value.String() != "true" },
	"match":      func(f *pflag.Flag) (string, interface{}) { return "lsdir.match", f.Value.String() },
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "midir",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", output.FormatAuto.String(), MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDirCmd(a))
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newLsCmd(a))
	rootCmd.AddCommand(newRootGroupCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig reads every configuration layer, with the flags set on cmd
// applied last
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := make(map[string]interface{})
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if override, ok := flagOverrides[f.Name]; ok {
			key, value := override(f)
			overrides[key] = value
		}
	})

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}

	log.Debug().
		Int("root.levels", cfg.Root.Levels).
		Str("output.format", cfg.Output.Format.String()).
		Int("overrides", len(overrides)).
		Msg("Configuration loaded")

	a.cfg = cfg
	return nil
}

// renderer returns a renderer on the command's output in the configured format
func (a *app) renderer(cmd *cobra.Command) *output.Renderer {
	format := output.FormatAuto
	if a.cfg != nil {
		format = a.cfg.Output.Format
	}
	return output.NewRenderer(cmd.OutOrStdout(), format)
}
