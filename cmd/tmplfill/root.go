package tmplfill

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tmplfill/internal/version"
	"github.com/arthur-debert/tmplfill/pkg/cobrax/topics"
	"github.com/arthur-debert/tmplfill/pkg/config"
	"github.com/arthur-debert/tmplfill/pkg/filesystem"
	"github.com/arthur-debert/tmplfill/pkg/logging"
	"github.com/arthur-debert/tmplfill/pkg/paths"
	"github.com/arthur-debert/tmplfill/pkg/settings"
	"github.com/arthur-debert/tmplfill/pkg/types"
	"github.com/arthur-debert/tmplfill/pkg/ui"
)

// app carries the global flags and what PersistentPreRunE builds from them
type app struct {
	verbosity    int
	settingsPath string
	format       string
	dryRun       bool

	fs    types.FS
	paths paths.Paths
	cfg   *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "tmplfill",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.settingsPath, "settings", "s", "", MsgFlagSettings)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVarP(&a.dryRun, "dry-run", "n", false, MsgFlagDryRun)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	renderer := topics.NewGlamourRenderer()
	if !stdoutIsTerminal() {
		renderer = topics.NewPlainGlamourRenderer()
	}
	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   renderer,
	}
	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// setup layers configuration, applies explicitly set flags on top and
// starts logging
func (a *app) setup(cmd *cobra.Command) error {
	p, err := paths.New()
	if err != nil {
		return err
	}
	a.paths = p

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return err
	}

	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("settings") {
		overrides["settings.path"] = a.settingsPath
	}
	if flags.Changed("format") {
		overrides["output.format"] = a.format
	}
	if flags.Changed("verbose") {
		overrides["log.verbosity"] = a.verbosity
	}
	if len(overrides) > 0 {
		if cfg, err = cfg.Overrides(overrides); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = p.LogFilePath()
	}
	logging.SetupLoggerWithOutput(cfg.Log.Verbosity, paths.ExpandHome(logFile), cmd.ErrOrStderr())
	logging.LogCommand(cmd.CommandPath(), flags.Args())

	return nil
}

// loadSettings finds and loads the settings document
func (a *app) loadSettings() (*settings.Settings, error) {
	path, err := a.paths.FindSettings(a.cfg.Settings.Path)
	if err != nil {
		return nil, err
	}
	return settings.Load(a.fs, path)
}

// renderer returns the output renderer chosen by output.format
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// optionIDCompletion completes option ids from the settings document. It
// runs before PersistentPreRunE, so it resolves paths itself.
func (a *app) optionIDCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	p, err := paths.New()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	path, err := p.FindSettings(a.settingsPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	s, err := settings.Load(a.fs, path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	ids := make([]string, 0, len(s.Options))
	for _, opt := range s.Options {
		ids = append(ids, opt.ID+"\t"+opt.Name)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
