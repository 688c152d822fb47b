package tmplfill

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tmplfill/internal/version"
	"github.com/arthur-debert/tmplfill/pkg/batch"
	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/logging"
	"github.com/arthur-debert/tmplfill/pkg/menu"
	"github.com/arthur-debert/tmplfill/pkg/paths"
	"github.com/arthur-debert/tmplfill/pkg/settings"
	"github.com/arthur-debert/tmplfill/pkg/types"
	"github.com/arthur-debert/tmplfill/pkg/ui"
)

func newRunCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:               "run [option-id]",
		Short:             MsgRunShort,
		Long:              MsgRunLong,
		Example:           MsgRunExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: a.optionIDCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.run")

			if all && len(args) > 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrAllWithID)
			}

			s, err := a.loadSettings()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			runner := batch.NewRunner(batch.Options{
				FS:         a.fs,
				Delimiters: s.Delimiters,
				DryRun:     a.dryRun,
			})

			if all {
				return runAll(runner, r, s.Options)
			}

			var option types.Option
			if len(args) == 1 {
				if option, err = s.Option(args[0]); err != nil {
					return err
				}
			} else {
				var ok bool
				option, ok, err = menu.New(cmd.InOrStdin(), cmd.OutOrStdout()).Choose(s.Options)
				if err != nil {
					return err
				}
				if !ok {
					return r.RenderMessage(MsgCancelled)
				}
			}

			logger.Info().Str("option", option.ID).Bool("dry_run", a.dryRun).Msg("running option")
			result, err := runner.Run(option)
			if err != nil {
				return err
			}
			return r.RenderRun(result)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	return cmd
}

// runAll reports every outcome and fails when any option failed
func runAll(runner *batch.Runner, r ui.Renderer, options []types.Option) error {
	outcomes := runner.RunAll(options)
	for _, o := range outcomes {
		var err error
		if o.Err != nil {
			err = r.RenderError(o.Err)
		} else {
			err = r.RenderRun(o.Result)
		}
		if err != nil {
			return err
		}
	}

	if failed := batch.Failed(outcomes); failed > 0 {
		return errors.Newf(errors.ErrOptionFailed, MsgErrOptionsFail, failed, len(outcomes)).
			WithDetail("failed", failed)
	}
	return nil
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSettings()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderOptions(ui.OptionList{
				Source:     s.Path,
				Delimiters: s.Delimiters,
				Options:    s.Options,
			})
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "check <option-id>",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.optionIDCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSettings()
			if err != nil {
				return err
			}
			option, err := s.Option(args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			runner := batch.NewRunner(batch.Options{FS: a.fs, Delimiters: s.Delimiters})
			result, err := runner.Check(option)
			if err != nil {
				return err
			}
			return r.RenderCheck(result)
		},
	}
}

func newInitCmd(a *app) *cobra.Command {
	var (
		kind  string
		force bool
	)

	cmd := &cobra.Command{
		Use:     "init [path]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.DefaultSettingsFile
			if len(args) == 1 {
				path = paths.ExpandHome(args[0])
			}

			format := settings.FormatFromPath(path)
			if kind != "" {
				var err error
				if format, err = settings.ParseFormat(kind); err != nil {
					return err
				}
			}

			if err := settings.WriteFile(a.fs, path, settings.Sample(), format, force); err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgSettingsWrote, path))
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", MsgFlagType)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(settings.Formats))
		for i, f := range settings.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
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
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, args[0])
			}
		},
	}
}
