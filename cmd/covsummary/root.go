package covsummary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zackehh/covsummary/internal/constants"
	"github.com/zackehh/covsummary/internal/coverage"
	"github.com/zackehh/covsummary/internal/environment"
	"github.com/zackehh/covsummary/internal/fileutils"
	"github.com/zackehh/covsummary/internal/i18n"
	"github.com/zackehh/covsummary/internal/logger"
	"github.com/zackehh/covsummary/internal/perf"
	"golang.org/x/term"
)

type rootOptions struct {
	Mode       coverage.Mode
	Dir        string
	ReportPath string
	Debug      bool
}

type rootDeps struct {
	fs     afero.Fs
	logger *logger.Logger
}

type rootRunner func(context.Context, rootOptions, rootDeps) error

func Command() *cobra.Command {
	return commandWithRunner(runRoot)
}

func commandWithRunner(runner rootRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.CommandName + " [mode]",
		Short: i18n.T("app.description"),
		Long: i18n.T("app.long", i18n.Tvars{
			Data: &i18n.TData{
				"cobertura": coverage.SourceFor(coverage.Cobertura).RelativePath,
				"jacoco":    coverage.SourceFor(coverage.Jacoco).RelativePath,
			},
		}),
		Version: environment.AppVersion(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return err
			}
			reportPath, err := cmd.Flags().GetString("report")
			if err != nil {
				return err
			}
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}

			deps := rootDeps{
				fs:     fileutils.InitFilesystem(),
				logger: logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), debug),
			}

			err = runner(cmd.Context(), rootOptions{
				Mode:       coverage.ModeFromArgs(args),
				Dir:        dir,
				ReportPath: reportPath,
				Debug:      debug,
			}, deps)

			if err != nil {
				cmd.SilenceUsage = true
				if isExtractionError(err) {
					// Already reported through deps.logger.
					cmd.SilenceErrors = true
				}
			}
			return err
		},
	}
	cobra.MousetrapHelpText = "" // allow the app to run in windows by clicking the exe

	rootCmd.Flags().StringP("dir", "C", ".", i18n.T("cmd.root.flag.dir"))
	rootCmd.Flags().String("report", "", i18n.T("cmd.root.flag.report"))
	rootCmd.Flags().Bool("debug", false, i18n.T("cmd.root.flag.debug"))

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetHelpTemplate(rootCmd.HelpTemplate() + i18n.T("cmd.help.more", i18n.Tvars{
		Data: &i18n.TData{"url": environment.HelpURL()},
	}) + "\n")

	translateDefaultFlags(rootCmd)
	fixFlagUsageAlignment(rootCmd)

	return rootCmd
}

// translateDefaultFlags localises the help and version flags cobra adds on
// its own. The root has no subcommands, so there is no help command to patch.
func translateDefaultFlags(rootCmd *cobra.Command) {
	rootCmd.InitDefaultHelpFlag()
	rootCmd.InitDefaultVersionFlag()

	flags := rootCmd.Flags()
	if helpFlag := flags.Lookup("help"); helpFlag != nil {
		helpFlag.Usage = i18n.T("cmd.help.template", i18n.Tvars{
			Data: &i18n.TData{"command": rootCmd.Name()},
		})
	}
	if versionFlag := flags.Lookup("version"); versionFlag != nil {
		versionFlag.Usage = i18n.T("cmd.version.flag", i18n.Tvars{
			Data: &i18n.TData{"appName": constants.AppName},
		})
	}
}

func fixFlagUsageAlignment(rootCmd *cobra.Command) {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	usageTemplate := rootCmd.UsageTemplate()
	usageTemplate = strings.ReplaceAll(usageTemplate, ".FlagUsages", fmt.Sprintf(".FlagUsagesWrapped %d", width))
	rootCmd.SetUsageTemplate(usageTemplate)
}

func runRoot(ctx context.Context, opts rootOptions, deps rootDeps) error {
	extractor := coverage.NewExtractor(deps.fs, opts.Dir, coverage.WithReportPath(opts.ReportPath))

	deps.logger.Debug(i18n.T("cmd.root.debug.source", i18n.Tvars{
		Data: &i18n.TData{"mode": opts.Mode.String(), "path": extractor.ReportPath(opts.Mode)},
	}))

	report, err := extractor.Extract(ctx, opts.Mode)
	logSpanDurations(deps.logger)
	if err != nil {
		deps.logger.Error(describeError(opts.Mode, err))
		return err
	}

	deps.logger.Debug(i18n.T("cmd.root.debug.fragments", i18n.Tvars{
		Data: &i18n.TData{"line": report.Fragments.Line, "branch": report.Fragments.Branch},
	}))

	deps.logger.Log(report.String())
	return nil
}

func logSpanDurations(log *logger.Logger) {
	if !log.DebugEnabled() {
		return
	}

	spans, err := perf.GetSpans()
	if err != nil {
		log.Debugf("span snapshot failed: %v", err)
		return
	}
	for _, span := range perf.Durations(spans, "coverage.") {
		log.Debug(i18n.T("cmd.root.debug.span", i18n.Tvars{
			Data: &i18n.TData{"name": span.Name, "duration": span.Duration.String()},
		}))
	}
}
