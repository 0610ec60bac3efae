package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"japa/internal/bootstrap"
	goaldto "japa/internal/modules/goal/dto"
	settingsdto "japa/internal/modules/settings/dto"
	"japa/internal/platform/config"
	"japa/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "japa",
		Short:         "Mantra repetition counter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "directory holding config.yaml and the .japa state dir")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newTapCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newClearCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	root.AddCommand(newSeriesCmd(&dataDir))
	root.AddCommand(newSummaryCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newCatalogCmd(&dataDir))
	root.AddCommand(newTransliterateCmd(&dataDir))
	root.AddCommand(newPluginCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	if dir := os.Getenv("JAPA_HOME"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "japa")
	}
	return "."
}

// loadApp wires the application with logs on stderr. Callers must Close it.
func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if lvl, err := zerolog.ParseLevel(level); err != nil || lvl < zerolog.WarnLevel {
		level = zerolog.WarnLevel.String()
	}
	return bootstrap.New(cfg, logging.NewConsole(level, os.Stderr))
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(dataDir string, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the japa terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New(*dataDir)
			if err != nil {
				return err
			}
			// the alt screen owns the terminal, so logs go to a file
			log, closer, err := logging.NewFile(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			app, err := bootstrap.New(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newTapCmd(dataDir *string) *cobra.Command {
	var chant string
	var times int
	cmd := &cobra.Command{
		Use:   "tap",
		Short: "Record one recitation of the active chant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				ctx := context.Background()
				name := chant
				if name == "" {
					s, err := app.SettingsCLI.Show(ctx)
					if err != nil {
						return err
					}
					name = s.ChantName
				}
				if times < 1 {
					return fmt.Errorf("--times must be at least 1")
				}
				for i := 0; i < times; i++ {
					out, err := app.SessionCLI.Tap(ctx, name)
					if err != nil {
						return err
					}
					if i == times-1 {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d counts (%.2f malas) in session %s\n",
							out.Session.ChantName, out.Session.TotalCounts, out.Session.TotalMalas, out.Session.ID)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&chant, "chant", "", "chant name (default: active chant)")
	cmd.Flags().IntVar(&times, "times", 1, "number of taps to record")
	return cmd
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.SessionCLI.History(context.Background())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "TIME\tCHANT\tCOUNTS\tMALAS\tDURATION")
				for i, s := range out.Sessions {
					if limit > 0 && i >= limit {
						break
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%ds\n",
						s.Timestamp.Format("2006-01-02 15:04"), s.ChantName, s.TotalCounts, s.TotalMalas, s.DurationSeconds)
				}
				_, _ = fmt.Fprintf(w, "\t\t%d total\t\t\n", out.TotalCounts)
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most n sessions (0 = all)")
	return cmd
}

func newClearCmd(dataDir *string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := app.SessionCLI.Clear(context.Background(), yes); err != nil {
					return fmt.Errorf("%w (pass --yes)", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all history")
	return cmd
}

func newExportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write per-day markdown journal notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.SessionCLI.Export(context.Background(), args[0])
				if err != nil {
					return err
				}
				for _, p := range out.Paths {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d day(s)\n", out.Days)
				return nil
			})
		},
	}
}

func rangeArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newProgressCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "progress [daily|weekly|monthly|yearly]",
		Short: "Show progress against the goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.GoalCLI.Progress(context.Background(), rangeArg(args))
				if err != nil {
					return err
				}
				printProgress(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func printProgress(w io.Writer, p goaldto.ProgressOutput) {
	if p.GoalType == "none" || p.Target == 0 {
		_, _ = fmt.Fprintf(w, "%s: %d counts (no goal)\n", p.Range, p.Current)
		return
	}
	_, _ = fmt.Fprintf(w, "%s: %d / %d (%.1f%%) goal=%s %d\n", p.Range, p.Current, p.Target, p.Percent, p.GoalType, p.GoalValue)
}

func newSeriesCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "series [daily|weekly|monthly|yearly]",
		Short: "Show counts per bucket for charting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.GoalCLI.Series(context.Background(), rangeArg(args))
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, p := range out.Points {
					_, _ = fmt.Fprintf(w, "%s\t%d\n", p.Label, p.Count)
				}
				_, _ = fmt.Fprintf(w, "total\t%d\n", out.Total)
				return w.Flush()
			})
		},
	}
}

func newSummaryCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today and lifetime totals for the active chant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.GoalCLI.Summary(context.Background())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "chant:    %s\n", out.ChantName)
				_, _ = fmt.Fprintf(w, "today:    %d counts, %s malas\n", out.TodayCounts, out.TodayMalas)
				_, _ = fmt.Fprintf(w, "lifetime: %d counts, %s malas\n", out.LifetimeCounts, out.LifetimeMalas)
				printProgress(w, out.Daily)
				return nil
			})
		},
	}
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show or change preferences"}

	type settingsFn func(ctx context.Context, app *bootstrap.App, cmd *cobra.Command, args []string) (settingsdto.SettingsOutput, error)
	run := func(fn settingsFn) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := fn(context.Background(), app, cmd, args)
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), out)
				return nil
			})
		}
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: run(func(ctx context.Context, app *bootstrap.App, _ *cobra.Command, _ []string) (settingsdto.SettingsOutput, error) {
			return app.SettingsCLI.Show(ctx)
		}),
	}

	languageCmd := &cobra.Command{
		Use:   "language <id>",
		Short: "Switch language; the chant resets to its first preset",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, app *bootstrap.App, _ *cobra.Command, args []string) (settingsdto.SettingsOutput, error) {
			return app.SettingsCLI.Language(ctx, args[0])
		}),
	}

	chantCmd := &cobra.Command{
		Use:   "chant <id|custom>",
		Short: "Select a chant of the current language",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, app *bootstrap.App, _ *cobra.Command, args []string) (settingsdto.SettingsOutput, error) {
			return app.SettingsCLI.Chant(ctx, args[0])
		}),
	}

	var nativeName string
	var lookup, selectCustom bool
	customCmd := &cobra.Command{
		Use:   "custom <name>",
		Short: "Set the custom chant",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(ctx context.Context, app *bootstrap.App, cmd *cobra.Command, args []string) (settingsdto.SettingsOutput, error) {
			name := strings.Join(args, " ")
			native := nativeName
			if native == "" && lookup {
				current, err := app.SettingsCLI.Show(ctx)
				if err != nil {
					return current, err
				}
				res, err := app.TransliterationCLI.Transliterate(ctx, name, current.LanguageName)
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "transliteration unavailable: %v\n", err)
				} else {
					native = res.NativeName
				}
			}
			out, err := app.SettingsCLI.Custom(ctx, name, native)
			if err != nil || !selectCustom {
				return out, err
			}
			return app.SettingsCLI.Chant(ctx, "custom")
		}),
	}
	customCmd.Flags().StringVar(&nativeName, "native", "", "native-script name (skips lookup)")
	customCmd.Flags().BoolVar(&lookup, "transliterate", true, "look up the native-script name with the transliterator plugin")
	customCmd.Flags().BoolVar(&selectCustom, "select", true, "make the custom chant active")

	var goalType, goalValue string
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Set goal type and/or value",
		RunE: run(func(ctx context.Context, app *bootstrap.App, _ *cobra.Command, _ []string) (settingsdto.SettingsOutput, error) {
			return app.SettingsCLI.Goal(ctx, goalType, goalValue)
		}),
	}
	goalCmd.Flags().StringVar(&goalType, "type", "", "none|daily|weekly|monthly|yearly")
	goalCmd.Flags().StringVar(&goalValue, "value", "", "target count")

	var steps int
	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "Adjust the goal value in steps of 100",
		RunE: run(func(ctx context.Context, app *bootstrap.App, _ *cobra.Command, _ []string) (settingsdto.SettingsOutput, error) {
			return app.SettingsCLI.Step(ctx, steps)
		}),
	}
	stepCmd.Flags().IntVar(&steps, "by", 1, "number of steps, negative to decrease")

	settings.AddCommand(showCmd, languageCmd, chantCmd, customCmd, goalCmd, stepCmd)
	return settings
}

func printSettings(w io.Writer, s settingsdto.SettingsOutput) {
	_, _ = fmt.Fprintf(w, "language: %s (%s)\n", s.LanguageName, s.LanguageID)
	_, _ = fmt.Fprintf(w, "chant:    %s (%s)", s.ChantName, s.ChantID)
	if s.Transliteration != "" && s.Transliteration != s.ChantName {
		_, _ = fmt.Fprintf(w, " %s", s.Transliteration)
	}
	_, _ = fmt.Fprintln(w)
	if s.CustomName != "" {
		_, _ = fmt.Fprintf(w, "custom:   %s %s\n", s.CustomName, s.CustomNativeName)
	}
	_, _ = fmt.Fprintf(w, "goal:     %s %d\n", s.GoalType, s.GoalValue)
}

func newCatalogCmd(dataDir *string) *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List languages and chant presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.SettingsCLI.Catalog(context.Background())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, l := range out.Languages {
					if language != "" && l.ID != language {
						continue
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n", l.ID, l.Name, l.NativeName)
					for _, c := range l.Chants {
						_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", c.ID, c.Name, c.NativeName, c.Color)
					}
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "only this language id")
	return cmd
}

func newTransliterateCmd(dataDir *string) *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "transliterate <text>",
		Short: "Render text in a language's native script via the plugin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				ctx := context.Background()
				lang := language
				if lang == "" {
					s, err := app.SettingsCLI.Show(ctx)
					if err != nil {
						return err
					}
					lang = s.LanguageName
				}
				out, err := app.TransliterationCLI.Transliterate(ctx, strings.Join(args, " "), lang)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%s via %s)\n", out.NativeName, out.Text, out.Plugin)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "language name, e.g. Hindi (default: current language)")
	return cmd
}

func newPluginCmd(dataDir *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Manage transliterator plugins"}
	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check every manifest entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				results, err := app.TransliterationCLI.Doctor(context.Background())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "PLUGIN\tVERSION\tBINARY\tCHECKSUM\tHANDSHAKE\tERROR")
				for _, r := range results {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						r.Name, r.Version, okMark(r.BinaryReachable), okMark(r.ChecksumValid), okMark(r.LifecycleOK), r.Error)
				}
				return w.Flush()
			})
		},
	}
	plugin.AddCommand(doctorCmd)
	return plugin
}

func okMark(ok bool) string {
	if ok {
		return "ok"
	}
	return "fail"
}
