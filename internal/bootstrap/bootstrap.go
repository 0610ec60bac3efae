package bootstrap

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"

	goalinadapter "japa/internal/modules/goal/adapter/in"
	goaloutadapter "japa/internal/modules/goal/adapter/out"
	goalservice "japa/internal/modules/goal/service"
	goalusecase "japa/internal/modules/goal/usecase"
	sessioninadapter "japa/internal/modules/session/adapter/in"
	sessionoutadapter "japa/internal/modules/session/adapter/out"
	sessionservice "japa/internal/modules/session/service"
	sessionusecase "japa/internal/modules/session/usecase"
	settingsinadapter "japa/internal/modules/settings/adapter/in"
	settingsoutadapter "japa/internal/modules/settings/adapter/out"
	settingsdomain "japa/internal/modules/settings/domain"
	settingsservice "japa/internal/modules/settings/service"
	settingsusecase "japa/internal/modules/settings/usecase"
	translitinadapter "japa/internal/modules/transliteration/adapter/in"
	translitoutadapter "japa/internal/modules/transliteration/adapter/out"
	translitservice "japa/internal/modules/transliteration/service"
	translitusecase "japa/internal/modules/transliteration/usecase"
	"japa/internal/platform/clock"
	"japa/internal/platform/config"
	"japa/internal/platform/id"
	"japa/internal/platform/kv"
	uiapp "japa/internal/ui/app"
)

type App struct {
	SessionCLI         sessioninadapter.CLIHandler
	GoalCLI            goalinadapter.CLIHandler
	SettingsCLI        settingsinadapter.CLIHandler
	TransliterationCLI translitinadapter.CLIHandler
	Debouncer          *translitinadapter.Debouncer

	closers []io.Closer
}

func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	clk := clock.SystemClock{Location: cfg.Location}
	ids := id.UUID{}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		clk,
		ids,
		sessionoutadapter.NewKVHistoryStore(store),
		sessionoutadapter.NewMarkdownJournal(),
		log.With().Str("module", "session").Logger(),
	))

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(
		settingsoutadapter.NewKVSettingsStore(store),
		settingsdomain.DefaultCatalog(),
		log.With().Str("module", "settings").Logger(),
	))

	goalLog := log.With().Str("module", "goal").Logger()
	goalUC := goalusecase.NewInteractor(
		goalservice.NewGoalService(clk, goaloutadapter.NewFreeCacheReportCache(cfg.CacheSizeMB, goalLog), goalLog),
		sessionUC,
		settingsUC,
	)

	translitLog := log.With().Str("module", "transliteration").Logger()
	pluginLog := hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Level:  hclog.Warn,
		Output: translitLog,
	})
	translitUC := translitusecase.NewInteractor(translitservice.NewTransliterationService(
		translitoutadapter.NewFileManifestStore(cfg.PluginManifest),
		translitoutadapter.NewGRPCHost(pluginLog),
		translitLog,
	))

	return &App{
		SessionCLI:         sessioninadapter.NewCLIHandler(sessionUC),
		GoalCLI:            goalinadapter.NewCLIHandler(goalUC),
		SettingsCLI:        settingsinadapter.NewCLIHandler(settingsUC),
		TransliterationCLI: translitinadapter.NewCLIHandler(translitUC),
		Debouncer:          translitinadapter.NewDebouncer(translitUC, cfg.TransliterateDebounce, translitLog),
		closers:            []io.Closer{store},
	}, nil
}

// Close stops pending transliterations and releases the store.
func (a *App) Close() error {
	a.Debouncer.Stop()
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		uiapp.Ports{
			Sessions:        app.SessionCLI,
			Goals:           app.GoalCLI,
			Settings:        app.SettingsCLI,
			Transliteration: app.Debouncer,
		},
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
