// Package cli wires themesync's adapters for the command line.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/themesync/internal/app/themer"
	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/build"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/persistence"
	"github.com/bnema/themesync/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/themesync/internal/logging"
)

// Options are command line overrides applied on top of the config file.
type Options struct {
	// SystemOverride pins the system preference ("dark", "light"). Empty keeps config.
	SystemOverride string
	// DatabasePath replaces database.path. Empty keeps config.
	DatabasePath string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	// ConfigErr is set when the config file could not be used; defaults apply.
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info

	db      *sqlite.LazyDB
	Store   *persistence.PreferenceStore
	Monitor *colorscheme.Monitor

	ResolveUC *usecase.ResolveThemeUseCase

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened on first use only.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	overrideValue := cfg.System.Override
	if opts.SystemOverride != "" {
		overrideValue = opts.SystemOverride
	}
	override, err := colorscheme.ParseOverride(overrideValue)
	if err != nil {
		return nil, err
	}
	monitor := colorscheme.NewDefaultMonitor(override)

	dbPath := cfg.Database.Path
	if opts.DatabasePath != "" {
		dbPath = opts.DatabasePath
	}
	if dbPath == "" {
		if dbPath, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	lazy := sqlite.NewLazyDB(dbPath)
	store := persistence.NewPreferenceStore(sqlite.NewLazyPreferenceRepository(lazy), cfg.Storage.Key)

	resolveUC := usecase.NewResolveThemeUseCase(store, monitor)

	// The terminal output follows the same theme the documents get.
	theme := styles.NewTheme(resolveUC.Execute(ctx))

	if mgr != nil {
		logger.Debug().Str("db_path", dbPath).Str("config", mgr.GetConfigFile()).Msg("cli initialized")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     cfgErr,
		Theme:         theme,
		db:            lazy,
		Store:         store,
		Monitor:       monitor,
		ResolveUC:     resolveUC,
		ctx:           ctx,
	}, nil
}

// ControllerOptions maps the configuration onto controller options.
func (a *App) ControllerOptions() themer.Options {
	return themer.Options{
		Attribute: a.Config.Document.Attribute,
		Selector:  a.Config.ToggleSelector(),
		Labels:    a.Config.ToggleLabels(),
	}
}

// NewController builds a controller for doc using the app's store and
// system monitor unless replacements are given.
func (a *App) NewController(doc port.Document, store port.PreferenceStore, system port.SystemPreference) *themer.Controller {
	if store == nil {
		store = a.Store
	}
	if system == nil {
		system = a.Monitor
	}
	return themer.New(doc, store, system, a.ControllerOptions())
}

// DatabasePath returns the SQLite file backing the store.
func (a *App) DatabasePath() string {
	return a.db.Path()
}

// CheckDatabase opens the database, applying migrations, and returns
// its schema version.
func (a *App) CheckDatabase(ctx context.Context) (int64, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return 0, err
	}
	version, err := sqlite.SchemaVersion(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file is unusable.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
