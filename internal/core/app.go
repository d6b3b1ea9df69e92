// Package core assembles the services shared by the server and the CLI.
package core

import (
	"database/sql"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog/chocolatey"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog/github"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog/mockcatalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog/winget"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/checker"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/config"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/db"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/jobs"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/websocket"
)

// App holds the core components of the application.
type App struct {
	config     *config.Config
	db         *sql.DB
	logger     *zap.Logger
	registry   *catalog.Registry
	lookup     *catalog.Lookup
	runner     *checker.Runner
	wsHub      *websocket.Hub
	jobManager *jobs.JobManager
	reports    *jobs.ReportStore
	version    string
}

// Options configure NewWithOptions. Nil fields are built from Config.
type Options struct {
	Config   *config.Config
	DB       *sql.DB
	Logger   *zap.Logger
	Registry *catalog.Registry
	Version  string
}

// New opens the database, applies the migrations found under "migrations"
// in migrationsFS and wires every service.
func New(cfg *config.Config, migrationsFS fs.FS, version string, logger *zap.Logger) (*App, error) {
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.RunMigrations(database, migrationsFS, "migrations"); err != nil {
		// We can't proceed without a valid database schema.
		database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	app := NewWithOptions(Options{Config: cfg, DB: database, Logger: logger, Version: version})
	app.logger.Info("Core application setup complete",
		zap.String("locale", i18n.Locale()),
		zap.Int("catalogs", len(app.registry.All())))
	return app, nil
}

// NewWithOptions wires the services around an existing config and database.
func NewWithOptions(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	i18n.Init(cfg.Locale)

	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry(cfg, logger)
	}
	lookup := catalog.NewLookup(registry, logger)

	hub := websocket.NewHub()
	go hub.Run()

	jm := jobs.NewManager(logger)
	jobs.RegisterAll(jm)

	return &App{
		config:     cfg,
		db:         opts.DB,
		logger:     logger,
		registry:   registry,
		lookup:     lookup,
		runner:     checker.NewRunner(lookup, cfg.Checker.Delay, logger),
		wsHub:      hub,
		jobManager: jm,
		reports:    jobs.NewReportStore(),
		version:    opts.Version,
	}
}

// NewRegistry builds the catalogs in priority order: winget, Chocolatey,
// then GitHub releases. With catalogs.offline only the in-memory catalog
// is registered.
func NewRegistry(cfg *config.Config, logger *zap.Logger) *catalog.Registry {
	if cfg.Catalogs.Offline {
		return catalog.NewRegistry(mockcatalog.Offline())
	}
	client := catalog.NewClient(cfg.HTTP.Timeout)
	return catalog.NewRegistry(
		winget.New(client, cfg.Catalogs.Winget.APIURL, cfg.Catalogs.Winget.RawURL, cfg.Catalogs.GitHub.Token, logger),
		chocolatey.New(client, cfg.Catalogs.Chocolatey.APIURL, logger),
		github.New(client, cfg.Catalogs.GitHub.APIURL, cfg.Catalogs.GitHub.Token, logger),
	)
}

func (a *App) Config() *config.Config       { return a.config }
func (a *App) DB() *sql.DB                  { return a.db }
func (a *App) Logger() *zap.Logger          { return a.logger }
func (a *App) Registry() *catalog.Registry  { return a.registry }
func (a *App) Lookup() *catalog.Lookup      { return a.lookup }
func (a *App) Runner() *checker.Runner      { return a.runner }
func (a *App) WsHub() *websocket.Hub        { return a.wsHub }
func (a *App) JobManager() *jobs.JobManager { return a.jobManager }
func (a *App) Reports() *jobs.ReportStore   { return a.reports }
func (a *App) Version() string              { return a.version }

// Close gracefully closes the application's resources, like the DB connection.
func (a *App) Close() {
	a.jobManager.Shutdown()
	a.wsHub.Stop()
	if a.db != nil {
		a.db.Close()
	}
}
