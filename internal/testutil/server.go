// Shared test server setup used by the API and job tests.

package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/api"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog/mockcatalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/config"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/core"
)

// TestConfig returns a configuration that never touches the network.
func TestConfig() *config.Config {
	cfg := &config.Config{Locale: "en"}
	cfg.Catalogs.Offline = true
	return cfg
}

// SetupTestApp wires a core.App on an in-memory database. Without catalogs
// the offline catalog is used.
func SetupTestApp(t *testing.T, catalogs ...catalog.Catalog) *core.App {
	t.Helper()
	db := SetupTestDB(t)

	var registry *catalog.Registry
	if len(catalogs) == 0 {
		registry = catalog.NewRegistry(mockcatalog.Offline())
	} else {
		registry = catalog.NewRegistry(catalogs...)
	}

	app := core.NewWithOptions(core.Options{
		Config:   TestConfig(),
		DB:       db,
		Registry: registry,
		Version:  "test",
	})
	t.Cleanup(func() {
		app.JobManager().Shutdown()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.JobManager().Wait(ctx)
	})
	return app
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T, catalogs ...catalog.Catalog) (*api.Server, *sql.DB) {
	t.Helper()
	app := SetupTestApp(t, catalogs...)
	return api.NewServer(app), app.DB()
}
