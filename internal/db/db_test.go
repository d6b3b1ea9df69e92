package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/db"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/testutil"
)

func TestInitDBAndRunMigrations(t *testing.T) {
	database, err := db.InitDB(filepath.Join(t.TempDir(), "sga.db"))
	require.NoError(t, err)
	defer database.Close()

	migrations := os.DirFS("../..")
	require.NoError(t, db.RunMigrations(database, migrations, "migrations"))
	// A second run is a no-op.
	require.NoError(t, db.RunMigrations(database, migrations, "migrations"))

	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='software_inventory'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "software_inventory", name)
}

func TestSoftwareInventoryUniqueConstraint(t *testing.T) {
	database := testutil.SetupTestDB(t)

	_, err := database.Exec("INSERT INTO software_inventory (name, current_version) VALUES (?, ?)", "7-Zip", "23.01")
	require.NoError(t, err)
	_, err = database.Exec("INSERT INTO software_inventory (name, current_version) VALUES (?, ?)", "7-Zip", "22.00")
	require.NoError(t, err)
	_, err = database.Exec("INSERT INTO software_inventory (name, current_version) VALUES (?, ?)", "7-Zip", "23.01")
	assert.Error(t, err)
}

func TestRunMigrations_MissingDir(t *testing.T) {
	database := testutil.SetupTestDB(t)
	err := db.RunMigrations(database, os.DirFS(t.TempDir()), "migrations")
	assert.Error(t, err)
}
