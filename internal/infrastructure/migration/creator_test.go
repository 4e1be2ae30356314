package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigrationWritesPair(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Broker Dues", "broker commission tracking")
	require.NoError(t, err)

	assert.Contains(t, mf.UpPath, "add_broker_dues.up.sql")
	assert.Contains(t, mf.DownPath, "add_broker_dues.down.sql")
	assert.Len(t, mf.Version, 14)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: Add Broker Dues")
	assert.Contains(t, string(up), "-- Description: broker commission tracking")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(rollback)")
}

func TestCreateMigrationInMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(dir, "init", "")
	require.NoError(t, err)
	assert.FileExists(t, mf.UpPath)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "add_safes_table", sanitizeName("Add Safes Table"))
	assert.Equal(t, "fix_unit_status", sanitizeName("fix--unit  status"))
	assert.Equal(t, "v2_schema", sanitizeName("V2 Schema!"))
	assert.Equal(t, "trailing", sanitizeName("trailing- "))
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty or missing directory", func(t *testing.T) {
		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Empty(t, migrations)

		migrations, err = ListMigrations(filepath.Join(dir, "nope"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("lists each pair once in apply order", func(t *testing.T) {
		for _, name := range []string{
			"20260101000000_init.up.sql",
			"20260101000000_init.down.sql",
			"20260201000000_add_contracts.up.sql",
			"20260201000000_add_contracts.down.sql",
			"README.md",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"20260101000000_init",
			"20260201000000_add_contracts",
		}, migrations)
	})
}
