package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	assert.NoError(t, d.Ping())
}

func TestMigrationsApply(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	for _, table := range []string{"cities", "electricity", "water_supply", "waste", "users", "tokens"} {
		var name string
		err := d.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	v, dirty, err := Version(d.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(3), v)
	assert.False(t, dirty)
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	assert.NoError(t, MigrateUp(d.DB))
}

func TestMigrateDown(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	require.NoError(t, MigrateDown(d.DB, 1))

	var count int
	err = d.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='users'").Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)

	v, _, err := Version(d.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)

	assert.Error(t, MigrateDown(d.DB, 0))
}

func TestForeignKeysEnforced(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	_, err = d.Exec(`INSERT INTO electricity (city_id, date, area, consumption_kwh) VALUES (999, '2024-01-01', 'North', 1)`)
	assert.Error(t, err)
}

func TestConnectLeavesSchemaAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citygrid.db")

	d, err := Connect(path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	version, dirty, err := Version(d.DB)
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	require.NoError(t, MigrateUp(d.DB))
	version, _, err = Version(d.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)
}
