package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args against a fresh database file.
func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedAndImport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "citygrid.db")

	out, err := runCLI(t, dbPath, "seed", "--count", "2", "--seed", "11")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	csvPath := filepath.Join(dir, "water.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"area,consumptionLiters,productionLiters,reservoirLevelPercentage,rainfallMm,date\n"+
			"North,100,150,80,2,2024-01-01\n"), 0600))

	out, err = runCLI(t, dbPath, "import", "--kind", "water-supply", "--city", "1", "--file", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1 records imported successfully for city ID: 1")

	_, err = runCLI(t, dbPath, "import", "--kind", "waste", "--city", "1", "--file", csvPath)
	assert.Error(t, err)
}

func TestMigrateVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "citygrid.db")

	out, err := runCLI(t, dbPath, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 3")

	out, err = runCLI(t, dbPath, "migrate", "down", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 2")
}

func TestUserAdd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "citygrid.db")

	out, err := runCLI(t, dbPath, "user", "add", "--username", "operator", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, `created user "operator"`)

	_, err = runCLI(t, dbPath, "user", "add", "--username", "operator", "--password", "pw")
	assert.Error(t, err)
}
