package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemoryCreatesSchema(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_store", name)
}

func TestRunSQLScriptsIsRepeatable(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, RunSQLScripts(db))
}

func TestInitAndCloseFileDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "roster.db")

	require.NoError(t, Init(dbPath))
	require.NotNil(t, DB)
	assert.NoError(t, DB.Ping())
	assert.NoError(t, Close())
	DB = nil
	assert.NoError(t, Close())
}
