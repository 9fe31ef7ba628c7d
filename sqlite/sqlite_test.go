package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgunnarsson/sqlconn"
	"github.com/bgunnarsson/sqlconn/sqlite"
)

func TestDialect(t *testing.T) {
	d := sqlite.Dialect(sqlconn.Config{Database: "/tmp/app.db"})

	assert.Equal(t, "sqlite", d.Name)
	assert.Equal(t, "sqlite", d.Driver)
	assert.Equal(t, "/tmp/app.db", d.DSN)
	assert.Equal(t, "SELECT last_insert_rowid()", d.LastInsert)
}

func TestOpenEnablesForeignKeys(t *testing.T) {
	conn, err := sqlite.Open(sqlconn.Config{
		Database: filepath.Join(t.TempDir(), "fk.db"),
	})
	require.NoError(t, err)
	defer conn.Close()

	rows, err := conn.Select(context.Background(), "PRAGMA foreign_keys")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0]["foreign_keys"])
}
