package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgunnarsson/sqlconn"
)

func TestRunNonInteractiveUnsupportedEngine(t *testing.T) {
	err := RunNonInteractive(context.Background(), Engine("oracle"), sqlconn.Config{Database: "x"}, "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported engine "oracle"`)
}

func TestRunNonInteractiveSqlite(t *testing.T) {
	cfg := sqlconn.Config{Database: filepath.Join(t.TempDir(), "test.db")}
	ctx := context.Background()

	// mutating statement path
	require.NoError(t, RunNonInteractive(ctx, EngineSqlite, cfg, "CREATE TABLE t (id INTEGER PRIMARY KEY)"))

	// row-returning path, and the default table listing
	require.NoError(t, RunNonInteractive(ctx, EngineSqlite, cfg, "SELECT * FROM t"))
	require.NoError(t, RunNonInteractive(ctx, EngineSqlite, cfg, ""))
}
